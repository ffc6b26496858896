package caboschema

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// JSON Schema type constants.
const (
	typeInteger = "integer"
	typeNumber  = "number"
	typeString  = "string"
	typeArray   = "array"
	typeObject  = "object"
)

const draft7 = "http://json-schema.org/draft-07/schema#"

// minTableItems mirrors the parser's shortest valid table series.
const minTableItems = 4

// typeForValue maps a parsed parameter value onto its JSON Schema type.
// Returns an empty string (no constraint) for unexpected value types.
func typeForValue(v any) string {
	switch v.(type) {
	case int64:
		return typeInteger
	case float64:
		return typeNumber
	case string:
		return typeString
	case []float64:
		return typeArray
	}

	return ""
}

// propertySchema builds the schema describing one parameter value. The
// observed value becomes the default.
func propertySchema(v any) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Default: DefaultValue(v),
	}

	if t := typeForValue(v); t != "" {
		s.Type = t
	}

	if _, ok := v.([]float64); ok {
		s.Items = &jsonschema.Schema{Type: typeNumber}
		s.MinItems = jsonschema.Ptr(minTableItems)
	}

	return s
}

// mergeProperties merges two property schemas using union semantics:
// conflicting types widen and the earlier default wins.
func mergeProperties(a, b *jsonschema.Schema) *jsonschema.Schema {
	result := &jsonschema.Schema{}

	merged := widenType(a.Type, b.Type)
	if merged != "" {
		result.Type = merged
	}

	if a.Default != nil {
		result.Default = a.Default
	} else {
		result.Default = b.Default
	}

	if merged == typeArray {
		switch {
		case a.Items != nil && b.Items != nil:
			result.Items = mergeProperties(a.Items, b.Items)
		case a.Items != nil:
			result.Items = a.Items
		default:
			result.Items = b.Items
		}

		if a.MinItems != nil {
			result.MinItems = a.MinItems
		} else {
			result.MinItems = b.MinItems
		}
	}

	return result
}

// widenType returns the widened type when merging two type strings.
// Returns empty string (no constraint) for incompatible types.
func widenType(a, b string) string {
	if a == b {
		return a
	}

	if a == "" {
		return b
	}

	if b == "" {
		return a
	}

	if (a == typeInteger && b == typeNumber) || (a == typeNumber && b == typeInteger) {
		return typeNumber
	}

	return ""
}
