package caboschema

import (
	"errors"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/burggraaff/pcse/cabo"
)

// Sentinel errors shared with the caboschema CLI.
var (
	ErrReadInput   = errors.New("read input")
	ErrWriteOutput = errors.New("write output")
)

// Generator produces JSON Schema documents from parsed parameter sets.
type Generator struct {
	title       string
	description string
	id          string
	strict      bool
}

// Option configures a Generator.
type Option func(*Generator)

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// WithTitle sets the schema title.
func WithTitle(title string) Option {
	return func(g *Generator) {
		g.title = title
	}
}

// WithDescription sets the schema description.
func WithDescription(desc string) Option {
	return func(g *Generator) {
		g.description = desc
	}
}

// WithID sets the schema $id.
func WithID(id string) Option {
	return func(g *Generator) {
		g.id = id
	}
}

// WithStrict sets additionalProperties to false on the root object.
func WithStrict(strict bool) Option {
	return func(g *Generator) {
		g.strict = strict
	}
}

// Generate produces a Draft 7 schema describing every parameter in the
// given sets. With several sets the result is their union: a parameter
// appearing in any set becomes a property, kind conflicts widen, and the
// first set to define a parameter contributes its default value.
func (g *Generator) Generate(sets ...*cabo.ParameterSet) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Schema:     draft7,
		Type:       typeObject,
		Properties: make(map[string]*jsonschema.Schema),
	}

	var order []string

	for _, ps := range sets {
		for _, name := range ps.Names() {
			value, _ := ps.Get(name)
			prop := propertySchema(value)

			existing, ok := schema.Properties[name]
			if !ok {
				schema.Properties[name] = prop
				order = append(order, name)

				continue
			}

			schema.Properties[name] = mergeProperties(existing, prop)
		}
	}

	if len(schema.Properties) == 0 {
		schema.Properties = nil
	} else {
		schema.PropertyOrder = order
	}

	if g.title != "" {
		schema.Title = g.title
	}

	if g.description != "" {
		schema.Description = g.description
	}

	if g.id != "" {
		schema.ID = g.id
	}

	if g.strict {
		schema.AdditionalProperties = FalseSchema()
	} else {
		schema.AdditionalProperties = TrueSchema()
	}

	return schema
}
