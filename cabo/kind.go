package cabo

import (
	"fmt"
	"strings"
)

// Kind is the syntactic category of a parameter definition. Every body line
// belongs to exactly one kind, decided by [KindOf].
type Kind int

const (
	// KindScalar is a single numeric value, e.g. TBASEM = -10.0.
	KindScalar Kind = iota
	// KindTable is a comma-separated numeric series forming x/y pairs,
	// e.g. DTSMTB = 0.00, 0.00, 30.00, 30.00.
	KindTable
	// KindString is a single-quoted text value, e.g. CRPNAM = 'Winter wheat'.
	KindString
)

// String returns the section name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindTable:
		return "table"
	case KindString:
		return "string"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindOf classifies one normalized body line. A single quote anywhere on the
// line makes it a string line, even when commas are present, so that quoted
// text containing commas is never mistaken for a table series. A comma on an
// unquoted line makes it a table line. Everything else is a scalar line.
func KindOf(line string) Kind {
	switch {
	case strings.Contains(line, "'"):
		return KindString
	case strings.Contains(line, ","):
		return KindTable
	default:
		return KindScalar
	}
}

// sections holds the joined search text per kind. Lines of the same kind are
// concatenated with single spaces, which is what lets a table series written
// across several physical lines match as one definition.
type sections struct {
	scalar string
	table  string
	quoted string
}

func classify(body []string) sections {
	var buckets [3][]string

	for _, line := range body {
		k := KindOf(line)
		buckets[k] = append(buckets[k], line)
	}

	return sections{
		scalar: strings.Join(buckets[KindScalar], " "),
		table:  strings.Join(buckets[KindTable], " "),
		quoted: strings.Join(buckets[KindString], " "),
	}
}
