package cabo

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

const displaySeparator = "------------------------------------"

// ParameterSet is the parsed content of one CABO file: parameter values
// keyed by name, plus the header comment block retained for provenance.
//
// Values are one of four Go types, fixed by the definition that produced
// them: int64 and float64 for scalars, string for quoted values, and
// []float64 for table series. Accessors return copies, so a ParameterSet is
// read-only once built and safe for concurrent use.
type ParameterSet struct {
	header []string
	values map[string]any
	names  []string
}

func newParameterSet(header []string) *ParameterSet {
	return &ParameterSet{
		header: header,
		values: make(map[string]any),
	}
}

// set stores value under name. A repeated name overwrites the earlier value
// but keeps its original position in definition order; the overwrite is
// surfaced through [slog.Warn] because it silently discards data the file
// author probably meant to keep.
func (ps *ParameterSet) set(name string, value any, kind Kind) {
	if _, exists := ps.values[name]; exists {
		slog.Warn("duplicate parameter definition overwrites earlier value",
			slog.String("name", name),
			slog.String("section", kind.String()),
		)
	} else {
		ps.names = append(ps.names, name)
	}

	ps.values[name] = value
}

// Get returns the value stored under name and whether it is defined.
func (ps *ParameterSet) Get(name string) (any, bool) {
	v, ok := ps.values[name]

	return v, ok
}

// Has reports whether name is defined.
func (ps *ParameterSet) Has(name string) bool {
	_, ok := ps.values[name]

	return ok
}

// Len returns the number of distinct parameters.
func (ps *ParameterSet) Len() int {
	return len(ps.values)
}

// Names returns the parameter names in definition order: scalars first, then
// strings, then tables, each group in file order. A name defined twice keeps
// the position of its first definition.
func (ps *ParameterSet) Names() []string {
	return slices.Clone(ps.names)
}

// Header returns the leading comment block, one line per element, '*'
// markers included.
func (ps *ParameterSet) Header() []string {
	return slices.Clone(ps.header)
}

// String renders the set for human inspection: the header block, a dashed
// separator, then one "name: value <type>" line per parameter in definition
// order.
func (ps *ParameterSet) String() string {
	var sb strings.Builder

	for _, line := range ps.header {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	sb.WriteString(displaySeparator)
	sb.WriteByte('\n')

	for _, name := range ps.names {
		fmt.Fprintf(&sb, "%s: %v <%T>\n", name, ps.values[name], ps.values[name])
	}

	return sb.String()
}
