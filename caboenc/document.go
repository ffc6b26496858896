package caboenc

import "github.com/burggraaff/pcse/cabo"

// Document is the wire shape shared by the structured encoders: the CABO
// header block plus the parameter mapping.
type Document struct {
	Header     []string       `json:"header"     yaml:"header"     toml:"header"`
	Parameters map[string]any `json:"parameters" yaml:"parameters" toml:"parameters"`
}

// NewDocument builds the encodable shape for one parameter set.
func NewDocument(ps *cabo.ParameterSet) Document {
	params := make(map[string]any, ps.Len())

	for _, name := range ps.Names() {
		value, _ := ps.Get(name)
		params[name] = value
	}

	return Document{
		Header:     ps.Header(),
		Parameters: params,
	}
}
