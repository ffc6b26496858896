package caboenc

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/burggraaff/pcse/cabo"
)

// Format represents an output encoding.
type Format string

const (
	// FormatText is the human-readable parameter listing.
	FormatText Format = "text"
	// FormatJSON is a single indented JSON document.
	FormatJSON Format = "json"
	// FormatYAML is a single YAML document.
	FormatYAML Format = "yaml"
	// FormatTOML is a single TOML document.
	FormatTOML Format = "toml"
)

// Sentinel errors shared with the cabodump CLI.
var (
	// ErrUnknownFormat indicates an unrecognized output format string.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrReadInput indicates an I/O error reading input.
	ErrReadInput = errors.New("read input")
	// ErrWriteOutput indicates an I/O error writing output.
	ErrWriteOutput = errors.New("write output")
)

// ParseFormat parses an output format string and returns the corresponding
// [Format].
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if slices.Contains([]Format{FormatText, FormatJSON, FormatYAML, FormatTOML}, f) {
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// GetAllFormatStrings returns the accepted format strings.
func GetAllFormatStrings() []string {
	return []string{"text", "json", "yaml", "toml"}
}

// Encode renders ps in the given format. Structured formats encode the
// [Document] shape; text is the parameter listing of
// [cabo.ParameterSet.String]. Output always ends with a newline.
func Encode(ps *cabo.ParameterSet, format Format) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(ps.String()), nil

	case FormatJSON:
		out, err := json.MarshalIndent(NewDocument(ps), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}

		return append(out, '\n'), nil

	case FormatYAML:
		out, err := yaml.Marshal(NewDocument(ps))
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}

		return out, nil

	case FormatTOML:
		var sb strings.Builder

		err := toml.NewEncoder(&sb).Encode(NewDocument(ps))
		if err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}

		return []byte(sb.String()), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
