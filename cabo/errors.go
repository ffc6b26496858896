package cabo

import (
	"errors"
	"fmt"
)

// Sentinel errors for inputs with no parseable content.
var (
	// ErrEmptyFile indicates the input had no lines left after comment
	// stripping and whitespace normalization.
	ErrEmptyFile = errors.New("empty CABO file")
	// ErrNoBody indicates every line was a comment line: the file has a
	// header but no parameter body.
	ErrNoBody = errors.New("no body text found, only header")
)

// ResidueError reports that one section's search text contained material no
// definition pattern could account for. It carries the definitions that were
// extracted successfully alongside the leftover text, so a malformed
// assignment surfaces as a hard failure instead of a silently dropped
// parameter.
type ResidueError struct {
	Section     Kind
	Definitions []string
	Residue     string
}

func (e *ResidueError) Error() string {
	return fmt.Sprintf("%s section: extracted %d definitions but could not parse %q",
		e.Section, len(e.Definitions), e.Residue)
}

// TableLengthError reports a table series with fewer than the minimum of
// four values. Count is the number of comma-separated values found.
type TableLengthError struct {
	Name  string
	Count int
}

func (e *TableLengthError) Error() string {
	return fmt.Sprintf("table parameter %s: got %d values, need at least %d",
		e.Name, e.Count, minTableValues)
}

// TableParityError reports a table series with an odd number of values,
// which cannot form x/y pairs. Count is the number of comma-separated
// values found.
type TableParityError struct {
	Name  string
	Count int
}

func (e *TableParityError) Error() string {
	return fmt.Sprintf("table parameter %s: got %d values, need an even number to form x/y pairs",
		e.Name, e.Count)
}

// ValueError reports a token that failed numeric conversion, identifying the
// parameter it belongs to. It wraps the underlying [strconv] error.
type ValueError struct {
	Name  string
	Token string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("parameter %s: bad value %q: %v", e.Name, e.Token, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
