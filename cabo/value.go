package cabo

import (
	"strconv"
	"strings"
)

// minTableValues is the shortest table series that still describes a
// function: two x/y pairs.
const minTableValues = 4

// parseScalar converts one scalar definition. A '.' in the value selects
// float parsing; values without one must be valid integers, so 99 stays an
// int64 while -10.0 becomes a float64.
func parseScalar(def string) (string, any, error) {
	name, raw, _ := strings.Cut(def, "=")
	name = strings.TrimSpace(name)
	raw = strings.TrimSpace(raw)

	if strings.Contains(raw, ".") {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", nil, &ValueError{Name: name, Token: raw, Err: err}
		}

		return name, f, nil
	}

	i, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return "", nil, &ValueError{Name: name, Token: raw, Err: err}
	}

	return name, i, nil
}

// parseQuoted converts one string definition. Only the first '=' separates
// name from value because the quoted text may itself contain '='. Every
// single and double quote character is removed from the value, not just the
// delimiting pair, and the remainder is kept verbatim, surrounding
// whitespace included.
func parseQuoted(def string) (string, string) {
	name, raw, _ := strings.Cut(def, "=")
	name = strings.TrimSpace(name)

	value := strings.ReplaceAll(raw, "'", "")
	value = strings.ReplaceAll(value, `"`, "")

	return name, value
}

// parseTable converts one table definition into a flat []float64 preserving
// the written order. Checks run in a fixed sequence: minimum length first,
// then x/y parity, then per-value conversion, so a two-value series reports
// its length before anything else.
func parseTable(def string) (string, []float64, error) {
	name, raw, _ := strings.Cut(def, "=")
	name = strings.TrimSpace(name)

	tokens := strings.Split(strings.TrimSpace(raw), ",")

	if len(tokens) < minTableValues {
		return "", nil, &TableLengthError{Name: name, Count: len(tokens)}
	}

	if len(tokens)%2 != 0 {
		return "", nil, &TableParityError{Name: name, Count: len(tokens)}
	}

	values := make([]float64, len(tokens))

	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)

		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return "", nil, &ValueError{Name: name, Token: tok, Err: err}
		}

		values[i] = f
	}

	return name, values, nil
}
