package cabo

import "strings"

// Parse parses the raw content of a CABO parameter file.
func Parse(content []byte) (*ParameterSet, error) {
	return ParseString(string(content))
}

// ParseString parses CABO parameter file content held in a string.
func ParseString(content string) (*ParameterSet, error) {
	return ParseLines(strings.Split(content, "\n"))
}

// ParseLines parses CABO parameter file content already split into lines.
// Line terminators are tolerated, so callers may pass lines read with or
// without their trailing newlines.
//
// The pipeline runs in fixed stages: normalize lines, split the header from
// the body, bucket body lines by [KindOf], extract definitions per section,
// then convert values. Any failure aborts the whole parse; there are no
// partial results.
func ParseLines(lines []string) (*ParameterSet, error) {
	normalized := normalizeLines(lines)
	if len(normalized) == 0 {
		return nil, ErrEmptyFile
	}

	header, body, err := splitHeader(normalized)
	if err != nil {
		return nil, err
	}

	secs := classify(body)

	scalarDefs, err := extractDefinitions(KindScalar, scalarExpr, secs.scalar)
	if err != nil {
		return nil, err
	}

	tableDefs, err := extractDefinitions(KindTable, tableExpr, secs.table)
	if err != nil {
		return nil, err
	}

	stringDefs, err := extractDefinitions(KindString, stringExpr, secs.quoted)
	if err != nil {
		return nil, err
	}

	ps := newParameterSet(header)

	for _, def := range scalarDefs {
		name, value, err := parseScalar(def)
		if err != nil {
			return nil, err
		}

		ps.set(name, value, KindScalar)
	}

	for _, def := range stringDefs {
		name, value := parseQuoted(def)
		ps.set(name, value, KindString)
	}

	for _, def := range tableDefs {
		name, values, err := parseTable(def)
		if err != nil {
			return nil, err
		}

		ps.set(name, values, KindTable)
	}

	return ps, nil
}
