package cabo

import "strings"

// normalizeLines prepares raw input lines for classification: everything
// from the first '!' onward is discarded, surrounding whitespace is trimmed,
// and lines that end up empty are dropped. The '!' rule applies inside
// quoted values too, so a quote containing '!' is truncated like any other
// line.
func normalizeLines(lines []string) []string {
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if i := strings.IndexByte(line, '!'); i >= 0 {
			line = line[:i]
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		out = append(out, line)
	}

	return out
}

// splitHeader separates the leading comment block from the parameter body.
// The header is the run of comment lines before the first non-comment line;
// comment lines appearing after the body begins are discarded. Returns
// [ErrNoBody] when every line is a comment.
func splitHeader(lines []string) (header, body []string, err error) {
	start := -1

	for i, line := range lines {
		if !isComment(line) {
			start = i

			break
		}
	}

	if start < 0 {
		return nil, nil, ErrNoBody
	}

	header = lines[:start]

	for _, line := range lines[start:] {
		if isComment(line) {
			continue
		}

		body = append(body, line)
	}

	return header, body, nil
}

// isComment reports whether a normalized line is a comment line.
func isComment(line string) bool {
	return strings.HasPrefix(line, "*")
}
