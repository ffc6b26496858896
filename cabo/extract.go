package cabo

import (
	"regexp"
	"strings"
)

// Definition patterns, one per section. The value character classes keep
// matches from crossing category boundaries: the scalar class admits neither
// quotes nor commas, the table class stops at the first letter, and the
// string pattern is non-greedy so adjacent quoted values stay separate.
var (
	scalarExpr = regexp.MustCompile(`[a-zA-Z0-9_]+\s*=\s*[a-zA-Z0-9_.\-]+`)
	tableExpr  = regexp.MustCompile(`[a-zA-Z0-9_]+\s*=\s*[0-9,.\s\-+]+`)
	stringExpr = regexp.MustCompile(`[a-zA-Z0-9_]+\s*=\s*'.*?'`)
)

// extractDefinitions collects every non-overlapping match of expr in the
// section text, left to right, then verifies the matches account for the
// whole section: with matches removed, only semicolons and whitespace may
// remain. Any other residue means a definition the pattern could not parse,
// which is an error rather than a dropped parameter.
func extractDefinitions(kind Kind, expr *regexp.Regexp, text string) ([]string, error) {
	defs := expr.FindAllString(text, -1)

	rest := expr.ReplaceAllString(text, "")
	rest = strings.ReplaceAll(rest, ";", "")
	rest = strings.TrimSpace(rest)

	if rest != "" {
		return nil, &ResidueError{Section: kind, Definitions: defs, Residue: rest}
	}

	return defs, nil
}
