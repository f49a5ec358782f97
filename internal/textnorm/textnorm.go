// Package textnorm canonicalizes free text so bank category labels,
// merchant descriptions, and keyword entries compare consistently.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	ampersandRE  = regexp.MustCompile(`\s*&\s*`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// quoteCutset covers straight and curly quotes plus surrounding whitespace.
const quoteCutset = "\"'“”‘’ \t\r\n"

// Normalize canonicalizes s for comparison: strips a leading BOM and
// surrounding quotes, lowercases, rewrites "&" as "and", and collapses
// whitespace runs. Idempotent; blank input normalizes to "".
func Normalize(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.Trim(s, quoteCutset)
	s = strings.ToLower(s)
	s = ampersandRE.ReplaceAllString(s, " and ")
	s = whitespaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
