package service

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// punctuation and symbols become spaces; letters, digits and spaces survive
var punct = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

// Normalize prepares a raw full name for comparison: combining marks are
// stripped (José == Jose), the result is lower-cased, punctuation turns into
// spaces and whitespace is collapsed. Idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = stripMarks(s)
	s = strings.ToLower(s)
	s = punct.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// NFD + drop Mn + NFC. A fresh transformer per call: the chain carries state
// and Normalize may be called from tests running in parallel.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
