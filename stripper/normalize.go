package stripper

import (
	"regexp"
	"strings"
)

var (
	trailingWhitespace = regexp.MustCompile(`(?m)[ \t]+$`)
	excessBlankLines   = regexp.MustCompile(`\n{3,}`)
)

// Normalize strips trailing whitespace on every line, collapses runs of
// two or more blank lines into exactly one, and trims leading and
// trailing whitespace from the whole document.
//
// This is a separate, explicit operation: the stripping functions never
// apply it themselves, so their output stays byte-exact around removed
// comment spans.
func Normalize(source string) string {
	out := trailingWhitespace.ReplaceAllString(source, "")
	out = excessBlankLines.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}
