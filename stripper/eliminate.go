package stripper

import (
	"regexp"
)

// removeComments deletes every span matched by the ordered comment
// patterns. Block patterns run before line patterns so an end-of-line
// pattern can never split a multi-line block comment that is still
// present. Only the matched span is removed; the bytes around it,
// including line breaks and the whitespace before an inline comment,
// are untouched.
func removeComments(text string, comments []*regexp.Regexp) string {
	for _, re := range comments {
		text = re.ReplaceAllString(text, "")
	}
	return text
}
