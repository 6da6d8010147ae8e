package stripper

import (
	"regexp"
)

// placeholderShape matches any token extractLiterals can mint. One scan
// with this shape restores everything, so restored literal text is never
// re-examined and files with many literals stay linear.
var placeholderShape = regexp.MustCompile(`__[A-Z]+_\d+__`)

// restoreLiterals substitutes every recognized placeholder back with its
// original literal text. A token absent from the map is left in place
// rather than treated as an error; it cannot occur under correct
// operation but must not be fatal when it does.
func restoreLiterals(text string, literals literalMap) string {
	if len(literals) == 0 {
		return text
	}
	return placeholderShape.ReplaceAllStringFunc(text, func(token string) string {
		if original, ok := literals[token]; ok {
			return original
		}
		return token
	})
}
