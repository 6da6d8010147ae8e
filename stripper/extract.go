package stripper

import (
	"fmt"
	"strings"
)

// literalMap records placeholder token -> original literal text for one
// stripping operation. It lives for a single call and is discarded after
// restoration.
type literalMap map[string]string

// extractLiterals replaces every literal span matched by the ordered
// rules with a unique __<KIND>_<n>__ placeholder and records the
// mapping. Each rule scans the already-substituted text, so a later rule
// can never match inside a span an earlier rule extracted. The ordinal
// is shared across rules, guaranteeing unique tokens within one call.
func extractLiterals(text string, rules []literalRule) (string, literalMap) {
	literals := make(literalMap)
	ordinal := 0

	for _, rule := range rules {
		replace := func(match string) string {
			token := fmt.Sprintf("__%s_%d__", rule.kind, ordinal)
			ordinal++
			literals[token] = match
			return token
		}

		if rule.re != nil {
			text = rule.re.ReplaceAllStringFunc(text, replace)
			continue
		}

		spans := rule.scan(text)
		if len(spans) == 0 {
			continue
		}
		var b strings.Builder
		b.Grow(len(text))
		last := 0
		for _, s := range spans {
			b.WriteString(text[last:s.start])
			b.WriteString(replace(text[s.start:s.end]))
			last = s.end
		}
		b.WriteString(text[last:])
		text = b.String()
	}

	return text, literals
}
