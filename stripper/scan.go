package stripper

import (
	"regexp"
	"strings"
)

// jsRegexSpans finds slash-delimited regular-expression literals with
// trailing flags. A slash only opens a regex when the last significant
// character before it could not end an expression, which keeps division
// like a / b out. Runs after string extraction, so quotes are already
// placeholders and cannot confuse the scan.
func jsRegexSpans(text string) []span {
	var spans []span

	for i := 0; i < len(text); i++ {
		if text[i] != '/' {
			continue
		}

		// Comment openers are left for the comment pass.
		if i+1 < len(text) && (text[i+1] == '/' || text[i+1] == '*') {
			i++
			continue
		}

		if !regexCanFollow(precedingByte(text, i)) {
			continue
		}

		end := -1
		inClass := false
		for j := i + 1; j < len(text); j++ {
			c := text[j]
			if c == '\\' {
				// Escaped character, including \/ and \], is literal.
				j++
				continue
			}
			if c == '\n' {
				// Regex literals cannot span lines.
				break
			}
			if c == '[' {
				inClass = true
				continue
			}
			if c == ']' {
				inClass = false
				continue
			}
			if c == '/' && !inClass {
				end = j + 1
				break
			}
		}
		if end == -1 {
			continue
		}

		for end < len(text) && isRegexFlag(text[end]) {
			end++
		}
		spans = append(spans, span{i, end})
		i = end - 1
	}

	return spans
}

// precedingByte returns the last non-space, non-tab byte before pos, or 0
// at the start of the text.
func precedingByte(text string, pos int) byte {
	for k := pos - 1; k >= 0; k-- {
		if text[k] == ' ' || text[k] == '\t' {
			continue
		}
		return text[k]
	}
	return 0
}

// regexCanFollow reports whether a regex literal can start after the
// given byte. Identifier and closing characters mean the slash is a
// division operator. '*' is excluded so the slash in a still-present */
// can never open a span that swallows the block-comment terminator.
func regexCanFollow(b byte) bool {
	switch b {
	case 0, '\n', '(', ',', '=', ':', '[', '!', '&', '|', '?', '{', '}', ';', '+', '-', '%', '~', '^', '<', '>':
		return true
	}
	return false
}

func isRegexFlag(b byte) bool {
	switch b {
	case 'd', 'g', 'i', 'm', 's', 'u', 'v', 'y':
		return true
	}
	return false
}

// Heredoc openers: <<EOS, <<-EOS, <<~EOS, with the tag optionally quoted.
// The uppercase-tag convention keeps shift expressions like a << b from
// matching. Quoted and bare tags are separate alternations because RE2
// has no backreference to pair the quote characters.
var rubyHeredocOpener = regexp.MustCompile("<<[-~]?(?:\"([A-Z_][A-Z0-9_]*)\"|'([A-Z_][A-Z0-9_]*)'|`([A-Z_][A-Z0-9_]*)`|([A-Z_][A-Z0-9_]*))")

// rubyHeredocSpans finds heredoc bodies: everything from the line after
// the opener through the terminator line. The opener itself stays in
// place so surrounding code on that line is still processed.
func rubyHeredocSpans(text string) []span {
	var spans []span
	offset := 0

	for offset < len(text) {
		loc := rubyHeredocOpener.FindStringSubmatchIndex(text[offset:])
		if loc == nil {
			break
		}

		tag := ""
		for g := 1; g <= 4; g++ {
			if loc[2*g] != -1 {
				tag = text[offset+loc[2*g] : offset+loc[2*g+1]]
				break
			}
		}
		openerEnd := offset + loc[1]

		nl := strings.IndexByte(text[openerEnd:], '\n')
		if nl == -1 {
			// Opener with no body before end of input: unterminated, no match.
			break
		}
		bodyStart := openerEnd + nl + 1

		termEnd := findHeredocTerminator(text, bodyStart, tag)
		if termEnd == -1 {
			// No terminator line: leave the text as-is.
			offset = openerEnd
			continue
		}

		spans = append(spans, span{bodyStart, termEnd})
		offset = termEnd
	}

	return spans
}

// findHeredocTerminator returns the end offset of the line whose content
// is exactly the tag (leading whitespace allowed, matching <<- and <<~
// semantics), or -1 when no such line exists.
func findHeredocTerminator(text string, from int, tag string) int {
	for lineStart := from; lineStart <= len(text); {
		lineEnd := strings.IndexByte(text[lineStart:], '\n')
		var line string
		if lineEnd == -1 {
			line = text[lineStart:]
			lineEnd = len(text)
		} else {
			line = text[lineStart : lineStart+lineEnd]
			lineEnd = lineStart + lineEnd
		}

		if strings.TrimSpace(line) == tag {
			return lineEnd
		}
		if lineEnd >= len(text) {
			break
		}
		lineStart = lineEnd + 1
	}
	return -1
}
