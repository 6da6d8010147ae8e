// Package stripper removes comments from source text across multiple
// languages while preserving string, regex, heredoc and triple-quoted
// literal content that merely resembles a comment.
//
// The engine protects literal spans with placeholder tokens, deletes
// comments from the substituted text, then restores the literals in a
// single pass. Pattern tables, not full lexers, drive each language;
// this is a deliberate trade-off favoring simplicity over correctness
// on pathological inputs.
//
// Every operation is pure and total: text in, text out, never an error.
// Concurrent calls on different inputs are safe without locking.
package stripper

// strip runs the three pipeline stages for one rule set.
func (rs *ruleSet) strip(source string) string {
	if source == "" {
		return ""
	}
	text, literals := extractLiterals(source, rs.literals)
	text = removeComments(text, rs.comments)
	return restoreLiterals(text, literals)
}

// StripComments removes comments from source using the pipeline for the
// given language tag. An empty or unrecognized tag selects the C-style
// pipeline; unknown languages are a documented fallback, not an error.
func StripComments(source, language string) string {
	return pipelineForLanguage(language)(source)
}

// StripCommentsByFileType removes comments from source, resolving the
// language from the extension of path. Unknown extensions fall back to
// the C-style pipeline.
func StripCommentsByFileType(path, source string) string {
	return pipelineForPath(path)(source)
}

// StripJSComments removes // and /* */ comments from JavaScript or
// TypeScript source. String, template and regex literals are preserved,
// including any comment-like sequences inside them.
func StripJSComments(source string) string {
	return cStyleRules.strip(source)
}

// StripCStyleComments removes comments from C-family source (Java, C,
// C++, C#). The lexical grammar matches JavaScript at this level, so
// the same rule set serves both.
func StripCStyleComments(source string) string {
	return cStyleRules.strip(source)
}

// StripPythonComments removes # comments from Python source. Quoted and
// triple-quoted strings, docstrings included, are preserved.
func StripPythonComments(source string) string {
	return pythonRules.strip(source)
}

// StripHTMLComments removes <!-- --> comments from HTML.
func StripHTMLComments(source string) string {
	return htmlRules.strip(source)
}

// StripCSSComments removes /* */ comments from CSS, SCSS or LESS.
func StripCSSComments(source string) string {
	return cssRules.strip(source)
}

// StripVueComments removes comments from a Vue single-file component:
// the JS pass runs over the whole text, then the HTML pass. The order is
// load-bearing, and the two passes share one literal map so an
// HTML-comment-like sequence inside a script string is still a
// placeholder when the HTML pass runs.
func StripVueComments(source string) string {
	if source == "" {
		return ""
	}
	text, literals := extractLiterals(source, cStyleRules.literals)
	text = removeComments(text, cStyleRules.comments)
	text = removeComments(text, htmlRules.comments)
	return restoreLiterals(text, literals)
}

// StripRubyComments removes =begin/=end blocks and # comments from Ruby
// source. Quoted strings and heredoc bodies are preserved.
func StripRubyComments(source string) string {
	return rubyRules.strip(source)
}

// StripPHPComments removes /* */, // and # comments from PHP source.
func StripPHPComments(source string) string {
	return phpRules.strip(source)
}
