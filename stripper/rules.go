package stripper

import (
	"regexp"
)

// span marks a half-open [start, end) byte range inside the text being
// scanned. Custom matchers return spans so the extractor can splice
// placeholders without re-running the matcher on substituted text.
type span struct {
	start int
	end   int
}

// literalRule describes one kind of literal to protect before comment
// removal. Rules are regex-based where RE2 can express the pattern and
// scanner-based where it cannot (JS regex literals need the preceding
// context to disambiguate division; Ruby heredocs need to match their
// opening tag, which RE2 has no backreference for).
type literalRule struct {
	kind string
	re   *regexp.Regexp
	scan func(text string) []span
}

// ruleSet is the immutable pattern table for one language: literal rules
// in extraction order, comment patterns in removal order (block before
// line). Rule sets are built once at init and never mutated.
type ruleSet struct {
	literals []literalRule
	comments []*regexp.Regexp
}

var (
	// All quote kinds of a language form a single alternation so the
	// leftmost literal wins: a quote character of one kind inside a
	// literal of another kind is plain content, never the start of a new
	// span. Separate per-kind passes would extract the inner quote first
	// and bury its placeholder inside the outer literal's map value.
	// Quote-character strings are single-line (a raw newline terminates
	// a broken string in these grammars); backtick templates and
	// triple-quoted strings span lines. Escaped delimiters never close a
	// span because the \\. alternative consumes the backslash pair
	// first.
	cStyleQuoted = regexp.MustCompile(`(?s)"(?:\\.|[^"\\\n])*"|'(?:\\.|[^'\\\n])*'` + "|`(?:\\\\.|[^`\\\\])*`")
	pythonQuoted = regexp.MustCompile(`(?s)""".*?"""|'''.*?'''|"(?:\\.|[^"\\\n])*"|'(?:\\.|[^'\\\n])*'`)
	plainQuoted  = regexp.MustCompile(`"(?:\\.|[^"\\\n])*"|'(?:\\.|[^'\\\n])*'`)

	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`//[^\n]*`)
	hashComment  = regexp.MustCompile(`#[^\n]*`)
	htmlComment  = regexp.MustCompile(`(?s)<!--.*?-->`)

	// =begin/=end must sit at the start of a line to open or close a
	// Ruby block comment.
	rubyBlockComment = regexp.MustCompile(`(?ms)^=begin\b.*?^=end[^\n]*`)

	phpLineComment = regexp.MustCompile(`(?:#|//)[^\n]*`)
)

// cStyleRules covers JS/TS and the C family (Java, C, C++, C#). String
// extraction runs before regex extraction so a quote-and-slash sequence
// inside a string can never be mistaken for a regex delimiter.
var cStyleRules = &ruleSet{
	literals: []literalRule{
		{kind: "STRING", re: cStyleQuoted},
		{kind: "REGEX", scan: jsRegexSpans},
	},
	comments: []*regexp.Regexp{blockComment, lineComment},
}

// pythonRules lists triple-quoted branches ahead of single-character
// quotes in the alternation so """ is never read as three empty strings.
var pythonRules = &ruleSet{
	literals: []literalRule{
		{kind: "STRING", re: pythonQuoted},
	},
	comments: []*regexp.Regexp{hashComment},
}

// htmlRules has no literal kinds: markup inside <!-- --> cannot legally
// contain another comment delimiter.
var htmlRules = &ruleSet{
	comments: []*regexp.Regexp{htmlComment},
}

var cssRules = &ruleSet{
	comments: []*regexp.Regexp{blockComment},
}

// rubyRules extracts heredocs before quoted strings: a quoted opener
// tag like <<-'SQL' would otherwise lose its quotes to the string pass
// and never match.
var rubyRules = &ruleSet{
	literals: []literalRule{
		{kind: "HEREDOC", scan: rubyHeredocSpans},
		{kind: "STRING", re: plainQuoted},
	},
	comments: []*regexp.Regexp{rubyBlockComment, hashComment},
}

var phpRules = &ruleSet{
	literals: []literalRule{
		{kind: "STRING", re: plainQuoted},
	},
	comments: []*regexp.Regexp{blockComment, phpLineComment},
}
