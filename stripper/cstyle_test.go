package stripper

import (
	"testing"
)

func TestStripCStyleComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "java line comment",
			input:    "int x = 5; // counter\nint y = 10;",
			expected: "int x = 5; \nint y = 10;",
		},
		{
			name:     "c block comment",
			input:    "/* header */\nint main(void) {}",
			expected: "\nint main(void) {}",
		},
		{
			name:     "javadoc block",
			input:    "/**\n * Does things.\n */\npublic void run() {}",
			expected: "\npublic void run() {}",
		},
		{
			name:     "string with comment markers",
			input:    "String s = \"http://example.com // not a comment\";",
			expected: "String s = \"http://example.com // not a comment\";",
		},
		{
			// A char literal is lexically a single-quoted string here.
			name:     "char literal with slash",
			input:    "char c = '/'; // slash",
			expected: "char c = '/'; ",
		},
		{
			name:     "escaped backslash before quote",
			input:    "String p = \"C:\\\\\"; // path",
			expected: "String p = \"C:\\\\\"; ",
		},
		{
			name:     "consecutive block comments",
			input:    "/* a */ x(); /* b */ y();",
			expected: " x();  y();",
		},
		{
			// Block removal runs first, so the // inside the block is gone
			// with the block instead of truncating the line.
			name:     "line comment marker inside block comment",
			input:    "/* see // note */ z();",
			expected: " z();",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripCStyleComments(tt.input)

			if result != tt.expected {
				t.Errorf("StripCStyleComments() failed\nInput:\n%s\n\nExpected:\n%q\n\nGot:\n%q", tt.input, tt.expected, result)
			}
		})
	}
}

func TestStripCommentsDefaultPipeline(t *testing.T) {
	// An empty or unknown language tag falls back to the C-style
	// pipeline rather than failing.
	input := "int x = 1; // gone\n# stays"
	expected := "int x = 1; \n# stays"

	if got := StripComments(input, ""); got != expected {
		t.Errorf("StripComments(input, \"\") = %q, want %q", got, expected)
	}
	if got := StripComments(input, "klingon"); got != expected {
		t.Errorf("StripComments(input, \"klingon\") = %q, want %q", got, expected)
	}
}

func TestStripCommentsByLanguageTag(t *testing.T) {
	tests := []struct {
		name     string
		language string
		input    string
		expected string
	}{
		{
			name:     "python tag",
			language: "python",
			input:    "x = 1 # gone",
			expected: "x = 1 ",
		},
		{
			name:     "typescript tag",
			language: "typescript",
			input:    "let x = 1; // gone",
			expected: "let x = 1; ",
		},
		{
			name:     "html tag",
			language: "html",
			input:    "<!-- gone --><p>kept</p>",
			expected: "<p>kept</p>",
		},
		{
			name:     "tag is case insensitive",
			language: "Python",
			input:    "x = 1 # gone",
			expected: "x = 1 ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripComments(tt.input, tt.language)

			if result != tt.expected {
				t.Errorf("StripComments(%q) = %q, want %q", tt.language, result, tt.expected)
			}
		})
	}
}
