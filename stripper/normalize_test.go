package stripper

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no changes needed",
			input:    "line1\nline2",
			expected: "line1\nline2",
		},
		{
			name:     "trailing whitespace removed",
			input:    "line1   \nline2\t\nline3",
			expected: "line1\nline2\nline3",
		},
		{
			name:     "two blank lines collapse to one",
			input:    "line1\n\n\nline2",
			expected: "line1\n\nline2",
		},
		{
			name:     "many blank lines collapse to one",
			input:    "line1\n\n\n\n\nline2",
			expected: "line1\n\nline2",
		},
		{
			name:     "document edges trimmed",
			input:    "\n\nx = 1\n\n",
			expected: "x = 1",
		},
		{
			// Whitespace-only lines become blank after trailing-space
			// removal and then collapse with their neighbors.
			name:     "whitespace only lines",
			input:    "a\n   \n\t\nb",
			expected: "a\n\nb",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "  \n\n\t\n",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)

			if result != tt.expected {
				t.Errorf("Normalize() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestNormalizeIsNotAppliedByStripping(t *testing.T) {
	// Stripping output keeps the whitespace around removed spans; only an
	// explicit Normalize call cleans it up.
	input := "const x = 10; // inline"

	stripped := StripJSComments(input)
	if stripped != "const x = 10; " {
		t.Fatalf("StripJSComments() = %q, want %q", stripped, "const x = 10; ")
	}

	if got := Normalize(stripped); got != "const x = 10;" {
		t.Errorf("Normalize() = %q, want %q", got, "const x = 10;")
	}
}
