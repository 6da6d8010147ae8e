package stripper

import (
	"testing"
)

func TestStripVueComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			// The JS pass extracts the script string before the HTML pass
			// runs, so the HTML-comment-like sequence inside it survives
			// while the real template comment is removed.
			name: "single file component",
			input: "<template>\n" +
				"  <!-- layout note -->\n" +
				"  <div>{{ msg }}</div>\n" +
				"</template>\n" +
				"\n" +
				"<script>\n" +
				"const s = \"<!-- not a comment -->\"; // trailing\n" +
				"export default { data: () => ({ msg: s }) };\n" +
				"</script>\n",
			expected: "<template>\n" +
				"  \n" +
				"  <div>{{ msg }}</div>\n" +
				"</template>\n" +
				"\n" +
				"<script>\n" +
				"const s = \"<!-- not a comment -->\"; \n" +
				"export default { data: () => ({ msg: s }) };\n" +
				"</script>\n",
		},
		{
			name:     "script block comment",
			input:    "<script>\n/* setup */\nlet n = 0;\n</script>",
			expected: "<script>\n\nlet n = 0;\n</script>",
		},
		{
			name:     "template comment only",
			input:    "<template><!-- x --><p>y</p></template>",
			expected: "<template><p>y</p></template>",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripVueComments(tt.input)

			if result != tt.expected {
				t.Errorf("StripVueComments() failed\nInput:\n%s\n\nExpected:\n%q\n\nGot:\n%q", tt.input, tt.expected, result)
			}
		})
	}
}
