package stripper

import (
	"sync"
	"testing"
)

func TestStripCommentsByFileType(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		input    string
		expected string
	}{
		{
			name:     "python file",
			path:     "app.py",
			input:    "x = 1 # gone",
			expected: "x = 1 ",
		},
		{
			name:     "typescript file",
			path:     "src/app.ts",
			input:    "let x = 1; // gone",
			expected: "let x = 1; ",
		},
		{
			name:     "vue file",
			path:     "App.vue",
			input:    "<template><!-- x --><p>y</p></template>",
			expected: "<template><p>y</p></template>",
		},
		{
			name:     "css file",
			path:     "style.css",
			input:    "a { /* gone */ color: red; }",
			expected: "a {  color: red; }",
		},
		{
			name:     "extension is case insensitive",
			path:     "APP.PY",
			input:    "x = 1 # gone",
			expected: "x = 1 ",
		},
		{
			// Unknown extensions fall back to the C-style pipeline: // is a
			// comment there but # is not.
			name:     "unknown extension falls back to c-style",
			path:     "notes.xyz",
			input:    "a(); // gone\n# kept",
			expected: "a(); \n# kept",
		},
		{
			name:     "no extension falls back to c-style",
			path:     "Makefile",
			input:    "all: // gone",
			expected: "all: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripCommentsByFileType(tt.path, tt.input)

			if result != tt.expected {
				t.Errorf("StripCommentsByFileType(%q) = %q, want %q", tt.path, result, tt.expected)
			}
		})
	}
}

func TestDispatchCacheConcurrentReaders(t *testing.T) {
	// First-time resolution may race; after that, concurrent lookups of
	// the same extension must be safe and keep returning the same result.
	const workers = 16

	var wg sync.WaitGroup
	results := make([]string, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			results[n] = StripCommentsByFileType("worker.py", "x = 1 # gone")
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if r != "x = 1 " {
			t.Errorf("worker %d got %q, want %q", i, r, "x = 1 ")
		}
	}
}

func TestSupportedExtension(t *testing.T) {
	supported := []string{".py", "py", ".ts", ".vue", ".rb", ".php", ".java", ".SCSS"}
	for _, ext := range supported {
		if !SupportedExtension(ext) {
			t.Errorf("SupportedExtension(%q) = false, want true", ext)
		}
	}

	unsupported := []string{".xyz", "", ".exe", "txt"}
	for _, ext := range unsupported {
		if SupportedExtension(ext) {
			t.Errorf("SupportedExtension(%q) = true, want false", ext)
		}
	}
}

func TestSupportedLanguages(t *testing.T) {
	languages := SupportedLanguages()
	if len(languages) == 0 {
		t.Fatal("SupportedLanguages() returned no languages")
	}

	seen := make(map[string]bool)
	for _, lang := range languages {
		seen[lang] = true
	}
	for _, want := range []string{"javascript", "python", "html", "css", "vue", "ruby", "php"} {
		if !seen[want] {
			t.Errorf("SupportedLanguages() missing %q", want)
		}
	}
}
