package stripper

import (
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// pipeline is a resolved stripping function for one language family.
type pipeline func(string) string

// extensionCache memoizes extension -> pipeline resolution. The cache is
// used for its safe concurrent access; its capacity is far above the
// extension population, so entries are never actually evicted. Two
// callers racing on a cold extension redundantly resolve the same
// idempotent pipeline, which is harmless.
var extensionCache, _ = lru.New[string, pipeline](256)

// pipelineForPath resolves the pipeline for a file path by its
// extension. Unknown extensions resolve to the C-style pipeline rather
// than failing.
func pipelineForPath(path string) pipeline {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if p, ok := extensionCache.Get(ext); ok {
		return p
	}
	p := resolveExtension(ext)
	extensionCache.Add(ext, p)
	return p
}

func resolveExtension(ext string) pipeline {
	switch ext {
	case "js", "jsx", "ts", "tsx", "mjs", "cjs":
		return StripJSComments
	case "vue":
		return StripVueComments
	case "html", "htm", "xhtml":
		return StripHTMLComments
	case "css", "scss", "less":
		return StripCSSComments
	case "py", "pyw":
		return StripPythonComments
	case "rb", "rake":
		return StripRubyComments
	case "php":
		return StripPHPComments
	case "java", "c", "h", "cpp", "hpp", "cc", "cxx", "cs", "go", "rs", "swift", "kt":
		return StripCStyleComments
	default:
		return StripCStyleComments
	}
}

// pipelineForLanguage resolves an explicit language tag. Empty and
// unrecognized tags select the C-style pipeline.
func pipelineForLanguage(language string) pipeline {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "javascript", "js", "typescript", "ts", "jsx", "tsx":
		return StripJSComments
	case "vue":
		return StripVueComments
	case "html":
		return StripHTMLComments
	case "css", "scss", "less":
		return StripCSSComments
	case "python", "py":
		return StripPythonComments
	case "ruby", "rb":
		return StripRubyComments
	case "php":
		return StripPHPComments
	default:
		return StripCStyleComments
	}
}

// SupportedLanguages lists the language tags with a dedicated pipeline.
func SupportedLanguages() []string {
	return []string{
		"javascript",
		"typescript",
		"vue",
		"html",
		"css",
		"python",
		"c-style",
		"ruby",
		"php",
	}
}

// SupportedExtension reports whether files with the given extension
// (with or without the leading dot) have a dedicated pipeline. Callers
// that must refuse unknown files, like an in-place CLI, check this
// instead of relying on the dispatcher's default.
func SupportedExtension(ext string) bool {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "js", "jsx", "ts", "tsx", "mjs", "cjs",
		"vue", "html", "htm", "xhtml",
		"css", "scss", "less",
		"py", "pyw", "rb", "rake", "php",
		"java", "c", "h", "cpp", "hpp", "cc", "cxx", "cs", "go", "rs", "swift", "kt":
		return true
	}
	return false
}
