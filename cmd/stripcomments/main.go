package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/yhzion/comment-stripper-mcp/stripper"
)

type Config struct {
	Files        []string
	BatchSize    int
	ForceProcess bool
	CacheOnly    bool
	Normalize    bool
	Stdout       bool
	Clipboard    bool
}

// ErrUnsupportedFileType is returned when a file type is not supported
type ErrUnsupportedFileType struct {
	Extension string
}

func (e *ErrUnsupportedFileType) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Extension)
}

func main() {
	batchSize := flag.Int("batch-size", 24, "Number of files to strip in parallel per batch")
	forceProcess := flag.Bool("force", false, "Force reprocessing of all files, ignoring cache")
	cacheOnly := flag.Bool("cache-only", false, "Mark files as cached without processing (useful for initialization)")
	staged := flag.Bool("staged", false, "Process only staged files from git")
	normalize := flag.Bool("normalize", false, "Trim trailing whitespace and collapse blank lines after stripping")
	stdout := flag.Bool("stdout", false, "Print the stripped result to stdout instead of rewriting the file (single file only)")
	copyOut := flag.Bool("copy", false, "With -stdout, also copy the result to the system clipboard")

	flag.Parse()

	var files []string
	var err error

	if *staged {
		// Get staged files from git when -staged flag is set
		files, err = getStagedFiles()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Found %d staged file(s)\n", len(files))
	} else {
		// Use command-line arguments when -staged flag is not set
		files = flag.Args()
		if len(files) == 0 {
			fmt.Fprintln(os.Stderr, "Error: No files provided. Use -staged flag or provide file paths as arguments")
			flag.Usage()
			os.Exit(1)
		}
	}

	if *stdout && len(files) != 1 {
		fmt.Fprintln(os.Stderr, "Error: -stdout works with exactly one file")
		os.Exit(1)
	}

	// Convert all input paths to absolute paths upfront to ensure consistent
	// cache key generation and avoid ambiguity between relative path interpretations
	absoluteFiles := make([]string, 0, len(files))
	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to resolve absolute path for %s: %v\n", file, err)
			os.Exit(1)
		}
		absoluteFiles = append(absoluteFiles, absPath)
	}

	config := Config{
		Files:        absoluteFiles,
		BatchSize:    *batchSize,
		ForceProcess: *forceProcess,
		CacheOnly:    *cacheOnly,
		Normalize:    *normalize,
		Stdout:       *stdout,
		Clipboard:    *copyOut,
	}

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(config Config) error {
	if config.Stdout {
		return runStdout(config)
	}

	cache, err := loadCache()
	if err != nil {
		return fmt.Errorf("failed to load cache: %w", err)
	}

	// Cache-only mode allows initializing the cache without touching file
	// contents, useful for marking already-clean files as processed
	if config.CacheOnly {
		fmt.Println("Cache-only mode: marking files as cached without processing")
		cachedCount := 0

		for _, file := range config.Files {
			// Skip gitignored files even in cache-only mode
			if isGitIgnored(file) {
				fmt.Printf("Skipping (gitignored): %s\n", file)
				continue
			}

			if err := cache.markProcessed(file); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to mark %s as cached: %v\n", file, err)
				continue
			}
			fmt.Printf("Cached: %s\n", file)
			cachedCount++
		}

		if cachedCount == 0 {
			return fmt.Errorf("no files were successfully cached")
		}

		if err := cache.save(); err != nil {
			return fmt.Errorf("failed to save cache: %w", err)
		}

		fmt.Printf("\nMarked %d files as cached\n", cachedCount)
		return nil
	}

	// Filter before stripping so skipped files never show up in batch output
	pendingFiles := make([]string, 0, len(config.Files))
	skippedFiles := 0

	for _, file := range config.Files {
		// Skip gitignored files
		if isGitIgnored(file) {
			fmt.Printf("Skipping (gitignored): %s\n", file)
			skippedFiles++
			continue
		}

		if !stripper.SupportedExtension(filepath.Ext(file)) {
			fmt.Printf("Skipping (unsupported): %s\n", file)
			skippedFiles++
			continue
		}

		shouldProcess := config.ForceProcess
		if !shouldProcess {
			var err error
			shouldProcess, err = cache.shouldProcess(file)
			if err != nil {
				// On cache check failure, err on the side of processing to ensure correctness
				fmt.Fprintf(os.Stderr, "Warning: failed to check cache for %s: %v\n", file, err)
				shouldProcess = true
			}
		}

		if !shouldProcess {
			fmt.Printf("Skipping (unchanged): %s\n", file)
			skippedFiles++
			continue
		}

		pendingFiles = append(pendingFiles, file)
	}

	if len(pendingFiles) == 0 {
		if skippedFiles > 0 {
			fmt.Printf("\nAll %d files are up to date (no changes needed)\n", skippedFiles)
			return nil
		}
		return fmt.Errorf("no files were successfully processed")
	}

	fmt.Printf("\nStripping %d files in batches of %d...\n\n", len(pendingFiles), config.BatchSize)

	return processBatches(pendingFiles, config, cache)
}

// runStdout strips a single file without touching it or the cache,
// printing the result and optionally placing it on the clipboard.
func runStdout(config Config) error {
	file := config.Files[0]

	content, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	cleaned := stripper.StripCommentsByFileType(file, string(content))
	if config.Normalize {
		cleaned = stripper.Normalize(cleaned)
	}

	fmt.Print(cleaned)

	if config.Clipboard {
		if err := clipboard.WriteAll(cleaned); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stderr, "[copied output to clipboard]")
	}

	return nil
}

func processFile(inputPath string, normalize bool) error {
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	ext := filepath.Ext(inputPath)
	if !stripper.SupportedExtension(ext) {
		// Return special error type to indicate unsupported file should be skipped
		return &ErrUnsupportedFileType{Extension: ext}
	}

	cleaned := stripper.StripCommentsByFileType(inputPath, string(content))
	if normalize {
		cleaned = stripper.Normalize(cleaned)
	}

	if err := os.WriteFile(inputPath, []byte(cleaned), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func processBatches(files []string, config Config, cache *FileCache) error {
	for i := 0; i < len(files); i += config.BatchSize {
		end := min(i+config.BatchSize, len(files))
		batch := files[i:end]

		fmt.Printf("Stripping batch %d/%d (%d files)...\n", (i/config.BatchSize)+1, (len(files)+config.BatchSize-1)/config.BatchSize, len(batch))

		if err := processBatch(batch, config.Normalize); err != nil {
			return fmt.Errorf("batch processing failed: %w", err)
		}

		// Cache updates happen after each successful batch to prevent data loss
		// if processing is interrupted partway through
		for _, file := range batch {
			if err := cache.markProcessed(file); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to update cache for %s: %v\n", file, err)
			}
		}

		// Cache save failures are warnings rather than errors because processing
		// succeeded; worst case is redundant work on next run
		if err := cache.save(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save cache: %v\n", err)
		}
	}

	return nil
}

// processBatch strips all files of a batch in parallel and waits for the
// whole batch before returning, keeping the number of in-flight file
// rewrites bounded by the batch size.
func processBatch(files []string, normalize bool) error {
	var wg sync.WaitGroup
	errChan := make(chan error, len(files))

	for _, file := range files {
		wg.Add(1)
		// File parameter is passed to goroutine to avoid closure capture issues
		// where all goroutines would reference the final loop value
		go func(f string) {
			defer wg.Done()
			if err := processFile(f, normalize); err != nil {
				var unsupportedErr *ErrUnsupportedFileType
				if errors.As(err, &unsupportedErr) {
					fmt.Printf("Skipping (unsupported): %s\n", f)
					return
				}
				errChan <- fmt.Errorf("%s: %w", f, err)
				return
			}
			fmt.Printf("Stripped comments from: %s\n", f)
		}(file)
	}

	wg.Wait()
	close(errChan)

	// Collect all errors rather than failing fast to provide complete feedback
	// on which files failed in the batch
	var errs []string
	for err := range errChan {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors occurred:\n  %s", strings.Join(errs, "\n  "))
	}

	return nil
}
