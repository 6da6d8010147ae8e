package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

type FileCache struct {
	ProcessedFiles map[string]time.Time `json:"processed_files"`
}

const cacheFileName = ".stripcomments-cache.json"

// findGitRoot walks up the directory tree to locate the git repository root.
// The cache file lives at the repository level so cache behavior is the same
// no matter where in the repository the tool is invoked.
func findGitRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	for {
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		// Reached filesystem root without finding .git directory
		if parent == dir {
			return "", fmt.Errorf("not in a git repository")
		}
		dir = parent
	}
}

func getCachePath() (string, error) {
	gitRoot, err := findGitRoot()
	if err != nil {
		return "", fmt.Errorf("failed to find git repository root: %w", err)
	}

	return filepath.Join(gitRoot, cacheFileName), nil
}

// toRelativePath converts absolute paths to git-root-relative paths for cache
// storage. Relative paths keep the cache valid when the repository is moved
// or accessed from a different mount point.
func toRelativePath(absolutePath string) (string, error) {
	gitRoot, err := findGitRoot()
	if err != nil {
		return "", err
	}

	relPath, err := filepath.Rel(gitRoot, absolutePath)
	if err != nil {
		return "", fmt.Errorf("failed to make path relative: %w", err)
	}

	return relPath, nil
}

func toAbsolutePath(relativePath string) (string, error) {
	gitRoot, err := findGitRoot()
	if err != nil {
		return "", err
	}

	return filepath.Join(gitRoot, relativePath), nil
}

// isGitIgnored checks if a file is ignored by git using git check-ignore.
// This respects all .gitignore files in the repository hierarchy.
func isGitIgnored(filePath string) bool {
	cmd := exec.Command("git", "check-ignore", "-q", filePath)
	// check-ignore returns 0 if file is ignored, 1 if not ignored
	err := cmd.Run()
	return err == nil
}

func loadCache() (*FileCache, error) {
	cachePath, err := getCachePath()
	if err != nil {
		return nil, err
	}

	cache := &FileCache{
		ProcessedFiles: make(map[string]time.Time),
	}

	data, err := os.ReadFile(cachePath)
	if err != nil {
		// Missing cache file is not an error; initialize with empty cache
		if os.IsNotExist(err) {
			return cache, nil
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}

	return cache, nil
}

func (c *FileCache) save() error {
	cachePath, err := getCachePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(cachePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

// shouldProcess determines if a file needs processing by comparing
// modification times. Files are re-stripped only when modified after their
// last processing time, so repeated runs skip already-clean files.
func (c *FileCache) shouldProcess(filePath string) (bool, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return false, fmt.Errorf("failed to stat file: %w", err)
	}

	relPath, err := toRelativePath(filePath)
	if err != nil {
		return false, fmt.Errorf("failed to convert to relative path: %w", err)
	}

	lastProcessed, exists := c.ProcessedFiles[relPath]
	if !exists {
		return true, nil
	}

	// Process if file was modified after last processing
	return info.ModTime().After(lastProcessed), nil
}

// markProcessed records the file's current modification time, not the current
// time. The cache then reflects when the content last changed, so touching a
// file without modifying it does not force a re-strip.
func (c *FileCache) markProcessed(filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	relPath, err := toRelativePath(filePath)
	if err != nil {
		return fmt.Errorf("failed to convert to relative path: %w", err)
	}

	c.ProcessedFiles[relPath] = info.ModTime()
	return nil
}

// getStagedFiles retrieves the list of staged files from git.
// These are files that have been added to the git staging area via git add.
func getStagedFiles() ([]string, error) {
	cmd := exec.Command("git", "diff", "--staged", "--name-only")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to get staged files: %w", err)
	}

	// Split by newlines and filter out empty strings
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	files := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			files = append(files, line)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no staged files found")
	}

	return files, nil
}
