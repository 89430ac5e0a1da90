package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
)

// Matcher determines whether a file should be excluded from a snapshot scan.
// Exclusion is opt-in: with no custom patterns and gitignore disabled, every
// file counts.
type Matcher struct {
	rootDir        string
	gitIgnore      gitignore.GitIgnore
	customPatterns []string
}

// MatcherOptions configures the exclusion matcher.
type MatcherOptions struct {
	// RootDir anchors relative-path matching and is where .gitignore is
	// looked up when UseGitignore is set.
	RootDir string
	// CustomPatterns are doublestar globs matched against the root-relative
	// path and the base name.
	CustomPatterns []string
	// UseGitignore loads RootDir/.gitignore rules when true.
	UseGitignore bool
}

// NewMatcher creates an exclusion matcher from the given options.
func NewMatcher(options MatcherOptions) *Matcher {
	matcher := &Matcher{
		rootDir:        options.RootDir,
		customPatterns: options.CustomPatterns,
	}
	if options.UseGitignore {
		matcher.gitIgnore = loadIgnoreFile(filepath.Join(options.RootDir, ".gitignore"), options.RootDir)
	}
	return matcher
}

// ShouldIgnore returns true if the given path is excluded from scanning.
// The path may be absolute or relative to the root directory.
func (m *Matcher) ShouldIgnore(absolutePath string) bool {
	relativePath, err := filepath.Rel(m.rootDir, absolutePath)
	if err != nil {
		relativePath = absolutePath
	}
	relativePath = filepath.ToSlash(relativePath)

	if m.matchesCustomPatterns(relativePath) {
		return true
	}

	if m.gitIgnore != nil {
		isDir := false
		if info, err := os.Stat(absolutePath); err == nil {
			isDir = info.IsDir()
		}
		// Relative() doesn't require the file to exist on disk.
		match := m.gitIgnore.Relative(relativePath, isDir)
		if match != nil && match.Ignore() {
			return true
		}
	}

	return false
}

// ShouldIgnoreDir returns true if a directory should be skipped entirely
// during traversal.
func (m *Matcher) ShouldIgnoreDir(absolutePath string) bool {
	return m.ShouldIgnore(absolutePath)
}

// matchesCustomPatterns checks if the path matches any user-provided exclude pattern.
func (m *Matcher) matchesCustomPatterns(relativePath string) bool {
	baseName := filepath.Base(relativePath)
	for _, pattern := range m.customPatterns {
		pattern = strings.ReplaceAll(pattern, "\\", "/")
		if matched, err := doublestar.Match(pattern, relativePath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, baseName); err == nil && matched {
			return true
		}
	}
	return false
}

// loadIgnoreFile reads an ignore file and creates a GitIgnore matcher from it.
// Uses the io.Reader form so the file handle is closed promptly.
func loadIgnoreFile(filePath string, baseDir string) gitignore.GitIgnore {
	f, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer f.Close()

	return gitignore.New(f, baseDir, nil)
}
