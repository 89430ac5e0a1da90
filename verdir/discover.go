package verdir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options configures version-directory discovery.
type Options struct {
	// Root is the directory whose children are scanned.
	Root string
	// Pattern is a doublestar glob matched against the directory name, or
	// against the root-relative path when Recursive is set.
	Pattern string
	// Recursive walks the whole tree under Root instead of only its
	// immediate children.
	Recursive bool
	// Descending reverses the final ascending version order.
	Descending bool
}

// Discover returns the version directories under opts.Root whose names match
// opts.Pattern, deduplicated and ordered ascending by version sort key
// (descending when opts.Descending is set). An empty result is not an error.
func Discover(opts Options) ([]string, error) {
	if opts.Pattern == "" {
		return nil, fmt.Errorf("empty directory pattern")
	}
	pattern := strings.ReplaceAll(opts.Pattern, "\\", "/")
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid directory pattern: %s", opts.Pattern)
	}

	root := opts.Root
	if root == "" {
		root = "."
	}

	var dirs []string
	seen := make(map[string]bool)

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			dirs = append(dirs, path)
		}
	}

	if opts.Recursive {
		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return nil // Skip entries that can't be read
			}
			if !d.IsDir() || path == root {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return nil
			}
			rel = filepath.ToSlash(rel)
			if matched, _ := doublestar.Match(pattern, rel); matched {
				add(filepath.Join(root, rel))
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", root, err)
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", root, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if matched, _ := doublestar.Match(pattern, entry.Name()); matched {
				add(filepath.Join(root, entry.Name()))
			}
		}
	}

	sortByVersion(dirs)

	if opts.Descending {
		for i, j := 0, len(dirs)-1; i < j; i, j = i+1, j-1 {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		}
	}

	return dirs, nil
}
