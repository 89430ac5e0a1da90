package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lexandro/verscan/codefile"
	"github.com/lexandro/verscan/ignore"
)

// Summary holds the file statistics of a single version directory.
// Recomputed on every scan; never cached.
type Summary struct {
	AllFiles   int
	AllBytes   int64
	CodeFiles  int
	CodeBytes  int64
	Extensions *Histogram
}

// Scan enumerates every file under dir recursively, summing sizes, counting
// the code subset, and building the extension histogram. Files and
// directories excluded by matcher are skipped; entries that can't be read
// are skipped silently.
func Scan(dir string, codes *codefile.Set, matcher *ignore.Matcher) (*Summary, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	summary := &Summary{Extensions: NewHistogram()}

	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Skip entries that can't be read
		}
		if d.IsDir() {
			if path != dir && matcher.ShouldIgnoreDir(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if matcher.ShouldIgnore(path) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}

		summary.AllFiles++
		summary.AllBytes += info.Size()
		summary.Extensions.Add(path)

		if codes.IsCode(path) {
			summary.CodeFiles++
			summary.CodeBytes += info.Size()
		}
		return nil
	})

	return summary, nil
}
