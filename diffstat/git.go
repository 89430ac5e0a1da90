package diffstat

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/lexandro/verscan/codefile"
)

// TreeDiffer compares two directory trees and reports per-file changes.
// Implementations may shell out to external tools; tests use a fake.
type TreeDiffer interface {
	Diff(prevDir string, curDir string) ([]FileDiff, error)
}

// GitDiffer diffs two trees with git. Neither tree needs to be under version
// control; the call blocks until git exits.
type GitDiffer struct{}

// Diff runs git diff between the two trees and parses its numstat output.
func (GitDiffer) Diff(prevDir string, curDir string) ([]FileDiff, error) {
	cmd := exec.Command("git", "--no-pager", "diff", "--no-index", "--minimal", "--numstat", prevDir, curDir)
	output, err := cmd.Output()
	if err != nil {
		// diff --no-index exits 1 when the trees differ; that's the
		// expected outcome, not a failure.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
			return nil, fmt.Errorf("running git diff %s %s: %w", prevDir, curDir, err)
		}
	}
	return ParseNumstat(string(output)), nil
}

// Compare aggregates the per-file diff between prevDir and curDir into Stats.
// An empty prevDir is the base case for the first version in sequence and
// returns zero Stats without invoking the differ.
func Compare(prevDir string, curDir string, differ TreeDiffer, codes *codefile.Set) (Stats, error) {
	var stats Stats
	if prevDir == "" {
		return stats, nil
	}

	diffs, err := differ.Diff(prevDir, curDir)
	if err != nil {
		return Stats{}, err
	}

	for _, d := range diffs {
		stats.record(d, codes.IsCode(d.Path), fileSize(d.Path))
	}
	return stats, nil
}

// fileSize returns the on-disk size of path, or 0 when the path is absent or
// the /dev/null placeholder git reports for deleted files. Git emits the
// literal "/dev/null" in numstat output on every platform.
func fileSize(path string) int64 {
	if path == "/dev/null" {
		return 0
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
