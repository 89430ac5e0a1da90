package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lexandro/verscan/codefile"
	"github.com/lexandro/verscan/diffstat"
	"github.com/lexandro/verscan/ignore"
	"github.com/lexandro/verscan/verdir"
)

// fakeDiffer returns canned per-file entries for every comparison.
type fakeDiffer struct {
	diffs []diffstat.FileDiff
	calls [][2]string
}

func (f *fakeDiffer) Diff(prevDir string, curDir string) ([]diffstat.FileDiff, error) {
	f.calls = append(f.calls, [2]string{prevDir, curDir})
	return f.diffs, nil
}

func testConfig(t *testing.T, root string, differ diffstat.TreeDiffer) reportConfig {
	t.Helper()
	return reportConfig{
		discover: verdir.Options{Root: root, Pattern: "proj-*"},
		output:   filepath.Join(t.TempDir(), "out.csv"),
		codes:    codefile.NewSet(),
		matcher:  ignore.NewMatcher(ignore.MatcherOptions{RootDir: root}),
		differ:   differ,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func writeSnapshot(t *testing.T, root string, dir string, name string, size int) string {
	t.Helper()
	path := filepath.Join(root, dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func Test_generateReport_EndToEnd(t *testing.T) {
	root := t.TempDir()
	writeSnapshot(t, root, "proj-1.0.0", "main.c", 100)
	changed := writeSnapshot(t, root, "proj-1.0.1", "main.c", 120)

	differ := &fakeDiffer{diffs: []diffstat.FileDiff{{Additions: 5, Removals: 0, Path: changed}}}
	cfg := testConfig(t, root, differ)

	if err := generateReport(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(cfg.output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines:\n%s", len(lines), data)
	}

	// First directory has no predecessor: zero diff counters.
	if !strings.Contains(lines[1], `"proj-1.0.0"`) {
		t.Errorf("expected oldest version first, got: %s", lines[1])
	}

	// Second row carries the fake diff: 5 additions, 1 file changed,
	// 120 changed bytes, change ratio 1.
	row2 := lines[2]
	for _, field := range []string{`"5",`, `"120",`, `"1",`, `".c (1)",`} {
		if !strings.Contains(row2, field) {
			t.Errorf("expected field %s in row 2, got: %s", field, row2)
		}
	}

	// The differ runs once, for the second directory against the first.
	if len(differ.calls) != 1 {
		t.Fatalf("expected 1 differ invocation, got %d", len(differ.calls))
	}
	if filepath.Base(differ.calls[0][0]) != "proj-1.0.0" || filepath.Base(differ.calls[0][1]) != "proj-1.0.1" {
		t.Errorf("expected diff of consecutive versions, got %v", differ.calls[0])
	}
}

func Test_generateReport_NoMatchesWritesNoHeader(t *testing.T) {
	root := t.TempDir()
	cfg := testConfig(t, root, &fakeDiffer{})

	if err := generateReport(cfg); err != nil {
		t.Fatalf("expected success with no matches, got: %v", err)
	}

	data, err := os.ReadFile(cfg.output)
	if err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty output with no matches, got:\n%s", data)
	}
}

func Test_generateReport_PickedDirectoryOnly(t *testing.T) {
	root := t.TempDir()
	writeSnapshot(t, root, "proj-1.0.0", "main.c", 100)
	writeSnapshot(t, root, "proj-1.0.1", "main.c", 120)

	differ := &fakeDiffer{}
	cfg := testConfig(t, root, differ)
	cfg.picked = filepath.Join(root, "proj-1.0.1")

	if err := generateReport(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := os.ReadFile(cfg.output)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "proj-1.0.1") {
		t.Errorf("expected only the picked directory, got: %s", lines[1])
	}
	if len(differ.calls) != 0 {
		t.Error("expected no differ invocation for a single picked directory")
	}
}

func Test_generateReport_UnreadableDirectorySkipped(t *testing.T) {
	root := t.TempDir()
	writeSnapshot(t, root, "proj-1.0.0", "main.c", 100)

	cfg := testConfig(t, root, &fakeDiffer{})
	// Restrict to a directory that doesn't exist.
	cfg.picked = filepath.Join(root, "proj-9.9.9")

	if err := generateReport(cfg); err != nil {
		t.Fatalf("expected local recovery, got error: %v", err)
	}
	data, _ := os.ReadFile(cfg.output)
	if len(data) != 0 {
		t.Errorf("expected no rows for the skipped directory, got:\n%s", data)
	}
}
