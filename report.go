package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lexandro/verscan/codefile"
	"github.com/lexandro/verscan/diffstat"
	"github.com/lexandro/verscan/ignore"
	"github.com/lexandro/verscan/report"
	"github.com/lexandro/verscan/snapshot"
	"github.com/lexandro/verscan/verdir"
)

// reportConfig carries everything one report generation pass needs.
type reportConfig struct {
	discover verdir.Options
	picked   string // non-empty restricts the run to one selected directory
	output   string
	codes    *codefile.Set
	matcher  *ignore.Matcher
	differ   diffstat.TreeDiffer
	logger   *slog.Logger
}

// generateReport discovers the version directories and writes one CSV row per
// directory, each diffed against its immediate predecessor in sort order.
// Directories are processed strictly sequentially because each row depends on
// the identity of the previous one.
func generateReport(cfg reportConfig) error {
	var dirs []string
	if cfg.picked != "" {
		dirs = []string{cfg.picked}
	} else {
		var err error
		dirs, err = verdir.Discover(cfg.discover)
		if err != nil {
			return fmt.Errorf("discovering version directories: %w", err)
		}
	}

	if len(dirs) == 0 {
		cfg.logger.Info("no matching directories", "pattern", cfg.discover.Pattern)
		fmt.Printf("No directories were found that match %q\n", cfg.discover.Pattern)
	}

	outFile, err := os.Create(cfg.output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", cfg.output, err)
	}
	defer outFile.Close()

	writer := report.NewWriter(outFile)
	aggregator := &snapshot.Aggregator{
		Differ:  cfg.differ,
		Codes:   cfg.codes,
		Matcher: cfg.matcher,
		Logger:  cfg.logger,
	}

	prevDir := ""
	for _, dir := range dirs {
		row, err := aggregator.Aggregate(dir, prevDir)
		if err != nil {
			// One unreadable directory shouldn't lose the rest of the report.
			cfg.logger.Warn("skipping directory", "dir", dir, "error", err)
			prevDir = dir
			continue
		}
		// Label rows with the root-relative directory name.
		if rel, err := filepath.Rel(cfg.discover.Root, dir); err == nil {
			row.Version = rel
		}
		if err := writer.WriteRow(row); err != nil {
			return err
		}
		cfg.logger.Info("processed directory",
			"dir", dir,
			"files", row.AllFiles,
			"codeFiles", row.CodeFiles,
			"filesChanged", row.Diff.FilesChanged,
		)
		prevDir = dir
	}

	fmt.Printf("Successfully wrote %q.\n", cfg.output)
	return nil
}
