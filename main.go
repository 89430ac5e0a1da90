package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lexandro/verscan/codefile"
	"github.com/lexandro/verscan/diffstat"
	"github.com/lexandro/verscan/ignore"
	"github.com/lexandro/verscan/verdir"
	"github.com/lexandro/verscan/watcher"
)

// repeatableFlag is a repeatable CLI flag collecting string values.
type repeatableFlag []string

func (r *repeatableFlag) String() string { return strings.Join(*r, ", ") }
func (r *repeatableFlag) Set(value string) error {
	*r = append(*r, value)
	return nil
}

func main() {
	// Parse CLI flags
	var rootDir string
	var pattern string
	var outputFile string
	var recursive bool
	var descending bool
	var pick bool
	var watch bool
	var useGitignore bool
	var logLevel string
	var logFile string
	var excludes repeatableFlag
	var codeExts repeatableFlag

	flag.StringVar(&rootDir, "root", "", "Directory containing the version snapshots (default: current working directory)")
	flag.StringVar(&pattern, "pattern", "go-ethereum-*", "Glob pattern for version directory names")
	flag.StringVar(&outputFile, "output", "verscan.csv", "Output CSV file path (overwritten each run)")
	flag.BoolVar(&recursive, "recursive", false, "Search for version directories recursively")
	flag.BoolVar(&descending, "descending", false, "Process versions newest-first instead of oldest-first")
	flag.BoolVar(&pick, "pick", false, "Interactively pick a single directory to report on")
	flag.BoolVar(&watch, "watch", false, "Keep running and regenerate the report when the root changes")
	flag.BoolVar(&useGitignore, "use-gitignore", false, "Honor .gitignore rules in the root directory")
	flag.Var(&excludes, "exclude", "Extra exclude pattern for snapshot scanning (repeatable)")
	flag.Var(&codeExts, "code-ext", "Extra code-file extension (repeatable)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	flag.StringVar(&logFile, "log-file", "", "Log file path (default: stderr)")
	flag.Parse()

	// Resolve root directory
	if rootDir == "" {
		var err error
		rootDir, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
			os.Exit(1)
		}
	}
	rootDir, _ = filepath.Abs(rootDir)

	logger := setupLogger(logLevel, logFile)

	logger.Info("starting verscan",
		"root", rootDir,
		"pattern", pattern,
		"output", outputFile,
		"recursive", recursive,
		"descending", descending,
	)

	cfg := reportConfig{
		discover: verdir.Options{
			Root:       rootDir,
			Pattern:    pattern,
			Recursive:  recursive,
			Descending: descending,
		},
		output: outputFile,
		codes:  codefile.NewSetWith(codeExts),
		matcher: ignore.NewMatcher(ignore.MatcherOptions{
			RootDir:        rootDir,
			CustomPatterns: excludes,
			UseGitignore:   useGitignore,
		}),
		differ: diffstat.GitDiffer{},
		logger: logger,
	}

	if pick {
		dirs, err := verdir.Discover(cfg.discover)
		if err != nil {
			logger.Error("directory discovery failed", "error", err)
			os.Exit(1)
		}
		// With no matches there is nothing to pick; fall through so the
		// batch path creates the (empty) output file as usual.
		if len(dirs) > 0 {
			selected, err := verdir.Pick(dirs, os.Stdin, os.Stdout)
			if err != nil {
				logger.Error("directory selection failed", "error", err)
				os.Exit(1)
			}
			cfg.picked = selected
		}
	}

	startTime := time.Now()
	if err := generateReport(cfg); err != nil {
		logger.Error("report generation failed", "error", err)
		os.Exit(1)
	}
	logger.Info("report complete", "output", outputFile, "duration", time.Since(startTime))

	if watch {
		runWatchLoop(cfg, rootDir, logFile)
	}
}

// runWatchLoop regenerates the report every time the snapshot root changes.
// It blocks until the process is interrupted. The output and log files are
// excluded from watching so a regeneration can't trigger the next one.
func runWatchLoop(cfg reportConfig, rootDir string, logFile string) {
	fileWatcher, err := watcher.NewWatcher(rootDir, cfg.matcher, []string{cfg.output, logFile}, cfg.logger)
	if err != nil {
		cfg.logger.Error("failed to start file watcher", "error", err)
		os.Exit(1)
	}
	defer fileWatcher.Close()
	go fileWatcher.Start()

	cfg.logger.Info("watching for changes", "root", rootDir)

	for range fileWatcher.Changes() {
		start := time.Now()
		if err := generateReport(cfg); err != nil {
			cfg.logger.Error("report regeneration failed", "error", err)
			continue
		}
		cfg.logger.Info("report regenerated", "output", cfg.output, "duration", time.Since(start))
	}
}

// setupLogger creates an slog.Logger writing to stderr or a file.
func setupLogger(level string, logFile string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var writer *os.File
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file %s: %v, falling back to stderr\n", logFile, err)
			writer = os.Stderr
		} else {
			writer = f
		}
	} else {
		writer = os.Stderr
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler)
}
