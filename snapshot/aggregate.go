package snapshot

import (
	"log/slog"

	"github.com/lexandro/verscan/codefile"
	"github.com/lexandro/verscan/diffstat"
	"github.com/lexandro/verscan/ignore"
	"github.com/lexandro/verscan/report"
)

// Aggregator builds one report row per version directory by combining the
// directory scan with the diff against its predecessor.
type Aggregator struct {
	Differ  diffstat.TreeDiffer
	Codes   *codefile.Set
	Matcher *ignore.Matcher
	Logger  *slog.Logger
}

// Aggregate scans dir and diffs it against prevDir (empty for the first
// version in sequence). A differ failure is recovered locally: the row's
// diff counters are zero-filled and the run continues.
func (a *Aggregator) Aggregate(dir string, prevDir string) (*report.Row, error) {
	summary, err := Scan(dir, a.Codes, a.Matcher)
	if err != nil {
		return nil, err
	}

	diff, err := diffstat.Compare(prevDir, dir, a.Differ, a.Codes)
	if err != nil {
		a.Logger.Warn("diff failed, zero-filling change stats", "dir", dir, "prev", prevDir, "error", err)
		diff = diffstat.Stats{}
	}

	return &report.Row{
		Version:   dir,
		AllFiles:  summary.AllFiles,
		AllBytes:  summary.AllBytes,
		CodeFiles: summary.CodeFiles,
		CodeBytes: summary.CodeBytes,

		Diff: diff,

		RatioAllFilesChanged:  report.Ratio(int64(diff.FilesChanged), int64(summary.AllFiles)),
		RatioAllBytesChanged:  report.Ratio(diff.FilesChangedBytes, summary.AllBytes),
		RatioCodeFilesChanged: report.Ratio(int64(diff.CodeFilesChanged), int64(summary.CodeFiles)),
		RatioCodeBytesChanged: report.Ratio(diff.CodeFilesChangedBytes, summary.CodeBytes),

		Extensions: summary.Extensions.Render(),
	}, nil
}
