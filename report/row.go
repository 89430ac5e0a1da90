package report

import (
	"math"
	"strconv"

	"github.com/lexandro/verscan/diffstat"
)

// Row is one report record for a single version directory. The schema is
// fixed; Header and Fields must stay in the same order.
type Row struct {
	Version   string
	AllFiles  int
	AllBytes  int64
	CodeFiles int
	CodeBytes int64

	Diff diffstat.Stats

	RatioAllFilesChanged  float64
	RatioAllBytesChanged  float64
	RatioCodeFilesChanged float64
	RatioCodeBytesChanged float64

	Extensions string // rendered extension histogram
}

// Header returns the column names, including the literal "*" separator
// columns the report format carries between the section groups.
func Header() []string {
	return []string{
		"Version",
		"Num all files",
		"Size all files (B)",
		"Num code files",
		"Size code files (B)",
		"*",
		"All line additions",
		"All line removals",
		"All files changed",
		"Ratio all files changed",
		"All changed bytes",
		"Ratio all bytes changed",
		"*",
		"Code line additions",
		"Code line removals",
		"Code files changed",
		"Ratio code files changed",
		"Code changed bytes",
		"Ratio code bytes changed",
		"*",
		"File extension histogram",
	}
}

// Fields renders the row's values as strings in Header order.
func (r *Row) Fields() []string {
	return []string{
		r.Version,
		strconv.Itoa(r.AllFiles),
		strconv.FormatInt(r.AllBytes, 10),
		strconv.Itoa(r.CodeFiles),
		strconv.FormatInt(r.CodeBytes, 10),
		"*",
		strconv.Itoa(r.Diff.Additions),
		strconv.Itoa(r.Diff.Removals),
		strconv.Itoa(r.Diff.FilesChanged),
		formatRatio(r.RatioAllFilesChanged),
		strconv.FormatInt(r.Diff.FilesChangedBytes, 10),
		formatRatio(r.RatioAllBytesChanged),
		"*",
		strconv.Itoa(r.Diff.CodeAdditions),
		strconv.Itoa(r.Diff.CodeRemovals),
		strconv.Itoa(r.Diff.CodeFilesChanged),
		formatRatio(r.RatioCodeFilesChanged),
		strconv.FormatInt(r.Diff.CodeFilesChangedBytes, 10),
		formatRatio(r.RatioCodeBytesChanged),
		"*",
		r.Extensions,
	}
}

// Ratio divides num by den, returning NaN for a zero denominator so a
// degenerate directory never aborts the run.
func Ratio(num int64, den int64) float64 {
	if den == 0 {
		return math.NaN()
	}
	return float64(num) / float64(den)
}

func formatRatio(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
