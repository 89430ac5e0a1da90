package snapshot

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Histogram counts files per extension, remembering the order extensions were
// first encountered so equal counts render deterministically.
type Histogram struct {
	counts map[string]int
	order  []string
}

// NewHistogram creates an empty extension histogram.
func NewHistogram() *Histogram {
	return &Histogram{counts: make(map[string]int)}
}

// Add counts the extension of one file path. Extensionless files are counted
// under the empty extension.
func (h *Histogram) Add(path string) {
	ext := filepath.Ext(path)
	if _, seen := h.counts[ext]; !seen {
		h.order = append(h.order, ext)
	}
	h.counts[ext]++
}

// Render returns the histogram as a comma-separated "ext (count)" list,
// descending by count with ties in first-encounter order.
func (h *Histogram) Render() string {
	ordered := make([]string, len(h.order))
	copy(ordered, h.order)
	sort.SliceStable(ordered, func(i, j int) bool {
		return h.counts[ordered[i]] > h.counts[ordered[j]]
	})

	var builder strings.Builder
	for i, ext := range ordered {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(ext)
		builder.WriteString(" (")
		builder.WriteString(strconv.Itoa(h.counts[ext]))
		builder.WriteString(")")
	}
	return builder.String()
}
