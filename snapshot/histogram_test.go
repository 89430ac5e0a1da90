package snapshot

import "testing"

func Test_Histogram_DescendingByCount(t *testing.T) {
	h := NewHistogram()
	for _, path := range []string{"a.py", "b.py", "c.h"} {
		h.Add(path)
	}

	if got := h.Render(); got != ".py (2), .h (1)" {
		t.Errorf(`expected ".py (2), .h (1)", got %q`, got)
	}
}

func Test_Histogram_TiesKeepFirstSeenOrder(t *testing.T) {
	h := NewHistogram()
	for _, path := range []string{"z.md", "a.go", "b.md", "c.go"} {
		h.Add(path)
	}

	// Both extensions count 2; .md was seen first.
	if got := h.Render(); got != ".md (2), .go (2)" {
		t.Errorf(`expected ".md (2), .go (2)", got %q`, got)
	}
}

func Test_Histogram_ExtensionlessFiles(t *testing.T) {
	h := NewHistogram()
	h.Add("Makefile")
	h.Add("LICENSE")

	if got := h.Render(); got != " (2)" {
		t.Errorf(`expected " (2)" for extensionless files, got %q`, got)
	}
}

func Test_Histogram_Empty(t *testing.T) {
	if got := NewHistogram().Render(); got != "" {
		t.Errorf("expected empty render, got %q", got)
	}
}
