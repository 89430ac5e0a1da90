package codefile

import (
	"path/filepath"
	"strings"
)

// DefaultExtensions is the extension set (without dot) that classifies a file
// as a code file. Matches are case-insensitive.
var DefaultExtensions = []string{"cpp", "h", "py", "c", "sh"}

// Set classifies file paths as code or non-code by extension.
// The zero value is unusable; create one with NewSet.
type Set struct {
	extensions map[string]bool
}

// NewSet creates a classifier for the default code extension set.
func NewSet() *Set {
	return NewSetWith(nil)
}

// NewSetWith creates a classifier covering the default extensions plus extra.
// Entries in extra may be given with or without the leading dot.
func NewSetWith(extra []string) *Set {
	s := &Set{extensions: make(map[string]bool)}
	for _, ext := range DefaultExtensions {
		s.extensions[ext] = true
	}
	for _, ext := range extra {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			s.extensions[ext] = true
		}
	}
	return s
}

// IsCode reports whether the file at path is a code file based on its extension.
func (s *Set) IsCode(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return false
	}
	return s.extensions[ext]
}
