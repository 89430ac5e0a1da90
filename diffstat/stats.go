package diffstat

// Stats holds aggregate change counters between two directory trees.
// Each counter is tracked twice: once over all changed files and once
// restricted to code files.
type Stats struct {
	Additions         int   // Lines added across all changed files
	Removals          int   // Lines removed across all changed files
	FilesChanged      int   // Number of changed files
	FilesChangedBytes int64 // Current on-disk size of all changed files

	CodeAdditions         int
	CodeRemovals          int
	CodeFilesChanged      int
	CodeFilesChangedBytes int64
}

// record updates the counters with one changed file. Binary entries arrive
// with zero additions and removals but still count as changed.
func (s *Stats) record(d FileDiff, isCode bool, size int64) {
	s.Additions += d.Additions
	s.Removals += d.Removals
	s.FilesChanged++
	s.FilesChangedBytes += size

	if isCode {
		s.CodeAdditions += d.Additions
		s.CodeRemovals += d.Removals
		s.CodeFilesChanged++
		s.CodeFilesChangedBytes += size
	}
}
