package diffstat

import (
	"regexp"
	"strconv"
	"strings"
)

// FileDiff is one per-file entry parsed from numstat output.
type FileDiff struct {
	Additions int
	Removals  int
	Path      string // normalized current-tree-relative path
	Binary    bool
}

// numstatLineRe matches one numstat entry: additions, removals, path.
// The "-" sentinel marks a binary file.
var numstatLineRe = regexp.MustCompile(`^([0-9]+|-)\s+([0-9]+|-)\s+(.+)`)

// ParseNumstat parses raw numstat output into per-file entries.
// Lines that don't match the stat format (headers, blanks) are skipped.
func ParseNumstat(output string) []FileDiff {
	var diffs []FileDiff
	for _, line := range strings.Split(output, "\n") {
		match := numstatLineRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		var d FileDiff
		d.Binary = match[1] == "-" && match[2] == "-"
		if match[1] != "-" {
			d.Additions, _ = strconv.Atoi(match[1])
		}
		if match[2] != "-" {
			d.Removals, _ = strconv.Atoi(match[2])
		}
		d.Path = normalizePath(match[3])
		diffs = append(diffs, d)
	}
	return diffs
}

// normalizePath resolves the brace-expansion rename form
// "{prevDir => curDir}/rest/of/path" to the current-tree path
// "curDir/rest/of/path". Plain paths pass through untouched.
func normalizePath(path string) string {
	idx := strings.Index(path, "=>")
	if idx < 0 {
		return path
	}
	path = path[idx+len("=>"):]
	path = strings.ReplaceAll(path, "}", "")
	return strings.TrimSpace(path)
}
