package verdir

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// versionKeyRe captures the first three maximal digit runs in a directory name.
var versionKeyRe = regexp.MustCompile(`[^0-9]*([0-9]+)[^0-9]*([0-9]+)[^0-9]*([0-9]+)`)

// SortKey derives an integer ordering key from a version directory name.
// The first three digit runs are treated as major/minor/patch and combined as
// 1_000_000*major + 1_000*minor + patch. Names with fewer than three digit
// runs yield 0, so malformed names sort first.
func SortKey(name string) int {
	match := versionKeyRe.FindStringSubmatch(name)
	if match == nil {
		return 0
	}

	key := 0
	for _, group := range match[1:] {
		n, err := strconv.Atoi(group)
		if err != nil {
			// Digit run too long for int; treat the whole name as unversioned.
			return 0
		}
		key = key*1000 + n
	}
	return key
}

// sortByVersion stable-sorts directory paths ascending by the SortKey of
// their base name. Equal keys keep their encounter order.
func sortByVersion(dirs []string) {
	sort.SliceStable(dirs, func(i, j int) bool {
		return SortKey(filepath.Base(dirs[i])) < SortKey(filepath.Base(dirs[j]))
	})
}
