package verdir

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Pick prints the directory list to out and prompts on in for a 1-based
// selection. Non-numeric or out-of-range input re-prompts; if in is exhausted
// before a valid selection is made, Pick returns an error. An empty list
// returns "" with no prompting.
func Pick(dirs []string, in io.Reader, out io.Writer) (string, error) {
	if len(dirs) == 0 {
		return "", nil
	}

	fmt.Fprintln(out, "List of directories:")
	for i, dir := range dirs {
		fmt.Fprintf(out, "  Directory %d  -  %s\n", i+1, dir)
	}
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "Please select a directory (1 to %d): ", len(dirs))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("reading selection: %w", err)
			}
			return "", fmt.Errorf("input closed before a directory was selected")
		}
		i, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			continue
		}
		if i >= 1 && i <= len(dirs) {
			return dirs[i-1], nil
		}
	}
}
