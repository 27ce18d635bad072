package changes

import (
	"fmt"
	"strings"
)

const (
	DefaultMaxDiffLines = 500

	diffOmittedPlaceholder = "Diff not included (set include_diff=true to see full diff)"
)

// Bound keeps the first maxLines lines of text. total counts the pieces of
// splitting on "\n", so a trailing newline contributes an empty last line.
func Bound(text string, maxLines int) (bounded string, truncated bool, total int) {
	if maxLines < 0 {
		maxLines = 0
	}
	lines := strings.Split(text, "\n")
	total = len(lines)
	if total <= maxLines {
		return text, false, total
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines[:maxLines], "\n"))
	fmt.Fprintf(&b, "\n\n... Output truncated. Showing %d of %d lines ...", maxLines, total)
	b.WriteString("\n... Use max_diff_lines parameter to see more ...")
	return b.String(), true, total
}
