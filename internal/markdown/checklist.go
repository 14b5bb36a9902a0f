package markdown

import (
	"regexp"
	"strings"
)

// The model is told to put each checklist item on its own "- " line, but it
// sometimes emits every item on a single line. Split on newlines first,
// then on bullet markers within each line.
var bulletRe = regexp.MustCompile(`\s*(?:-|\*)\s+`)

// SplitChecklist splits checklist markdown into discrete trimmed items.
// Order is preserved and duplicates are allowed.
func SplitChecklist(text string) []string {
	items := []string{}
	for _, line := range strings.Split(text, "\n") {
		for _, piece := range bulletRe.Split(line, -1) {
			piece = strings.TrimSpace(piece)
			if piece != "" {
				items = append(items, piece)
			}
		}
	}
	return items
}

// JoinChecklist re-joins items into canonical checklist markdown, one
// "- " line per item. SplitChecklist(JoinChecklist(items)) == items.
func JoinChecklist(items []string) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("- ")
		sb.WriteString(item)
	}
	return sb.String()
}
