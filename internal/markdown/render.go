// Package markdown implements the constrained markdown subset the model is
// prompted to emit: headings 2-4, bullet lists, bold and italic spans, and
// plain paragraphs. It is a presentation utility, not a CommonMark engine;
// anything outside the subset renders as a paragraph.
package markdown

import (
	"html"
	"strings"
)

// Render converts subset-markdown text into HTML. Contiguous bullet lines
// are grouped into a single list; a blank line or any other element ends
// the current grouping.
func Render(text string) string {
	if text == "" {
		return ""
	}

	var sb strings.Builder
	var listItems []string

	flushList := func() {
		if len(listItems) == 0 {
			return
		}
		sb.WriteString("<ul>")
		for _, item := range listItems {
			sb.WriteString("<li>")
			sb.WriteString(renderInline(item))
			sb.WriteString("</li>")
		}
		sb.WriteString("</ul>\n")
		listItems = nil
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			flushList()

		case strings.HasPrefix(trimmed, "#### "):
			flushList()
			sb.WriteString("<h4>" + renderInline(trimmed[5:]) + "</h4>\n")

		case strings.HasPrefix(trimmed, "### "):
			flushList()
			sb.WriteString("<h3>" + renderInline(trimmed[4:]) + "</h3>\n")

		case strings.HasPrefix(trimmed, "## "):
			flushList()
			sb.WriteString("<h2>" + renderInline(trimmed[3:]) + "</h2>\n")

		case strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "- "):
			listItems = append(listItems, trimmed[2:])

		default:
			flushList()
			sb.WriteString("<p>" + renderInline(trimmed) + "</p>\n")
		}
	}
	flushList()

	return sb.String()
}

// renderInline handles **bold** first, then *italic* within the remaining
// spans. An unbalanced trailing marker is emitted literally.
func renderInline(text string) string {
	var sb strings.Builder
	parts := strings.Split(text, "**")
	for i, part := range parts {
		switch {
		case i%2 == 0:
			sb.WriteString(renderItalic(part))
		case i == len(parts)-1 && len(parts)%2 == 0:
			sb.WriteString("**" + renderItalic(part))
		default:
			sb.WriteString("<strong>" + renderItalic(part) + "</strong>")
		}
	}
	return sb.String()
}

func renderItalic(text string) string {
	var sb strings.Builder
	parts := strings.Split(text, "*")
	for i, part := range parts {
		switch {
		case i%2 == 0:
			sb.WriteString(html.EscapeString(part))
		case i == len(parts)-1 && len(parts)%2 == 0:
			sb.WriteString("*" + html.EscapeString(part))
		default:
			sb.WriteString("<em>" + html.EscapeString(part) + "</em>")
		}
	}
	return sb.String()
}
