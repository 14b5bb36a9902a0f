package markdown

import (
	"strings"
	"testing"
)

func TestRenderHeadings(t *testing.T) {
	out := Render("## Key Terms\n### Payment\n#### Late Fees")
	for _, want := range []string{"<h2>Key Terms</h2>", "<h3>Payment</h3>", "<h4>Late Fees</h4>"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got %q", want, out)
		}
	}
	if strings.Contains(out, "#") {
		t.Errorf("heading markers should not survive rendering: %q", out)
	}
}

func TestRenderSingleHashIsParagraph(t *testing.T) {
	// Only ##, ### and #### are headings in the subset.
	out := Render("# Not a heading")
	if !strings.Contains(out, "<p># Not a heading</p>") {
		t.Errorf("expected paragraph, got %q", out)
	}
}

func TestRenderGroupsContiguousBullets(t *testing.T) {
	out := Render("* first\n* second\n- third")
	if strings.Count(out, "<ul>") != 1 {
		t.Fatalf("expected one list, got %q", out)
	}
	if strings.Count(out, "<li>") != 3 {
		t.Errorf("expected three items, got %q", out)
	}
}

func TestRenderBlankLineSplitsLists(t *testing.T) {
	out := Render("* first\n\n* second")
	if strings.Count(out, "<ul>") != 2 {
		t.Errorf("blank line should end the list, got %q", out)
	}
}

func TestRenderBoldAndItalic(t *testing.T) {
	out := Render("This is **bold** and *italic* text")
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("expected bold span, got %q", out)
	}
	if !strings.Contains(out, "<em>italic</em>") {
		t.Errorf("expected italic span, got %q", out)
	}
}

func TestRenderBoldInsideHeading(t *testing.T) {
	out := Render("## The **Fine** Print")
	if !strings.Contains(out, "<h2>The <strong>Fine</strong> Print</h2>") {
		t.Errorf("expected inline formatting inside heading, got %q", out)
	}
}

func TestRenderUnbalancedMarkerIsLiteral(t *testing.T) {
	out := Render("a **dangling marker")
	if !strings.Contains(out, "**dangling marker") {
		t.Errorf("unbalanced marker should render literally, got %q", out)
	}
	if strings.Contains(out, "<strong>") {
		t.Errorf("no bold span expected, got %q", out)
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	out := Render("1 < 2 & <script>alert(1)</script>")
	if strings.Contains(out, "<script>") {
		t.Fatalf("raw html must be escaped, got %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("expected escaped entities, got %q", out)
	}
}

func TestRenderEmptyInput(t *testing.T) {
	if out := Render(""); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}
