package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/dgallion1/clausebeacon/internal/parser"
)

func TestExtractTextPlainTextStaysLocal(t *testing.T) {
	gw := newMockGateway()
	text, err := testService(gw).ExtractText(context.Background(), "text/plain", []byte("Clause 1.\n\nClause 2."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Clause 1.\n\nClause 2." {
		t.Errorf("unexpected text %q", text)
	}
	if gw.totalCalls() != 0 {
		t.Errorf("plain text must not reach the model, got %d calls", gw.totalCalls())
	}
}

func TestExtractTextUnsupportedType(t *testing.T) {
	gw := newMockGateway()
	_, err := testService(gw).ExtractText(context.Background(), "application/zip", []byte("x"))
	var unsupportedErr *parser.UnsupportedTypeError
	if !errors.As(err, &unsupportedErr) {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
	if unsupportedErr.MimeType != "application/zip" {
		t.Errorf("error should carry the mime type, got %q", unsupportedErr.MimeType)
	}
}

func TestExtractTextImageGoesThroughOCR(t *testing.T) {
	gw := newMockGateway()
	gw.results["extractText"] = `{"extractedText":"scanned words"}`

	text, err := testService(gw).ExtractText(context.Background(), "image/png", []byte{0x89, 0x50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "scanned words" {
		t.Errorf("unexpected text %q", text)
	}
	if gw.callCount("extractText") != 1 {
		t.Errorf("expected one OCR call, got %d", gw.callCount("extractText"))
	}
}

func TestExtractTextOCRYieldsEmptyStringNotError(t *testing.T) {
	gw := newMockGateway()
	gw.results["extractText"] = `{"extractedText":""}`

	text, err := testService(gw).ExtractText(context.Background(), "image/jpeg", []byte{0xff, 0xd8})
	if err != nil {
		t.Fatalf("unreadable image must not error: %v", err)
	}
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
}

func TestExtractTextMarkdown(t *testing.T) {
	gw := newMockGateway()
	text, err := testService(gw).ExtractText(context.Background(), "text/markdown", []byte("# Title\n\nBody paragraph."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text == "" {
		t.Error("expected extracted markdown text")
	}
}
