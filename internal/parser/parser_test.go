package parser

import (
	"errors"
	"testing"
)

func TestIsSupportedNormalizesMime(t *testing.T) {
	cases := []struct {
		mime string
		want bool
	}{
		{"text/plain", true},
		{"text/plain; charset=utf-8", true},
		{"TEXT/HTML", true},
		{"application/pdf", true},
		{"image/png", true},
		{"application/zip", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsSupported(tc.mime); got != tc.want {
			t.Errorf("IsSupported(%q) = %v, want %v", tc.mime, got, tc.want)
		}
	}
}

func TestIsOCROnly(t *testing.T) {
	for _, mime := range []string{"image/png", "image/jpeg", "application/msword"} {
		if !IsOCROnly(mime) {
			t.Errorf("expected %q to be OCR-only", mime)
		}
	}
	for _, mime := range []string{"text/plain", "application/pdf"} {
		if IsOCROnly(mime) {
			t.Errorf("%q should have a local extractor", mime)
		}
	}
}

func TestForMimeUnsupportedType(t *testing.T) {
	_, err := ForMime("application/zip")
	var unsupportedErr *UnsupportedTypeError
	if !errors.As(err, &unsupportedErr) {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
}

func TestForMimeReturnsExtractors(t *testing.T) {
	for _, mime := range []string{"text/plain", "text/markdown", "text/html", "text/csv", "application/pdf"} {
		ext, err := ForMime(mime)
		if err != nil {
			t.Errorf("ForMime(%q): unexpected error %v", mime, err)
		}
		if ext == nil {
			t.Errorf("ForMime(%q): nil extractor", mime)
		}
	}
}

func TestMimeForFilename(t *testing.T) {
	cases := []struct {
		name, want string
	}{
		{"lease.pdf", "application/pdf"},
		{"notes.TXT", "text/plain"},
		{"scan.jpeg", "image/jpeg"},
		{"contract.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"unknown.xyz", ""},
	}
	for _, tc := range cases {
		if got := MimeForFilename(tc.name); got != tc.want {
			t.Errorf("MimeForFilename(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
