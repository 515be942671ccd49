package util

import (
	"strings"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "resume.pdf", want: "resume.pdf"},
		{name: "separators", in: "a/b\\c.docx", want: "a_b_c.docx"},
		{name: "control chars", in: "cv\x00\n.pdf", want: "cv.pdf"},
		{name: "traversal", in: "../secret.pdf", wantErr: true},
		{name: "blank", in: "   ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeFileName(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("SanitizeFileName(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeFileNameKeepsExtensionWhenTruncating(t *testing.T) {
	got, err := SanitizeFileName(strings.Repeat("é", 300) + ".docx")
	if err != nil {
		t.Fatalf("SanitizeFileName: %v", err)
	}
	if len(got) > maxFileNameBytes {
		t.Fatalf("expected at most %d bytes, got %d", maxFileNameBytes, len(got))
	}
	if !strings.HasSuffix(got, ".docx") {
		t.Fatalf("expected extension to survive, got %q", got)
	}
}
