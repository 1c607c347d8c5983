package quizgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("the water cycle"), 0o600); err != nil {
		t.Fatal(err)
	}

	payload, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if payload.Name != "notes.txt" {
		t.Errorf("Name = %q, want notes.txt", payload.Name)
	}
	// Extension lookup consults the system mime table, so the charset
	// parameter may or may not have been stripped from a sniffed type.
	if !strings.HasPrefix(payload.MediaType, "text/plain") {
		t.Errorf("MediaType = %q, want text/plain", payload.MediaType)
	}
	if string(payload.Data) != "the water cycle" {
		t.Errorf("Data = %q", payload.Data)
	}
}

func TestReadFileEmptyPath(t *testing.T) {
	payload, err := ReadFile("   ")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if payload != nil {
		t.Errorf("payload = %+v, want nil", payload)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDetectMediaType(t *testing.T) {
	tests := []struct {
		path string
		data []byte
		want string
	}{
		{"doc.pdf", nil, "application/pdf"},
		{"pic.png", nil, "image/png"},
		{"noext", []byte("plain words here"), "text/plain; charset=utf-8"},
	}
	for _, tt := range tests {
		if got := detectMediaType(tt.path, tt.data); got != tt.want {
			t.Errorf("detectMediaType(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
