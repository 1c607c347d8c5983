package quizgen

import (
	"errors"
	"testing"
)

func TestBuildRequest_Topic(t *testing.T) {
	req, err := BuildRequest(ModeTopic, "  The French Revolution  ", 5, "History", nil)
	if err != nil {
		t.Fatalf("BuildRequest returned error: %v", err)
	}
	if req.Mode != ModeTopic {
		t.Errorf("Mode = %q, want %q", req.Mode, ModeTopic)
	}
	if req.Content != "The French Revolution" {
		t.Errorf("Content = %q, want trimmed topic", req.Content)
	}
	if req.Count != 5 || req.Category != "History" {
		t.Errorf("Count/Category = %d/%q, want 5/History", req.Count, req.Category)
	}
	if req.File != nil {
		t.Error("File should be nil for topic mode")
	}
}

func TestBuildRequest_Text(t *testing.T) {
	req, err := BuildRequest(ModeText, "Some pasted article text.", 10, "Science", nil)
	if err != nil {
		t.Fatalf("BuildRequest returned error: %v", err)
	}
	if req.Content != "Some pasted article text." {
		t.Errorf("Content = %q", req.Content)
	}
}

func TestBuildRequest_File(t *testing.T) {
	file := &FilePayload{Name: "notes.pdf", MediaType: "application/pdf", Data: []byte("%PDF-1.4")}
	req, err := BuildRequest(ModeFile, "leftover typed text", 15, "Technology", file)
	if err != nil {
		t.Fatalf("BuildRequest returned error: %v", err)
	}
	if req.File != file {
		t.Error("File payload not carried through")
	}
	if req.Content != "" {
		t.Errorf("Content = %q, want empty for file mode", req.Content)
	}
}

func TestBuildRequest_MissingInput(t *testing.T) {
	cases := []struct {
		name    string
		mode    InputMode
		content string
		file    *FilePayload
	}{
		{"topic empty", ModeTopic, "", nil},
		{"topic whitespace", ModeTopic, "   \n\t", nil},
		{"text empty", ModeText, "", nil},
		{"file missing", ModeFile, "content is ignored", nil},
		{"file empty payload", ModeFile, "", &FilePayload{Name: "x", MediaType: "text/plain"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildRequest(tc.mode, tc.content, 5, "General Knowledge", tc.file)
			var missing *ErrMissingInput
			if !errors.As(err, &missing) {
				t.Fatalf("err = %v, want *ErrMissingInput", err)
			}
			if missing.Mode != tc.mode {
				t.Errorf("Mode = %q, want %q", missing.Mode, tc.mode)
			}
			if missing.UserMessage() == "" {
				t.Error("UserMessage should not be empty")
			}
		})
	}
}
