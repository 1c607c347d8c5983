package llm

import (
	"strings"
	"testing"
)

func TestAttachment_Kinds(t *testing.T) {
	cases := []struct {
		mediaType string
		text      bool
		image     bool
	}{
		{"text/plain", true, false},
		{"text/markdown", true, false},
		{"application/json", true, false},
		{"image/png", false, true},
		{"image/jpeg", false, true},
		{"application/pdf", false, false},
		{"video/mp4", false, false},
	}
	for _, tc := range cases {
		a := &Attachment{MediaType: tc.mediaType}
		if a.isText() != tc.text {
			t.Errorf("%s: isText = %v, want %v", tc.mediaType, a.isText(), tc.text)
		}
		if a.isImage() != tc.image {
			t.Errorf("%s: isImage = %v, want %v", tc.mediaType, a.isImage(), tc.image)
		}
	}
}

func TestAttachment_DataURL(t *testing.T) {
	a := &Attachment{MediaType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
	url := a.dataURL()
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("dataURL = %q", url)
	}
}

func TestAttachment_InlineText(t *testing.T) {
	a := &Attachment{MediaType: "text/plain", Data: []byte("photosynthesis notes")}
	if !strings.Contains(a.inlineText(), "photosynthesis notes") {
		t.Errorf("inlineText = %q", a.inlineText())
	}
}
