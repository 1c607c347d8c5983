package llm

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// isText reports whether the attachment can be inlined as plain text.
func (a *Attachment) isText() bool {
	return strings.HasPrefix(a.MediaType, "text/") ||
		a.MediaType == "application/json" ||
		a.MediaType == "application/xml"
}

// isImage reports whether the attachment is an image.
func (a *Attachment) isImage() bool {
	return strings.HasPrefix(a.MediaType, "image/")
}

// base64Data returns the attachment bytes base64-encoded.
func (a *Attachment) base64Data() string {
	return base64.StdEncoding.EncodeToString(a.Data)
}

// dataURL returns the attachment as an RFC 2397 data URL.
func (a *Attachment) dataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", a.MediaType, a.base64Data())
}

// inlineText renders a text attachment as a message suffix.
func (a *Attachment) inlineText() string {
	return fmt.Sprintf("\n\nFile content:\n%s", a.Data)
}
