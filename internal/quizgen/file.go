package quizgen

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile loads a source file from disk and determines its media type,
// by extension first and content sniffing as fallback. An empty path
// yields a nil payload so BuildRequest can report the missing input.
func ReadFile(path string) (*FilePayload, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	return &FilePayload{
		Name:      filepath.Base(path),
		MediaType: detectMediaType(path, data),
		Data:      data,
	}, nil
}

func detectMediaType(path string, data []byte) string {
	if mt := mime.TypeByExtension(filepath.Ext(path)); mt != "" {
		// Strip parameters like "; charset=utf-8".
		if i := strings.IndexByte(mt, ';'); i >= 0 {
			mt = mt[:i]
		}
		return strings.TrimSpace(mt)
	}
	return http.DetectContentType(data)
}
