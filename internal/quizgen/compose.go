package quizgen

import "strings"

// BuildRequest validates already-captured UI state and maps it into a
// normalized GenerationRequest. It is a pure transformation: no I/O, no
// side effects.
//
// Validation order is fixed: topic content, then text content, then file
// presence. The first violated rule wins and is returned as
// *ErrMissingInput for that mode.
func BuildRequest(mode InputMode, content string, count int, category string, file *FilePayload) (GenerationRequest, error) {
	trimmed := strings.TrimSpace(content)

	switch mode {
	case ModeTopic, ModeText:
		if trimmed == "" {
			return GenerationRequest{}, &ErrMissingInput{Mode: mode}
		}
	case ModeFile:
		if file == nil || len(file.Data) == 0 {
			return GenerationRequest{}, &ErrMissingInput{Mode: ModeFile}
		}
	}

	req := GenerationRequest{
		Mode:     mode,
		Count:    count,
		Category: category,
	}

	// File mode carries the payload instead of the content string; whatever
	// the user typed before switching tabs is ignored.
	if mode == ModeFile {
		req.File = file
	} else {
		req.Content = trimmed
	}

	return req, nil
}
