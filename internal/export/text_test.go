package export

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/abhisek/quizwoiz/internal/quizgen"
)

func sampleQuestions() []quizgen.Question {
	return []quizgen.Question{
		{
			ID:            "q1",
			Text:          "What year did the French Revolution begin?",
			Options:       []string{"1789", "1776", "1804", "1815"},
			CorrectAnswer: "1789",
		},
		{
			ID:            "q2",
			Text:          "Who was executed in 1793?",
			Options:       []string{"Louis XIV", "Louis XV", "Louis XVI", "Napoleon"},
			CorrectAnswer: "Louis XVI",
		},
	}
}

func TestText_Format(t *testing.T) {
	got := Text(sampleQuestions())
	want := "1. What year did the French Revolution begin?\n" +
		"- 1789\n" +
		"- 1776\n" +
		"- 1804\n" +
		"- 1815\n" +
		"Answer: 1789\n" +
		"\n" +
		"2. Who was executed in 1793?\n" +
		"- Louis XIV\n" +
		"- Louis XV\n" +
		"- Louis XVI\n" +
		"- Napoleon\n" +
		"Answer: Louis XVI"
	if got != want {
		t.Errorf("Text() =\n%s\nwant\n%s", got, want)
	}
}

func TestText_Empty(t *testing.T) {
	if got := Text(nil); got != "" {
		t.Errorf("Text(nil) = %q, want empty", got)
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, "QuizWoiz Generated Quiz", sampleQuestions()); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Errorf("output does not look like a PDF, starts with %q", buf.String()[:8])
	}
}

func TestWritePDF_ManyQuestionsPaginates(t *testing.T) {
	questions := make([]quizgen.Question, 40)
	for i := range questions {
		questions[i] = sampleQuestions()[i%2]
	}
	var buf bytes.Buffer
	if err := WritePDF(&buf, "QuizWoiz Generated Quiz", questions); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	// 40 questions at ~40mm each cannot fit on one A4 page.
	if pages := strings.Count(buf.String(), "/Type /Page"); pages < 3 {
		t.Errorf("page objects = %d, want several", pages)
	}
}

func TestSavePDF(t *testing.T) {
	path := t.TempDir() + "/quiz.pdf"
	if err := SavePDF(path, "QuizWoiz Generated Quiz", sampleQuestions()); err != nil {
		t.Fatalf("SavePDF: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("saved file is not a PDF")
	}
}
