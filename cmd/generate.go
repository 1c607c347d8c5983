package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizwoiz/internal/export"
	"github.com/abhisek/quizwoiz/internal/llm"
	"github.com/abhisek/quizwoiz/internal/quizgen"
	"github.com/abhisek/quizwoiz/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a quiz without the TUI",
	Long:  "Generate a quiz from a topic, text, or file and print it to stdout. Optionally export a PDF, copy to the clipboard, or save it to the database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		text, _ := cmd.Flags().GetString("text")
		filePath, _ := cmd.Flags().GetString("file")
		count, _ := cmd.Flags().GetInt("count")
		category, _ := cmd.Flags().GetString("category")
		pdfPath, _ := cmd.Flags().GetString("pdf")
		copyOut, _ := cmd.Flags().GetBool("copy")
		save, _ := cmd.Flags().GetBool("save")

		req, title, err := composeRequest(topic, text, filePath, count, category)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		generator := quizgen.New(provider, quizgen.DefaultConfig())
		questions, err := generator.Generate(ctx, req)
		if err != nil {
			return fmt.Errorf("generate quiz: %w", err)
		}
		if len(questions) == 0 {
			return fmt.Errorf("no questions generated, try different content")
		}

		fmt.Println(export.Text(questions))

		if pdfPath != "" {
			if err := export.SavePDF(pdfPath, title, questions); err != nil {
				return fmt.Errorf("export PDF: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Wrote", pdfPath)
		}
		if copyOut {
			if err := export.Copy(questions); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
		}
		if save {
			err := s.QuizRepo().Save(context.Background(), quizgen.Quiz{
				ID:        uuid.NewString(),
				Title:     title,
				Category:  category,
				Questions: questions,
				CreatedAt: time.Now(),
			})
			if err != nil {
				return fmt.Errorf("save quiz: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Saved to history.")
		}
		return nil
	},
}

// composeRequest maps the mutually exclusive input flags onto a
// generation request and a display title.
func composeRequest(topic, text, filePath string, count int, category string) (quizgen.GenerationRequest, string, error) {
	set := 0
	for _, v := range []string{topic, text, filePath} {
		if strings.TrimSpace(v) != "" {
			set++
		}
	}
	if set != 1 {
		return quizgen.GenerationRequest{}, "", fmt.Errorf("exactly one of --topic, --text, or --file is required")
	}

	switch {
	case strings.TrimSpace(topic) != "":
		req, err := quizgen.BuildRequest(quizgen.ModeTopic, topic, count, category, nil)
		return req, strings.TrimSpace(topic), err
	case strings.TrimSpace(text) != "":
		req, err := quizgen.BuildRequest(quizgen.ModeText, text, count, category, nil)
		return req, "Pasted Text", err
	default:
		payload, err := quizgen.ReadFile(filePath)
		if err != nil {
			return quizgen.GenerationRequest{}, "", err
		}
		req, err := quizgen.BuildRequest(quizgen.ModeFile, "", count, category, payload)
		return req, filepath.Base(filePath), err
	}
}

func init() {
	generateCmd.Flags().StringP("topic", "t", "", "Topic to generate questions about")
	generateCmd.Flags().String("text", "", "Source text to generate questions from")
	generateCmd.Flags().StringP("file", "f", "", "Source file to generate questions from")
	generateCmd.Flags().IntP("count", "n", 5, "Number of questions")
	generateCmd.Flags().StringP("category", "c", "", "Quiz category label")
	generateCmd.Flags().String("pdf", "", "Also write a PDF to the given path")
	generateCmd.Flags().Bool("copy", false, "Also copy the quiz text to the clipboard")
	generateCmd.Flags().Bool("save", false, "Also save the quiz to history")
}
