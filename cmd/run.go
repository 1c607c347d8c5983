package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizwoiz/internal/app"
	"github.com/abhisek/quizwoiz/internal/llm"
	"github.com/abhisek/quizwoiz/internal/quizgen"
	"github.com/abhisek/quizwoiz/internal/settings"
	"github.com/abhisek/quizwoiz/internal/store"
)

// runApp loads settings, opens the store, builds dependencies, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	var generator quizgen.Generator
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		generator = quizgen.New(provider, quizgen.DefaultConfig())
	}

	return app.Run(cfg, generator, st.QuizRepo(), st.EventRepo())
}

// loadSettings reads the settings file, falling back to defaults when
// no file exists yet.
func loadSettings() (settings.Settings, error) {
	path, err := settings.DefaultPath()
	if err != nil {
		return settings.Settings{}, err
	}
	return settings.Load(path)
}
