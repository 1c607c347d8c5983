// Package settings holds user-tunable application settings: branding,
// theme colors, quiz categories and dark mode. Settings are loaded once
// at startup and passed explicitly to the components that need them.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Settings is the full set of user preferences. Zero value is not
// usable; start from Default() or Load().
type Settings struct {
	AppName        string   `json:"appName"`
	PrimaryColor   string   `json:"primaryColor"`
	SecondaryColor string   `json:"secondaryColor"`
	AccentColor    string   `json:"accentColor"`
	FontFamily     string   `json:"fontFamily"`
	Categories     []string `json:"categories"`
	DarkMode       bool     `json:"darkMode"`
}

// Default returns the factory settings.
func Default() Settings {
	return Settings{
		AppName:        "QuizWoiz",
		PrimaryColor:   "#4F46E5",
		SecondaryColor: "#1E293B",
		AccentColor:    "#8B5CF6",
		FontFamily:     "Inter",
		Categories: []string{
			"General Knowledge",
			"Sports",
			"Entertainment",
			"Science",
			"History",
			"Technology",
			"Literature",
			"Geography",
		},
		DarkMode: false,
	}
}

// AddCategory appends a category unless it is empty or already present.
// Reports whether the list changed.
func (s *Settings) AddCategory(name string) bool {
	if name == "" || slices.Contains(s.Categories, name) {
		return false
	}
	s.Categories = append(s.Categories, name)
	return true
}

// RemoveCategory deletes a category by name. Reports whether it was found.
func (s *Settings) RemoveCategory(name string) bool {
	i := slices.Index(s.Categories, name)
	if i < 0 {
		return false
	}
	s.Categories = slices.Delete(s.Categories, i, i+1)
	return true
}

// Load reads settings from path. A missing file yields the defaults;
// fields absent from the file keep their default values.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("reading settings: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return s, nil
}

// Save writes the settings to path, creating parent directories as needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// DefaultPath resolves the settings file path in priority order:
// 1. QUIZWOIZ_SETTINGS environment variable
// 2. $XDG_CONFIG_HOME/quizwoiz/settings.json
// 3. ~/.config/quizwoiz/settings.json
func DefaultPath() (string, error) {
	if p := os.Getenv("QUIZWOIZ_SETTINGS"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "quizwoiz", "settings.json"), nil
}
