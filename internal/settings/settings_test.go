package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.AppName != "QuizWoiz" {
		t.Errorf("AppName = %q", s.AppName)
	}
	if len(s.Categories) != 8 {
		t.Errorf("Categories = %d, want 8", len(s.Categories))
	}
	if s.DarkMode {
		t.Error("DarkMode should default to false")
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.AppName != "QuizWoiz" {
		t.Errorf("AppName = %q", s.AppName)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s := Default()
	s.AppName = "PopQuiz"
	s.DarkMode = true
	s.AddCategory("Mathematics")
	if err := Save(path, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.AppName != "PopQuiz" || !got.DarkMode {
		t.Errorf("got = %+v", got)
	}
	if got.Categories[len(got.Categories)-1] != "Mathematics" {
		t.Errorf("Categories = %v", got.Categories)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"appName": "PopQuiz"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.AppName != "PopQuiz" {
		t.Errorf("AppName = %q", s.AppName)
	}
	if s.PrimaryColor != "#4F46E5" {
		t.Errorf("PrimaryColor = %q, want default", s.PrimaryColor)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{broken`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestCategories_AddRemove(t *testing.T) {
	s := Default()
	if s.AddCategory("Science") {
		t.Error("duplicate category should be rejected")
	}
	if s.AddCategory("") {
		t.Error("empty category should be rejected")
	}
	if !s.AddCategory("Mathematics") {
		t.Error("new category should be added")
	}
	if !s.RemoveCategory("Sports") {
		t.Error("existing category should be removed")
	}
	if s.RemoveCategory("Sports") {
		t.Error("removing twice should report false")
	}
}
