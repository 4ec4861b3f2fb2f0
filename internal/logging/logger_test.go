package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// resetState clears package state so each test initializes from scratch.
func resetState() {
	CloseAll()
	logsDir = ""
	homeDir = ""
	config = loggingConfig{}
	logLevel = LevelDebug
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	if err := os.MkdirAll(home, 0755); err != nil {
		t.Fatalf("Failed to create home dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestAllCategoriesLog(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `logging:
  level: debug
  debug_mode: true
  categories:
    boot: true
    catalog: true
    lesson: true
    playground: true
    store: true
    render: true
    tui: true
    watch: true
`)

	resetState()
	if err := Initialize(home); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}

	if !IsDebugMode() {
		t.Error("Expected debug mode to be enabled")
	}

	categories := []Category{
		CategoryBoot,
		CategoryCatalog,
		CategoryLesson,
		CategoryPlayground,
		CategoryStore,
		CategoryRender,
		CategoryTUI,
		CategoryWatch,
	}

	for _, cat := range categories {
		if !IsCategoryEnabled(cat) {
			t.Errorf("Category %s should be enabled", cat)
		}
		logger := Get(cat)
		logger.Info("Test info message for %s", cat)
		logger.Debug("Test debug message for %s", cat)
		logger.Warn("Test warn message for %s", cat)
		logger.Error("Test error message for %s", cat)
	}

	// Convenience functions too.
	Boot("Convenience boot log")
	Catalog("Convenience catalog log")
	Lesson("Convenience lesson log")
	Playground("Convenience playground log")
	Store("Convenience store log")
	Render("Convenience render log")
	TUI("Convenience tui log")
	Watch("Convenience watch log")

	CloseAll()

	logsPath := filepath.Join(home, "logs")
	entries, err := os.ReadDir(logsPath)
	if err != nil {
		t.Fatalf("Failed to read logs dir: %v", err)
	}

	for _, cat := range categories {
		found := false
		for _, entry := range entries {
			if strings.Contains(entry.Name(), string(cat)+".log") {
				found = true
				content, err := os.ReadFile(filepath.Join(logsPath, entry.Name()))
				if err != nil {
					t.Errorf("Failed to read log file for %s: %v", cat, err)
					continue
				}
				if len(content) == 0 {
					t.Errorf("Log file for %s is empty", cat)
				}
				break
			}
		}
		if !found {
			t.Errorf("No log file found for category: %s", cat)
		}
	}
}

func TestDebugModeDisabledWritesNothing(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `logging:
  level: debug
  debug_mode: false
`)

	resetState()
	if err := Initialize(home); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}

	if IsDebugMode() {
		t.Error("Expected debug mode to be disabled")
	}
	if IsCategoryEnabled(CategoryBoot) {
		t.Error("boot should be disabled when debug_mode=false")
	}

	Boot("This should NOT be logged")
	Get(CategoryCatalog).Error("This should NOT be logged")

	CloseAll()

	logsPath := filepath.Join(home, "logs")
	if entries, err := os.ReadDir(logsPath); err == nil && len(entries) > 0 {
		t.Errorf("Expected no log files with debug_mode off, found %d", len(entries))
	}
}

func TestCategoryToggle(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `logging:
  level: debug
  debug_mode: true
  categories:
    boot: true
    tui: false
`)

	resetState()
	if err := Initialize(home); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}

	if !IsCategoryEnabled(CategoryBoot) {
		t.Error("boot should be enabled")
	}
	if IsCategoryEnabled(CategoryTUI) {
		t.Error("tui should be disabled")
	}
	// Categories absent from the config default to enabled.
	if !IsCategoryEnabled(CategoryCatalog) {
		t.Error("catalog (not in config) should default to enabled")
	}

	Boot("This SHOULD be logged")
	TUI("This should NOT be logged")

	CloseAll()

	entries, _ := os.ReadDir(filepath.Join(home, "logs"))
	var hasTUI bool
	for _, e := range entries {
		if strings.Contains(e.Name(), "tui") {
			hasTUI = true
		}
	}
	if hasTUI {
		t.Error("Should not have a tui log file (disabled)")
	}
}

func TestTimer(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `logging:
  level: debug
  debug_mode: true
`)

	resetState()
	if err := Initialize(home); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	timer := StartTimer(CategoryLesson, "TestOperation")
	time.Sleep(time.Millisecond)
	elapsed := timer.Stop()

	if elapsed <= 0 {
		t.Error("Timer should have recorded non-zero duration")
	}

	CloseAll()
}
