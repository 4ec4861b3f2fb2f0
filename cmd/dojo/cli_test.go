package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"soliddojo/internal/config"
	"soliddojo/internal/progress"
)

// setupCLI pins the global command state to a temp home with defaults.
func setupCLI(t *testing.T) {
	t.Helper()
	logger = zap.NewNop()
	dojoHome = t.TempDir()
	appConfig = config.DefaultConfig()
	appConfig.UI.NoColor = true
	t.Cleanup(func() {
		logger = nil
		dojoHome = ""
		appConfig = nil
	})
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	runErr := fn()
	w.Close()
	os.Stdout = old
	data, _ := io.ReadAll(r)
	r.Close()
	return string(data), runErr
}

// demoCmd builds a run command carrying the given flag values.
func demoCmd(all, noHistory bool) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().Bool("all", all, "")
	cmd.Flags().Bool("no-history", noHistory, "")
	return cmd
}

func TestRunDemoRecordsHistory(t *testing.T) {
	setupCLI(t)

	out, err := captureStdout(t, func() error {
		return runDemos(demoCmd(false, false), []string{"lsp"})
	})
	if err != nil {
		t.Fatalf("runDemos: %v", err)
	}

	if !strings.Contains(out, "GasCar: Starting the engine") {
		t.Errorf("transcript missing demo output:\n%s", out)
	}
	if !strings.Contains(out, "error: electric scooter: unsupported operation") {
		t.Errorf("transcript missing the expected failure line:\n%s", out)
	}
	if !strings.Contains(out, "failures: 1") {
		t.Errorf("summary should count one expected failure:\n%s", out)
	}

	store, err := progress.NewStore(appConfig.DatabasePath(dojoHome))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].Showcase != "lsp" {
		t.Fatalf("history = %+v, want one lsp run", runs)
	}
	if runs[0].Failures != 1 || !runs[0].OK {
		t.Errorf("lsp run recorded failures=%d ok=%v, want 1 and true", runs[0].Failures, runs[0].OK)
	}
}

func TestRunDemoNoHistorySkipsStore(t *testing.T) {
	setupCLI(t)

	_, err := captureStdout(t, func() error {
		return runDemos(demoCmd(false, true), []string{"srp"})
	})
	if err != nil {
		t.Fatalf("runDemos: %v", err)
	}

	if _, err := os.Stat(appConfig.DatabasePath(dojoHome)); !os.IsNotExist(err) {
		t.Errorf("no-history run should not create the database")
	}
}

func TestRunAllDemos(t *testing.T) {
	setupCLI(t)

	out, err := captureStdout(t, func() error {
		return runDemos(demoCmd(true, false), []string{})
	})
	if err != nil {
		t.Fatalf("runDemos --all: %v", err)
	}

	for _, want := range []string{
		"Chef: Cooking food",
		"SportsCar: Adding a spoiler",
		"ElectricScooter: Starting the motor",
		"error: fish sitter: unsupported operation",
		"Computer: Typing on mechanical keyboard",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	store, err := progress.NewStore(appConfig.DatabasePath(dojoHome))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 5 {
		t.Errorf("recorded %d runs, want 5", n)
	}
}

func TestRunDemosRequiresArgsOrAll(t *testing.T) {
	setupCLI(t)
	if err := runDemos(demoCmd(false, false), nil); err == nil {
		t.Fatalf("expected an error with no principles and no --all")
	}
}

func TestShowRaw(t *testing.T) {
	setupCLI(t)

	cmd := &cobra.Command{}
	cmd.Flags().Bool("raw", true, "")
	cmd.Flags().Int("width", 0, "")

	out, err := captureStdout(t, func() error {
		return runShow(cmd, []string{"srp"})
	})
	if err != nil {
		t.Fatalf("runShow: %v", err)
	}
	if !strings.Contains(out, "# Single Responsibility") {
		t.Errorf("raw output missing lesson heading:\n%s", firstLines(out, 3))
	}
	if !strings.Contains(out, "```go demo") {
		t.Errorf("raw output should keep the demo fence")
	}
}

func TestShowUnknownPrinciple(t *testing.T) {
	setupCLI(t)
	if err := runShow(&cobra.Command{}, []string{"solidity"}); err == nil {
		t.Fatalf("expected an error for an unknown principle")
	}
}

func TestPlayPrintsSnippetOutput(t *testing.T) {
	setupCLI(t)

	out, err := captureStdout(t, func() error {
		return runPlay(&cobra.Command{}, []string{"dip"})
	})
	if err != nil {
		t.Fatalf("runPlay: %v", err)
	}

	want := "Computer: Typing on mechanical keyboard\nComputer: Typing on membrane keyboard\n"
	if out != want {
		t.Errorf("play output = %q, want %q", out, want)
	}
}

func TestHistoryLifecycle(t *testing.T) {
	setupCLI(t)

	if _, err := captureStdout(t, func() error {
		return runDemos(demoCmd(false, false), []string{"isp"})
	}); err != nil {
		t.Fatalf("runDemos: %v", err)
	}

	histCmd := &cobra.Command{}
	histCmd.Flags().Int("limit", 10, "")
	out, err := captureStdout(t, func() error {
		return runHistory(histCmd, nil)
	})
	if err != nil {
		t.Fatalf("runHistory: %v", err)
	}
	if !strings.Contains(out, "isp") {
		t.Errorf("history missing the recorded run:\n%s", out)
	}

	out, err = captureStdout(t, func() error {
		return runHistoryClear(&cobra.Command{}, nil)
	})
	if err != nil {
		t.Fatalf("runHistoryClear: %v", err)
	}
	if !strings.Contains(out, "Cleared 1 recorded runs.") {
		t.Errorf("clear output = %q", out)
	}

	out, err = captureStdout(t, func() error {
		return runHistory(histCmd, nil)
	})
	if err != nil {
		t.Fatalf("runHistory after clear: %v", err)
	}
	if !strings.Contains(out, "No runs recorded yet") {
		t.Errorf("cleared history should be empty:\n%s", out)
	}
}

func TestHistoryDisabled(t *testing.T) {
	setupCLI(t)
	appConfig.History.Enabled = false

	out, err := captureStdout(t, func() error {
		return runHistory(&cobra.Command{}, nil)
	})
	if err != nil {
		t.Fatalf("runHistory: %v", err)
	}
	if !strings.Contains(out, "History is disabled") {
		t.Errorf("disabled history output = %q", out)
	}
	if _, err := os.Stat(appConfig.DatabasePath(dojoHome)); !os.IsNotExist(err) {
		t.Errorf("disabled history should not create the database")
	}
}

func TestProgressSummary(t *testing.T) {
	setupCLI(t)

	if _, err := captureStdout(t, func() error {
		return runDemos(demoCmd(false, false), []string{"srp"})
	}); err != nil {
		t.Fatalf("runDemos: %v", err)
	}

	out, err := captureStdout(t, func() error {
		return runProgress(&cobra.Command{}, nil)
	})
	if err != nil {
		t.Fatalf("runProgress: %v", err)
	}
	if !strings.Contains(out, "1 of 5 principles studied.") {
		t.Errorf("progress footer missing:\n%s", out)
	}
	if !strings.Contains(out, "never") {
		t.Errorf("unstudied principles should show never:\n%s", out)
	}
	if !strings.Contains(out, "Single Responsibility Principle") {
		t.Errorf("progress should spell out principle names:\n%s", out)
	}
}

func TestListShowsStudiedMark(t *testing.T) {
	setupCLI(t)

	if _, err := captureStdout(t, func() error {
		return runDemos(demoCmd(false, false), []string{"ocp"})
	}); err != nil {
		t.Fatalf("runDemos: %v", err)
	}

	out, err := captureStdout(t, func() error {
		return runList(&cobra.Command{}, nil)
	})
	if err != nil {
		t.Fatalf("runList: %v", err)
	}
	if !strings.Contains(out, "✓") {
		t.Errorf("studied principle should carry a check mark:\n%s", out)
	}
	if !strings.Contains(out, "Extend, don't edit") {
		t.Errorf("list missing showcase title:\n%s", out)
	}
}

func TestResolvePreviewPath(t *testing.T) {
	setupCLI(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "custom.md")
	if err := os.WriteFile(file, []byte("---\nprinciple: srp\ntitle: T\n---\n\nbody\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := &cobra.Command{}
	cmd.Flags().String("lessons", "", "")

	got, err := resolvePreviewPath(cmd, file)
	if err != nil || got != file {
		t.Errorf("file argument: got %q, %v", got, err)
	}

	if _, err := resolvePreviewPath(cmd, "lsp"); err == nil {
		t.Errorf("principle without a lessons dir should fail")
	}

	withDir := &cobra.Command{}
	withDir.Flags().String("lessons", dir, "")
	got, err = resolvePreviewPath(withDir, "lsp")
	if err != nil {
		t.Fatalf("principle with lessons dir: %v", err)
	}
	if got != filepath.Join(dir, "lsp.md") {
		t.Errorf("resolved path = %q", got)
	}

	if _, err := resolvePreviewPath(cmd, "not-a-principle"); err == nil {
		t.Errorf("garbage argument should fail")
	}
}

func TestPreviewRendersFile(t *testing.T) {
	setupCLI(t)

	file := filepath.Join(t.TempDir(), "draft.md")
	content := "---\nprinciple: dip\ntitle: Draft lesson\n---\n\n# Draft heading\n\nSome prose.\n"
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := &cobra.Command{}
	cmd.Flags().String("lessons", "", "")
	cmd.Flags().Bool("watch", false, "")

	out, err := captureStdout(t, func() error {
		return runPreview(cmd, []string{file})
	})
	if err != nil {
		t.Fatalf("runPreview: %v", err)
	}
	if !strings.Contains(out, "Draft heading") {
		t.Errorf("preview output missing lesson content:\n%s", out)
	}
}

func TestStatusReportsComponents(t *testing.T) {
	setupCLI(t)

	out, err := captureStdout(t, func() error {
		return runStatus(&cobra.Command{}, nil)
	})
	if err != nil {
		t.Fatalf("runStatus: %v", err)
	}

	for _, want := range []string{
		"solidDOJO Status",
		"Version: 1.0.0",
		"built-in defaults",
		"Lessons: 5 embedded",
		"History:",
		"Logs:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q:\n%s", want, out)
		}
	}
}

func firstLines(s string, n int) string {
	lines := strings.SplitN(s, "\n", n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
