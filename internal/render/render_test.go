package render

import (
	"errors"
	"strings"
	"testing"

	"soliddojo/internal/catalog"
)

func sampleTranscript() *catalog.Transcript {
	tr := catalog.NewTranscript("lsp")

	bad := tr.Begin("shared abstraction")
	bad.Say("GasCar", "Starting the engine")
	bad.Fail(errors.New("electric scooter: unsupported operation"))

	good := tr.Begin("split abstractions")
	good.Say("Car", "Starting the engine")
	good.Say("ElectricScooter", "Starting the motor")

	return tr
}

func TestMarkdownNoColorPassesThrough(t *testing.T) {
	r := New("auto", 80, true)

	content := "# Heading\n\nSome *markdown*.\n"
	if got := r.Markdown(content); got != content {
		t.Errorf("no-color Markdown rewrote content:\n%q", got)
	}
}

func TestMarkdownEmptyContent(t *testing.T) {
	r := New("dark", 80, false)

	if got := r.Markdown(""); got != "" {
		t.Errorf("Markdown(\"\") = %q, want empty", got)
	}
}

func TestMarkdownRendersWhenAvailable(t *testing.T) {
	r := New("dark", 80, false)
	if r.md == nil {
		t.Skip("glamour unavailable in this environment")
	}

	got := r.Markdown("# Heading\n")
	if !strings.Contains(got, "Heading") {
		t.Errorf("rendered markdown lost the heading text:\n%q", got)
	}
}

func TestTranscriptPlainMatchesConsoleLines(t *testing.T) {
	r := New("auto", 80, true)
	tr := sampleTranscript()

	want := strings.Join(tr.ConsoleLines(), "\n") + "\n"
	if got := r.Transcript(tr); got != want {
		t.Errorf("plain transcript = %q, want %q", got, want)
	}
}

func TestTranscriptPlainEmpty(t *testing.T) {
	r := New("auto", 80, true)

	if got := r.Transcript(catalog.NewTranscript("srp")); got != "" {
		t.Errorf("empty transcript rendered %q, want empty", got)
	}
}

func TestTranscriptStyledKeepsEveryLine(t *testing.T) {
	r := New("dark", 80, false)
	tr := sampleTranscript()

	got := r.Transcript(tr)
	for _, want := range []string{
		"shared abstraction",
		"split abstractions",
		"Starting the engine",
		"Starting the motor",
		"electric scooter: unsupported operation",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("styled transcript missing %q:\n%s", want, got)
		}
	}
}

func TestSummary(t *testing.T) {
	r := New("auto", 80, true)
	tr := sampleTranscript()

	got := r.Summary(tr)
	for _, want := range []string{"✓", "lsp", "steps: 2", "failures: 1"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q: %s", want, got)
		}
	}

	tr.Err = errors.New("context canceled")
	if got := r.Summary(tr); !strings.Contains(got, "✗") {
		t.Errorf("failed run summary missing ✗: %s", got)
	}
}
