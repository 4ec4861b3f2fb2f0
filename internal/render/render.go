// Package render turns lessons and demo transcripts into terminal text.
// Lesson markdown goes through glamour; transcripts are styled with
// lipgloss. Everything degrades to plain text when color is off or the
// markdown renderer is unavailable.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"soliddojo/internal/catalog"
	"soliddojo/internal/logging"
)

// Semantic colors, identical in light and dark mode.
var (
	successColor = lipgloss.Color("#8BC34A") // Lime Green
	errorColor   = lipgloss.Color("#e53935") // Red
	labelColor   = lipgloss.Color("#2196F3") // Blue
)

// Renderer renders lesson markdown and demo transcripts.
type Renderer struct {
	width   int
	noColor bool
	md      *glamour.TermRenderer

	step    lipgloss.Style
	actor   lipgloss.Style
	okLine  lipgloss.Style
	errLine lipgloss.Style
}

// New builds a renderer for the given theme ("auto", "dark" or "light"),
// wrap width and color preference. With noColor set, markdown passes
// through raw and transcripts render unstyled.
func New(theme string, width int, noColor bool) *Renderer {
	r := &Renderer{width: width, noColor: noColor}
	if noColor {
		return r
	}

	var err error
	switch theme {
	case "light":
		r.md, err = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(width),
		)
	case "dark":
		r.md, err = glamour.NewTermRenderer(
			glamour.WithStylePath("dark"),
			glamour.WithWordWrap(width),
		)
	default:
		r.md, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
	}
	if err != nil {
		logging.RenderWarn("glamour init failed, falling back to plain markdown: %v", err)
	}

	r.step = lipgloss.NewStyle().Foreground(labelColor).Bold(true)
	r.actor = lipgloss.NewStyle().Bold(true)
	r.okLine = lipgloss.NewStyle().Foreground(successColor).Bold(true)
	r.errLine = lipgloss.NewStyle().Foreground(errorColor)

	return r
}

// Markdown renders lesson markdown with panic recovery. If glamour is
// unavailable or misbehaves, the raw markdown comes back unchanged.
func (r *Renderer) Markdown(content string) (result string) {
	defer func() {
		if rec := recover(); rec != nil {
			// If glamour panics, return plain text
			logging.RenderWarn("glamour panic recovered: %v", rec)
			result = content
		}
	}()

	if r.md != nil && content != "" {
		rendered, err := r.md.Render(content)
		if err == nil {
			return rendered
		}
		logging.RenderDebug("glamour render failed: %v", err)
	}
	return content
}

// Transcript renders a demo run. Step labels become styled headers,
// output lines keep their "actor: text" shape, and recorded failures
// render as error lines. With color off the output is exactly
// tr.ConsoleLines(), one line each.
func (r *Renderer) Transcript(tr *catalog.Transcript) string {
	if r.noColor {
		lines := tr.ConsoleLines()
		if len(lines) == 0 {
			return ""
		}
		return strings.Join(lines, "\n") + "\n"
	}

	var sb strings.Builder
	for _, step := range tr.Steps {
		sb.WriteString(r.step.Render("▸ "+step.Label) + "\n")
		for _, line := range step.Lines {
			actor, text, found := strings.Cut(line, ": ")
			if found {
				sb.WriteString("  " + r.actor.Render(actor) + ": " + text + "\n")
			} else {
				sb.WriteString("  " + line + "\n")
			}
		}
		if step.Err != nil {
			sb.WriteString("  " + r.errLine.Render("✗ error: "+step.Err.Error()) + "\n")
		}
	}
	return sb.String()
}

// Summary renders the one-line run footer.
func (r *Renderer) Summary(tr *catalog.Transcript) string {
	mark := "✓"
	style := r.okLine
	if !tr.OK() {
		mark = "✗"
		style = r.errLine
	}

	text := fmt.Sprintf("%s %s • steps: %d • failures: %d • %s",
		mark, tr.Showcase, len(tr.Steps), tr.Failures(),
		tr.Duration.Round(time.Microsecond))
	if r.noColor {
		return text
	}
	return style.Render(text)
}
