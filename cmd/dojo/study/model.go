// Package study hosts the interactive principle browser session.
package study

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"soliddojo/cmd/dojo/ui"
	"soliddojo/internal/catalog"
	"soliddojo/internal/lesson"
	"soliddojo/internal/logging"
)

// headerHeight is the one line of branding above the browser.
const headerHeight = 1

// Config carries everything a study session needs.
type Config struct {
	Registry *catalog.Registry
	Corpus   *lesson.Corpus
	Theme    string
	NoColor  bool

	// OnRun, when set, receives every demo transcript, e.g. for the
	// history store.
	OnRun func(*catalog.Transcript)
}

// Model is the top-level bubbletea model for the study session.
type Model struct {
	width  int
	height int
	page   ui.BrowsePage
	styles ui.Styles
}

// InitStudy builds the study model.
func InitStudy(cfg Config) Model {
	page := ui.NewBrowsePage(cfg.Registry, cfg.Corpus, cfg.Theme, cfg.NoColor)
	if cfg.OnRun != nil {
		page.SetRunHook(cfg.OnRun)
	}
	return Model{
		page:   page,
		styles: ui.NewStyles(ui.ThemeByName(cfg.Theme)),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.page.Init()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		// "q" quits unless the filter input is capturing keys.
		if msg.String() == "q" && !m.page.Filtering() {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		var cmd tea.Cmd
		m.page, cmd = m.page.Update(tea.WindowSizeMsg{
			Width:  msg.Width,
			Height: msg.Height - headerHeight,
		})
		return m, cmd
	}

	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return m, cmd
}

// View renders the session.
func (m Model) View() string {
	if m.width == 0 {
		return "Preparing the dojo..."
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Header.Render("solidDOJO"),
		m.styles.Subtitle.Render(" five principles, one small demo each"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, m.page.View())
}

// Run starts the interactive study session and blocks until it exits.
func Run(cfg Config) error {
	model := InitStudy(cfg)
	logging.TUI("study session starting")
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	logging.TUI("study session ended")
	return nil
}
