package ui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"soliddojo/internal/catalog"
	"soliddojo/internal/lesson"
	"soliddojo/internal/render"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// BrowsePage is the principle browser: a list of the five principles on
// the left, the selected lesson (and its demo output) on the right.
type BrowsePage struct {
	width  int
	height int

	list     list.Model
	viewport viewport.Model

	// Focus state
	focusViewport bool

	// Data
	registry    *catalog.Registry
	corpus      *lesson.Corpus
	renderer    *render.Renderer
	theme       string
	noColor     bool
	selected    string
	transcripts map[string]*catalog.Transcript
	onRun       func(*catalog.Transcript)

	// Styles
	styles Styles
}

// lessonItem adapts lesson.Lesson to list.Item.
type lessonItem struct {
	lesson *lesson.Lesson
}

func (i lessonItem) Title() string {
	return i.lesson.Principle.Letter() + " · " + i.lesson.Title
}

func (i lessonItem) Description() string {
	return i.lesson.Summary
}

func (i lessonItem) FilterValue() string {
	p := i.lesson.Principle
	return p.String() + " " + p.Name() + " " + i.lesson.Title + " " + i.lesson.Summary
}

// NewBrowsePage creates the principle browser page.
func NewBrowsePage(reg *catalog.Registry, corpus *lesson.Corpus, theme string, noColor bool) BrowsePage {
	styles := NewStyles(ThemeByName(theme))

	vp := viewport.New(0, 0)
	vp.SetContent("Select a principle to read its lesson.")

	items := make([]list.Item, 0, corpus.Count())
	for _, l := range corpus.All() {
		items = append(items, lessonItem{lesson: l})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Principles"
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(styles.Theme.Primary)

	return BrowsePage{
		list:        l,
		viewport:    vp,
		registry:    reg,
		corpus:      corpus,
		renderer:    render.New(theme, 80, noColor),
		theme:       theme,
		noColor:     noColor,
		transcripts: make(map[string]*catalog.Transcript),
		styles:      styles,
	}
}

// SetRunHook registers a callback invoked after every demo run, e.g. to
// record the run in the history store.
func (m *BrowsePage) SetRunHook(fn func(*catalog.Transcript)) {
	m.onRun = fn
}

// Filtering reports whether the list filter input is capturing keys.
func (m BrowsePage) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Init initializes the page.
func (m BrowsePage) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BrowsePage) Update(msg tea.Msg) (BrowsePage, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// Toggle focus with Tab if not filtering
		if m.list.FilterState() != list.Filtering && msg.String() == "tab" {
			m.focusViewport = !m.focusViewport
			return m, nil
		}

		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "r":
				cmds = append(cmds, m.runSelected())
			case "c", "y":
				cmds = append(cmds, m.copySnippet())
			}
		}
	}

	// Route events. Non-key messages (resize, ticks) go everywhere.
	_, isKey := msg.(tea.KeyMsg)
	updateList := !isKey || (!m.focusViewport || m.list.FilterState() == list.Filtering)
	updateViewport := !isKey || (m.focusViewport && m.list.FilterState() != list.Filtering)

	if updateList {
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}

	if updateViewport {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Check for selection change
	if item, ok := m.list.SelectedItem().(lessonItem); ok {
		if m.selected != item.lesson.Principle.String() {
			m.selected = item.lesson.Principle.String()
			m.refreshViewport()
			m.viewport.GotoTop()
		}
	}

	return m, tea.Batch(cmds...)
}

// runSelected runs the demo for the selected principle and stores its
// transcript for display under the lesson.
func (m *BrowsePage) runSelected() tea.Cmd {
	item, ok := m.list.SelectedItem().(lessonItem)
	if !ok {
		return nil
	}
	id := item.lesson.Principle.String()

	tr, err := m.registry.Run(context.Background(), id)
	if err != nil {
		return m.list.NewStatusMessage(m.styles.Error.Render("Demo failed: " + err.Error()))
	}

	m.transcripts[id] = tr
	if m.onRun != nil {
		m.onRun(tr)
	}
	m.refreshViewport()
	return m.list.NewStatusMessage(m.styles.Success.Render(fmt.Sprintf("Ran the %s demo", item.lesson.Principle.Letter())))
}

// copySnippet puts the selected lesson's runnable snippet on the clipboard.
func (m *BrowsePage) copySnippet() tea.Cmd {
	item, ok := m.list.SelectedItem().(lessonItem)
	if !ok {
		return nil
	}
	snippet, ok := item.lesson.Snippet()
	if !ok {
		return m.list.NewStatusMessage(m.styles.Error.Render("Lesson has no runnable snippet"))
	}
	if err := clipboardWriteAll(snippet); err != nil {
		return m.list.NewStatusMessage(m.styles.Error.Render("Failed to copy snippet"))
	}
	return m.list.NewStatusMessage(m.styles.Success.Render(fmt.Sprintf("Copied the %s snippet to clipboard", item.lesson.Principle.Letter())))
}

// refreshViewport renders the selected lesson, plus any recorded demo
// output, into the right pane.
func (m *BrowsePage) refreshViewport() {
	item, ok := m.list.SelectedItem().(lessonItem)
	if !ok {
		return
	}
	l := item.lesson
	p := l.Principle

	badge := m.styles.Badge.Background(PrincipleColor(p.Order() - 1)).Render(p.Letter())
	header := badge + " " + m.styles.Bold.Render(p.Name())

	sections := []string{header, m.renderer.Markdown(l.Body)}
	if tr, ok := m.transcripts[p.String()]; ok {
		sections = append(sections,
			m.styles.Bold.Render("Demo output"),
			m.renderer.Transcript(tr),
			m.renderer.Summary(tr),
		)
	}

	m.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// View renders the page.
func (m BrowsePage) View() string {
	if m.width == 0 {
		return m.styles.Content.Render("Preparing the dojo...")
	}

	// Split view: List (35%) | Viewport (65%)
	listPaneWidth := int(float64(m.width) * 0.35)
	viewPaneWidth := m.width - listPaneWidth

	var listStyle, viewStyle lipgloss.Style
	if !m.focusViewport {
		listStyle = m.styles.FocusedPane
		viewStyle = m.styles.BlurredPane
	} else {
		listStyle = m.styles.BlurredPane
		viewStyle = m.styles.FocusedPane
	}

	// Chrome: Border(2) + Padding(2) = 4 width per pane
	listView := listStyle.Width(listPaneWidth - 4).Render(m.list.View())
	contentView := viewStyle.Width(viewPaneWidth - 4).Render(m.viewport.View())

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, listView, contentView)

	help := m.styles.Muted.Render(" • r: run demo • c/y: copy snippet • tab: focus switch • /: filter • q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, mainView, help)
}

// SetSize updates the size and rebuilds the markdown renderer for the
// new viewport width.
func (m *BrowsePage) SetSize(w, h int) {
	m.width = w
	m.height = h

	// Chrome: Border(2) + Padding(2) = 4 width per pane
	chromeW := 4
	// Vertical: Border(2) = 2 height
	chromeH := 2

	paneH := h - 3 - chromeH // room for the help footer
	if paneH < 0 {
		paneH = 0
	}

	listPaneWidth := int(float64(w) * 0.35)
	viewPaneWidth := w - listPaneWidth

	m.list.SetSize(listPaneWidth-chromeW, paneH)
	m.viewport.Width = viewPaneWidth - chromeW
	m.viewport.Height = paneH

	// Glamour wraps at render time, so the renderer follows the pane.
	textWidth := viewPaneWidth - chromeW
	if textWidth < 20 {
		textWidth = 20
	}
	m.renderer = render.New(m.theme, textWidth, m.noColor)
	m.refreshViewport()
}
