package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SimpleTable renders small static tables, e.g. run history and the
// per-principle progress summary.
type SimpleTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewSimpleTable creates a new SimpleTable with the given title and headers.
func NewSimpleTable(title string, headers []string) *SimpleTable {
	return &SimpleTable{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table.
func (t *SimpleTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// colWidths returns per-column display widths, padding included.
func (t *SimpleTable) colWidths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}
	return widths
}

func (t *SimpleTable) totalWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	return total + len(t.Headers) - 1 // separators
}

// View renders the table using the provided styles.
func (t *SimpleTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	widths := t.colWidths()
	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	headerStyle := styles.Bold.Copy().Padding(0, 1)
	rowStyle := styles.Body.Copy().Padding(0, 1)
	sepStyle := styles.Muted

	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(widths[i]).Render(h))
		if i < len(t.Headers)-1 {
			sb.WriteString(sepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	sb.WriteString(sepStyle.Render(strings.Repeat("-", t.totalWidth(widths))) + "\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				sb.WriteString(rowStyle.Width(widths[i]).Render(cell))
				if i < len(row)-1 {
					sb.WriteString(sepStyle.Render("|"))
				}
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	return sb.String()
}

// Plain renders the table without styling, for no-color output.
func (t *SimpleTable) Plain() string {
	if len(t.Rows) == 0 {
		return ""
	}

	widths := t.colWidths()
	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(t.Title + "\n")
	}

	sb.WriteString(t.plainRow(t.Headers, widths))
	sb.WriteString(strings.Repeat("-", t.totalWidth(widths)) + "\n")
	for _, row := range t.Rows {
		sb.WriteString(t.plainRow(row, widths))
	}
	sb.WriteString("\n")

	return sb.String()
}

func (t *SimpleTable) plainRow(cells []string, widths []int) string {
	var sb strings.Builder
	for i, cell := range cells {
		if i >= len(widths) {
			continue
		}
		sb.WriteString(padCell(" "+cell, widths[i]))
		if i < len(cells)-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// padCell pads to a display width, not a byte count.
func padCell(cell string, width int) string {
	pad := width - lipgloss.Width(cell)
	if pad < 0 {
		pad = 0
	}
	return cell + strings.Repeat(" ", pad)
}
