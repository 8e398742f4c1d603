package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	Box    lipgloss.Style
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Accent lipgloss.Style
	Ok     lipgloss.Style
	Warn   lipgloss.Style
	Error  lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		Label: lipgloss.NewStyle().
			Foreground(t.Muted),
		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text),
		Accent: lipgloss.NewStyle().
			Foreground(t.Accent),
		Ok: lipgloss.NewStyle().
			Foreground(t.Success),
		Warn: lipgloss.NewStyle().
			Foreground(t.Warning),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Error),
	}
}

// Row is one labelled line of a result panel.
type Row struct {
	Label string
	Value string
}

// Panel renders rows under title inside a rounded box, labels left aligned.
func (s Styles) Panel(title string, rows []Row) string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.Label))
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(title))
	for _, r := range rows {
		b.WriteString("\n")
		pad := strings.Repeat(" ", width-lipgloss.Width(r.Label))
		b.WriteString(s.Label.Render(r.Label + pad))
		b.WriteString("  ")
		b.WriteString(s.Value.Render(r.Value))
	}
	return s.Box.Render(b.String())
}

// Legend names the series of an overlay plot in drawing order.
func (s Styles) Legend(names ...string) string {
	colors := []string{"default", "red"}
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name
		if i < len(colors) {
			parts[i] += " (" + colors[i] + ")"
		}
	}
	return s.Accent.Render(strings.Join(parts, "   "))
}

func Separator(s Styles, width int) string {
	if width < 7 {
		return s.Label.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Label.Render(left + " ◆ " + right)
}
