package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const minColumnWidth = 8

var markers = map[Kind]string{
	KindSame:    " ",
	KindRemoved: "-",
	KindAdded:   "+",
	KindChanged: "~",
}

// Render lays entries out in two columns, old on the left and new on the right,
// with a marker column classifying each row. Lines longer than the column width
// are truncated.
func Render(entries []Entry, cfg Config) string {
	width := cfg.ColumnWidth
	if width < minColumnWidth {
		width = minColumnWidth
	}
	column := lipgloss.NewStyle().Width(width)
	styles := map[Kind]lipgloss.Style{
		KindSame:    lipgloss.NewStyle(),
		KindRemoved: lipgloss.NewStyle(),
		KindAdded:   lipgloss.NewStyle(),
		KindChanged: lipgloss.NewStyle(),
	}
	if cfg.Color {
		styles[KindSame] = styles[KindSame].Faint(true)
		styles[KindRemoved] = styles[KindRemoved].Foreground(lipgloss.Color("1"))
		styles[KindAdded] = styles[KindAdded].Foreground(lipgloss.Color("2"))
		styles[KindChanged] = styles[KindChanged].Foreground(lipgloss.Color("3"))
	}

	var b strings.Builder
	for _, e := range entries {
		style := styles[e.Kind]
		left := column.Render(truncate(e.Old, width))
		right := truncate(e.New, width)
		b.WriteString(style.Render(markers[e.Kind] + " " + left + " | " + right))
		b.WriteString("\n")
	}
	return b.String()
}

// truncate shortens text to maxWidth visual characters.
func truncate(text string, maxWidth int) string {
	if lipgloss.Width(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for length := len(runes) - 1; length >= 0; length-- {
		candidate := string(runes[:length]) + "…"
		if lipgloss.Width(candidate) <= maxWidth {
			return candidate
		}
	}
	return ""
}
