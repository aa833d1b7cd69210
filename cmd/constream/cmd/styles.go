package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Aman-CERP/constream/internal/console"
)

// Palette shared by the demo header and the levels table.
const (
	colorLime     = "154"
	colorGray     = "245"
	colorDarkGray = "238"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorLime))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray))
	shownStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorLime))
	hiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorDarkGray))
)

// render styles s only when the streams of set are colored, so plain
// output stays free of escape sequences.
func render(set *console.Set, style lipgloss.Style, s string) string {
	if !set.Colored() {
		return s
	}
	return style.Render(s)
}
