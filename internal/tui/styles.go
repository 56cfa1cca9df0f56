package tui

import (
	"github.com/IMPERIALX7/cosmic-resume/internal/wizard"
	"github.com/charmbracelet/lipgloss"
)

// themeAccents are the accent colours cycled as the wizard moves
var themeAccents = [wizard.TotalThemes]lipgloss.Color{
	"#7B61FF",
	"#00B4D8",
	"#FF6B9D",
	"#F4A261",
	"#2A9D8F",
	"#E9C46A",
}

func accentFor(theme int) lipgloss.Color {
	if theme < 1 || theme > len(themeAccents) {
		return themeAccents[0]
	}
	return themeAccents[theme-1]
}

var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7BD88F"))
	selectStyle = lipgloss.NewStyle().Bold(true)
)

func paneStyle(accent lipgloss.Color, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(max(20, width))
}
