package render

import "github.com/charmbracelet/lipgloss"

// Palette shared with the rest of the terminal output.
var (
	ColorText    = lipgloss.Color("#F8F8F2")
	ColorMuted   = lipgloss.Color("#6272A4")
	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorInfo    = lipgloss.Color("#8BE9FD")
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorWarning = lipgloss.Color("#FFB86C")
)

// Category badge colors.
var categoryColors = map[string]lipgloss.Color{
	"phone":   ColorSuccess,
	"phablet": ColorInfo,
	"tablet":  ColorPrimary,
	"other":   ColorWarning,
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	labelStyle = lipgloss.NewStyle().Foreground(ColorMuted).Width(18)
	valueStyle = lipgloss.NewStyle().Foreground(ColorText)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorMuted).Padding(0, 1)
)

func badge(text string, c lipgloss.Color) string {
	return lipgloss.NewStyle().Bold(true).Foreground(c).Render(text)
}
