package present

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorText    = lipgloss.Color("#F8FAFC") // Slate 50
)

var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(11)

	FormulaStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	TrueStyle  = lipgloss.NewStyle().Foreground(ColorSuccess)
	FalseStyle = lipgloss.NewStyle().Foreground(ColorError)
)

// badgeStyles give the style of each classification badge.
var badgeStyles = map[Classification]lipgloss.Style{
	Tautology:     lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
	Contradiction: lipgloss.NewStyle().Foreground(ColorError).Bold(true),
	Contingency:   lipgloss.NewStyle().Foreground(ColorWarning).Bold(true),
}
