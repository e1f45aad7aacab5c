package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#F59E0B") // Yellow
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.Color("#6B7280") // Gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	successStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	errStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	selectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#374151")).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true).
				PaddingLeft(1).
				PaddingRight(1)

	normalItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	cursorStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)

// Title renders a section heading
func Title(s string) string { return titleStyle.Render(s) }

// Subtitle renders secondary explanatory text
func Subtitle(s string) string { return subtitleStyle.Render(s) }

// Success renders confirmation text
func Success(s string) string { return successStyle.Render(s) }

// Warn renders a warning line
func Warn(s string) string { return warnStyle.Render(s) }

// Error renders an error line
func Error(s string) string { return errStyle.Render(s) }

// Muted renders de-emphasized text
func Muted(s string) string { return mutedStyle.Render(s) }

// StatusIcon returns a colored icon for a validation status
func StatusIcon(status string) string {
	switch status {
	case "ok", "valid":
		return successStyle.Render("✓")
	case "warning":
		return warnStyle.Render("○")
	case "error", "invalid":
		return errStyle.Render("✗")
	default:
		return mutedStyle.Render("○")
	}
}
