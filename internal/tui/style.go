package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/guessword/internal/game"
)

// Styles used throughout the TUI.
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	styleTile = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(lipgloss.Color("255"))

	styleKey = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252"))

	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleMessage = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleBar = lipgloss.NewStyle().
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("255"))
)

// feedbackColor maps feedback onto a background colour.
func feedbackColor(f game.Feedback) lipgloss.Color {
	switch f {
	case game.FeedbackInPosition:
		return lipgloss.Color("28")
	case game.FeedbackNotInPosition:
		return lipgloss.Color("178")
	case game.FeedbackNotInWord:
		return lipgloss.Color("238")
	default:
		return lipgloss.Color("235")
	}
}

// tile renders a single board cell.
func tile(letter string, f game.Feedback) string {
	if letter == "" {
		letter = "·"
	}
	return styleTile.Background(feedbackColor(f)).Render(letter)
}

// keyCap renders one keyboard key coloured by its best feedback.
func keyCap(letter string, f game.Feedback) string {
	st := styleKey
	if f != game.FeedbackUnknown {
		st = st.Background(feedbackColor(f))
	}
	return st.Render(letter)
}
