package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Edem2000/ledgerly/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: keybinding hints on
// the left, the active month and signed-in user on the right.
func RenderStatusBar(width int, month, user string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	right := month
	if user != "" {
		right = fmt.Sprintf("%s · %s", user, month)
	}
	right += " "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
