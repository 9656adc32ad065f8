package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Edem2000/ledgerly/internal/tui/theme"
)

// ToastKind selects the toast accent color.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

// RenderToast renders a transient notification box anchored by the
// caller. An empty message renders nothing.
func RenderToast(message string, kind ToastKind, maxWidth int) string {
	if message == "" {
		return ""
	}

	t := theme.Active

	var accent lipgloss.Color
	switch kind {
	case ToastSuccess:
		accent = t.Green
	case ToastError:
		accent = t.Red
	default:
		accent = t.Accent
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Foreground(t.TextPrimary).
		Padding(0, 1)
	if maxWidth > 4 {
		style = style.MaxWidth(maxWidth)
	}

	return style.Render(message)
}
