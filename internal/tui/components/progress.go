package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/Edem2000/ledgerly/internal/ledger"
	"github.com/Edem2000/ledgerly/internal/tui/theme"
)

// StateColor returns the theme color for a budget state.
func StateColor(state ledger.BudgetState) lipgloss.Color {
	t := theme.Active
	switch state {
	case ledger.StateBad:
		return t.Red
	case ledger.StateWarn:
		return t.Orange
	default:
		return t.Green
	}
}

// BudgetBar renders a labeled usage bar for one category status.
// The bar fill is already clamped by the reconciler; the percentage
// text is not, so an over-limit category reads e.g. "129%".
func BudgetBar(status ledger.CategoryStatus, labelW, barWidth int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	pctStyle := lipgloss.NewStyle().Foreground(StateColor(status.State)).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if !status.HasLimit {
		return labelStyle.Render(fmt.Sprintf("%-*s", labelW, status.Title)) +
			" " + dimStyle.Render("no limit set")
	}

	bar := progress.New(
		progress.WithSolidFill(string(StateColor(status.State))),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, status.Title)) +
		" " + bar.ViewAs(status.BarFill/100) +
		" " + pctStyle.Render(fmt.Sprintf("%4.0f%%", status.Percent))
}
