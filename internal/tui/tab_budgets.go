package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Edem2000/ledgerly/internal/cli"
	"github.com/Edem2000/ledgerly/internal/ledger"
	"github.com/Edem2000/ledgerly/internal/money"
	"github.com/Edem2000/ledgerly/internal/store"
	"github.com/Edem2000/ledgerly/internal/tui/components"
	"github.com/Edem2000/ledgerly/internal/tui/theme"
)

// updateBudgetsKey handles keys specific to the budgets tab. The third
// return reports whether the key was consumed.
func (a App) updateBudgetsKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.budgetCursor < len(a.statuses)-1 {
			a.budgetCursor++
		}
		return a, nil, true

	case "k", "up":
		if a.budgetCursor > 0 {
			a.budgetCursor--
		}
		return a, nil, true

	case "s":
		switch a.sortMode {
		case ledger.SortByName:
			a.sortMode = ledger.SortBySpent
		case ledger.SortBySpent:
			a.sortMode = ledger.SortByOver
		default:
			a.sortMode = ledger.SortByName
		}
		a.savePref(store.PrefSort, string(a.sortMode))
		a.recompute()
		return a, nil, true

	case "a", "enter":
		category, limit := "", ""
		if a.budgetCursor < len(a.statuses) {
			st := a.statuses[a.budgetCursor]
			category = st.Title
			if st.HasLimit {
				limit = st.Limit.String()
			}
		}
		m, cmd := a.openBudgetForm(category, limit)
		return m, cmd, true

	case "d":
		if a.budgetCursor >= len(a.statuses) {
			return a, nil, true
		}
		st := a.statuses[a.budgetCursor]
		if !st.HasLimit {
			m, cmd := a.withToast(fmt.Sprintf("%s has no limit to delete.", st.Title), components.ToastInfo)
			return m, cmd, true
		}
		m, cmd := a.openDeleteLimitForm(st.Title)
		return m, cmd, true
	}

	return a, nil, false
}

func (a App) renderBudgetsTab(cw int) string {
	t := theme.Active

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	if len(a.statuses) == 0 {
		body := dimStyle.Render("No categories yet. Press a to set a limit.")
		return components.ContentCard("Budgets", body, cw)
	}

	labelW := 0
	for _, st := range a.statuses {
		if len(st.Title) > labelW {
			labelW = len(st.Title)
		}
	}
	if labelW > 20 {
		labelW = 20
	}

	inner := components.CardInnerWidth(cw)
	barW := inner - labelW - 34
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for i, st := range a.statuses {
		if i > 0 {
			b.WriteString("\n")
		}

		marker := "  "
		if i == a.budgetCursor {
			marker = cursorStyle.Render("› ")
		}

		row := st
		row.Title = cli.Truncate(st.Title, labelW)
		b.WriteString(marker)
		b.WriteString(components.BudgetBar(row, labelW, barW))

		if st.HasLimit {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s / %s",
				money.Format(st.Spent, a.unit), money.Format(st.Limit, a.unit))))
		} else if !st.Spent.IsZero() {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s spent", money.Format(st.Spent, a.unit))))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"sort: %s  ·  [a]set limit  [d]elete limit  [s]ort", a.sortMode)))

	return components.ContentCard(fmt.Sprintf("Budgets · %s", monthLabel(a.period)), b.String(), cw)
}
