package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Edem2000/ledgerly/internal/cli"
	"github.com/Edem2000/ledgerly/internal/model"
	"github.com/Edem2000/ledgerly/internal/tui/components"
	"github.com/Edem2000/ledgerly/internal/tui/theme"
)

// updateTransactionsKey handles keys specific to the transactions tab.
func (a App) updateTransactionsKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		a.txOffset++
		return a, nil, true

	case "k", "up":
		if a.txOffset > 0 {
			a.txOffset--
		}
		return a, nil, true

	case "g":
		a.txOffset = 0
		return a, nil, true

	case "a":
		a.armed = false
		m, cmd := a.openTxForm()
		return m, cmd, true

	case "D":
		return a.handleClearKey()
	}

	return a, nil, false
}

// handleClearKey drives the two-press confirmation for wiping the
// user-added transactions. The first press arms; a second press inside
// the arm window commits; the timer disarms silently otherwise.
func (a App) handleClearKey() (tea.Model, tea.Cmd, bool) {
	if a.clearing {
		return a, nil, true
	}
	if a.ledger.ExtraCount() == 0 {
		m, cmd := a.withToast("No added transactions to clear.", components.ToastInfo)
		return m, cmd, true
	}

	if !a.armed {
		a.armed = true
		a.armGen++
		gen := a.armGen
		return a, tea.Tick(armTimeout, func(time.Time) tea.Msg {
			return disarmMsg{gen: gen}
		}), true
	}

	a.armed = false
	a.clearing = true
	return a, tea.Batch(
		tea.Tick(clearLatency, func(time.Time) tea.Msg { return clearDoneMsg{} }),
		a.spinner.Tick,
	), true
}

func (a App) renderTransactionsTab(cw, contentH int) string {
	t := theme.Active

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Bold(true)

	txs := a.periodTransactions()

	var b strings.Builder

	switch {
	case a.clearing:
		b.WriteString(a.spinner.View())
		b.WriteString(warnStyle.Render(" Clearing added transactions…"))
		b.WriteString("\n")
	case a.armed:
		b.WriteString(warnStyle.Render("Press D again to clear all added transactions"))
		b.WriteString(dimStyle.Render("  (esc cancels)"))
		b.WriteString("\n")
	}

	if len(txs) == 0 {
		b.WriteString(dimStyle.Render("No transactions this month. Press a to add one."))
		return components.ContentCard(a.txCardTitle(txs), b.String(), cw)
	}

	inner := components.CardInnerWidth(cw)

	amountW := 0
	catW := 0
	for _, tx := range txs {
		if w := len(cli.FormatSigned(tx.Amount, a.unit)); w > amountW {
			amountW = w
		}
		if len(tx.Category) > catW {
			catW = len(tx.Category)
		}
	}
	if catW > 16 {
		catW = 16
	}
	titleW := inner - 6 - 2 - catW - 2 - amountW - 2
	if titleW < 10 {
		titleW = 10
	}

	// Window the list to the visible rows
	visible := contentH - 6
	if visible < 3 {
		visible = 3
	}
	offset := a.txOffset
	if offset > len(txs)-visible {
		offset = len(txs) - visible
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + visible
	if end > len(txs) {
		end = len(txs)
	}

	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	catStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	for _, tx := range txs[offset:end] {
		amountStyle := lipgloss.NewStyle().Foreground(t.Green)
		if tx.Type == model.Expense {
			amountStyle = lipgloss.NewStyle().Foreground(t.Red)
		}

		b.WriteString(dateStyle.Render(cli.FormatDate(tx.Date)))
		b.WriteString("  ")
		b.WriteString(titleStyle.Render(fmt.Sprintf("%-*s", titleW, cli.Truncate(tx.Title, titleW))))
		b.WriteString("  ")
		b.WriteString(catStyle.Render(fmt.Sprintf("%-*s", catW, cli.Truncate(tx.Category, catW))))
		b.WriteString("  ")
		b.WriteString(amountStyle.Render(fmt.Sprintf("%*s", amountW, cli.FormatSigned(tx.Amount, a.unit))))
		b.WriteString("\n")
	}

	if offset > 0 || end < len(txs) {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("… %d-%d of %d", offset+1, end, len(txs))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("[a]dd  [D]clear added  [j/k]scroll"))

	return components.ContentCard(a.txCardTitle(txs), b.String(), cw)
}

func (a App) txCardTitle(txs []model.Transaction) string {
	title := fmt.Sprintf("Transactions · %s · %d", monthLabel(a.period), len(txs))
	if added := a.ledger.ExtraCount(); added > 0 {
		title += fmt.Sprintf(" (%d added)", added)
	}
	return title
}
