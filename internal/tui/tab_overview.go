package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Edem2000/ledgerly/internal/cli"
	"github.com/Edem2000/ledgerly/internal/model"
	"github.com/Edem2000/ledgerly/internal/money"
	"github.com/Edem2000/ledgerly/internal/tui/components"
	"github.com/Edem2000/ledgerly/internal/tui/theme"
)

const recentLimit = 10

// periodTransactions returns the active month's transactions, most
// recent date first.
func (a App) periodTransactions() []model.Transaction {
	var out []model.Transaction
	for _, tx := range a.ledger.All() {
		if tx.Period() == a.period {
			out = append(out, tx)
		}
	}
	// ISO dates sort lexicographically
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// dailyExpenses returns the absolute expense total for each day of the
// active month.
func (a App) dailyExpenses() []float64 {
	values := make([]float64, a.period.DaysIn())
	for _, tx := range a.ledger.All() {
		if tx.Type != model.Expense || tx.Period() != a.period {
			continue
		}
		if len(tx.Date) < 10 {
			continue
		}
		day, err := strconv.Atoi(tx.Date[8:10])
		if err != nil || day < 1 || day > len(values) {
			continue
		}
		f, _ := tx.Amount.Abs().Float64()
		values[day-1] += f
	}
	return values
}

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active

	overBudget := 0
	for _, st := range a.statuses {
		if st.Over {
			overBudget++
		}
	}
	budgetSub := "all within limits"
	budgetColor := t.Green
	if overBudget > 0 {
		budgetSub = fmt.Sprintf("%d over limit", overBudget)
		budgetColor = t.Red
	}

	netColor := t.Green
	if a.summary.Net.IsNegative() {
		netColor = t.Red
	}

	cards := []struct {
		Label, Value, Sub string
		SubColor          lipgloss.Color
	}{
		{"Income", money.Format(a.summary.Income, a.unit),
			fmt.Sprintf("%d transactions", a.summary.IncomeCount), t.Green},
		{"Expenses", money.Format(a.summary.Expense, a.unit),
			fmt.Sprintf("%d transactions", a.summary.ExpenseCount), t.Red},
		{"Net", cli.FormatSigned(a.summary.Net, a.unit), "income − expenses", netColor},
		{"Budgets", fmt.Sprintf("%d", len(a.statuses)), budgetSub, budgetColor},
	}

	var b strings.Builder
	b.WriteString(components.KPIRow(cards, cw))
	b.WriteString("\n")

	// Daily spending chart
	chart := components.DailyBars(a.dailyExpenses(), t.Red, 5)
	b.WriteString(components.ContentCard("Daily spending", chart, cw))
	b.WriteString("\n")

	// Recent transactions
	b.WriteString(components.ContentCard("Recent transactions", a.renderRecent(cw), cw))

	return b.String()
}

func (a App) renderRecent(cw int) string {
	txs := a.periodTransactions()
	if len(txs) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextDim).
			Render("No transactions this month.")
	}
	if len(txs) > recentLimit {
		txs = txs[:recentLimit]
	}

	t := theme.Active
	inner := components.CardInnerWidth(cw)

	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	catStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	amountW := 0
	for _, tx := range txs {
		if w := len(cli.FormatSigned(tx.Amount, a.unit)); w > amountW {
			amountW = w
		}
	}

	var b strings.Builder
	for i, tx := range txs {
		if i > 0 {
			b.WriteString("\n")
		}

		amountStyle := lipgloss.NewStyle().Foreground(t.Green)
		if tx.Type == model.Expense {
			amountStyle = lipgloss.NewStyle().Foreground(t.Red)
		}
		amount := fmt.Sprintf("%*s", amountW, cli.FormatSigned(tx.Amount, a.unit))

		titleW := inner - 7 - amountW - len(tx.Category) - 4
		if titleW < 8 {
			titleW = 8
		}

		b.WriteString(dateStyle.Render(cli.FormatDate(tx.Date)))
		b.WriteString("  ")
		b.WriteString(titleStyle.Render(fmt.Sprintf("%-*s", titleW, cli.Truncate(tx.Title, titleW))))
		b.WriteString(" ")
		b.WriteString(catStyle.Render(tx.Category))
		b.WriteString("  ")
		b.WriteString(amountStyle.Render(amount))
	}
	return b.String()
}
