package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Edem2000/ledgerly/internal/cli"
	"github.com/Edem2000/ledgerly/internal/ledger"
	"github.com/Edem2000/ledgerly/internal/model"
	"github.com/Edem2000/ledgerly/internal/money"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly income and expense summary",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	led, err := loadLedger(st)
	if err != nil {
		return err
	}

	period, err := resolvePeriod(led)
	if err != nil {
		return err
	}
	unit := resolveUnit(st)

	txs := led.All()
	stats := ledger.Aggregate(txs, period)
	prev := ledger.Aggregate(txs, period.Prev())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("LEDGERLY  %s", cli.FormatMonth(period))))
	fmt.Println()

	rows := [][]string{
		{"Income", money.Format(stats.Income, unit), countLabel(stats.IncomeCount)},
		{"Expenses", money.Format(stats.Expense, unit), countLabel(stats.ExpenseCount)},
		{"Net", cli.FormatSigned(stats.Net, unit), ""},
		{"---"},
	}

	// Previous month for comparison
	if prev.IncomeCount+prev.ExpenseCount > 0 {
		rows = append(rows,
			[]string{"Prev income", money.Format(prev.Income, unit), ""},
			[]string{"Prev expenses", money.Format(prev.Expense, unit), ""},
		)
	}

	table := cli.Table{
		Headers: []string{"Metric", "Value", ""},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	if spark := cli.RenderSparkline(dailySpending(txs, period)); spark != "" {
		fmt.Println()
		fmt.Printf("  Daily spending  %s\n", spark)
	}

	fmt.Println()
	return nil
}

func countLabel(n int) string {
	if n == 1 {
		return "1 transaction"
	}
	return fmt.Sprintf("%d transactions", n)
}

// dailySpending returns per-day expense totals for the month as floats
// suitable for a sparkline.
func dailySpending(txs []model.Transaction, period model.Period) []float64 {
	days := make([]decimal.Decimal, period.DaysIn())
	for _, tx := range txs {
		if tx.Type != model.Expense {
			continue
		}
		p, err := model.PeriodOfDate(tx.Date)
		if err != nil || p != period {
			continue
		}
		day := dayOfMonth(tx.Date)
		if day < 1 || day > len(days) {
			continue
		}
		days[day-1] = days[day-1].Add(tx.Amount.Abs())
	}

	out := make([]float64, len(days))
	for i, d := range days {
		out[i], _ = d.Float64()
	}
	return out
}

// dayOfMonth extracts the day from a YYYY-MM-DD date, or 0.
func dayOfMonth(date string) int {
	if len(date) < 10 {
		return 0
	}
	d := 0
	if _, err := fmt.Sscanf(date[8:10], "%d", &d); err != nil {
		return 0
	}
	return d
}
