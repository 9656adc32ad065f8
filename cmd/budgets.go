package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Edem2000/ledgerly/internal/catalog"
	"github.com/Edem2000/ledgerly/internal/cli"
	"github.com/Edem2000/ledgerly/internal/config"
	"github.com/Edem2000/ledgerly/internal/ledger"
	"github.com/Edem2000/ledgerly/internal/model"
	"github.com/Edem2000/ledgerly/internal/money"
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Per-category budget status for the month",
	RunE:  runBudgets,
}

func init() {
	rootCmd.AddCommand(budgetsCmd)
}

func runBudgets(_ *cobra.Command, _ []string) error {
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
	sortMode := resolveSort(st)

	stats := ledger.Aggregate(led.All(), period)

	cfg, _ := config.Load()
	client, _ := newAPIClient(cfg, st)

	// Categories and limits live on the server. Without a session we
	// still show local spending, just with no limits attached.
	var categories []model.Category
	var budgets model.BudgetMap
	if client.Authenticated() {
		cat := catalog.New()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		cats, err := client.Categories(ctx)
		var buds []model.Budget
		if err == nil {
			buds, err = client.Budgets(ctx, period)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "  Could not load budgets from the server, showing local data only.")
		} else {
			cat.Apply(period, cats, buds)
		}
		categories = cat.Categories()
		budgets = cat.Budgets()
	}
	// Reconcile also folds in spent-only titles, so local-only spending
	// still shows up without a server session.
	statuses := ledger.Reconcile(categories, budgets, stats.SpentByCategory, sortMode)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGETS  %s", cli.FormatMonth(period))))
	fmt.Println()

	if len(statuses) == 0 {
		fmt.Println("  No categories yet. Add a transaction first.")
		return nil
	}

	over := 0
	for _, status := range statuses {
		fmt.Printf("  %s\n", cli.RenderBudgetBar(status, 30))
		if status.HasLimit {
			fmt.Printf("      %s spent of %s\n", money.Format(status.Spent, unit), money.Format(status.Limit, unit))
		} else {
			fmt.Printf("      %s spent, no limit set\n", money.Format(status.Spent, unit))
		}
		if status.State == ledger.StateBad {
			over++
		}
	}

	fmt.Println()
	if over > 0 {
		fmt.Printf("  %d of %d categories over limit\n", over, len(statuses))
	} else {
		fmt.Printf("  All %d categories within limits\n", len(statuses))
	}
	fmt.Println()
	return nil
}
