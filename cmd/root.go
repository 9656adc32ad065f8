package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Edem2000/ledgerly/internal/api"
	"github.com/Edem2000/ledgerly/internal/config"
	"github.com/Edem2000/ledgerly/internal/ledger"
	"github.com/Edem2000/ledgerly/internal/model"
	"github.com/Edem2000/ledgerly/internal/money"
	"github.com/Edem2000/ledgerly/internal/store"
)

var (
	flagMonth  string
	flagUnit   string
	flagSort   string
	flagDBPath string
	flagAPIURL string
)

var rootCmd = &cobra.Command{
	Use:   "ledgerly",
	Short: "Personal finance dashboard",
	Long:  "Track income, expenses, and per-category budgets from your terminal.",
	RunE:  runDashboard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	// Local .env is a convenience for LEDGERLY_API_URL / LEDGERLY_API_TOKEN
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "", "Month to show, as YYYY-MM (default: last month with data)")
	rootCmd.PersistentFlags().StringVarP(&flagUnit, "unit", "u", "", "Amount unit: k or full (default: saved preference)")
	rootCmd.PersistentFlags().StringVarP(&flagSort, "sort", "s", "", "Budget sort: name, spent, or over (default: saved preference)")
	rootCmd.PersistentFlags().StringVarP(&flagDBPath, "db", "d", "", "Path to the state database")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api", "", "API base URL override")
}

// openStore opens the local state database, honoring --db.
func openStore() (*store.Store, error) {
	path := flagDBPath
	if path == "" {
		path = store.DefaultPath()
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}
	return st, nil
}

// newAPIClient builds the API client from config and the stored session.
// An explicit LEDGERLY_API_TOKEN wins over the saved session token.
func newAPIClient(cfg config.Config, st *store.Store) (*api.Client, model.User) {
	baseURL := flagAPIURL
	if baseURL == "" {
		baseURL = config.APIBaseURL(cfg)
	}

	tokens, user, err := st.Session()
	if err != nil {
		tokens, user = model.Tokens{}, model.User{}
	}

	token := config.APIToken()
	if token == "" {
		token = tokens.AccessToken
	}

	return api.NewClient(baseURL, token), user
}

// loadLedger builds the in-memory ledger backed by the state database.
func loadLedger(st *store.Store) (*ledger.Store, error) {
	extras, err := st.LoadExtras()
	if err != nil {
		return nil, fmt.Errorf("loading saved transactions: %w", err)
	}
	return ledger.NewStore(ledger.Baseline(), extras, st), nil
}

// resolvePeriod picks the month to display: --month if given, otherwise
// the latest month with transactions.
func resolvePeriod(led *ledger.Store) (model.Period, error) {
	if flagMonth != "" {
		p, ok := model.ParsePeriodKey(flagMonth)
		if !ok {
			return model.Period{}, fmt.Errorf("invalid month %q, want YYYY-MM", flagMonth)
		}
		return p, nil
	}
	return model.PeriodKeyOrCurrent(led.LatestPeriod()), nil
}

// resolveUnit picks the amount unit: --unit if given, otherwise the
// saved preference.
func resolveUnit(st *store.Store) money.Unit {
	if flagUnit != "" {
		return money.ParseUnit(flagUnit)
	}
	return money.ParseUnit(st.Pref(store.PrefUnit, string(money.UnitCompact)))
}

func resolveSort(st *store.Store) ledger.SortMode {
	if flagSort != "" {
		return ledger.ParseSortMode(flagSort)
	}
	return ledger.ParseSortMode(st.Pref(store.PrefSort, string(ledger.SortByName)))
}
