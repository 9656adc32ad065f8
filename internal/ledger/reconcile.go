package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Edem2000/ledgerly/internal/model"
)

// SortMode selects the ordering of the reconciled budget list.
type SortMode string

const (
	SortByName  SortMode = "name"  // lexicographic by title
	SortBySpent SortMode = "spent" // descending by spent amount
	SortByOver  SortMode = "over"  // over-limit first, then by title
)

// ParseSortMode maps a stored string to a SortMode, defaulting to name.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortBySpent, SortByOver:
		return SortMode(s)
	default:
		return SortByName
	}
}

// BudgetState classifies a category's standing against its limit.
type BudgetState string

const (
	StateGood BudgetState = "good"
	StateWarn BudgetState = "warn"
	StateBad  BudgetState = "bad"
)

// warnThreshold is the unclamped percentage above which a within-limit
// category is flagged.
const warnThreshold = 80.0

// CategoryStatus is one reconciled row of the budget display list.
type CategoryStatus struct {
	Title    string
	HasLimit bool
	Limit    decimal.Decimal // meaningful only when HasLimit
	Spent    decimal.Decimal
	Percent  float64 // unclamped spent/limit*100, 0 when no positive limit
	BarFill  float64 // Percent clamped to [0,100], for progress width
	Over     bool
	State    BudgetState
}

// Reconcile merges server-known categories, the period's budget limits,
// and observed spend into one ordered, de-duplicated display list.
func Reconcile(categories []model.Category, budgets model.BudgetMap, spent map[string]decimal.Decimal, mode SortMode) []CategoryStatus {
	// Category universe: known titles, budgeted titles, titles with spend.
	seen := make(map[string]struct{})
	var titles []string
	add := func(title string) {
		if title == "" {
			return
		}
		if _, ok := seen[title]; ok {
			return
		}
		seen[title] = struct{}{}
		titles = append(titles, title)
	}
	for _, c := range categories {
		add(c.Title)
	}
	for title := range budgets {
		add(title)
	}
	for title, amount := range spent {
		if amount.IsZero() {
			continue
		}
		add(title)
	}

	statuses := make([]CategoryStatus, 0, len(titles))
	for _, title := range titles {
		cs := CategoryStatus{Title: title, Spent: spent[title]}
		cs.Limit, cs.HasLimit = budgets.Limit(title)

		if cs.HasLimit && cs.Limit.IsPositive() {
			cs.Percent, _ = cs.Spent.Div(cs.Limit).Mul(decimal.NewFromInt(100)).Float64()
		}
		cs.BarFill = cs.Percent
		if cs.BarFill > 100 {
			cs.BarFill = 100
		}
		if cs.BarFill < 0 {
			cs.BarFill = 0
		}

		cs.Over = cs.HasLimit && cs.Spent.GreaterThan(cs.Limit)
		switch {
		case !cs.HasLimit:
			cs.State = StateWarn
		case cs.Over:
			cs.State = StateBad
		case cs.Percent > warnThreshold:
			cs.State = StateWarn
		default:
			cs.State = StateGood
		}

		statuses = append(statuses, cs)
	}

	coll := collate.New(language.English)
	switch mode {
	case SortBySpent:
		sort.Slice(statuses, func(i, j int) bool {
			return statuses[i].Spent.GreaterThan(statuses[j].Spent)
		})
	case SortByOver:
		sort.Slice(statuses, func(i, j int) bool {
			if statuses[i].Over != statuses[j].Over {
				return statuses[i].Over
			}
			return coll.CompareString(statuses[i].Title, statuses[j].Title) < 0
		})
	default:
		sort.Slice(statuses, func(i, j int) bool {
			return coll.CompareString(statuses[i].Title, statuses[j].Title) < 0
		})
	}

	return statuses
}
