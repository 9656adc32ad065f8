package ledger

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Edem2000/ledgerly/internal/model"
)

func spendMap(t *testing.T, pairs map[string]string) map[string]decimal.Decimal {
	t.Helper()
	m := make(map[string]decimal.Decimal, len(pairs))
	for k, v := range pairs {
		m[k] = dec(t, v)
	}
	return m
}

func budgetMap(t *testing.T, pairs map[string]string) model.BudgetMap {
	t.Helper()
	m := make(model.BudgetMap, len(pairs))
	for k, v := range pairs {
		m[k] = dec(t, v)
	}
	return m
}

func statusFor(t *testing.T, list []CategoryStatus, title string) CategoryStatus {
	t.Helper()
	for _, cs := range list {
		if cs.Title == title {
			return cs
		}
	}
	t.Fatalf("category %q not in reconciled list %v", title, titles(list))
	return CategoryStatus{}
}

func titles(list []CategoryStatus) []string {
	out := make([]string, len(list))
	for i, cs := range list {
		out[i] = cs.Title
	}
	return out
}

func TestReconcile_UniverseIsUnionOfSources(t *testing.T) {
	cats := []model.Category{{ID: "c1", Title: "Rent"}}
	budgets := budgetMap(t, map[string]string{"Groceries": "300"})
	spent := spendMap(t, map[string]string{"Transport": "12.5"})

	list := Reconcile(cats, budgets, spent, SortByName)

	if len(list) != 3 {
		t.Fatalf("universe size = %d (%v), want 3", len(list), titles(list))
	}
	statusFor(t, list, "Rent")
	statusFor(t, list, "Groceries")
	statusFor(t, list, "Transport")
}

func TestReconcile_OverLimit(t *testing.T) {
	budgets := budgetMap(t, map[string]string{"Groceries": "50"})
	spent := spendMap(t, map[string]string{"Groceries": "64.4"})

	list := Reconcile(nil, budgets, spent, SortByName)
	cs := statusFor(t, list, "Groceries")

	if !cs.HasLimit {
		t.Error("HasLimit = false, want true")
	}
	if !cs.Spent.Equal(dec(t, "64.4")) {
		t.Errorf("Spent = %s, want 64.4", cs.Spent)
	}
	if !cs.Over {
		t.Error("Over = false, want true")
	}
	if cs.State != StateBad {
		t.Errorf("State = %s, want bad", cs.State)
	}
	if cs.Percent < 128.7 || cs.Percent > 128.9 {
		t.Errorf("Percent = %.2f, want ~128.8 (unclamped)", cs.Percent)
	}
	if cs.BarFill != 100 {
		t.Errorf("BarFill = %.2f, want clamped 100", cs.BarFill)
	}
}

func TestReconcile_NoLimitNeverOver(t *testing.T) {
	spent := spendMap(t, map[string]string{"Travel": "9999"})

	list := Reconcile(nil, model.BudgetMap{}, spent, SortByName)
	cs := statusFor(t, list, "Travel")

	if cs.HasLimit {
		t.Error("HasLimit = true for unbudgeted category")
	}
	if cs.Over {
		t.Error("Over = true for unbudgeted category")
	}
	if cs.State != StateWarn {
		t.Errorf("State = %s, want warn (no limit)", cs.State)
	}
	if cs.Percent != 0 {
		t.Errorf("Percent = %.2f, want 0", cs.Percent)
	}
}

func TestReconcile_ZeroLimitZeroSpend(t *testing.T) {
	budgets := budgetMap(t, map[string]string{"Misc": "0"})

	list := Reconcile(nil, budgets, nil, SortByName)
	cs := statusFor(t, list, "Misc")

	if cs.Percent != 0 {
		t.Errorf("Percent = %.2f, want 0 (no division by zero)", cs.Percent)
	}
	if cs.Over {
		t.Error("Over = true with zero limit and zero spend")
	}
	if cs.State != StateGood {
		t.Errorf("State = %s, want good", cs.State)
	}
}

func TestReconcile_WarnAbove80Percent(t *testing.T) {
	budgets := budgetMap(t, map[string]string{"Utilities": "100"})
	spent := spendMap(t, map[string]string{"Utilities": "85"})

	list := Reconcile(nil, budgets, spent, SortByName)
	if cs := statusFor(t, list, "Utilities"); cs.State != StateWarn {
		t.Errorf("State at 85%% = %s, want warn", cs.State)
	}

	spent = spendMap(t, map[string]string{"Utilities": "50"})
	list = Reconcile(nil, budgets, spent, SortByName)
	if cs := statusFor(t, list, "Utilities"); cs.State != StateGood {
		t.Errorf("State at 50%% = %s, want good", cs.State)
	}
}

func TestReconcile_SortByName(t *testing.T) {
	spent := spendMap(t, map[string]string{"transport": "1", "Groceries": "2", "entertainment": "3"})

	list := Reconcile(nil, model.BudgetMap{}, spent, SortByName)

	want := []string{"entertainment", "Groceries", "transport"}
	got := titles(list)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("name sort = %v, want %v (case-insensitive locale order)", got, want)
		}
	}
}

func TestReconcile_SortBySpent(t *testing.T) {
	spent := spendMap(t, map[string]string{"A": "10", "B": "30", "C": "20"})

	list := Reconcile(nil, model.BudgetMap{}, spent, SortBySpent)

	got := titles(list)
	want := []string{"B", "C", "A"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("spent sort = %v, want %v", got, want)
		}
	}
}

func TestReconcile_SortByOver(t *testing.T) {
	budgets := budgetMap(t, map[string]string{"Zed": "10", "Alpha": "10", "Mid": "100"})
	spent := spendMap(t, map[string]string{"Zed": "50", "Alpha": "50", "Mid": "5", "Free": "1"})

	list := Reconcile(nil, budgets, spent, SortByOver)

	got := titles(list)
	want := []string{"Alpha", "Zed", "Free", "Mid"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("over sort = %v, want %v", got, want)
		}
	}

	// All over entries precede all non-over entries.
	sawNonOver := false
	for _, cs := range list {
		if !cs.Over {
			sawNonOver = true
		} else if sawNonOver {
			t.Fatalf("over entry after non-over entry: %v", got)
		}
	}
}

func TestReconcile_IgnoresZeroSpendTitles(t *testing.T) {
	spent := spendMap(t, map[string]string{"Ghost": "0"})

	list := Reconcile(nil, model.BudgetMap{}, spent, SortByName)
	if len(list) != 0 {
		t.Errorf("zero-spend-only category appeared: %v", titles(list))
	}
}

func TestParseSortMode(t *testing.T) {
	if ParseSortMode("spent") != SortBySpent {
		t.Error("spent not recognized")
	}
	if ParseSortMode("over") != SortByOver {
		t.Error("over not recognized")
	}
	if ParseSortMode("junk") != SortByName {
		t.Error("unknown mode should default to name")
	}
}
