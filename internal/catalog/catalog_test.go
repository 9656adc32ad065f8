package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Edem2000/ledgerly/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestApplyMapsBudgetsByTitle(t *testing.T) {
	c := New()
	period := model.Period{Year: 2025, Month: 10}

	c.Apply(period,
		[]model.Category{
			{ID: "c1", Title: "Groceries", Color: "#aaa"},
			{ID: "c2", Title: "Transport", Color: "#bbb"},
		},
		[]model.Budget{
			{ID: "b1", CategoryID: "c1", LimitAmount: dec("50")},
			{ID: "b2", CategoryID: "orphan", LimitAmount: dec("99")}, // no matching category, must be dropped
		},
	)

	budgets := c.Budgets()
	if len(budgets) != 1 {
		t.Fatalf("Budgets() = %v, want exactly the Groceries entry", budgets)
	}
	limit, ok := budgets.Limit("Groceries")
	if !ok || !limit.Equal(dec("50")) {
		t.Errorf("Limit(Groceries) = %v, %v, want 50, true", limit, ok)
	}
	if c.Period() != period {
		t.Errorf("Period() = %v, want %v", c.Period(), period)
	}
}

func TestApplyReplacesPreviousCache(t *testing.T) {
	c := New()
	c.Apply(model.Period{Year: 2025, Month: 9},
		[]model.Category{{ID: "c1", Title: "Old"}},
		[]model.Budget{{ID: "b1", CategoryID: "c1", LimitAmount: dec("10")}},
	)

	c.Apply(model.Period{Year: 2025, Month: 10},
		[]model.Category{{ID: "c2", Title: "New"}},
		nil,
	)

	if _, ok := c.ByTitle("Old"); ok {
		t.Error("ByTitle(Old) = true after re-apply, want replaced")
	}
	if _, ok := c.Budgets().Limit("Old"); ok {
		t.Error("stale limit survived re-apply")
	}
	if _, ok := c.ByTitle("New"); !ok {
		t.Error("ByTitle(New) = false, want cached")
	}
}

func TestClearEmptiesCache(t *testing.T) {
	c := New()
	c.Apply(model.Period{Year: 2025, Month: 10},
		[]model.Category{{ID: "c1", Title: "Groceries"}},
		[]model.Budget{{ID: "b1", CategoryID: "c1", LimitAmount: dec("50")}},
	)

	c.Clear()

	if got := c.Categories(); len(got) != 0 {
		t.Errorf("Categories() after Clear = %v, want empty", got)
	}
	if got := c.Budgets(); len(got) != 0 {
		t.Errorf("Budgets() after Clear = %v, want empty", got)
	}
}

func TestRegisterDedupesByID(t *testing.T) {
	c := New()
	c.Register(model.Category{ID: "c1", Title: "Groceries"})
	c.Register(model.Category{ID: "c1", Title: "Groceries again"})
	c.Register(model.Category{ID: "c2", Title: "Transport"})

	got := c.Categories()
	if len(got) != 2 {
		t.Fatalf("Categories() = %v, want 2 entries", got)
	}
	if got[0].Title != "Groceries" {
		t.Errorf("first entry = %q, want the original registration kept", got[0].Title)
	}
}

func TestPutAndRemoveLimit(t *testing.T) {
	c := New()
	c.Apply(model.Period{Year: 2025, Month: 10},
		[]model.Category{{ID: "c1", Title: "Groceries"}}, nil)

	c.PutLimit("Groceries", dec("50"))
	limit, ok := c.Budgets().Limit("Groceries")
	if !ok || !limit.Equal(dec("50")) {
		t.Fatalf("Limit(Groceries) = %v, %v, want 50, true", limit, ok)
	}

	c.PutLimit("Groceries", dec("75.5"))
	limit, _ = c.Budgets().Limit("Groceries")
	if !limit.Equal(dec("75.5")) {
		t.Errorf("updated limit = %v, want 75.5", limit)
	}

	c.RemoveLimit("Groceries")
	if _, ok := c.Budgets().Limit("Groceries"); ok {
		t.Error("limit still cached after RemoveLimit")
	}
}

func TestBudgetsReturnsCopy(t *testing.T) {
	c := New()
	c.PutLimit("Groceries", dec("50"))

	snapshot := c.Budgets()
	snapshot["Groceries"] = dec("999")

	limit, _ := c.Budgets().Limit("Groceries")
	if !limit.Equal(dec("50")) {
		t.Errorf("cached limit = %v after mutating a snapshot, want 50", limit)
	}
}
