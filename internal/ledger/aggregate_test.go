package ledger

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Edem2000/ledgerly/internal/model"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func tx(t *testing.T, date, amount string, typ model.TransactionType, category string) model.Transaction {
	t.Helper()
	return model.Transaction{Date: date, Amount: dec(t, amount), Type: typ, Category: category}
}

func TestAggregate_Totals(t *testing.T) {
	txs := []model.Transaction{
		tx(t, "2025-10-02", "1500", model.Income, "Salary"),
		tx(t, "2025-10-04", "-64.4", model.Expense, "Groceries"),
		tx(t, "2025-10-06", "-45.8", model.Expense, "Groceries"),
		tx(t, "2025-10-05", "-12.5", model.Expense, "Transport"),
		tx(t, "2025-11-01", "-68", model.Expense, "Groceries"), // other month
	}

	sum := Aggregate(txs, model.Period{Year: 2025, Month: 10})

	if !sum.Income.Equal(dec(t, "1500")) {
		t.Errorf("Income = %s, want 1500", sum.Income)
	}
	if !sum.Expense.Equal(dec(t, "122.7")) {
		t.Errorf("Expense = %s, want 122.7", sum.Expense)
	}
	if !sum.Net.Equal(dec(t, "1377.3")) {
		t.Errorf("Net = %s, want 1377.3", sum.Net)
	}
	if sum.IncomeCount != 1 || sum.ExpenseCount != 3 {
		t.Errorf("counts = %d income / %d expense, want 1/3", sum.IncomeCount, sum.ExpenseCount)
	}

	if got := sum.SpentByCategory["Groceries"]; !got.Equal(dec(t, "110.2")) {
		t.Errorf("SpentByCategory[Groceries] = %s, want 110.2", got)
	}
	if got := sum.SpentByCategory["Transport"]; !got.Equal(dec(t, "12.5")) {
		t.Errorf("SpentByCategory[Transport] = %s, want 12.5", got)
	}
	if _, ok := sum.SpentByCategory["Salary"]; ok {
		t.Error("income category leaked into spend map")
	}
}

func TestAggregate_NetIsIncomeMinusExpense(t *testing.T) {
	txs := []model.Transaction{
		tx(t, "2025-10-01", "0.1", model.Income, "Other"),
		tx(t, "2025-10-02", "0.2", model.Income, "Other"),
		tx(t, "2025-10-03", "-0.3", model.Expense, "Other"),
	}

	sum := Aggregate(txs, model.Period{Year: 2025, Month: 10})
	if !sum.Income.Sub(sum.Expense).Equal(sum.Net) {
		t.Errorf("Income(%s) - Expense(%s) != Net(%s)", sum.Income, sum.Expense, sum.Net)
	}
	if !sum.Net.Equal(decimal.Zero) {
		t.Errorf("Net = %s, want exactly 0 (no float drift)", sum.Net)
	}
}

func TestAggregate_EmptyPeriod(t *testing.T) {
	txs := []model.Transaction{
		tx(t, "2025-10-02", "1500", model.Income, "Salary"),
	}

	sum := Aggregate(txs, model.Period{Year: 2024, Month: 1})

	if !sum.Income.IsZero() || !sum.Expense.IsZero() || !sum.Net.IsZero() {
		t.Errorf("empty period totals = %s/%s/%s, want all zero", sum.Income, sum.Expense, sum.Net)
	}
	if len(sum.SpentByCategory) != 0 {
		t.Errorf("empty period spend map has %d entries", len(sum.SpentByCategory))
	}
}

func TestAggregate_SkipsUnparseableDates(t *testing.T) {
	txs := []model.Transaction{
		tx(t, "bogus", "-10", model.Expense, "Other"),
		tx(t, "2025-10-02", "-5", model.Expense, "Other"),
	}

	sum := Aggregate(txs, model.Period{Year: 2025, Month: 10})
	if !sum.Expense.Equal(dec(t, "5")) {
		t.Errorf("Expense = %s, want 5", sum.Expense)
	}
}
