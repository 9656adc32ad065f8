package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/Edem2000/ledgerly/internal/model"
)

// Summary holds the aggregate for one period. Recomputed on every
// render, never persisted.
type Summary struct {
	Income       decimal.Decimal
	Expense      decimal.Decimal // positive magnitude
	Net          decimal.Decimal
	IncomeCount  int
	ExpenseCount int

	// SpentByCategory maps category title to positive expense total.
	// Categories with no spend this period are absent, not zero.
	SpentByCategory map[string]decimal.Decimal
}

// Aggregate computes the monthly summary over the transactions that
// fall in the given period. An empty period yields zero totals and an
// empty spend map.
func Aggregate(txs []model.Transaction, period model.Period) Summary {
	sum := Summary{SpentByCategory: make(map[string]decimal.Decimal)}

	var negSum decimal.Decimal
	for _, tx := range txs {
		if tx.Period() != period {
			continue
		}
		switch {
		case tx.Amount.IsPositive():
			sum.Income = sum.Income.Add(tx.Amount)
			sum.IncomeCount++
		case tx.Amount.IsNegative():
			// Raw signed amounts are summed first; the magnitude is
			// taken once so Net stays exactly Income - Expense.
			negSum = negSum.Add(tx.Amount)
			sum.ExpenseCount++
			sum.SpentByCategory[tx.Category] = sum.SpentByCategory[tx.Category].Add(tx.Amount.Abs())
		}
	}

	sum.Expense = negSum.Neg()
	sum.Net = sum.Income.Sub(sum.Expense)
	return sum
}
