package model

import "github.com/shopspring/decimal"

// Budget is a per-category monthly spending limit.
type Budget struct {
	ID          string
	CategoryID  string
	LimitAmount decimal.Decimal
	Period      Period
}

// BudgetMap maps category title to its limit for one period. A title
// absent from the map has no limit set — never a zero or sentinel value.
type BudgetMap map[string]decimal.Decimal

// Limit returns the limit for a category title and whether one is set.
func (m BudgetMap) Limit(title string) (decimal.Decimal, bool) {
	limit, ok := m[title]
	return limit, ok
}
