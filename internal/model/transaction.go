// Package model defines domain types for ledgerly transactions, categories, and budgets.
package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionType discriminates income from expense entries.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Valid reports whether t is one of the two known types.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

var (
	// ErrMissingDate indicates a transaction without a calendar date.
	ErrMissingDate = errors.New("model: transaction date required")
	// ErrInvalidType indicates an unknown transaction type.
	ErrInvalidType = errors.New("model: invalid transaction type")
	// ErrZeroAmount indicates a zero transaction amount.
	ErrZeroAmount = errors.New("model: transaction amount must be non-zero")
)

// Transaction is a single dated money movement. Amount is in thousands of
// UZS: positive for income, negative for expense. The sign always agrees
// with Type — construct through NewTransaction to keep that invariant.
type Transaction struct {
	Date     string          `json:"date"` // YYYY-MM-DD
	Amount   decimal.Decimal `json:"amount"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Title    string          `json:"title,omitempty"`
}

// NewTransaction builds a transaction, forcing the amount sign to match
// the type regardless of the sign of magnitude.
func NewTransaction(date string, magnitude decimal.Decimal, typ TransactionType, category, title string) (Transaction, error) {
	if date == "" {
		return Transaction{}, ErrMissingDate
	}
	if !typ.Valid() {
		return Transaction{}, fmt.Errorf("%w: %q", ErrInvalidType, typ)
	}
	if magnitude.IsZero() {
		return Transaction{}, ErrZeroAmount
	}

	amount := magnitude.Abs()
	if typ == Expense {
		amount = amount.Neg()
	}

	return Transaction{
		Date:     date,
		Amount:   amount,
		Type:     typ,
		Category: category,
		Title:    title,
	}, nil
}

// CheckSign verifies the sign/type invariant on an already-built transaction.
func (t Transaction) CheckSign() error {
	switch t.Type {
	case Income:
		if !t.Amount.IsPositive() {
			return fmt.Errorf("model: income amount %s is not positive", t.Amount)
		}
	case Expense:
		if !t.Amount.IsNegative() {
			return fmt.Errorf("model: expense amount %s is not negative", t.Amount)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidType, t.Type)
	}
	return nil
}

// Period returns the year-month period the transaction falls in.
// A malformed date yields the zero Period.
func (t Transaction) Period() Period {
	p, _ := PeriodOfDate(t.Date)
	return p
}
