package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func TestNewTransaction_SignFollowsType(t *testing.T) {
	tx, err := NewTransaction("2025-10-04", dec(t, "64.4"), Expense, "Groceries", "Supermarket")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tx.Amount.Equal(dec(t, "-64.4")) {
		t.Errorf("expense amount = %s, want -64.4", tx.Amount)
	}
	if err := tx.CheckSign(); err != nil {
		t.Errorf("CheckSign: %v", err)
	}

	tx, err = NewTransaction("2025-10-02", dec(t, "-1500"), Income, "Salary", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tx.Amount.Equal(dec(t, "1500")) {
		t.Errorf("income amount = %s, want 1500 (sign forced positive)", tx.Amount)
	}
	if err := tx.CheckSign(); err != nil {
		t.Errorf("CheckSign: %v", err)
	}
}

func TestNewTransaction_Rejections(t *testing.T) {
	if _, err := NewTransaction("", dec(t, "10"), Expense, "Other", ""); !errors.Is(err, ErrMissingDate) {
		t.Errorf("empty date error = %v, want ErrMissingDate", err)
	}
	if _, err := NewTransaction("2025-10-01", dec(t, "0"), Expense, "Other", ""); !errors.Is(err, ErrZeroAmount) {
		t.Errorf("zero amount error = %v, want ErrZeroAmount", err)
	}
	if _, err := NewTransaction("2025-10-01", dec(t, "10"), "transfer", "Other", ""); !errors.Is(err, ErrInvalidType) {
		t.Errorf("bad type error = %v, want ErrInvalidType", err)
	}
}

func TestCheckSign_DetectsDisagreement(t *testing.T) {
	tx := Transaction{Date: "2025-10-01", Amount: dec(t, "5"), Type: Expense, Category: "Other"}
	if err := tx.CheckSign(); err == nil {
		t.Error("positive expense passed CheckSign")
	}

	tx = Transaction{Date: "2025-10-01", Amount: dec(t, "-5"), Type: Income, Category: "Other"}
	if err := tx.CheckSign(); err == nil {
		t.Error("negative income passed CheckSign")
	}
}

func TestTransactionPeriod(t *testing.T) {
	tx := Transaction{Date: "2025-11-01", Amount: dec(t, "-68"), Type: Expense, Category: "Groceries"}
	if got := tx.Period(); (got != Period{Year: 2025, Month: 11}) {
		t.Errorf("Period() = %+v, want 2025-11", got)
	}

	tx.Date = "garbage"
	if got := tx.Period(); !got.IsZero() {
		t.Errorf("Period() of bad date = %+v, want zero", got)
	}
}
