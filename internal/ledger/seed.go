package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/Edem2000/ledgerly/internal/model"
)

// Baseline returns the fixed demo transaction set. It is immutable for
// the session; user-added entries live alongside it in the Store.
func Baseline() []model.Transaction {
	return []model.Transaction{
		seedTx("2025-10-02", "1500.0", model.Income, "Salary", "Employer Inc."),
		seedTx("2025-10-03", "-480.0", model.Expense, "Rent", "Landlord"),
		seedTx("2025-10-04", "-64.4", model.Expense, "Groceries", "Supermarket"),
		seedTx("2025-10-05", "-12.5", model.Expense, "Transport", "Metro"),
		seedTx("2025-10-05", "-21.9", model.Expense, "Entertainment", "Cinema"),
		seedTx("2025-10-06", "-45.8", model.Expense, "Groceries", "Farmer Market"),
		seedTx("2025-10-08", "-14.2", model.Expense, "Transport", "Taxi"),
		seedTx("2025-10-10", "-57.6", model.Expense, "Utilities", "Energy Co."),
		seedTx("2025-10-12", "120.0", model.Income, "Other", "Freelance"),
		seedTx("2025-10-13", "-23.1", model.Expense, "Groceries", "Mini-Mart"),
		seedTx("2025-10-15", "-18.0", model.Expense, "Entertainment", "Spotify"),
		seedTx("2025-10-18", "-6.8", model.Expense, "Other", "Coffee"),
		seedTx("2025-10-20", "-74.2", model.Expense, "Groceries", "Supermarket"),
		seedTx("2025-10-22", "-12.2", model.Expense, "Transport", "Bus"),
		seedTx("2025-10-24", "-95.0", model.Expense, "Utilities", "Water Co."),
		seedTx("2025-10-26", "80.0", model.Income, "Other", "FB Marketplace"),
		seedTx("2025-10-28", "-43.9", model.Expense, "Groceries", "Mini-Mart"),
		seedTx("2025-10-28", "-12.5", model.Expense, "Transport", "Metro"),
		seedTx("2025-10-30", "-25.0", model.Expense, "Entertainment", "Movies"),
		seedTx("2025-11-01", "-68.0", model.Expense, "Groceries", "Supermarket"),
		seedTx("2025-11-01", "50.0", model.Income, "Other", "Gift"),
	}
}

func seedTx(date, amount string, typ model.TransactionType, category, title string) model.Transaction {
	return model.Transaction{
		Date:     date,
		Amount:   decimal.RequireFromString(amount),
		Type:     typ,
		Category: category,
		Title:    title,
	}
}
