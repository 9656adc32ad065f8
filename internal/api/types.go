package api

import (
	"github.com/shopspring/decimal"

	"github.com/Edem2000/ledgerly/internal/model"
)

// categoryDTO is the wire shape of a category.
type categoryDTO struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Color string  `json:"color"`
	Icon  *string `json:"icon"`
}

func (d categoryDTO) toModel() model.Category {
	c := model.Category{ID: d.ID, Title: d.Title, Color: d.Color}
	if d.Icon != nil {
		c.Icon = *d.Icon
	}
	return c
}

// budgetDTO is the wire shape of a per-category monthly limit.
type budgetDTO struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"categoryId"`
	LimitAmount decimal.Decimal `json:"limitAmount"`
}

// suggestionDTO is one AI category suggestion.
type suggestionDTO struct {
	ID          *string `json:"id"`
	Title       string  `json:"title"`
	AISuggested bool    `json:"aiSuggested"`
	IsNew       bool    `json:"isNew"`
}

func (d suggestionDTO) toModel() model.SuggestedCategory {
	s := model.SuggestedCategory{Title: d.Title, AISuggested: d.AISuggested, IsNew: d.IsNew}
	if d.ID != nil {
		s.ID = *d.ID
	}
	return s
}

// userDTO is the wire shape of a user profile.
type userDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Language  string `json:"language"`
}

func (d userDTO) toModel() model.User {
	return model.User{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     d.Phone,
		Language:  d.Language,
	}
}

// transactionDTO is the wire shape of a created transaction.
type transactionDTO struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"categoryId"`
	Title      string          `json:"title"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt string          `json:"occurredAt"`
}

// CreatedTransaction is the server's record of a newly created
// transaction. Amount is the positive magnitude as sent by the server;
// callers re-sign it from Type before use.
type CreatedTransaction struct {
	ID         string
	CategoryID string
	Title      string
	Type       model.TransactionType
	Amount     decimal.Decimal
	OccurredAt string // RFC 3339 or empty
}

func (d transactionDTO) toModel() CreatedTransaction {
	return CreatedTransaction{
		ID:         d.ID,
		CategoryID: d.CategoryID,
		Title:      d.Title,
		Type:       model.TransactionType(d.Type),
		Amount:     d.Amount,
		OccurredAt: d.OccurredAt,
	}
}
