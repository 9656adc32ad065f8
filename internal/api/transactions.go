package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Edem2000/ledgerly/internal/model"
)

// CreateTransactionRequest is the payload for transaction creation.
// Amount is the positive magnitude; the server derives the sign from
// Type.
type CreateTransactionRequest struct {
	CategoryID string
	Title      string
	Type       model.TransactionType
	Amount     decimal.Decimal
}

// CreateTransaction records a transaction server-side and returns the
// created record.
func (c *Client) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (CreatedTransaction, error) {
	if !c.Authenticated() {
		return CreatedTransaction{}, ErrNoToken
	}

	body := struct {
		CategoryID string      `json:"categoryId"`
		Title      string      `json:"title"`
		Type       string      `json:"type"`
		Amount     json.Number `json:"amount"`
	}{
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Type:       string(req.Type),
		Amount:     json.Number(req.Amount.Abs().String()),
	}

	var resp struct {
		Transaction transactionDTO `json:"transaction"`
	}
	if err := c.do(ctx, http.MethodPost, "/transactions", body, &resp); err != nil {
		return CreatedTransaction{}, err
	}
	return resp.Transaction.toModel(), nil
}

// SuggestCategory asks the API for categories matching a transaction
// title.
func (c *Client) SuggestCategory(ctx context.Context, title string) ([]model.SuggestedCategory, error) {
	if !c.Authenticated() {
		return nil, ErrNoToken
	}

	body := struct {
		Title string `json:"title"`
	}{Title: title}

	var resp struct {
		Data []suggestionDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/transactions/suggest-category", body, &resp); err != nil {
		return nil, err
	}

	out := make([]model.SuggestedCategory, 0, len(resp.Data))
	for _, d := range resp.Data {
		out = append(out, d.toModel())
	}
	return out, nil
}
