package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Edem2000/ledgerly/internal/model"
)

// Categories lists all server-known categories.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	if !c.Authenticated() {
		return nil, ErrNoToken
	}

	var resp struct {
		Data []categoryDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &resp); err != nil {
		return nil, err
	}

	out := make([]model.Category, 0, len(resp.Data))
	for _, d := range resp.Data {
		out = append(out, d.toModel())
	}
	return out, nil
}

// CreateCategory provisions a new category server-side.
func (c *Client) CreateCategory(ctx context.Context, title, color, icon string) (model.Category, error) {
	if !c.Authenticated() {
		return model.Category{}, ErrNoToken
	}

	req := struct {
		Title string `json:"title"`
		Color string `json:"color"`
		Icon  string `json:"icon,omitempty"`
	}{Title: title, Color: color, Icon: icon}

	var resp struct {
		Category categoryDTO `json:"category"`
	}
	if err := c.do(ctx, http.MethodPost, "/categories", req, &resp); err != nil {
		return model.Category{}, err
	}
	return resp.Category.toModel(), nil
}

// Budgets lists the per-category limits set for one period.
func (c *Client) Budgets(ctx context.Context, period model.Period) ([]model.Budget, error) {
	if !c.Authenticated() {
		return nil, ErrNoToken
	}

	path := fmt.Sprintf("/category-budgets?year=%d&month=%d", period.Year, period.Month)
	var resp struct {
		Data []budgetDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	out := make([]model.Budget, 0, len(resp.Data))
	for _, d := range resp.Data {
		out = append(out, model.Budget{
			ID:          d.ID,
			CategoryID:  d.CategoryID,
			LimitAmount: d.LimitAmount,
			Period:      period,
		})
	}
	return out, nil
}

// limitBody carries limitAmount as a bare JSON number.
type limitBody struct {
	LimitAmount json.Number `json:"limitAmount"`
}

func budgetPath(categoryID string, period model.Period) string {
	return fmt.Sprintf("/categories/%s/budget?year=%d&month=%d", categoryID, period.Year, period.Month)
}

// CreateBudget sets a monthly limit for a category.
func (c *Client) CreateBudget(ctx context.Context, categoryID string, period model.Period, limit decimal.Decimal) (model.Budget, error) {
	return c.putBudget(ctx, http.MethodPost, categoryID, period, limit)
}

// UpdateBudget replaces an existing monthly limit for a category.
func (c *Client) UpdateBudget(ctx context.Context, categoryID string, period model.Period, limit decimal.Decimal) (model.Budget, error) {
	return c.putBudget(ctx, http.MethodPut, categoryID, period, limit)
}

func (c *Client) putBudget(ctx context.Context, method, categoryID string, period model.Period, limit decimal.Decimal) (model.Budget, error) {
	if !c.Authenticated() {
		return model.Budget{}, ErrNoToken
	}

	var resp budgetDTO
	err := c.do(ctx, method, budgetPath(categoryID, period), limitBody{LimitAmount: json.Number(limit.String())}, &resp)
	if err != nil {
		return model.Budget{}, err
	}
	return model.Budget{
		ID:          resp.ID,
		CategoryID:  resp.CategoryID,
		LimitAmount: resp.LimitAmount,
		Period:      period,
	}, nil
}

// DeleteBudget removes the monthly limit for a category.
func (c *Client) DeleteBudget(ctx context.Context, categoryID string, period model.Period) error {
	if !c.Authenticated() {
		return ErrNoToken
	}
	return c.do(ctx, http.MethodDelete, budgetPath(categoryID, period), nil, nil)
}
