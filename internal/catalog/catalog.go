// Package catalog caches server-known categories and budget limits for
// synchronous reads from the UI event loop. The catalog performs no
// I/O: callers fetch through the API client on their own goroutine and
// apply the results here, so every cache mutation happens inside a
// single event-loop turn.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/Edem2000/ledgerly/internal/model"
)

// Catalog is the local cache of categories and the active period's
// budget limits. The cache is the source of truth for display; the API
// stays authoritative — a failed load empties the cache rather than
// leaving it stale-filled.
type Catalog struct {
	period     model.Period
	categories []model.Category
	budgets    model.BudgetMap
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{budgets: model.BudgetMap{}}
}

// Apply replaces the cache with a fetch result for the given period.
// Budgets arrive keyed by categoryId and are re-keyed onto category
// titles; entries referencing a category unknown to the server's own
// list are dropped.
func (c *Catalog) Apply(period model.Period, categories []model.Category, budgets []model.Budget) {
	byID := make(map[string]string, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat.Title
	}

	budgetMap := model.BudgetMap{}
	for _, b := range budgets {
		title, ok := byID[b.CategoryID]
		if !ok {
			continue
		}
		budgetMap[title] = b.LimitAmount
	}

	c.period = period
	c.categories = append([]model.Category(nil), categories...)
	c.budgets = budgetMap
}

// Clear empties both caches after a failed load.
func (c *Catalog) Clear() {
	c.categories = nil
	c.budgets = model.BudgetMap{}
}

// Period returns the period the budget cache was applied for.
func (c *Catalog) Period() model.Period {
	return c.period
}

// Categories returns the cached category list.
func (c *Catalog) Categories() []model.Category {
	return append([]model.Category(nil), c.categories...)
}

// Budgets returns a copy of the title-keyed budget map.
func (c *Catalog) Budgets() model.BudgetMap {
	out := make(model.BudgetMap, len(c.budgets))
	for k, v := range c.budgets {
		out[k] = v
	}
	return out
}

// ByTitle finds a cached category by exact title.
func (c *Catalog) ByTitle(title string) (model.Category, bool) {
	for _, cat := range c.categories {
		if cat.Title == title {
			return cat, true
		}
	}
	return model.Category{}, false
}

// Register adds a category to the cache unless its ID is already known.
func (c *Catalog) Register(cat model.Category) {
	for _, existing := range c.categories {
		if existing.ID == cat.ID {
			return
		}
	}
	c.categories = append(c.categories, cat)
}

// PutLimit records a saved limit for a category title.
func (c *Catalog) PutLimit(title string, limit decimal.Decimal) {
	c.budgets[title] = limit
}

// RemoveLimit drops the cached limit for a category title.
func (c *Catalog) RemoveLimit(title string) {
	delete(c.budgets, title)
}
