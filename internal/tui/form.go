package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/Edem2000/ledgerly/internal/api"
	"github.com/Edem2000/ledgerly/internal/model"
	"github.com/Edem2000/ledgerly/internal/money"
	"github.com/Edem2000/ledgerly/internal/tui/components"
)

type formKind int

const (
	formNone formKind = iota
	formTxDetails
	formTxCategory
	formBudget
	formBudgetDelete
)

// Category choice encoding for the select options.
const (
	choiceNewCategory   = "new"
	choiceSuggestPrefix = "suggest:"
	choiceTitlePrefix   = "title:"
)

// defaultCategory is used when the user picks nothing specific.
const defaultCategory = "Other"

type txFormValues struct {
	Title  string
	Amount string
	Type   string
	Day    string
}

type categoryFormValues struct {
	Choice  string
	NewName string
}

type budgetFormValues struct {
	Category    string
	NewCategory string
	Limit       string
}

// openTxForm starts the add-transaction flow with the details step.
func (a App) openTxForm() (tea.Model, tea.Cmd) {
	a.txVals = txFormValues{
		Type: string(model.Expense),
		Day:  strconv.Itoa(defaultDay(a.period)),
	}

	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&a.txVals.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Amount (thousands of UZS)").
				Value(&a.txVals.Amount).
				Validate(func(s string) error {
					d, err := money.Parse(s)
					if err != nil {
						return errors.New("enter a number, e.g. 12.5")
					}
					if d.IsZero() {
						return errors.New("amount must be non-zero")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Expense", string(model.Expense)),
					huh.NewOption("Income", string(model.Income)),
				).
				Value(&a.txVals.Type),
			huh.NewInput().
				Title(fmt.Sprintf("Day of %s", monthLabel(a.period))).
				Value(&a.txVals.Day).
				Validate(func(s string) error {
					day, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || day < 1 || day > 31 {
						return errors.New("enter a day number")
					}
					return nil
				}),
		),
	).WithShowHelp(true)
	if a.width > 0 {
		a.form = a.form.WithWidth(min(a.width-4, 70))
	}
	a.formKind = formTxDetails
	return a, a.form.Init()
}

// openCategoryForm starts the category step, listing any fresh
// suggestions first.
func (a App) openCategoryForm() (tea.Model, tea.Cmd) {
	a.catVals = categoryFormValues{}

	var options []huh.Option[string]
	for i, s := range a.suggestions {
		label := s.Title
		if s.AISuggested {
			label = "✦ " + label
			if s.IsNew {
				label += " (new)"
			}
		}
		options = append(options, huh.NewOption(label, choiceSuggestPrefix+strconv.Itoa(i)))
	}
	seen := map[string]bool{}
	for _, s := range a.suggestions {
		seen[s.Title] = true
	}
	for _, cat := range a.cat.Categories() {
		if seen[cat.Title] {
			continue
		}
		seen[cat.Title] = true
		options = append(options, huh.NewOption(cat.Title, choiceTitlePrefix+cat.Title))
	}
	if !seen[defaultCategory] {
		options = append(options, huh.NewOption(defaultCategory, choiceTitlePrefix+defaultCategory))
	}
	options = append(options, huh.NewOption("New category…", choiceNewCategory))

	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&a.catVals.Choice),
			huh.NewInput().
				Title("New category name").
				Description("Only used with New category…").
				Value(&a.catVals.NewName).
				Validate(func(s string) error {
					if a.catVals.Choice == choiceNewCategory && strings.TrimSpace(s) == "" {
						return errors.New("name the new category")
					}
					return nil
				}),
		),
	).WithShowHelp(true)
	if a.width > 0 {
		a.form = a.form.WithWidth(min(a.width-4, 70))
	}
	a.formKind = formTxCategory
	return a, a.form.Init()
}

// openBudgetForm starts the set-limit form, optionally prefilled with
// the selected category and its current limit.
func (a App) openBudgetForm(category, limit string) (tea.Model, tea.Cmd) {
	a.budVals = budgetFormValues{Limit: limit}

	var options []huh.Option[string]
	seen := map[string]bool{}
	for _, st := range a.statuses {
		seen[st.Title] = true
		options = append(options, huh.NewOption(st.Title, st.Title))
	}
	if category != "" && !seen[category] {
		options = append(options, huh.NewOption(category, category))
	}
	options = append(options, huh.NewOption("New category…", choiceNewCategory))
	if category != "" {
		a.budVals.Category = category
	}

	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&a.budVals.Category),
			huh.NewInput().
				Title("New category name").
				Description("Only used with New category…").
				Value(&a.budVals.NewCategory).
				Validate(func(s string) error {
					if a.budVals.Category == choiceNewCategory && strings.TrimSpace(s) == "" {
						return errors.New("name the new category")
					}
					return nil
				}),
			huh.NewInput().
				Title("Monthly limit (thousands of UZS)").
				Value(&a.budVals.Limit).
				Validate(func(s string) error {
					d, err := money.Parse(s)
					if err != nil || !d.IsPositive() {
						return errors.New("enter a positive number")
					}
					return nil
				}),
		),
	).WithShowHelp(true)
	if a.width > 0 {
		a.form = a.form.WithWidth(min(a.width-4, 70))
	}
	a.formKind = formBudget
	return a, a.form.Init()
}

// openDeleteLimitForm asks for explicit confirmation before removing a
// category's limit.
func (a App) openDeleteLimitForm(category string) (tea.Model, tea.Cmd) {
	a.deleteTarget = category
	a.confirmVal = false

	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete the limit for %s?", category)).
				Description("Spending keeps being tracked without a limit.").
				Affirmative("Delete").
				Negative("Keep").
				Value(&a.confirmVal),
		),
	).WithShowHelp(true)
	a.formKind = formBudgetDelete
	return a, a.form.Init()
}

// updateForm forwards a message to the active form and handles
// completion or abort.
func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		kind := a.formKind
		a.form = nil
		a.formKind = formNone
		return a.formCompleted(kind)

	case huh.StateAborted:
		if a.formKind == formTxCategory {
			// A response still in flight must not reopen the form.
			a.gate.Reset()
			a.suggestions = nil
		}
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	return a, cmd
}

func (a App) formCompleted(kind formKind) (tea.Model, tea.Cmd) {
	switch kind {
	case formTxDetails:
		day, _ := strconv.Atoi(strings.TrimSpace(a.txVals.Day))
		a.pending = pendingTx{
			title:  strings.TrimSpace(a.txVals.Title),
			amount: a.txVals.Amount,
			typ:    model.TransactionType(a.txVals.Type),
			date:   a.period.DateFor(day),
		}

		if a.client.Authenticated() {
			a.suggesting = true
			ticket := a.gate.Begin()
			return a, tea.Batch(
				suggestCmd(a.client, a.pending.title, ticket),
				a.spinner.Tick,
			)
		}
		a.suggestions = nil
		return a.openCategoryForm()

	case formTxCategory:
		pick := a.pickFromChoice(a.catVals.Choice, strings.TrimSpace(a.catVals.NewName))
		a.suggestions = nil
		return a, createTxCmd(a.client, a.pending, pick)

	case formBudget:
		name := a.budVals.Category
		if name == choiceNewCategory {
			name = strings.TrimSpace(a.budVals.NewCategory)
		}
		limit, err := money.Parse(a.budVals.Limit)
		if err != nil {
			return a.withToast("Something went wrong.", components.ToastError)
		}
		pick := a.pickCategory(name)
		_, existed := a.cat.Budgets().Limit(pick.category.Title)
		return a, saveLimitCmd(a.client, a.period, pick, limit, existed)

	case formBudgetDelete:
		target := a.deleteTarget
		a.deleteTarget = ""
		if !a.confirmVal {
			return a, nil
		}
		cat, ok := a.cat.ByTitle(target)
		if !ok {
			return a.withToast(fmt.Sprintf("%s is not a known category.", target), components.ToastError)
		}
		return a, deleteLimitCmd(a.client, a.period, cat)
	}

	return a, nil
}

// defaultDay clamps today into the selected period: today's day when
// the period is the current month, the first day otherwise.
func defaultDay(p model.Period) int {
	now := time.Now()
	if model.PeriodOf(now) == p {
		return now.Day()
	}
	return 1
}

func suggestCmd(client *api.Client, title string, ticket uint64) tea.Cmd {
	return func() tea.Msg {
		items, err := client.SuggestCategory(context.Background(), title)
		return suggestionsMsg{ticket: ticket, items: items, err: err}
	}
}

// categoryPick is a category resolution decided synchronously on the
// event loop. When create is set the category does not exist
// server-side yet and the cmd creates it before use.
type categoryPick struct {
	category model.Category
	create   bool
}

// pickCategory resolves a free-text name against the cache: an exact
// title match wins, anything else becomes a new category with the
// default color (created server-side only when signed in).
func (a App) pickCategory(name string) categoryPick {
	if cat, ok := a.cat.ByTitle(name); ok {
		return categoryPick{category: cat}
	}
	return categoryPick{
		category: model.Category{Title: name, Color: model.DefaultCategoryColor},
		create:   a.client.Authenticated(),
	}
}

// pickFromChoice maps the category form's selection onto a pick.
// Suggestions carrying a server ID are registered here, inside the
// Update turn; the cmd goroutine never touches the cache.
func (a App) pickFromChoice(choice, newName string) categoryPick {
	switch {
	case strings.HasPrefix(choice, choiceSuggestPrefix):
		idx, err := strconv.Atoi(strings.TrimPrefix(choice, choiceSuggestPrefix))
		if err != nil || idx < 0 || idx >= len(a.suggestions) {
			return a.pickCategory(defaultCategory)
		}
		s := a.suggestions[idx]
		if s.AISuggested && s.IsNew {
			return categoryPick{
				category: model.Category{Title: s.Title, Color: model.DefaultCategoryColor},
				create:   a.client.Authenticated(),
			}
		}
		if s.ID != "" {
			cat := model.Category{ID: s.ID, Title: s.Title, Color: model.DefaultCategoryColor}
			a.cat.Register(cat)
			return categoryPick{category: cat}
		}
		return a.pickCategory(s.Title)

	case choice == choiceNewCategory:
		return a.pickCategory(newName)

	case strings.HasPrefix(choice, choiceTitlePrefix):
		return a.pickCategory(strings.TrimPrefix(choice, choiceTitlePrefix))

	default:
		return a.pickCategory(defaultCategory)
	}
}

// createTxCmd creates the picked category when needed, records the
// transaction server-side when signed in, and reports the result. It
// only talks to the API; Update applies the msg to the caches.
func createTxCmd(client *api.Client, pending pendingTx, pick categoryPick) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		category := pick.category
		var created model.Category
		if pick.create {
			c, err := client.CreateCategory(ctx, category.Title, category.Color, category.Icon)
			if err != nil {
				return txCreatedMsg{err: err}
			}
			category, created = c, c
		}

		magnitude, err := money.Parse(pending.amount)
		if err != nil {
			return txCreatedMsg{err: err}
		}

		tx, err := model.NewTransaction(pending.date, magnitude, pending.typ, category.Title, pending.title)
		if err != nil {
			return txCreatedMsg{err: err}
		}

		if client.Authenticated() {
			rec, err := client.CreateTransaction(ctx, api.CreateTransactionRequest{
				CategoryID: category.ID,
				Title:      pending.title,
				Type:       pending.typ,
				Amount:     magnitude.Abs(),
			})
			if err != nil {
				return txCreatedMsg{err: err}
			}
			tx, err = fromServerRecord(rec, tx)
			if err != nil {
				return txCreatedMsg{err: err}
			}
		}

		return txCreatedMsg{tx: tx, created: created}
	}
}

// fromServerRecord rebuilds the local transaction from the server's
// record of it. The server sends the positive magnitude, so the sign is
// re-derived from the type; empty fields fall back to what was
// submitted.
func fromServerRecord(rec api.CreatedTransaction, submitted model.Transaction) (model.Transaction, error) {
	date := submitted.Date
	if rec.OccurredAt != "" {
		if t, err := time.Parse(time.RFC3339, rec.OccurredAt); err == nil {
			date = t.Format("2006-01-02")
		}
	}
	title := rec.Title
	if title == "" {
		title = submitted.Title
	}
	typ := rec.Type
	if !typ.Valid() {
		typ = submitted.Type
	}
	amount := rec.Amount
	if amount.IsZero() {
		amount = submitted.Amount
	}
	return model.NewTransaction(date, amount, typ, submitted.Category, title)
}

func saveLimitCmd(client *api.Client, period model.Period, pick categoryPick, limit decimal.Decimal, existed bool) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		category := pick.category
		var created model.Category
		if pick.create {
			c, err := client.CreateCategory(ctx, category.Title, category.Color, category.Icon)
			if err != nil {
				return limitSavedMsg{title: category.Title, err: err}
			}
			category, created = c, c
		}

		var err error
		if existed {
			_, err = client.UpdateBudget(ctx, category.ID, period, limit)
		} else {
			_, err = client.CreateBudget(ctx, category.ID, period, limit)
		}
		if err != nil {
			return limitSavedMsg{title: category.Title, existed: existed, err: err}
		}
		return limitSavedMsg{title: category.Title, existed: existed, limit: limit, created: created}
	}
}

func deleteLimitCmd(client *api.Client, period model.Period, cat model.Category) tea.Cmd {
	return func() tea.Msg {
		err := client.DeleteBudget(context.Background(), cat.ID, period)
		return limitDeletedMsg{title: cat.Title, err: err}
	}
}
