// Package tui provides the interactive Bubble Tea dashboard for ledgerly.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/Edem2000/ledgerly/internal/api"
	"github.com/Edem2000/ledgerly/internal/catalog"
	"github.com/Edem2000/ledgerly/internal/ledger"
	"github.com/Edem2000/ledgerly/internal/model"
	"github.com/Edem2000/ledgerly/internal/money"
	"github.com/Edem2000/ledgerly/internal/store"
	"github.com/Edem2000/ledgerly/internal/tui/components"
	"github.com/Edem2000/ledgerly/internal/tui/theme"
)

const (
	// armTimeout is how long a destructive action stays armed waiting
	// for the confirming second keypress.
	armTimeout = 3 * time.Second

	// clearLatency simulates the storage round-trip when wiping the
	// user-added transactions, so the pending state is visible.
	clearLatency = 350 * time.Millisecond

	// toastDuration is how long a notification stays on screen.
	toastDuration = 1800 * time.Millisecond
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 120
	minContentHeight = 5
)

// Tab indices, matching components.Tabs order.
const (
	tabOverview = iota
	tabBudgets
	tabTransactions
	tabSettings
)

// Prefs persists display preferences between runs. The store satisfies
// it; a nil Prefs just skips persistence.
type Prefs interface {
	SetPref(key, value string) error
}

// catalogLoadedMsg carries one categories + budgets fetch result. The
// fetch runs off the event loop; Update applies it to the cache. A
// result for a period the user has already left is dropped.
type catalogLoadedMsg struct {
	period     model.Period
	categories []model.Category
	budgets    []model.Budget
	err        error
}

type toastExpireMsg struct{ gen int }

type disarmMsg struct{ gen int }

type clearDoneMsg struct{}

// suggestionsMsg carries the category suggestions for one lookup
// ticket. Stale tickets are dropped.
type suggestionsMsg struct {
	ticket uint64
	items  []model.SuggestedCategory
	err    error
}

// txCreatedMsg reports a finished add-transaction flow. created is the
// category the cmd had to create server-side first, zero otherwise;
// Update registers it in the cache.
type txCreatedMsg struct {
	tx      model.Transaction
	created model.Category
	err     error
}

type limitSavedMsg struct {
	title   string
	existed bool
	limit   decimal.Decimal
	created model.Category
	err     error
}

type limitDeletedMsg struct {
	title string
	err   error
}

// pendingTx holds the first form step while the category is resolved.
type pendingTx struct {
	title  string
	amount string
	typ    model.TransactionType
	date   string
}

// App is the root Bubble Tea model.
type App struct {
	client *api.Client
	cat    *catalog.Catalog
	ledger *ledger.Store
	prefs  Prefs
	user   model.User

	period   model.Period
	unit     money.Unit
	sortMode ledger.SortMode

	// Pre-computed for the active period
	summary  ledger.Summary
	statuses []ledger.CategoryStatus

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	loaded    bool

	// Toast notification
	toast     string
	toastKind components.ToastKind
	toastGen  int

	// Confirmation gate for wiping added transactions
	armed    bool
	armGen   int
	clearing bool

	// Per-tab cursors
	txOffset     int
	budgetCursor int

	// Active form (add transaction, pick category, set limit, confirm delete)
	form         *huh.Form
	formKind     formKind
	txVals       txFormValues
	catVals      categoryFormValues
	budVals      budgetFormValues
	deleteTarget string
	confirmVal   bool

	pending     pendingTx
	gate        catalog.RequestGate
	suggestions []model.SuggestedCategory
	suggesting  bool

	spinner spinner.Model
}

// NewApp creates the dashboard model. prefs may be nil.
func NewApp(client *api.Client, cat *catalog.Catalog, ledgerStore *ledger.Store, prefs Prefs, user model.User, unit money.Unit, sortMode ledger.SortMode) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	period := model.PeriodKeyOrCurrent(ledgerStore.LatestPeriod())

	return App{
		client:   client,
		cat:      cat,
		ledger:   ledgerStore,
		prefs:    prefs,
		user:     user,
		period:   period,
		unit:     unit,
		sortMode: sortMode,
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		a.loadCatalogCmd(),
		a.spinner.Tick,
	)
}

func (a *App) recompute() {
	a.summary = ledger.Aggregate(a.ledger.All(), a.period)
	a.statuses = ledger.Reconcile(a.cat.Categories(), a.cat.Budgets(), a.summary.SpentByCategory, a.sortMode)

	if a.budgetCursor >= len(a.statuses) {
		a.budgetCursor = len(a.statuses) - 1
	}
	if a.budgetCursor < 0 {
		a.budgetCursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(min(msg.Width-4, 70))
		}
		return a, nil

	case tea.MouseMsg:
		return a.updateMouse(msg)

	case tea.KeyMsg:
		return a.updateKey(msg)

	case catalogLoadedMsg:
		a.loaded = true
		if msg.period != a.period {
			// A newer reload for the current month is in flight.
			return a, nil
		}
		if msg.err != nil {
			a.cat.Clear()
			a.recompute()
			return a.withToast("Unable to load categories and budgets.", components.ToastError)
		}
		a.cat.Apply(msg.period, msg.categories, msg.budgets)
		a.recompute()
		return a, nil

	case toastExpireMsg:
		if msg.gen == a.toastGen {
			a.toast = ""
		}
		return a, nil

	case disarmMsg:
		if msg.gen == a.armGen && a.armed && !a.clearing {
			a.armed = false
		}
		return a, nil

	case clearDoneMsg:
		a.clearing = false
		a.ledger.ClearExtras()
		a.recompute()
		return a.withToast("Added transactions cleared.", components.ToastSuccess)

	case suggestionsMsg:
		// A newer lookup or a cancelled form makes this response stale.
		if !a.gate.Fresh(msg.ticket) {
			return a, nil
		}
		a.suggesting = false
		if msg.err != nil {
			a.suggestions = nil
		} else {
			a.suggestions = msg.items
		}
		return a.openCategoryForm()

	case txCreatedMsg:
		if msg.err != nil {
			return a.withToast(errText(msg.err), components.ToastError)
		}
		if msg.created.ID != "" {
			a.cat.Register(msg.created)
		}
		if err := a.ledger.Add(msg.tx); err != nil {
			return a.withToast(errText(err), components.ToastError)
		}
		a.recompute()
		return a.withToast("Transaction added.", components.ToastSuccess)

	case limitSavedMsg:
		if msg.err != nil {
			return a.withToast(errText(msg.err), components.ToastError)
		}
		if msg.created.ID != "" {
			a.cat.Register(msg.created)
		}
		a.cat.PutLimit(msg.title, msg.limit)
		a.recompute()
		verb := "set"
		if msg.existed {
			verb = "updated"
		}
		return a.withToast(fmt.Sprintf("Limit for %s %s.", msg.title, verb), components.ToastSuccess)

	case limitDeletedMsg:
		if msg.err != nil {
			return a.withToast(errText(msg.err), components.ToastError)
		}
		a.cat.RemoveLimit(msg.title)
		a.recompute()
		return a.withToast(fmt.Sprintf("Limit for %s removed.", msg.title), components.ToastSuccess)

	case spinner.TickMsg:
		if !a.loaded || a.suggesting || a.clearing {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the active form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.loaded {
		return a, nil
	}

	// Active form intercepts all keys
	if a.form != nil {
		return a.updateForm(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// esc backs out of the armed state before anything else
	if key == "esc" && a.armed {
		a.armed = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "r":
		return a, a.loadCatalogCmd()
	case "[", "h":
		a.period = a.period.Prev()
		a.armed = false
		a.txOffset = 0
		return a, a.loadCatalogCmd()
	case "]", "l":
		a.period = a.period.Next()
		a.armed = false
		a.txOffset = 0
		return a, a.loadCatalogCmd()
	case "u":
		if a.unit == money.UnitCompact {
			a.unit = money.UnitFull
		} else {
			a.unit = money.UnitCompact
		}
		a.savePref(store.PrefUnit, string(a.unit))
		return a, nil
	}

	switch a.activeTab {
	case tabBudgets:
		if m, cmd, handled := a.updateBudgetsKey(key); handled {
			return m, cmd
		}
	case tabTransactions:
		if m, cmd, handled := a.updateTransactionsKey(key); handled {
			return m, cmd
		}
	}

	// Tab navigation
	switch key {
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		if len(key) == 1 {
			if tab := components.TabIdxByKey(rune(key[0])); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	a.armed = false
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !a.loaded || a.showHelp || a.form != nil {
		return a, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == tabTransactions && a.txOffset > 0 {
			a.txOffset--
		}
		return a, nil

	case tea.MouseButtonWheelDown:
		if a.activeTab == tabTransactions {
			a.txOffset++
		}
		return a, nil

	case tea.MouseButtonLeft:
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
				a.armed = false
			}
		}
		return a, nil
	}
	return a, nil
}

// tabAtX returns the tab index at the given X coordinate, or -1.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-space separator
	}
	return -1
}

// withToast shows a notification and schedules its expiry. An earlier
// pending expiry is invalidated by the generation bump.
func (a App) withToast(message string, kind components.ToastKind) (tea.Model, tea.Cmd) {
	a.toast = message
	a.toastKind = kind
	a.toastGen++
	gen := a.toastGen
	return a, tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpireMsg{gen: gen}
	})
}

func (a *App) savePref(key, value string) {
	if a.prefs == nil {
		return
	}
	// Swallowed: prefs are a convenience, not critical state.
	_ = a.prefs.SetPref(key, value)
}

// loadCatalogCmd fetches the category list and the period's budgets on
// the cmd goroutine. No cache is touched here: Update applies the
// returned payload.
func (a App) loadCatalogCmd() tea.Cmd {
	client := a.client
	period := a.period
	return func() tea.Msg {
		ctx := context.Background()
		categories, err := client.Categories(ctx)
		if err != nil {
			return catalogLoadedMsg{period: period, err: err}
		}
		budgets, err := client.Budgets(ctx, period)
		if err != nil {
			return catalogLoadedMsg{period: period, err: err}
		}
		return catalogLoadedMsg{period: period, categories: categories, budgets: budgets}
	}
}

// errText maps an error to a user-facing toast message. API errors
// already carry a display message; everything else gets a generic one.
func errText(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Something went wrong."
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.form != nil {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.form.View())
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  ledgerly needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ ledgerly"))
	b.WriteString(subtitleStyle.Render(" · Personal Finance"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading categories and budgets..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Blue).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o b t x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"[ ]", "Previous / Next month"},
		{"j k", "Navigate lists"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"a", "Add transaction / set limit"},
		{"d", "Delete selected limit"},
		{"D", "Clear added transactions (press twice)"},
		{"u", "Toggle k / full amounts"},
		{"s", "Cycle budget sort"},
		{"r", "Reload from server"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	periodStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	header := components.RenderTabBar(a.activeTab, w) +
		" " + dimStyle.Render("‹[") + periodStyle.Render(monthLabel(a.period)) + dimStyle.Render("]›")

	user := ""
	if a.user.Email != "" {
		user = a.user.Email
	}
	statusBar := components.RenderStatusBar(w, a.period.Key(), user)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	toastLine := ""
	if a.toast != "" {
		toastLine = components.RenderToast(a.toast, a.toastKind, cw)
	}
	toastH := 0
	if toastLine != "" {
		toastH = lipgloss.Height(toastLine)
	}

	contentH := h - headerH - statusH - toastH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabBudgets:
		content = a.renderBudgetsTab(cw)
	case tabTransactions:
		content = a.renderTransactionsTab(cw, contentH)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	parts := []string{header, content}
	if toastLine != "" {
		parts = append(parts, lipgloss.PlaceHorizontal(w, lipgloss.Right, toastLine))
	}
	parts = append(parts, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// ─── Helpers ────────────────────────────────────────────────────

func monthLabel(p model.Period) string {
	return fmt.Sprintf("%s %d", time.Month(p.Month), p.Year)
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
