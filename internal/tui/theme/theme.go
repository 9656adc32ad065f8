// Package theme defines color themes for the ledgerly TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	SurfaceHover lipgloss.Color // Highlighted surface (active tab, selected row)
	Border       lipgloss.Color // Subtle borders
	BorderAccent lipgloss.Color // Accent-colored borders for focus states
	TextDim      lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted    lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary  lipgloss.Color // Primary content text
	Accent       lipgloss.Color // Primary accent (links, active states)
	AccentBright lipgloss.Color // Brighter accent for emphasis
	Green        lipgloss.Color // Income, within-limit budgets
	Orange       lipgloss.Color // Warnings, near-limit budgets
	Red          lipgloss.Color // Expense, over-limit budgets
	Blue         lipgloss.Color
	Yellow       lipgloss.Color
}

// Active is the currently selected theme.
var Active = LedgerlyDark

// LedgerlyDark is the default theme, matching the indigo brand accent.
var LedgerlyDark = Theme{
	Name:         "ledgerly-dark",
	Background:   lipgloss.Color("#101016"),
	Surface:      lipgloss.Color("#1a1a23"),
	SurfaceHover: lipgloss.Color("#252532"),
	Border:       lipgloss.Color("#2a2a35"),
	BorderAccent: lipgloss.Color("#6d6ef9"),
	TextDim:      lipgloss.Color("#51515e"),
	TextMuted:    lipgloss.Color("#8b8b99"),
	TextPrimary:  lipgloss.Color("#f2f2f7"),
	Accent:       lipgloss.Color("#6d6ef9"),
	AccentBright: lipgloss.Color("#9495fb"),
	Green:        lipgloss.Color("#34c759"),
	Orange:       lipgloss.Color("#ff9f0a"),
	Red:          lipgloss.Color("#ff453a"),
	Blue:         lipgloss.Color("#4385BE"),
	Yellow:       lipgloss.Color("#D0A215"),
}

// LedgerlyLight is a light variant for bright terminals.
var LedgerlyLight = Theme{
	Name:         "ledgerly-light",
	Background:   lipgloss.Color("#f5f5fa"),
	Surface:      lipgloss.Color("#ffffff"),
	SurfaceHover: lipgloss.Color("#ececf4"),
	Border:       lipgloss.Color("#d8d8e2"),
	BorderAccent: lipgloss.Color("#6d6ef9"),
	TextDim:      lipgloss.Color("#a0a0ad"),
	TextMuted:    lipgloss.Color("#6e6e7a"),
	TextPrimary:  lipgloss.Color("#17171f"),
	Accent:       lipgloss.Color("#5253d8"),
	AccentBright: lipgloss.Color("#6d6ef9"),
	Green:        lipgloss.Color("#248a3d"),
	Orange:       lipgloss.Color("#c93400"),
	Red:          lipgloss.Color("#d70015"),
	Blue:         lipgloss.Color("#3a6ea5"),
	Yellow:       lipgloss.Color("#b58a00"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("4"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("4"),
	AccentBright: lipgloss.Color("12"),
	Green:        lipgloss.Color("2"),
	Orange:       lipgloss.Color("3"),
	Red:          lipgloss.Color("1"),
	Blue:         lipgloss.Color("4"),
	Yellow:       lipgloss.Color("3"),
}

// All available themes.
var All = []Theme{LedgerlyDark, LedgerlyLight, Terminal}

// ByName returns a theme by its name, defaulting to LedgerlyDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return LedgerlyDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
