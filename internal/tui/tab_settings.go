package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Edem2000/ledgerly/internal/config"
	"github.com/Edem2000/ledgerly/internal/tui/components"
	"github.com/Edem2000/ledgerly/internal/tui/theme"
)

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-14s", label)) + valueStyle.Render(value)
	}

	var account strings.Builder
	if a.user.ID != "" {
		name := strings.TrimSpace(a.user.FirstName + " " + a.user.LastName)
		if name != "" {
			account.WriteString(row("Name", name))
			account.WriteString("\n")
		}
		account.WriteString(row("Email", a.user.Email))
		if a.user.Language != "" {
			account.WriteString("\n")
			account.WriteString(row("Language", a.user.Language))
		}
	} else {
		account.WriteString(dimStyle.Render("Not signed in. Run: ledgerly login"))
	}

	var prefs strings.Builder
	prefs.WriteString(row("Amounts", string(a.unit)))
	prefs.WriteString("\n")
	prefs.WriteString(row("Budget sort", string(a.sortMode)))
	prefs.WriteString("\n")
	prefs.WriteString(row("Theme", theme.Active.Name))
	prefs.WriteString("\n\n")
	prefs.WriteString(dimStyle.Render("[u] toggles amounts · [s] cycles sort on the Budgets tab"))

	var files strings.Builder
	files.WriteString(row("Config", config.ConfigPath()))
	files.WriteString("\n")
	files.WriteString(dimStyle.Render("Edit the config file to change the theme or API endpoint."))

	var b strings.Builder
	b.WriteString(components.ContentCard("Account", account.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Preferences", prefs.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Files", files.String(), cw))
	return b.String()
}
