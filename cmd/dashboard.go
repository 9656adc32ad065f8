package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Edem2000/ledgerly/internal/catalog"
	"github.com/Edem2000/ledgerly/internal/config"
	"github.com/Edem2000/ledgerly/internal/tui"
	"github.com/Edem2000/ledgerly/internal/tui/theme"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the interactive dashboard",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	client, user := newAPIClient(cfg, st)

	led, err := loadLedger(st)
	if err != nil {
		return err
	}

	app := tui.NewApp(client, catalog.New(), led, st, user, resolveUnit(st), resolveSort(st))
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}

	return nil
}
