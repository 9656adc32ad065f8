// Package cmd implements the ledgerly CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Edem2000/ledgerly/internal/config"
	"github.com/Edem2000/ledgerly/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Amount unit: %s\n", cfg.General.Unit)
	fmt.Printf("    Budget sort: %s\n", cfg.General.Sort)
	if cfg.General.Language != "" {
		fmt.Printf("    Language:    %s\n", cfg.General.Language)
	}
	fmt.Println()

	fmt.Println("  [API]")
	fmt.Printf("    Base URL: %s\n", config.APIBaseURL(cfg))
	if config.APIToken() != "" {
		fmt.Println("    Token:    from LEDGERLY_API_TOKEN")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Printf("  State db: %s\n", store.DefaultPath())
	fmt.Println("  Edit the config file to change these settings.")
	return nil
}
