package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Edem2000/ledgerly/internal/api"
	"github.com/Edem2000/ledgerly/internal/config"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	RunE:  runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

func runRegister(_ *cobra.Command, _ []string) error {
	req := api.RegisterRequest{Role: "user", Language: "en"}

	required := func(field string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s is required", field)
			}
			return nil
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First name").Value(&req.FirstName).Validate(required("first name")),
			huh.NewInput().Title("Last name").Value(&req.LastName).Validate(required("last name")),
			huh.NewInput().
				Title("Email").
				Value(&req.Email).
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return errors.New("enter a valid email")
					}
					return nil
				}),
			huh.NewInput().Title("Phone").Value(&req.Phone),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&req.Password).
				Validate(func(s string) error {
					if len(s) < 8 {
						return errors.New("password must be at least 8 characters")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Language").
				Options(
					huh.NewOption("English", "en"),
					huh.NewOption("Русский", "ru"),
					huh.NewOption("O'zbekcha", "uz"),
				).
				Value(&req.Language),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	cfg, _ := config.Load()
	baseURL := flagAPIURL
	if baseURL == "" {
		baseURL = config.APIBaseURL(cfg)
	}
	client := api.NewClient(baseURL, "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := client.Register(ctx, req); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	// Registration does not return tokens, so log in right away.
	user, tokens, err := client.Login(ctx, req.Email, req.Password)
	if err != nil {
		return fmt.Errorf("account created, but login failed: %w", err)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SaveSession(tokens, user); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	fmt.Printf("\n  Welcome, %s! Run `ledgerly` to open the dashboard.\n", user.FirstName)
	return nil
}
