package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tahadev/portfolio/internal/client/guard"
)

var (
	authName     string
	authEmail    string
	authPassword string
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the local session",
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if authEmail == "" || authPassword == "" {
			return fmt.Errorf("--email and --password are required")
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		result, err := client.Login(cmd.Context(), authEmail, authPassword)
		if err != nil {
			return err
		}

		pterm.Success.Printf("Logged in as %s (%s)\n", result.Snapshot.Name, result.Snapshot.Role)
		pterm.Info.Printf("Next stop: %s\n", result.Redirect)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		if authName == "" || authEmail == "" || authPassword == "" {
			return fmt.Errorf("--name, --email and --password are required")
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		result, err := client.Register(cmd.Context(), authName, authEmail, authPassword)
		if err != nil {
			return err
		}

		pterm.Success.Printf("Registered %s (%s)\n", result.Snapshot.Name, result.Snapshot.Role)
		pterm.Info.Printf("Next stop: %s\n", result.Redirect)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Delete the local session",
	Long: `Deletes the locally stored session. The server keeps no session
state; an already-issued token stays valid until it expires.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		if err := client.Logout(); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		pterm.Success.Println("Logged out")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := newClient()
		if err != nil {
			return err
		}

		snap, err := store.Load()
		if err != nil {
			return err
		}
		if snap == nil {
			pterm.Info.Println("Not logged in")
			return nil
		}

		pterm.Info.Printf("Logged in as %s <%s>, role %s\n", snap.Name, snap.Email, snap.Role)
		if decision := guard.Decide(snap, guard.RouteAdmin); decision.Allow {
			pterm.Info.Println("Admin area: accessible")
		} else {
			pterm.Info.Println("Admin area: not accessible")
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&authEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&authPassword, "password", "", "Account password")

	registerCmd.Flags().StringVar(&authName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&authEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&authPassword, "password", "", "Account password")

	authCmd.AddCommand(loginCmd, registerCmd, logoutCmd, statusCmd)
	rootCmd.AddCommand(authCmd)
}
