package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tahadev/portfolio/internal/client/guard"
	"github.com/tahadev/portfolio/internal/client/session"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts (admin)",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdminSession(); err != nil {
			return err
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		users, err := client.Users(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
		}
		return w.Flush()
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a non-admin user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdminSession(); err != nil {
			return err
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		if err := client.DeleteUser(cmd.Context(), args[0]); err != nil {
			return err
		}

		pterm.Success.Printf("Deleted user %s\n", args[0])
		return nil
	},
}

var usersToggleRoleCmd = &cobra.Command{
	Use:   "toggle-role <id>",
	Short: "Flip a user's role between admin and standard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdminSession(); err != nil {
			return err
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		identity, err := client.ToggleRole(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		pterm.Success.Printf("%s is now %s\n", identity.Name, identity.Role)
		return nil
	},
}

// requireAdminSession runs the client-side route guard before an admin
// command touches the network. The server still enforces the role; this
// only gives a faster, friendlier failure.
func requireAdminSession() error {
	store, err := session.NewStore()
	if err != nil {
		return err
	}
	snap, err := store.Load()
	if err != nil {
		return err
	}
	if decision := guard.Decide(snap, guard.RouteAdmin); !decision.Allow {
		return fmt.Errorf("admin session required, run 'portfolioctl auth login' first")
	}
	return nil
}

func init() {
	usersCmd.AddCommand(usersListCmd, usersDeleteCmd, usersToggleRoleCmd)
	rootCmd.AddCommand(usersCmd)
}
