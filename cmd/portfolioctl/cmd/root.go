package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tahadev/portfolio/internal/client/api"
	"github.com/tahadev/portfolio/internal/client/session"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "portfolioctl",
	Short: "Command-line client for the portfolio API",
	Long: `portfolioctl talks to the portfolio API: browse the public project
gallery, send contact messages, and (with an admin session) manage projects
and users.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	defaultServer := os.Getenv("PORTFOLIO_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer, "Base URL of the portfolio API")
}

// newClient builds the API client backed by the on-disk session store.
func newClient() (*api.Client, *session.Store, error) {
	store, err := session.NewStore()
	if err != nil {
		return nil, nil, fmt.Errorf("open session store: %w", err)
	}
	return api.New(serverURL, store), store, nil
}
