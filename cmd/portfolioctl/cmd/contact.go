package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	contactName    string
	contactEmail   string
	contactMessage string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a contact message",
}

var contactSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Submit a message through the contact form",
	RunE: func(cmd *cobra.Command, args []string) error {
		if contactName == "" || contactEmail == "" || contactMessage == "" {
			return fmt.Errorf("--name, --email and --message are required")
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		if err := client.SendContact(cmd.Context(), contactName, contactEmail, contactMessage); err != nil {
			return err
		}

		pterm.Success.Println("Message sent")
		return nil
	},
}

func init() {
	contactSendCmd.Flags().StringVar(&contactName, "name", "", "Your name")
	contactSendCmd.Flags().StringVar(&contactEmail, "email", "", "Your email")
	contactSendCmd.Flags().StringVar(&contactMessage, "message", "", "Message body")

	contactCmd.AddCommand(contactSendCmd)
	rootCmd.AddCommand(contactCmd)
}
