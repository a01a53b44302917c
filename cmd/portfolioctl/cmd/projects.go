package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tahadev/portfolio/internal/client/api"
)

var (
	projectTitle       string
	projectDescription string
	projectImageURL    string
	projectLiveURL     string
	projectRepoURL     string
	projectCategory    string
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Browse and manage portfolio projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		projects, err := client.Projects(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tCREATED")
		for _, p := range projects {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Category, p.CreatedAt.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

var projectsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		p, err := client.Project(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		pterm.DefaultSection.Println(p.Title)
		fmt.Println(p.Description)
		fmt.Println("Category:", p.Category)
		fmt.Println("Image:   ", p.ImageURL)
		if p.LiveURL != "" {
			fmt.Println("Live:    ", p.LiveURL)
		}
		if p.RepoURL != "" {
			fmt.Println("Repo:    ", p.RepoURL)
		}
		return nil
	},
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdminSession(); err != nil {
			return err
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		p, err := client.CreateProject(cmd.Context(), api.CreateProjectInput{
			Title:       projectTitle,
			Description: projectDescription,
			ImageURL:    projectImageURL,
			LiveURL:     projectLiveURL,
			RepoURL:     projectRepoURL,
			Category:    projectCategory,
		})
		if err != nil {
			return err
		}

		pterm.Success.Printf("Created project %s (%s)\n", p.Title, p.ID)
		return nil
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdminSession(); err != nil {
			return err
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		if err := client.DeleteProject(cmd.Context(), args[0]); err != nil {
			return err
		}

		pterm.Success.Printf("Deleted project %s\n", args[0])
		return nil
	},
}

var projectsUploadImageCmd = &cobra.Command{
	Use:   "upload-image <file>",
	Short: "Upload a cover image and print its URL (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdminSession(); err != nil {
			return err
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		url, err := client.UploadImage(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		pterm.Success.Printf("Uploaded, use --image-url %s\n", url)
		return nil
	},
}

func init() {
	projectsCreateCmd.Flags().StringVar(&projectTitle, "title", "", "Project title")
	projectsCreateCmd.Flags().StringVar(&projectDescription, "description", "", "Project description")
	projectsCreateCmd.Flags().StringVar(&projectImageURL, "image-url", "", "Cover image URL")
	projectsCreateCmd.Flags().StringVar(&projectLiveURL, "live-url", "", "Deployed site URL")
	projectsCreateCmd.Flags().StringVar(&projectRepoURL, "repo-url", "", "Source repository URL")
	projectsCreateCmd.Flags().StringVar(&projectCategory, "category", "website", "Category: website, ai-agentic, ui-ux")

	projectsCmd.AddCommand(projectsListCmd, projectsGetCmd, projectsCreateCmd, projectsDeleteCmd, projectsUploadImageCmd)
	rootCmd.AddCommand(projectsCmd)
}
