// ABOUTME: CLI command to list stored snippets
// ABOUTME: Shows snippet names and projects, optionally scoped to one project
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/snipd/snipd/internal/models"
)

var (
	listProject string
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored snippets",
		Long: `List stored snippets across all projects, or within one project.

Examples:
  snipd list
  snipd list --project myapp
  snipd list --format json`,
		RunE: runList,
	}

	cmd.Flags().StringVar(&listProject, "project", "", "Only list snippets from this project")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	var infos []models.SnippetInfo
	if listProject != "" {
		infos, err = store.ListByProject(listProject)
	} else {
		infos, err = store.ListAll()
	}
	if err != nil {
		return fmt.Errorf("listing snippets: %w", err)
	}

	if len(infos) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No snippets found\n")
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "NAME\tPROJECT\tPREVIEW\n")
	fmt.Fprintf(w, "----\t-------\t-------\n")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			truncate(info.Name, 40),
			truncate(info.ProjectID, 25),
			truncate(firstLine(info.Code), 60))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d snippet(s)\n", len(infos))
	}
	return nil
}
