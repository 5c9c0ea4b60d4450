// ABOUTME: CLI command to generate project documentation from stored snippets
// ABOUTME: Produces structured Markdown covering the snippet corpus
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/snipd/snipd/internal/agents"
)

var (
	wikiProject string
	wikiFocus   string
)

// NewWikiCmd creates the wiki command
func NewWikiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wiki",
		Short: "Generate documentation from stored snippets",
		Long: `Generate structured Markdown documentation for the snippets
stored in a project.

Examples:
  snipd wiki --project myapp
  snipd wiki --focus "the ingestion pipeline"`,
		RunE: runWiki,
	}

	cmd.Flags().StringVar(&wikiProject, "project", "", "Project whose snippets to document")
	cmd.Flags().StringVar(&wikiFocus, "focus", "", "Aspect to focus the documentation on")

	return cmd
}

func runWiki(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newLLMClient(cfg)
	if err != nil {
		return err
	}

	store, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	projectID := wikiProject
	if projectID == "" {
		projectID = cfg.DefaultProject
	}

	doc, err := agents.Wiki(store, client, projectID, "", wikiFocus)
	if err != nil {
		return fmt.Errorf("generating wiki: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), doc)
	return nil
}
