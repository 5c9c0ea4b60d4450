// ABOUTME: CLI command to generate a code style guide from stored snippets
// ABOUTME: Analyzes a project's snippet corpus and prints a Markdown guide
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/snipd/snipd/internal/agents"
)

var (
	styleProject string
	styleFocus   string
)

// NewStyleCmd creates the style command
func NewStyleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "style",
		Short: "Generate a code style guide from stored snippets",
		Long: `Generate a Markdown code style guide derived from the snippets
stored in a project.

Examples:
  snipd style --project myapp
  snipd style --focus "error handling"`,
		RunE: runStyle,
	}

	cmd.Flags().StringVar(&styleProject, "project", "", "Project whose snippets to analyze")
	cmd.Flags().StringVar(&styleFocus, "focus", "", "Aspect to focus the guide on")

	return cmd
}

func runStyle(cmd *cobra.Command, args []string) error {
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

	projectID := styleProject
	if projectID == "" {
		projectID = cfg.DefaultProject
	}

	guide, err := agents.StyleGuide(store, client, projectID, "", styleFocus)
	if err != nil {
		return fmt.Errorf("generating style guide: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), guide)
	return nil
}
