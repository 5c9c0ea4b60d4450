// ABOUTME: CLI command to search snippets by semantic similarity
// ABOUTME: Embeds the query and ranks stored snippets by cosine similarity
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	searchProject string
	searchLimit   int
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search snippets semantically",
		Long: `Search stored snippets by semantic similarity to a natural-language query.

The query is embedded and matched against stored snippet embeddings
within a single project.

Examples:
  snipd search "http retry logic"
  snipd search --limit 10 --project myapp "database connection"
  snipd search --format json "error handling"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().StringVar(&searchProject, "project", "", "Project to search within")
	cmd.Flags().IntVar(&searchLimit, "limit", 30, "Maximum results to return")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	if err := validatePositiveInt(searchLimit, "limit"); err != nil {
		return err
	}

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

	service := newRAGService(cfg, client, store)

	results, err := service.Search(args[0], searchProject, searchLimit)
	if err != nil {
		return fmt.Errorf("searching snippets: %w", err)
	}

	if len(results) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No snippets found for query: %s\n", args[0])
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SCORE\tID\tPREVIEW\n")
	fmt.Fprintf(w, "-----\t--\t-------\n")
	for _, result := range results {
		fmt.Fprintf(w, "%.3f\t%s\t%s\n",
			result.Score,
			truncate(result.ID, 40),
			truncate(firstLine(result.Code), 60))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nFound %d result(s)\n", len(results))
	}
	return nil
}
