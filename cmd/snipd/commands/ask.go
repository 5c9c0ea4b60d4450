// ABOUTME: CLI command to answer questions from stored snippets
// ABOUTME: Runs the retrieve-then-generate pipeline and prints answer with citations
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	askProject string
	askLimit   int
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a question from stored snippets",
		Long: `Answer a natural-language question using stored snippets as context.

The question is embedded, the most similar snippets are retrieved, and
an answer is generated grounded in that code. Citations name the
snippets used.

Examples:
  snipd ask "how do we retry failed requests?"
  snipd ask --project myapp "where is the database opened?"
  snipd ask --format json "what does the auth middleware do?"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().StringVar(&askProject, "project", "", "Project whose snippets to answer from")
	cmd.Flags().IntVar(&askLimit, "limit", 30, "Maximum snippets to retrieve as context")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	if err := validatePositiveInt(askLimit, "limit"); err != nil {
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

	answer, err := service.Answer(args[0], askProject, askLimit)
	if err != nil {
		return fmt.Errorf("answering question: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer.Answer)

	if len(answer.Citations) > 0 && !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nSources:\n")
		for _, c := range answer.Citations {
			fmt.Fprintf(cmd.OutOrStdout(), "  %.3f  %s\n", c.Score, c.ID)
		}
	}

	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTokens: %d prompt, %d completion\n",
			answer.Usage.PromptTokens, answer.Usage.CompletionTokens)
	}
	return nil
}
