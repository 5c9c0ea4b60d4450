// ABOUTME: CLI command to save a code snippet
// ABOUTME: Reads code from an argument, file, or stdin and runs the ingestion pipeline
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/snipd/snipd/internal/models"
)

var (
	saveFile        string
	saveProject     string
	saveLanguage    string
	saveDescription string
)

// NewSaveCmd creates the save command
func NewSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <name> [code]",
		Short: "Save a code snippet",
		Long: `Save a code snippet under the given name.

The snippet is chunked, embedded, and stored for semantic retrieval.
Code can be passed as an argument, read from a file, or piped on stdin.

Examples:
  snipd save retry-loop "for i := 0; i < 3; i++ { ... }"
  snipd save handler.go --file handler.go --language go
  cat handler.go | snipd save handler.go --project myapp`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runSave,
	}

	cmd.Flags().StringVar(&saveFile, "file", "", "Read snippet code from file")
	cmd.Flags().StringVar(&saveProject, "project", "", "Project to store the snippet in")
	cmd.Flags().StringVar(&saveLanguage, "language", "", "Programming language of the snippet")
	cmd.Flags().StringVar(&saveDescription, "description", "", "Human-readable description")

	return cmd
}

func runSave(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	name := args[0]

	var code string
	if saveFile != "" {
		data, err := os.ReadFile(saveFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		code = string(data)
	} else if len(args) > 1 {
		code = args[1]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		code = string(data)
	}

	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("no snippet code provided")
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

	orchestrator, err := newOrchestrator(cfg, client, store)
	if err != nil {
		return err
	}

	result, err := orchestrator.Run(&models.IngestRequest{
		ProjectID: saveProject,
		Snippets: []models.SnippetRequest{{
			Name:        name,
			Code:        code,
			Language:    saveLanguage,
			Description: saveDescription,
		}},
	})
	if err != nil {
		return fmt.Errorf("saving snippet: %w", err)
	}

	if len(result.Results) == 1 && !result.Results[0].OK {
		return fmt.Errorf("saving snippet: %s", result.Results[0].Error)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved snippet %s\n", name)
	}
	return nil
}
