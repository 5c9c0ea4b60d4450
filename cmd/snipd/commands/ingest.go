// ABOUTME: CLI command to bulk-ingest source files as snippets
// ABOUTME: Walks a file or directory and runs each eligible file through the pipeline
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/snipd/snipd/internal/ingest"
	"github.com/snipd/snipd/internal/models"
)

var (
	ingestProject  string
	ingestMaxBytes int64
)

// NewIngestCmd creates the ingest command
func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest <path>",
		Short: "Ingest source files as snippets",
		Long: `Ingest a source file, or every eligible file under a directory,
as snippets.

Files are filtered by extension and size; binary files are skipped.
Each file becomes one snippet named by its path relative to the
ingest root, with the language inferred from its extension.

Examples:
  snipd ingest ./internal --project myapp
  snipd ingest main.go
  snipd ingest --max-bytes 500000 ./scripts`,
		Args: cobra.ExactArgs(1),
		RunE: runIngest,
	}

	cmd.Flags().StringVar(&ingestProject, "project", "", "Project to store snippets in")
	cmd.Flags().Int64Var(&ingestMaxBytes, "max-bytes", 0, "Per-file size limit in bytes (default 2 MiB)")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	maxBytes := ingestMaxBytes
	if maxBytes == 0 {
		maxBytes = cfg.MaxFileBytes
	}
	loader := ingest.NewLoader(maxBytes)

	info, err := os.Stat(args[0])
	if err != nil {
		return fmt.Errorf("stat %s: %w", args[0], err)
	}

	var requests []models.SnippetRequest
	if info.IsDir() {
		requests, err = loader.LoadDir(args[0])
	} else {
		var req models.SnippetRequest
		req, err = loader.LoadFile(args[0])
		requests = []models.SnippetRequest{req}
	}
	if err != nil {
		return fmt.Errorf("loading files: %w", err)
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
		ProjectID: ingestProject,
		Snippets:  requests,
	})
	if err != nil {
		return fmt.Errorf("ingesting files: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	var failed int
	for _, r := range result.Results {
		if !r.OK {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s: %s\n", r.ID, r.Error)
		} else if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", r.ID)
		}
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Ingested %d of %d file(s)\n", len(result.Results)-failed, len(result.Results))
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed to ingest", failed)
	}
	return nil
}
