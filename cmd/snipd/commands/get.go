// ABOUTME: CLI command to retrieve a stored snippet by name
// ABOUTME: Prints the snippet code, or full metadata with --format json
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewGetCmd creates the get command
func NewGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Retrieve a stored snippet",
		Long: `Retrieve a stored snippet by its name and print its code.

Examples:
  snipd get handler.go
  snipd get handler.go --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runGet,
	}

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
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

	snippet, err := store.GetByID(args[0])
	if err != nil {
		return fmt.Errorf("getting snippet: %w", err)
	}
	if snippet == nil {
		return fmt.Errorf("snippet %q not found", args[0])
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(snippet, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), snippet.Code)
	return nil
}
