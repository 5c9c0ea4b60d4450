// ABOUTME: CLI command to delete a stored snippet
// ABOUTME: Removal is idempotent, deleting a missing snippet succeeds
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewDeleteCmd creates the delete command
func NewDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored snippet",
		Long: `Delete a stored snippet by its name.

Deletion is idempotent: deleting a snippet that does not exist
succeeds without error.

Examples:
  snipd delete handler.go`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := store.Delete(args[0]); err != nil {
		return fmt.Errorf("deleting snippet: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted snippet %s\n", args[0])
	}
	return nil
}
