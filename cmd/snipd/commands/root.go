// ABOUTME: Root command definition for the snipd CLI
// ABOUTME: Sets up global flags and registers all subcommands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
███████╗███╗   ██╗██╗██████╗ ██████╗
██╔════╝████╗  ██║██║██╔══██╗██╔══██╗
███████╗██╔██╗ ██║██║██████╔╝██║  ██║
╚════██║██║╚██╗██║██║██╔═══╝ ██║  ██║
███████║██║ ╚████║██║██║     ██████╔╝
╚══════╝╚═╝  ╚═══╝╚═╝╚═╝     ╚═════╝
`

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snipd",
		Short: "Code snippet store with semantic search",
		Long: banner + `
snipd stores code snippets, embeds them for semantic retrieval, and
answers questions about them using the stored code as context.

Snippets are chunked, embedded via OpenAI, and persisted in SQLite.
Search and question answering are scoped per project.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format (auto, table, json)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewSaveCmd())
	cmd.AddCommand(NewGetCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewIngestCmd())
	cmd.AddCommand(NewDeleteCmd())
	cmd.AddCommand(NewStyleCmd())
	cmd.AddCommand(NewWikiCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
