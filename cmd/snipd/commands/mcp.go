// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to save and search snippets via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/snipd/snipd/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs snipd as an MCP (Model Context Protocol) server, enabling LLM
agents to save, search, and ask questions about code snippets via
stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by the agent host)
  snipd mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "snipd": {
  #       "command": "snipd",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found (this is okay for production): %v", err)
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

	orchestrator, err := newOrchestrator(cfg, client, store)
	if err != nil {
		return err
	}
	ragService := newRAGService(cfg, client, store)

	server := mcpserver.NewMCPServer(
		"snipd snippet store",
		"0.1.0",
	)

	mcp.RegisterTools(server, store, orchestrator, ragService, client, cfg)

	// Graceful shutdown on interrupt
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("snipd MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, gracefully shutting down...")
		}
		if err := store.Close(); err != nil {
			log.Printf("Warning: Error closing storage: %v", err)
		}
		if !quiet {
			log.Println("Shutdown complete")
		}
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
