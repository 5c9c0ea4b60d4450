// ABOUTME: Main entry point for the snipd MCP server with stdio transport
// ABOUTME: Initializes storage, pipeline, and MCP server with all tools
package main

import (
	"log"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/snipd/snipd/internal/config"
	"github.com/snipd/snipd/internal/core"
	"github.com/snipd/snipd/internal/llm"
	"github.com/snipd/snipd/internal/mcp"
	"github.com/snipd/snipd/internal/rag"
	"github.com/snipd/snipd/internal/storage/sqlite"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.OpenAIKey == "" {
		log.Fatal("OPENAI_API_KEY not set - embeddings and answering cannot work")
	}

	client, err := llm.NewOpenAIClientWithConfig(llm.ConfigFromApp(cfg))
	if err != nil {
		log.Fatalf("Failed to initialize OpenAI client: %v", err)
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = sqlite.DefaultDBPath()
	}
	store, err := sqlite.NewStorage(dbPath, cfg.VectorDimension)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	chunker, err := core.NewChunker(cfg.ChunkSize)
	if err != nil {
		log.Fatalf("Failed to create chunker: %v", err)
	}
	orchestrator := core.NewOrchestrator(client, store, chunker, cfg.DefaultProject)
	ragService := rag.NewService(client, store, client, cfg.DefaultProject, cfg.TopK)

	server := mcpserver.NewMCPServer(
		"snipd snippet store",
		"0.1.0",
	)

	mcp.RegisterTools(server, store, orchestrator, ragService, client, cfg)

	log.Println("snipd MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
