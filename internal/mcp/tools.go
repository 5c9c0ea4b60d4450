// ABOUTME: MCP tool definitions and registration for the snipd server
// ABOUTME: Defines JSON schemas for all 8 snippet tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/snipd/snipd/internal/config"
	"github.com/snipd/snipd/internal/core"
	"github.com/snipd/snipd/internal/llm"
	"github.com/snipd/snipd/internal/rag"
	"github.com/snipd/snipd/internal/storage/sqlite"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, store *sqlite.Storage, orchestrator *core.Orchestrator, ragService *rag.Service, openaiClient *llm.OpenAIClient, cfg *config.Config) *Handlers {
	handlers := &Handlers{
		storage:        store,
		orchestrator:   orchestrator,
		rag:            ragService,
		openaiClient:   openaiClient,
		defaultProject: cfg.DefaultProject,
	}

	// 1. save_snippet - Chunk, embed, and store a code snippet
	server.AddTool(mcp.Tool{
		Name:        "save_snippet",
		Description: "Save a code snippet with the given name. The snippet is chunked, embedded, and stored for later semantic retrieval.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"snippetname": map[string]interface{}{
					"type":        "string",
					"description": "Unique name for the snippet (acts as its id)",
				},
				"snippet": map[string]interface{}{
					"type":        "string",
					"description": "The code snippet content to save",
				},
				"projectid": map[string]interface{}{
					"type":        "string",
					"description": "Project the snippet belongs to (default: " + cfg.DefaultProject + ")",
				},
				"language": map[string]interface{}{
					"type":        "string",
					"description": "Optional programming language of the snippet",
				},
				"description": map[string]interface{}{
					"type":        "string",
					"description": "Optional human-readable description",
				},
			},
			Required: []string{"snippetname", "snippet"},
		},
	}, handlers.SaveSnippet)

	// 2. get_snippet - Retrieve a snippet by name
	server.AddTool(mcp.Tool{
		Name:        "get_snippet",
		Description: "Retrieve a stored code snippet by its name.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"snippetname": map[string]interface{}{
					"type":        "string",
					"description": "Name of the snippet to retrieve",
				},
			},
			Required: []string{"snippetname"},
		},
	}, handlers.GetSnippet)

	// 3. list_snippets - List stored snippets
	server.AddTool(mcp.Tool{
		Name:        "list_snippets",
		Description: "List stored snippets. Optionally scoped to a single project.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"projectid": map[string]interface{}{
					"type":        "string",
					"description": "Only list snippets from this project (default: all projects)",
				},
			},
		},
	}, handlers.ListSnippets)

	// 4. search_snippets - Semantic search over stored snippets
	server.AddTool(mcp.Tool{
		Name:        "search_snippets",
		Description: "Search stored snippets by semantic similarity to a natural-language query.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Natural-language search query",
				},
				"projectid": map[string]interface{}{
					"type":        "string",
					"description": "Project to search within (default: " + cfg.DefaultProject + ")",
				},
				"max_results": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of results to return (default: 30)",
					"default":     sqlite.DefaultTopK,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchSnippets)

	// 5. delete_snippet - Remove a snippet by name
	server.AddTool(mcp.Tool{
		Name:        "delete_snippet",
		Description: "Delete a stored snippet by its name. Succeeds even if the snippet does not exist.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"snippetname": map[string]interface{}{
					"type":        "string",
					"description": "Name of the snippet to delete",
				},
			},
			Required: []string{"snippetname"},
		},
	}, handlers.DeleteSnippet)

	// 6. ask_snippets - RAG question answering over stored snippets
	server.AddTool(mcp.Tool{
		Name:        "ask_snippets",
		Description: "Answer a question using the stored snippets as context. Returns the answer with citations to the snippets used.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Question to answer from the snippet corpus",
				},
				"projectid": map[string]interface{}{
					"type":        "string",
					"description": "Project whose snippets to answer from (default: " + cfg.DefaultProject + ")",
				},
				"max_results": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of snippets to retrieve as context (default: 30)",
					"default":     sqlite.DefaultTopK,
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskSnippets)

	// 7. code_style - Generate a style guide from a project's snippets
	server.AddTool(mcp.Tool{
		Name:        "code_style",
		Description: "Generate a Markdown code style guide derived from the snippets stored in a project.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"projectid": map[string]interface{}{
					"type":        "string",
					"description": "Project whose snippets to analyze (default: " + cfg.DefaultProject + ")",
				},
				"chat_history": map[string]interface{}{
					"type":        "string",
					"description": "Optional conversation context to take into account",
				},
				"focus": map[string]interface{}{
					"type":        "string",
					"description": "Optional aspect to focus the guide on",
				},
			},
		},
	}, handlers.CodeStyle)

	// 8. deep_wiki - Generate project documentation from stored snippets
	server.AddTool(mcp.Tool{
		Name:        "deep_wiki",
		Description: "Generate structured Markdown documentation for the snippets stored in a project.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"projectid": map[string]interface{}{
					"type":        "string",
					"description": "Project whose snippets to document (default: " + cfg.DefaultProject + ")",
				},
				"chat_history": map[string]interface{}{
					"type":        "string",
					"description": "Optional conversation context to take into account",
				},
				"focus": map[string]interface{}{
					"type":        "string",
					"description": "Optional aspect to focus the documentation on",
				},
			},
		},
	}, handlers.DeepWiki)

	return handlers
}
