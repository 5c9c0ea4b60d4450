// ABOUTME: MCP tool handler implementations for the snipd server
// ABOUTME: Contains handler implementations with proper error handling for all 8 tools
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/snipd/snipd/internal/agents"
	"github.com/snipd/snipd/internal/core"
	"github.com/snipd/snipd/internal/llm"
	"github.com/snipd/snipd/internal/models"
	"github.com/snipd/snipd/internal/rag"
	"github.com/snipd/snipd/internal/storage/sqlite"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	storage        *sqlite.Storage
	orchestrator   *core.Orchestrator
	rag            *rag.Service
	openaiClient   *llm.OpenAIClient
	defaultProject string
}

// SaveSnippet handles the save_snippet tool
func (h *Handlers) SaveSnippet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("snippetname")
	if err != nil {
		return mcp.NewToolResultError("snippetname argument is required and must be a string"), nil
	}
	code, err := request.RequireString("snippet")
	if err != nil {
		return mcp.NewToolResultError("snippet argument is required and must be a string"), nil
	}
	projectID := request.GetString("projectid", h.defaultProject)

	result, err := h.orchestrator.Run(&models.IngestRequest{
		ProjectID: projectID,
		Snippets: []models.SnippetRequest{{
			Name:        name,
			Code:        code,
			Language:    request.GetString("language", ""),
			Description: request.GetString("description", ""),
		}},
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("saving snippet failed: %v", err)), nil
	}
	if len(result.Results) == 1 && !result.Results[0].OK {
		return mcp.NewToolResultError(fmt.Sprintf("saving snippet failed: %s", result.Results[0].Error)), nil
	}

	response := map[string]interface{}{
		"id":          name,
		"projectid":   projectID,
		"instance_id": result.InstanceID,
		"status":      string(result.Status),
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// GetSnippet handles the get_snippet tool
func (h *Handlers) GetSnippet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("snippetname")
	if err != nil {
		return mcp.NewToolResultError("snippetname argument is required and must be a string"), nil
	}

	snippet, err := h.storage.GetByID(name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get snippet: %v", err)), nil
	}
	if snippet == nil {
		return mcp.NewToolResultError(fmt.Sprintf("snippet %q not found", name)), nil
	}

	return mcp.NewToolResultText(snippet.Code), nil
}

// ListSnippets handles the list_snippets tool
func (h *Handlers) ListSnippets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID := request.GetString("projectid", "")

	var infos []models.SnippetInfo
	var err error
	if projectID == "" {
		infos, err = h.storage.ListAll()
	} else {
		infos, err = h.storage.ListByProject(projectID)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list snippets: %v", err)), nil
	}

	snippets := make([]map[string]interface{}, 0, len(infos))
	for _, info := range infos {
		snippets = append(snippets, map[string]interface{}{
			"id":        info.ID,
			"name":      info.Name,
			"projectid": info.ProjectID,
		})
	}

	response := map[string]interface{}{
		"count":    len(snippets),
		"snippets": snippets,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// SearchSnippets handles the search_snippets tool
func (h *Handlers) SearchSnippets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}
	projectID := request.GetString("projectid", h.defaultProject)
	maxResults := request.GetInt("max_results", sqlite.DefaultTopK)

	results, err := h.rag.Search(query, projectID, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	matches := make([]map[string]interface{}, 0, len(results))
	for _, r := range results {
		matches = append(matches, map[string]interface{}{
			"id":    r.ID,
			"code":  r.Code,
			"score": r.Score,
		})
	}

	response := map[string]interface{}{
		"count":   len(matches),
		"results": matches,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// DeleteSnippet handles the delete_snippet tool
func (h *Handlers) DeleteSnippet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("snippetname")
	if err != nil {
		return mcp.NewToolResultError("snippetname argument is required and must be a string"), nil
	}

	if err := h.storage.Delete(name); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete snippet: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("deleted snippet %q", name)), nil
}

// AskSnippets handles the ask_snippets tool
func (h *Handlers) AskSnippets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}
	projectID := request.GetString("projectid", h.defaultProject)
	maxResults := request.GetInt("max_results", sqlite.DefaultTopK)

	answer, err := h.rag.Answer(question, projectID, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("answering failed: %v", err)), nil
	}

	citations := make([]map[string]interface{}, 0, len(answer.Citations))
	for _, c := range answer.Citations {
		citations = append(citations, map[string]interface{}{
			"id":    c.ID,
			"score": c.Score,
		})
	}

	response := map[string]interface{}{
		"answer":    answer.Answer,
		"citations": citations,
		"usage": map[string]interface{}{
			"prompt_tokens":     answer.Usage.PromptTokens,
			"completion_tokens": answer.Usage.CompletionTokens,
			"total_tokens":      answer.Usage.TotalTokens,
		},
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// CodeStyle handles the code_style tool
func (h *Handlers) CodeStyle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID := request.GetString("projectid", h.defaultProject)
	history := request.GetString("chat_history", "")
	focus := request.GetString("focus", "")

	guide, err := agents.StyleGuide(h.storage, h.openaiClient, projectID, history, focus)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("style guide generation failed: %v", err)), nil
	}

	return mcp.NewToolResultText(guide), nil
}

// DeepWiki handles the deep_wiki tool
func (h *Handlers) DeepWiki(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID := request.GetString("projectid", h.defaultProject)
	history := request.GetString("chat_history", "")
	focus := request.GetString("focus", "")

	doc, err := agents.Wiki(h.storage, h.openaiClient, projectID, history, focus)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("wiki generation failed: %v", err)), nil
	}

	return mcp.NewToolResultText(doc), nil
}
