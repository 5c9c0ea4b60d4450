// ABOUTME: Typed ingestion request/result records exchanged with the orchestrator
// ABOUTME: Boundary validation lives here so no fan-out starts on a bad batch
package models

import (
	"fmt"
	"strings"
)

// InstanceStatus tracks the lifecycle of one orchestration instance
type InstanceStatus string

const (
	StatusPending   InstanceStatus = "pending"
	StatusRunning   InstanceStatus = "running"
	StatusCompleted InstanceStatus = "completed"
	StatusFailed    InstanceStatus = "failed"
)

// SnippetRequest is one snippet submitted for ingestion
type SnippetRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Language    string `json:"language,omitempty"`
	Description string `json:"description,omitempty"`
}

// IngestRequest is a batch of snippets to ingest under one project scope
type IngestRequest struct {
	ProjectID string           `json:"projectId"`
	Snippets  []SnippetRequest `json:"snippets"`
}

// Validate rejects a malformed batch before any work is scheduled.
// A single bad snippet fails the whole submission; partial fan-out for
// an invalid batch is never allowed.
func (r *IngestRequest) Validate() error {
	if len(r.Snippets) == 0 {
		return fmt.Errorf("snippets list must not be empty")
	}
	for i, s := range r.Snippets {
		if s.Name == "" {
			return fmt.Errorf("snippet %d: name is required", i)
		}
		if strings.TrimSpace(s.Code) == "" {
			return fmt.Errorf("snippet %d (%s): code must not be empty", i, s.Name)
		}
	}
	return nil
}

// SnippetResult is one snippet's slot in the batch outcome
type SnippetResult struct {
	OK    bool   `json:"ok"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// IngestResult is the overall outcome of one orchestration instance
type IngestResult struct {
	InstanceID string          `json:"instanceId"`
	Status     InstanceStatus  `json:"status"`
	Results    []SnippetResult `json:"results"`
}
