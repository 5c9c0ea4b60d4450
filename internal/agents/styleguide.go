// ABOUTME: Style-guide generator grounded on a project's stored snippets
// ABOUTME: Reuses the retrieval primitive and the shared generation capability
package agents

import (
	"fmt"
	"strings"

	"github.com/snipd/snipd/internal/models"
)

// styleGuidePrompt defines the style synthesizer's task and constraints
const styleGuidePrompt = `You are CodeStyleSynthesizer, an agent that produces a code style guide.

Analyze the patterns and conventions in the provided code snippets and
generate a comprehensive code style guide in Markdown format covering:
- Naming conventions
- Code organization
- Documentation standards
- Error handling
- Logging practices

For each section provide clear rules with examples from the actual snippets.
Return only the final Markdown document, no additional commentary.`

// SnippetLister enumerates a project's stored snippets
type SnippetLister interface {
	ListByProject(projectID string) ([]models.SnippetInfo, error)
}

// Generator produces text from a system and user prompt
type Generator interface {
	Complete(systemPrompt, userPrompt string) (string, models.Usage, error)
}

// StyleGuide generates a Markdown style guide from the snippets stored
// under projectID. History and focus are optional free-text context from
// the calling conversation.
func StyleGuide(lister SnippetLister, generator Generator, projectID, history, focus string) (string, error) {
	prompt, err := buildCorpusPrompt(lister, projectID, history, focus, "Generate a code style guide.")
	if err != nil {
		return "", err
	}

	guide, _, err := generator.Complete(styleGuidePrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("generating style guide: %w", err)
	}
	return guide, nil
}

// buildCorpusPrompt assembles the snippet corpus plus optional
// conversation context into one user prompt
func buildCorpusPrompt(lister SnippetLister, projectID, history, focus, task string) (string, error) {
	snippets, err := lister.ListByProject(projectID)
	if err != nil {
		return "", fmt.Errorf("listing snippets for project %s: %w", projectID, err)
	}
	if len(snippets) == 0 {
		return "", fmt.Errorf("no snippets stored for project %s", projectID)
	}

	var b strings.Builder
	b.WriteString(task)
	if focus != "" {
		fmt.Fprintf(&b, "\n\nFocus: %s", focus)
	}
	if history != "" {
		fmt.Fprintf(&b, "\n\nConversation context:\n%s", history)
	}
	b.WriteString("\n\nSnippets:\n")
	for _, s := range snippets {
		fmt.Fprintf(&b, "--- %s ---\n%s\n", s.ID, s.Code)
	}
	return b.String(), nil
}
