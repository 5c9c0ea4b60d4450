// ABOUTME: Wiki generator producing project documentation from stored snippets
// ABOUTME: Same retrieval-then-generate shape as the style-guide agent
package agents

import "fmt"

// wikiPrompt defines the documentation agent's task and constraints
const wikiPrompt = `You are DeepWiki, an agent that produces project documentation.

From the provided code snippets, generate structured Markdown documentation
covering:
- What each snippet does and how to use it
- The system architecture (how components interact)
- Notable patterns and conventions

Organize the document with clear headings, one section per snippet plus an
overview. Return only the final Markdown document, no additional commentary.`

// Wiki generates Markdown documentation for the snippets stored under
// projectID. History and focus are optional free-text context.
func Wiki(lister SnippetLister, generator Generator, projectID, history, focus string) (string, error) {
	prompt, err := buildCorpusPrompt(lister, projectID, history, focus, "Generate project documentation.")
	if err != nil {
		return "", err
	}

	doc, _, err := generator.Complete(wikiPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("generating wiki: %w", err)
	}
	return doc, nil
}
