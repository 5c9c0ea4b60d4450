// ABOUTME: Answer and Citation records returned by the RAG query service
// ABOUTME: Citations are the full retrieved set, not a post-hoc subset
package models

// Citation is the {id, score} projection of a retrieved snippet
type Citation struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// Usage carries token accounting from the generation capability
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Answer is a grounded answer with citations for every snippet that was
// retrieved for it, regardless of whether the answer text referenced them.
type Answer struct {
	Answer    string     `json:"answer"`
	Citations []Citation `json:"citations"`
	Usage     Usage      `json:"usage"`
}
