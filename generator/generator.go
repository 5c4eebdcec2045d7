// Package generator defines the content-generation capability consumed by
// pipeline stages. Stages treat the generator as a black box: they hand it a
// prompt and receive narrative text, bounding the call with the run's context
// deadline. The package ships a deterministic in-process implementation for
// tests and offline drafting; the openai and anthropic subpackages wrap the
// respective provider APIs.
package generator

import "context"

// Request carries the normalized generation input produced by stages.
type Request struct {
	// Instructions is the system-level framing for the generation.
	Instructions string `json:"instructions"`
	// Prompt is the stage-specific drafting prompt.
	Prompt string `json:"prompt"`
}

// Usage captures token usage statistics for a response.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the generated narrative text plus optional usage metadata.
type Response struct {
	Text  string `json:"text"`
	Usage *Usage `json:"usage,omitempty"`
}

// Info contains metadata about a generator implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "deterministic"
	// Deterministic is true when identical requests always yield identical
	// responses. Stages propagate this into their determinism guarantees.
	Deterministic bool `json:"deterministic"`
}

// Generator is the minimal interface stages require to produce narrative
// text. Implementations must respect ctx cancellation and deadlines; an
// expired deadline surfaces to the stage as a capability timeout.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the generator implementation.
	Info() Info
}
