package generator

import (
	"context"
	"fmt"
)

// Deterministic is an in-process Generator whose output is a pure function of
// the request. It serves tests, examples and offline drafting: canned
// responses can be registered per prompt, and unregistered prompts fall back
// to a stable template so stages always receive usable text.
type Deterministic struct {
	name      string
	responses map[string]string
}

// NewDeterministic constructs a Deterministic generator.
func NewDeterministic() *Deterministic {
	return &Deterministic{
		name:      "canned",
		responses: make(map[string]string),
	}
}

// AddResponse registers a canned completion for an exact prompt.
func (d *Deterministic) AddResponse(prompt, response string) { d.responses[prompt] = response }

// Generate implements Generator. It honours ctx cancellation so tests can
// exercise timeout behaviour.
func (d *Deterministic) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text, ok := d.responses[req.Prompt]; ok {
		return &Response{Text: text}, nil
	}
	return &Response{Text: fmt.Sprintf("Draft narrative: %s", req.Prompt)}, nil
}

// Info implements Generator.
func (d *Deterministic) Info() Info {
	return Info{Name: d.name, Provider: "deterministic", Deterministic: true}
}
