package core

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a new random identifier for packages and confirmation entries.
func NewID() string { return uuid.NewString() }

// Artifact is the immutable output of one stage: a named, stage-specific
// payload plus the ordered citations that back it. Once produced it must not
// be modified; stores clone artifacts on read and write.
type Artifact struct {
	// Stage names the stage that produced this artifact.
	Stage StageName `json:"stage"`
	// Title is the human-readable document title (e.g. "Policy Alignment Checklist").
	Title string `json:"title"`
	// Payload is the JSON encoding of the stage's typed payload struct.
	Payload json.RawMessage `json:"payload"`
	// Citations are the guideline references backing the payload, in lookup order.
	Citations []Citation `json:"citations"`
}

// NewArtifact marshals the typed payload and wraps it with its citations.
func NewArtifact(stage StageName, title string, payload any, citations []Citation) (Artifact, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Artifact{}, fmt.Errorf("marshal %s payload: %w", stage, err)
	}
	return Artifact{
		Stage:     stage,
		Title:     title,
		Payload:   raw,
		Citations: MergeCitations(citations),
	}, nil
}

// Clone returns a deep copy safe for independent use.
func (a Artifact) Clone() Artifact {
	cp := a
	cp.Payload = append(json.RawMessage(nil), a.Payload...)
	cp.Citations = append([]Citation(nil), a.Citations...)
	return cp
}

// DecodePayload unmarshals an artifact payload into the stage's typed struct.
func DecodePayload[T any](a Artifact) (T, error) {
	var v T
	if err := json.Unmarshal(a.Payload, &v); err != nil {
		return v, fmt.Errorf("decode %s payload: %w", a.Stage, err)
	}
	return v, nil
}
