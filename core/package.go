package core

import (
	"fmt"
	"time"
)

// PackageStatus marks whether a run completed every stage.
type PackageStatus string

const (
	// StatusComplete means all five stages produced their artifacts.
	StatusComplete PackageStatus = "complete"
	// StatusPartial means the pipeline halted on a stage failure; the package
	// carries the artifacts produced so far plus the failure reason.
	StatusPartial PackageStatus = "partial"
)

// Package is the sealed unit of work produced by one workflow run. After
// sealing it is never mutated except by appending confirmation entries
// through an archive store.
type Package struct {
	// ID uniquely identifies the package for the lifetime of the archive.
	ID string `json:"id"`
	// Input is the enterprise input the run was executed with.
	Input EnterpriseInput `json:"input"`
	// Status is complete or partial.
	Status PackageStatus `json:"status"`
	// FailedStage names the stage that halted a partial run.
	FailedStage StageName `json:"failed_stage,omitempty"`
	// FailureReason is the verbatim reason recorded for a partial run.
	FailureReason string `json:"failure_reason,omitempty"`
	// Artifacts holds one artifact per completed stage, in execution order.
	Artifacts []Artifact `json:"artifacts"`
	// Confirmations is the append-only reviewer ledger.
	Confirmations []ConfirmationEntry `json:"confirmations"`
	// CreatedAt is the UTC sealing time.
	CreatedAt time.Time `json:"created_at"`
}

// PackageSummary is the listing view of an archived package.
type PackageSummary struct {
	ID        string        `json:"id"`
	Status    PackageStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewCompletePackage seals a complete package over the given artifacts.
func NewCompletePackage(input EnterpriseInput, artifacts []Artifact) *Package {
	return &Package{
		ID:            NewID(),
		Input:         input,
		Status:        StatusComplete,
		Artifacts:     cloneArtifacts(artifacts),
		Confirmations: []ConfirmationEntry{},
		CreatedAt:     time.Now().UTC(),
	}
}

// NewPartialPackage seals a partial package over the artifacts produced
// before stageErr halted the pipeline.
func NewPartialPackage(input EnterpriseInput, artifacts []Artifact, stageErr *StageExecutionError) *Package {
	return &Package{
		ID:            NewID(),
		Input:         input,
		Status:        StatusPartial,
		FailedStage:   stageErr.Stage,
		FailureReason: stageErr.Error(),
		Artifacts:     cloneArtifacts(artifacts),
		Confirmations: []ConfirmationEntry{},
		CreatedAt:     time.Now().UTC(),
	}
}

// FindArtifact returns the artifact produced by the named stage.
func (p *Package) FindArtifact(stage StageName) (Artifact, bool) {
	for _, a := range p.Artifacts {
		if a.Stage == stage {
			return a, true
		}
	}
	return Artifact{}, false
}

// SectionNames returns every section reference confirmations may target:
// stage names, artifact titles, and (when the draft report is present) its
// section headings.
func (p *Package) SectionNames() []string {
	names := make([]string, 0, len(p.Artifacts)*2)
	for _, a := range p.Artifacts {
		names = append(names, string(a.Stage))
		if a.Title != "" {
			names = append(names, a.Title)
		}
	}
	if report, ok := p.FindArtifact(StageReportCompiler); ok {
		if draft, err := DecodePayload[DraftReport](report); err == nil {
			for _, s := range draft.Sections {
				names = append(names, s.Heading)
			}
		}
	}
	return names
}

// Validate checks the sealing invariants against the canonical stage order:
// artifacts must form an order-preserving prefix, a complete package carries
// all five, and a partial package carries a strict prefix plus a reason.
//
// Validate asserts the canonical order specifically, not merely a
// dependency-consistent one. Packages sealed from a reordered pipeline (e.g.
// PeerBenchmark before PolicyBenchmark, which the engine permits) are valid
// workflow outputs but fail this check; callers validating such packages must
// check against their configured stage sequence instead.
func (p *Package) Validate() error {
	order := CanonicalStageOrder()
	if len(p.Artifacts) > len(order) {
		return fmt.Errorf("package %s: %d artifacts exceed stage count", p.ID, len(p.Artifacts))
	}
	for i, a := range p.Artifacts {
		if a.Stage != order[i] {
			return fmt.Errorf("package %s: artifact %d is %s, want %s", p.ID, i, a.Stage, order[i])
		}
	}
	switch p.Status {
	case StatusComplete:
		if len(p.Artifacts) != len(order) {
			return fmt.Errorf("package %s: complete with %d of %d artifacts", p.ID, len(p.Artifacts), len(order))
		}
	case StatusPartial:
		if len(p.Artifacts) >= len(order) {
			return fmt.Errorf("package %s: partial but all stages present", p.ID)
		}
		if p.FailureReason == "" {
			return fmt.Errorf("package %s: partial without failure reason", p.ID)
		}
	default:
		return fmt.Errorf("package %s: unknown status %q", p.ID, p.Status)
	}
	return nil
}

// Summary returns the listing view of the package.
func (p *Package) Summary() PackageSummary {
	return PackageSummary{ID: p.ID, Status: p.Status, CreatedAt: p.CreatedAt}
}

// Clone returns a deep copy safe for independent mutation, so stores can hand
// out snapshots without exposing internal state.
func (p *Package) Clone() *Package {
	cp := *p
	cp.Artifacts = cloneArtifacts(p.Artifacts)
	cp.Confirmations = append([]ConfirmationEntry{}, p.Confirmations...)
	cp.Input.Peers = append([]PeerInput(nil), p.Input.Peers...)
	return &cp
}

func cloneArtifacts(artifacts []Artifact) []Artifact {
	cp := make([]Artifact, len(artifacts))
	for i, a := range artifacts {
		cp[i] = a.Clone()
	}
	return cp
}
