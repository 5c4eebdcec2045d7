package core

import "fmt"

// StageName identifies one stage of the report generation pipeline. The stage
// set is closed: it is fixed by the report standard, not extensible at runtime.
type StageName string

const (
	// StageStakeholderAnalysis ranks stakeholder groups and their concerns.
	StageStakeholderAnalysis StageName = "StakeholderAnalysis"
	// StageMateriality scores disclosure topics into a materiality matrix.
	StageMateriality StageName = "Materiality"
	// StagePolicyBenchmark checks internal policies against disclosure clauses.
	StagePolicyBenchmark StageName = "PolicyBenchmark"
	// StagePeerBenchmark positions the company against peer disclosures.
	StagePeerBenchmark StageName = "PeerBenchmark"
	// StageReportCompiler assembles the narrative draft report.
	StageReportCompiler StageName = "ReportCompiler"
)

// CanonicalStageOrder returns the fixed execution order used by the default
// pipeline. PolicyBenchmark and PeerBenchmark both depend only on Materiality;
// the canonical order places Policy first for reproducibility, but the
// dependency declarations permit either relative order.
func CanonicalStageOrder() []StageName {
	return []StageName{
		StageStakeholderAnalysis,
		StageMateriality,
		StagePolicyBenchmark,
		StagePeerBenchmark,
		StageReportCompiler,
	}
}

// Stage is the capability interface implemented by each pipeline step.
//
// Implementations must:
//   - Declare their upstream artifact dependencies via Dependencies
//   - Fail with *StageExecutionError when a declared dependency is absent
//     from the context view or the underlying content-generation capability
//     is unreachable or times out
//   - Respect cancellation of the RunContext's Context
//
// Structural stage output must be a pure function of the EnterpriseInput;
// only narrative text produced through a non-deterministic generator may vary
// between runs, and stages wiring such a generator document that on their
// constructor.
type Stage interface {
	// Name returns the stage identifier used in artifacts and failure reasons.
	Name() StageName
	// Description returns a short human-readable purpose statement.
	Description() string
	// Dependencies lists the stages whose artifacts must be present in the
	// context view before Execute is called.
	Dependencies() []StageName
	// Execute produces the stage's artifact from the supplied context view.
	Execute(rc *RunContext) (Artifact, error)
}

// StageExecutionError reports the failure of a single stage. The workflow
// engine halts the pipeline on the first occurrence and seals a partial
// package carrying the reason verbatim for operator diagnosis.
type StageExecutionError struct {
	// Stage names the stage that failed.
	Stage StageName
	// Reason is the operator-facing failure description.
	Reason string
	// Err is the optional underlying cause.
	Err error
}

// NewStageExecutionError constructs a StageExecutionError wrapping an
// optional cause.
func NewStageExecutionError(stage StageName, reason string, err error) *StageExecutionError {
	return &StageExecutionError{Stage: stage, Reason: reason, Err: err}
}

// Error implements the error interface.
func (e *StageExecutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stage %s failed: %s: %v", e.Stage, e.Reason, e.Err)
	}
	return fmt.Sprintf("stage %s failed: %s", e.Stage, e.Reason)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *StageExecutionError) Unwrap() error { return e.Err }
