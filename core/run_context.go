package core

import (
	"context"
	"fmt"

	"github.com/hupe1980/esgflow/logging"
)

// RunContext carries the execution scope handed to a stage's Execute method.
// It aggregates:
//
//   - The ambient cancellation Context (bounded by the engine's stage timeout)
//   - Identifiers (RunID)
//   - The immutable EnterpriseInput for the run
//   - The artifacts of previously completed stages, keyed by stage name
//   - Logging helpers
//
// The artifact map grows monotonically as stages complete and is owned
// exclusively by the engine executing the run; stages receive restricted
// views containing only their declared dependencies.
type RunContext struct {
	Context context.Context
	RunID   string
	Input   EnterpriseInput

	artifacts map[StageName]Artifact
	logger    logging.Logger
}

// NewRunContext constructs an empty run context. A nil logger is replaced
// with a no-op logger.
func NewRunContext(ctx context.Context, runID string, input EnterpriseInput, logger logging.Logger) *RunContext {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &RunContext{
		Context:   ctx,
		RunID:     runID,
		Input:     input,
		artifacts: map[StageName]Artifact{},
		logger:    logger,
	}
}

// PutArtifact records a completed stage's artifact. Recording the same stage
// twice is a programming error, since the engine runs each stage at most once.
func (rc *RunContext) PutArtifact(a Artifact) error {
	if _, exists := rc.artifacts[a.Stage]; exists {
		return fmt.Errorf("run %s: artifact for stage %s already recorded", rc.RunID, a.Stage)
	}
	rc.artifacts[a.Stage] = a
	return nil
}

// Artifact returns the artifact of a completed stage, if present in this view.
func (rc *RunContext) Artifact(stage StageName) (Artifact, bool) {
	a, ok := rc.artifacts[stage]
	return a, ok
}

// View returns a restricted context containing only the named upstream
// artifacts. The engine uses it to hand each stage exactly the dependencies
// it declared and nothing more.
func (rc *RunContext) View(deps ...StageName) *RunContext {
	view := NewRunContext(rc.Context, rc.RunID, rc.Input, rc.logger)
	for _, dep := range deps {
		if a, ok := rc.artifacts[dep]; ok {
			view.artifacts[dep] = a
		}
	}
	return view
}

// WithContext returns a shallow copy bound to a different Context. Used by
// the engine to apply per-stage timeouts without disturbing recorded state.
func (rc *RunContext) WithContext(ctx context.Context) *RunContext {
	cp := *rc
	cp.Context = ctx
	return &cp
}

// Logger returns the run's logger.
func (rc *RunContext) Logger() logging.Logger { return rc.logger }

// LogDebug logs a debug message scoped to this run.
func (rc *RunContext) LogDebug(msg string, args ...any) { rc.logger.Debug(msg, args...) }

// LogInfo logs an info message scoped to this run.
func (rc *RunContext) LogInfo(msg string, args ...any) { rc.logger.Info(msg, args...) }

// LogWarn logs a warning scoped to this run.
func (rc *RunContext) LogWarn(msg string, args ...any) { rc.logger.Warn(msg, args...) }

// LogError logs an error scoped to this run.
func (rc *RunContext) LogError(msg string, args ...any) { rc.logger.Error(msg, args...) }
