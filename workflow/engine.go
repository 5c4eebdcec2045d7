package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/esgflow/archive"
	"github.com/hupe1980/esgflow/core"
	"github.com/hupe1980/esgflow/guideline"
	"github.com/hupe1980/esgflow/logging"
	"github.com/hupe1980/esgflow/stage"
)

// Options configures an Engine using the functional options pattern. Every
// field has a safe in-process default so tests and prototypes need no setup.
type Options struct {
	// Stages is the ordered stage sequence. Defaults to the canonical
	// five-stage pipeline without a generator.
	Stages []core.Stage

	// Store receives every sealed package. Defaults to an in-memory archive.
	Store core.ArchiveStore

	// StageTimeout bounds each stage execution, covering calls into slow
	// external content-generation capabilities. Zero disables the bound.
	StageTimeout time.Duration

	// Logger provides structured logging. Defaults to a no-op logger.
	Logger logging.Logger
}

// Engine executes the report generation pipeline. It runs the configured
// stages in their declared order, builds the run context incrementally,
// halts on the first stage failure, and seals the outcome as a complete or
// partial package. Failures are captured as data: a partial package is
// always sealed and persisted rather than lost.
//
// An Engine is safe for concurrent Run calls; runs share only the archive
// store.
type Engine struct {
	stages       []core.Stage
	store        core.ArchiveStore
	stageTimeout time.Duration
	logger       logging.Logger
}

// New constructs an Engine after structurally validating the stage sequence:
// stage names must be unique and every declared dependency must appear
// earlier in the sequence. This keeps the fixed order honest against the
// dependency graph while still allowing the independent benchmark stages to
// be swapped.
func New(optFns ...func(o *Options)) (*Engine, error) {
	opts := Options{
		Stages: stage.DefaultPipeline(guideline.NewService(), nil),
		Store:  archive.NewInMemoryStore(),
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if err := validateStages(opts.Stages); err != nil {
		return nil, err
	}
	return &Engine{
		stages:       opts.Stages,
		store:        opts.Store,
		stageTimeout: opts.StageTimeout,
		logger:       opts.Logger,
	}, nil
}

// validateStages checks the structural ordering invariants.
func validateStages(stages []core.Stage) error {
	if len(stages) == 0 {
		return fmt.Errorf("workflow: no stages configured")
	}
	seen := map[core.StageName]bool{}
	for i, st := range stages {
		if seen[st.Name()] {
			return fmt.Errorf("workflow: stage %s configured twice", st.Name())
		}
		for _, dep := range st.Dependencies() {
			if !seen[dep] {
				return fmt.Errorf("workflow: stage %s (position %d) depends on %s which does not run before it", st.Name(), i, dep)
			}
		}
		seen[st.Name()] = true
	}
	return nil
}

// Run executes the pipeline over the given input and returns the sealed
// package. A stage failure does not produce an error: the partial package
// captures it (status, failed stage, verbatim reason) and already-produced
// artifacts remain valid, independently useful outputs. The returned error is
// non-nil only for invalid input or for persistence failures, in which case
// the sealed package is still returned so the caller may retry persisting.
//
// Each stage runs at most once per call and strictly after its predecessors.
// Two calls with identical input yield independent packages with distinct
// identifiers.
func (e *Engine) Run(ctx context.Context, input core.EnterpriseInput) (*core.Package, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	runID := core.NewID()
	rc := core.NewRunContext(ctx, runID, input, e.logger)
	rc.LogInfo("starting run %s for %s", runID, input.Name)

	artifacts := make([]core.Artifact, 0, len(e.stages))
	for _, st := range e.stages {
		art, err := e.executeStage(ctx, rc, st)
		if err != nil {
			stageErr := asStageError(st.Name(), err)
			rc.LogError("run %s halted: %s", runID, stageErr.Error())
			pkg := core.NewPartialPackage(input, artifacts, stageErr)
			return pkg, e.persist(pkg)
		}
		if err := rc.PutArtifact(art); err != nil {
			return nil, err
		}
		artifacts = append(artifacts, art)
	}

	pkg := core.NewCompletePackage(input, artifacts)
	rc.LogInfo("run %s sealed package %s", runID, pkg.ID)
	return pkg, e.persist(pkg)
}

// executeStage runs one stage against its declared dependency view, bounded
// by the configured stage timeout.
func (e *Engine) executeStage(ctx context.Context, rc *core.RunContext, st core.Stage) (core.Artifact, error) {
	stageCtx := ctx
	if e.stageTimeout > 0 {
		var cancel context.CancelFunc
		stageCtx, cancel = context.WithTimeout(ctx, e.stageTimeout)
		defer cancel()
	}

	view := rc.View(st.Dependencies()...).WithContext(stageCtx)

	start := time.Now()
	art, err := st.Execute(view)
	e.logStage(st.Name(), time.Since(start), err)
	if err != nil {
		return core.Artifact{}, err
	}
	if art.Stage != st.Name() {
		return core.Artifact{}, fmt.Errorf("workflow: stage %s produced artifact for %s", st.Name(), art.Stage)
	}
	return art, nil
}

func (e *Engine) logStage(name core.StageName, dur time.Duration, err error) {
	if fl, ok := e.logger.(*logging.ESGFlowLogger); ok {
		fl.LogStageExecution(string(name), dur, err == nil, err)
		return
	}
	if err != nil {
		e.logger.Error("stage %s failed after %s: %v", name, dur, err)
	} else {
		e.logger.Debug("stage %s completed in %s", name, dur)
	}
}

func (e *Engine) persist(pkg *core.Package) error {
	if e.store == nil {
		return nil
	}
	start := time.Now()
	_, err := e.store.Persist(pkg)
	if fl, ok := e.logger.(*logging.ESGFlowLogger); ok {
		fl.LogArchiveOperation("persist", pkg.ID, time.Since(start), err)
	}
	if err != nil {
		return fmt.Errorf("persist package %s: %w", pkg.ID, err)
	}
	return nil
}

// asStageError normalizes any stage failure into a StageExecutionError so
// the sealed package always names the failed stage.
func asStageError(name core.StageName, err error) *core.StageExecutionError {
	var stageErr *core.StageExecutionError
	if errors.As(err, &stageErr) {
		return stageErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return core.NewStageExecutionError(name, "stage timed out", err)
	}
	return core.NewStageExecutionError(name, err.Error(), err)
}
