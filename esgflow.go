// Package esgflow provides a high-level façade over the workflow engine and
// service abstractions (archive, ledger, guideline mapping & logging)
// enabling rapid construction of ESG report drafting pipelines. Most
// applications interact with this package by:
//  1. Creating an ESGFlow via New() (optionally overriding the default
//     in-memory archive, stage set or generator)
//  2. Running the pipeline over an EnterpriseInput (Run)
//  3. Reviewing archived packages (Get, List) and recording confirmations
//     (Confirm)
//
// The façade delegates orchestration to workflow.Engine while keeping setup
// and usage ergonomics concise. All defaults are safe for local development
// and testing; production deployments typically supply a durable archive
// store, a provider-backed generator and a structured logger.
package esgflow

import (
	"context"
	"time"

	"github.com/hupe1980/esgflow/archive"
	"github.com/hupe1980/esgflow/core"
	"github.com/hupe1980/esgflow/generator"
	"github.com/hupe1980/esgflow/guideline"
	"github.com/hupe1980/esgflow/ledger"
	"github.com/hupe1980/esgflow/logging"
	"github.com/hupe1980/esgflow/stage"
	"github.com/hupe1980/esgflow/workflow"
)

// Options configures the ESGFlow instance.
type Options struct {
	// Stages overrides the canonical five-stage pipeline. Leave nil to use
	// the default stage set.
	Stages []core.Stage

	// Generator supplies narrative text to the default stage set. Nil keeps
	// runs fully deterministic. Ignored when Stages is set explicitly.
	Generator generator.Generator

	// Store receives every sealed package (defaults to in-memory).
	Store core.ArchiveStore

	// StageTimeout bounds each stage execution. Zero disables the bound.
	StageTimeout time.Duration

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// ESGFlow is the high-level façade aggregating the workflow engine, the
// archive store and the confirmation ledger.
type ESGFlow struct {
	engine *workflow.Engine
	store  core.ArchiveStore
	ledger *ledger.Ledger
}

// New creates a new ESGFlow instance with optional overrides. Any unset
// service is substituted by a safe in-process default.
func New(optFns ...func(o *Options)) (*ESGFlow, error) {
	opts := Options{
		Store:  archive.NewInMemoryStore(),
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Stages == nil {
		opts.Stages = stage.DefaultPipeline(guideline.NewService(), opts.Generator)
	}

	engine, err := workflow.New(func(o *workflow.Options) {
		o.Stages = opts.Stages
		o.Store = opts.Store
		o.StageTimeout = opts.StageTimeout
		o.Logger = opts.Logger
	})
	if err != nil {
		return nil, err
	}

	return &ESGFlow{
		engine: engine,
		store:  opts.Store,
		ledger: ledger.New(opts.Store),
	}, nil
}

// Run executes the pipeline over the input, persists the sealed package and
// returns it. See workflow.Engine.Run for the partial-package semantics.
func (f *ESGFlow) Run(ctx context.Context, input core.EnterpriseInput) (*core.Package, error) {
	return f.engine.Run(ctx, input)
}

// Get returns a snapshot of an archived package.
func (f *ESGFlow) Get(packageID string) (*core.Package, error) {
	return f.store.Get(packageID)
}

// List returns summaries of every archived package.
func (f *ESGFlow) List() ([]core.PackageSummary, error) {
	return f.store.List()
}

// Confirm validates and appends a reviewer confirmation to a package.
func (f *ESGFlow) Confirm(packageID string, entry core.ConfirmationEntry) error {
	return f.ledger.Append(packageID, entry)
}

// Close releases the underlying archive store.
func (f *ESGFlow) Close() error {
	return f.store.Close()
}
