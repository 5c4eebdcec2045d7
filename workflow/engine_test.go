package workflow

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/esgflow/archive"
	"github.com/hupe1980/esgflow/core"
	"github.com/hupe1980/esgflow/generator"
	"github.com/hupe1980/esgflow/guideline"
	"github.com/hupe1980/esgflow/logging"
	"github.com/hupe1980/esgflow/stage"
)

type brokenGenerator struct{ err error }

func (b brokenGenerator) Generate(ctx context.Context, req generator.Request) (*generator.Response, error) {
	return nil, b.err
}

func (b brokenGenerator) Info() generator.Info {
	return generator.Info{Name: "broken", Provider: "test"}
}

// slowGenerator blocks until the stage deadline expires.
type slowGenerator struct{ delay time.Duration }

func (s slowGenerator) Generate(ctx context.Context, req generator.Request) (*generator.Response, error) {
	select {
	case <-time.After(s.delay):
		return &generator.Response{Text: "late"}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s slowGenerator) Info() generator.Info {
	return generator.Info{Name: "slow", Provider: "test"}
}

func testInput() core.EnterpriseInput {
	return core.EnterpriseInput{
		Name:            "Huaxin Manufacturing",
		Industry:        "Manufacturing",
		Region:          "Shanghai",
		ReportingPeriod: "2024",
	}
}

func TestEngineRunComplete(t *testing.T) {
	store := archive.NewInMemoryStore()
	engine, err := New(func(o *Options) { o.Store = store })
	require.NoError(t, err)

	pkg, err := engine.Run(context.Background(), testInput())
	require.NoError(t, err)
	require.NoError(t, pkg.Validate())

	assert.Equal(t, core.StatusComplete, pkg.Status)
	require.Len(t, pkg.Artifacts, 5)
	for i, want := range core.CanonicalStageOrder() {
		assert.Equal(t, want, pkg.Artifacts[i].Stage)
	}

	// The sealed package was persisted under its identifier.
	stored, err := store.Get(pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, pkg.ID, stored.ID)
}

func TestEngineRunDeterministic(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	first, err := engine.Run(context.Background(), testInput())
	require.NoError(t, err)
	second, err := engine.Run(context.Background(), testInput())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	require.Len(t, second.Artifacts, len(first.Artifacts))
	for i := range first.Artifacts {
		assert.Equal(t, string(first.Artifacts[i].Payload), string(second.Artifacts[i].Payload))
		assert.Equal(t, first.Artifacts[i].Citations, second.Artifacts[i].Citations)
	}
}

func TestEngineRunInvalidInput(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	pkg, err := engine.Run(context.Background(), core.EnterpriseInput{Name: "Acme"})
	assert.Error(t, err)
	assert.Nil(t, pkg)
}

func TestEngineSealsPartialOnStageFailure(t *testing.T) {
	svc := guideline.NewService()
	store := archive.NewInMemoryStore()
	engine, err := New(func(o *Options) {
		o.Store = store
		o.Stages = []core.Stage{
			stage.NewStakeholderAnalysis(svc),
			stage.NewMateriality(svc),
			stage.NewPolicyBenchmark(svc, func(o *stage.Options) {
				o.Generator = brokenGenerator{err: context.DeadlineExceeded}
			}),
			stage.NewPeerBenchmark(svc),
			stage.NewReportCompiler(),
		}
	})
	require.NoError(t, err)

	pkg, err := engine.Run(context.Background(), testInput())
	require.NoError(t, err, "a stage failure seals a partial package, it is not a run error")
	require.NotNil(t, pkg)
	require.NoError(t, pkg.Validate())

	assert.Equal(t, core.StatusPartial, pkg.Status)
	assert.Equal(t, core.StagePolicyBenchmark, pkg.FailedStage)
	assert.Contains(t, pkg.FailureReason, "PolicyBenchmark")

	// Exactly the artifacts produced before the failure survive.
	require.Len(t, pkg.Artifacts, 2)
	assert.Equal(t, core.StageStakeholderAnalysis, pkg.Artifacts[0].Stage)
	assert.Equal(t, core.StageMateriality, pkg.Artifacts[1].Stage)

	stored, err := store.Get(pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, core.StatusPartial, stored.Status)
}

func TestEngineStageTimeout(t *testing.T) {
	svc := guideline.NewService()
	engine, err := New(func(o *Options) {
		o.StageTimeout = 20 * time.Millisecond
		o.Stages = []core.Stage{
			stage.NewStakeholderAnalysis(svc),
			stage.NewMateriality(svc),
			stage.NewPolicyBenchmark(svc, func(o *stage.Options) {
				o.Generator = slowGenerator{delay: time.Second}
			}),
			stage.NewPeerBenchmark(svc),
			stage.NewReportCompiler(),
		}
	})
	require.NoError(t, err)

	pkg, err := engine.Run(context.Background(), testInput())
	require.NoError(t, err)
	assert.Equal(t, core.StatusPartial, pkg.Status)
	assert.Equal(t, core.StagePolicyBenchmark, pkg.FailedStage)
	assert.Len(t, pkg.Artifacts, 2)
}

func TestEngineAcceptsSwappedBenchmarkOrder(t *testing.T) {
	svc := guideline.NewService()
	engine, err := New(func(o *Options) {
		o.Stages = []core.Stage{
			stage.NewStakeholderAnalysis(svc),
			stage.NewMateriality(svc),
			stage.NewPeerBenchmark(svc),
			stage.NewPolicyBenchmark(svc),
			stage.NewReportCompiler(),
		}
	})
	require.NoError(t, err)

	pkg, err := engine.Run(context.Background(), testInput())
	require.NoError(t, err)
	assert.Equal(t, core.StatusComplete, pkg.Status)
}

func TestEngineLogsStageAndArchiveOperations(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LogLevelDebug,
		Format: "json",
		Output: &buf,
	})
	engine, err := New(func(o *Options) { o.Logger = logger })
	require.NoError(t, err)

	_, err = engine.Run(context.Background(), testInput())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Stage execution completed")
	assert.Contains(t, out, "Archive operation completed")
}

func TestEngineRejectsDependencyViolations(t *testing.T) {
	svc := guideline.NewService()

	_, err := New(func(o *Options) {
		o.Stages = []core.Stage{
			stage.NewMateriality(svc),
			stage.NewStakeholderAnalysis(svc),
		}
	})
	assert.Error(t, err)

	_, err = New(func(o *Options) {
		o.Stages = []core.Stage{
			stage.NewStakeholderAnalysis(svc),
			stage.NewStakeholderAnalysis(svc),
		}
	})
	assert.Error(t, err)

	_, err = New(func(o *Options) { o.Stages = nil })
	assert.Error(t, err)
}
