package stage

import (
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/esgflow/core"
	"github.com/hupe1980/esgflow/generator"
	"github.com/hupe1980/esgflow/logging"
)

// GuidelineService resolves a topic category to its ordered guideline
// citations. An empty result means no applicable guidance, never an error.
type GuidelineService interface {
	Lookup(category core.TopicCategory) []core.Citation
}

// Options carries the optional collaborators shared by stage constructors.
type Options struct {
	// Generator supplies narrative text for stages that produce summaries.
	// Nil keeps the stage fully deterministic using template fallbacks.
	Generator generator.Generator
}

// BaseStage bundles the identity and dependency declaration shared by all
// stage implementations. Embed it and supply an Execute method to satisfy
// core.Stage.
type BaseStage struct {
	name        core.StageName
	description string
	deps        []core.StageName
}

// NewBaseStage constructs a BaseStage with the given dependency declaration.
func NewBaseStage(name core.StageName, description string, deps ...core.StageName) BaseStage {
	return BaseStage{name: name, description: description, deps: deps}
}

// Name returns the stage identifier.
func (b *BaseStage) Name() core.StageName { return b.name }

// Description returns a short purpose statement for the stage.
func (b *BaseStage) Description() string { return b.description }

// Dependencies returns a copy of the declared upstream stages.
func (b *BaseStage) Dependencies() []core.StageName {
	return append([]core.StageName{}, b.deps...)
}

// dependencyArtifact fetches a declared upstream artifact from the context
// view. Absence is a contract violation surfaced as a stage execution error.
func dependencyArtifact(rc *core.RunContext, stage, dep core.StageName) (core.Artifact, error) {
	art, ok := rc.Artifact(dep)
	if !ok {
		return core.Artifact{}, core.NewStageExecutionError(stage, fmt.Sprintf("missing upstream artifact %s", dep), nil)
	}
	return art, nil
}

// dependencyPayload fetches and decodes a declared upstream payload.
func dependencyPayload[T any](rc *core.RunContext, stage, dep core.StageName) (T, error) {
	var zero T
	art, err := dependencyArtifact(rc, stage, dep)
	if err != nil {
		return zero, err
	}
	v, err := core.DecodePayload[T](art)
	if err != nil {
		return zero, core.NewStageExecutionError(stage, fmt.Sprintf("corrupt upstream artifact %s", dep), err)
	}
	return v, nil
}

// narrate produces narrative text through the stage's generator, falling back
// to the deterministic template when no generator is wired. Generator
// failures, including expired stage deadlines, surface as stage execution
// errors so the engine seals a partial package.
func narrate(rc *core.RunContext, stage core.StageName, gen generator.Generator, instructions, prompt, fallback string) (string, error) {
	if gen == nil {
		return fallback, nil
	}
	start := time.Now()
	resp, err := gen.Generate(rc.Context, generator.Request{Instructions: instructions, Prompt: prompt})
	logGeneratorCall(rc, gen, resp, time.Since(start), err)
	if err != nil {
		return "", core.NewStageExecutionError(stage, "content generation capability failed", err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return fallback, nil
	}
	return resp.Text, nil
}

func logGeneratorCall(rc *core.RunContext, gen generator.Generator, resp *generator.Response, dur time.Duration, err error) {
	fl, ok := rc.Logger().(*logging.ESGFlowLogger)
	if !ok {
		rc.LogDebug("generator %s call took %s", gen.Info().Provider, dur)
		return
	}
	tokens := 0
	if resp != nil && resp.Usage != nil {
		tokens = resp.Usage.TotalTokens
	}
	fl.LogGeneratorCall(gen.Info().Provider, tokens, dur, err == nil, err)
}

func industryMatches(industry string, keywords ...string) bool {
	lower := strings.ToLower(industry)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
