package stage

import (
	"github.com/hupe1980/esgflow/core"
	"github.com/hupe1980/esgflow/generator"
)

// DefaultPipeline returns the five stages in canonical order. The generator
// may be nil for a fully deterministic pipeline; when set it is shared by the
// stages that produce narrative text.
func DefaultPipeline(guidelines GuidelineService, gen generator.Generator) []core.Stage {
	withGen := func(o *Options) { o.Generator = gen }
	return []core.Stage{
		NewStakeholderAnalysis(guidelines),
		NewMateriality(guidelines),
		NewPolicyBenchmark(guidelines, withGen),
		NewPeerBenchmark(guidelines, withGen),
		NewReportCompiler(withGen),
	}
}
