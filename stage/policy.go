package stage

import (
	"fmt"
	"strings"

	"github.com/hupe1980/esgflow/core"
	"github.com/hupe1980/esgflow/generator"
)

// PolicyBenchmark compares internal policies against the disclosure-guide and
// GRI clauses applicable to each material topic, producing a one-entry-per-
// topic alignment checklist. Topics without mapped guidance come out
// not-applicable. The checklist itself is deterministic; only the summary
// narrative goes through the optional generator.
type PolicyBenchmark struct {
	BaseStage
	guidelines GuidelineService
	gen        generator.Generator
}

// NewPolicyBenchmark constructs the policy benchmarking stage.
func NewPolicyBenchmark(guidelines GuidelineService, optFns ...func(o *Options)) *PolicyBenchmark {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &PolicyBenchmark{
		BaseStage: NewBaseStage(core.StagePolicyBenchmark,
			"Compare internal policies with disclosure requirements.",
			core.StageMateriality),
		guidelines: guidelines,
		gen:        opts.Generator,
	}
}

// Execute implements core.Stage.
func (p *PolicyBenchmark) Execute(rc *core.RunContext) (core.Artifact, error) {
	matrix, err := dependencyPayload[core.MaterialityMatrix](rc, core.StagePolicyBenchmark, core.StageMateriality)
	if err != nil {
		return core.Artifact{}, err
	}

	entries := make([]core.PolicyCheck, 0, len(matrix.Topics))
	lists := make([][]core.Citation, 0, len(matrix.Topics))
	for _, topic := range matrix.Topics {
		refs := p.guidelines.Lookup(topic.Category)
		entries = append(entries, core.PolicyCheck{
			Topic:      topic.Name,
			Status:     alignmentStatus(topic, refs),
			Note:       alignmentNote(topic, refs),
			References: refs,
		})
		lists = append(lists, refs)
	}

	fallback := fmt.Sprintf(
		"Automated comparison of %s's existing policies against the SSE disclosure guide and GRI universal standards, covering %d material topics with coverage status and improvement direction per topic.",
		rc.Input.Name, len(matrix.Topics))
	summary, err := narrate(rc, core.StagePolicyBenchmark, p.gen,
		"You draft policy benchmarking summaries for corporate sustainability reports.",
		fmt.Sprintf("Summarise the policy alignment review for %s (%s industry) across %d material topics.",
			rc.Input.Name, rc.Input.Industry, len(matrix.Topics)),
		fallback)
	if err != nil {
		return core.Artifact{}, err
	}

	payload := core.PolicyChecklist{Entries: entries, Summary: summary}
	return core.NewArtifact(core.StagePolicyBenchmark, "Policy Alignment Checklist", payload, core.MergeCitations(lists...))
}

// alignmentStatus classifies coverage: no mapped clause means the topic is
// not-applicable, high-impact topics count as aligned, the rest as gaps.
func alignmentStatus(topic core.MaterialTopic, refs []core.Citation) core.AlignmentStatus {
	if len(refs) == 0 {
		return core.AlignmentNotApplicable
	}
	if topic.ImpactScore >= 4.5 {
		return core.AlignmentAligned
	}
	return core.AlignmentGap
}

func alignmentNote(topic core.MaterialTopic, refs []core.Citation) string {
	if len(refs) == 0 {
		return "No disclosure clause mapped; monitor for future guidance."
	}
	clauses := make([]string, len(refs))
	for i, r := range refs {
		clauses[i] = fmt.Sprintf("%s %s", r.Source, r.Clause)
	}
	coverage := "needs strengthening"
	if topic.ImpactScore >= 4.5 {
		coverage = "comprehensive"
	}
	return fmt.Sprintf("Policy coverage: %s; key clauses: %s", coverage, strings.Join(clauses, ", "))
}
