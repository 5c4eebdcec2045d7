package stage

import (
	"fmt"
	"strings"

	"github.com/hupe1980/esgflow/core"
	"github.com/hupe1980/esgflow/generator"
)

// ReportCompiler assembles the narrative draft report section by section from
// all four upstream artifacts, embedding citations inline and consolidating
// the citation lists of the materiality, policy and peer artifacts. Narrative
// for the overview section goes through the optional generator; everything
// else is deterministic.
type ReportCompiler struct {
	BaseStage
	gen generator.Generator
}

// NewReportCompiler constructs the report compilation stage.
func NewReportCompiler(optFns ...func(o *Options)) *ReportCompiler {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &ReportCompiler{
		BaseStage: NewBaseStage(core.StageReportCompiler,
			"Create a narrative draft report covering the SSE and GRI structure.",
			core.StageStakeholderAnalysis, core.StageMateriality, core.StagePolicyBenchmark, core.StagePeerBenchmark),
		gen: opts.Generator,
	}
}

// Execute implements core.Stage.
func (r *ReportCompiler) Execute(rc *core.RunContext) (core.Artifact, error) {
	smap, err := dependencyPayload[core.StakeholderMap](rc, core.StageReportCompiler, core.StageStakeholderAnalysis)
	if err != nil {
		return core.Artifact{}, err
	}
	matrix, err := dependencyPayload[core.MaterialityMatrix](rc, core.StageReportCompiler, core.StageMateriality)
	if err != nil {
		return core.Artifact{}, err
	}
	checklist, err := dependencyPayload[core.PolicyChecklist](rc, core.StageReportCompiler, core.StagePolicyBenchmark)
	if err != nil {
		return core.Artifact{}, err
	}
	comparison, err := dependencyPayload[core.PeerComparison](rc, core.StageReportCompiler, core.StagePeerBenchmark)
	if err != nil {
		return core.Artifact{}, err
	}

	input := rc.Input
	overview, err := r.overviewBody(rc)
	if err != nil {
		return core.Artifact{}, err
	}

	draft := core.DraftReport{
		Title: fmt.Sprintf("%s %s Sustainability Report Draft", input.Name, input.ReportingPeriod),
		Sections: []core.ReportSection{
			{Heading: "Report Overview", Body: overview},
			{
				Heading: "Governance and Management Systems",
				Body: "Board and executive responsibilities for sustainability have been mapped; " +
					"the annual appraisal mechanism is being refined. (SSE 2.1 / GRI 2-9)",
			},
			{Heading: "Stakeholder Engagement", Body: stakeholderBody(smap)},
			{Heading: "Materiality Assessment", Body: materialityBody(matrix)},
			{Heading: "Policy Benchmarking and Improvement Actions", Body: policyBody(checklist)},
			{Heading: "Peer Benchmarking Insights", Body: peerBody(comparison)},
			{
				Heading: "Action Plan",
				Body: "Guided by the SSE disclosure guide and the GRI standards, the company will establish an " +
					"indicator data collection plan, a management policy update plan and an external disclosure timetable.",
			},
			{Heading: "Appendix: Process Document Index", Body: appendixBody(rc)},
		},
	}

	citations := r.consolidatedCitations(rc)
	return core.NewArtifact(core.StageReportCompiler, "Draft Sustainability Report", draft, citations)
}

func (r *ReportCompiler) overviewBody(rc *core.RunContext) (string, error) {
	input := rc.Input
	description := input.Description
	if description == "" {
		description = "(company description to be supplemented)"
	}
	strategy := input.StrategyFocus
	if strategy == "" {
		strategy = "(strategy focus to be supplemented)"
	}
	fallback := fmt.Sprintf("Company profile: %s\nStrategy focus: %s", description, strategy)
	return narrate(rc, core.StageReportCompiler, r.gen,
		"You draft the overview section of corporate sustainability reports.",
		fmt.Sprintf("Write a report overview for %s (%s industry, reporting period %s). Profile: %s. Strategy: %s.",
			input.Name, input.Industry, input.ReportingPeriod, description, strategy),
		fallback)
}

func stakeholderBody(smap core.StakeholderMap) string {
	lines := []string{"Key stakeholder groups: (SSE 4.2 / GRI 3-1)"}
	for _, g := range smap.Groups {
		lines = append(lines, fmt.Sprintf("- %s (priority: %s): concerns: %s; channels: %s",
			g.Category, g.Priority, strings.Join(g.Expectations, "; "), strings.Join(g.EngagementChannels, ", ")))
	}
	return strings.Join(lines, "\n")
}

func materialityBody(matrix core.MaterialityMatrix) string {
	lines := []string{"Topics assessed as high impact and high relevance:"}
	for _, name := range matrix.Quadrants[quadrantHighHigh] {
		lines = append(lines, "- "+name)
	}
	return strings.Join(lines, "\n")
}

func policyBody(checklist core.PolicyChecklist) string {
	lines := []string{checklist.Summary}
	for _, e := range checklist.Entries {
		lines = append(lines, fmt.Sprintf("- %s: %s (%s)", e.Topic, e.Status, e.Note))
	}
	return strings.Join(lines, "\n")
}

func peerBody(comparison core.PeerComparison) string {
	lines := []string{comparison.Summary}
	for _, p := range comparison.Peers {
		lines = append(lines, fmt.Sprintf("- %s: %s", p.Name, p.Focus))
	}
	return strings.Join(lines, "\n")
}

func appendixBody(rc *core.RunContext) string {
	lines := []string{}
	for _, stage := range core.CanonicalStageOrder() {
		if a, ok := rc.Artifact(stage); ok {
			lines = append(lines, fmt.Sprintf("- %s (%s)", a.Title, a.Stage))
		}
	}
	return strings.Join(lines, "\n")
}

// consolidatedCitations merges the citation lists of the materiality, policy
// and peer artifacts in that order.
func (r *ReportCompiler) consolidatedCitations(rc *core.RunContext) []core.Citation {
	lists := [][]core.Citation{}
	for _, stage := range []core.StageName{core.StageMateriality, core.StagePolicyBenchmark, core.StagePeerBenchmark} {
		if a, ok := rc.Artifact(stage); ok {
			lists = append(lists, a.Citations)
		}
	}
	return core.MergeCitations(lists...)
}
