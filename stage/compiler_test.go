package stage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/esgflow/core"
	"github.com/hupe1980/esgflow/guideline"
)

func compileDraft(t *testing.T, input core.EnterpriseInput) (*core.RunContext, core.Artifact) {
	t.Helper()
	svc := guideline.NewService()
	rc := newRunContext(input)
	art := runThrough(t, rc,
		NewStakeholderAnalysis(svc),
		NewMateriality(svc),
		NewPolicyBenchmark(svc),
		NewPeerBenchmark(svc),
		NewReportCompiler(),
	)
	return rc, art
}

func TestReportCompilerSections(t *testing.T) {
	_, art := compileDraft(t, manufacturingInput())

	draft, err := core.DecodePayload[core.DraftReport](art)
	require.NoError(t, err)
	assert.Equal(t, "Huaxin Manufacturing 2024 Sustainability Report Draft", draft.Title)

	headings := make([]string, 0, len(draft.Sections))
	for _, s := range draft.Sections {
		headings = append(headings, s.Heading)
	}
	assert.Equal(t, []string{
		"Report Overview",
		"Governance and Management Systems",
		"Stakeholder Engagement",
		"Materiality Assessment",
		"Policy Benchmarking and Improvement Actions",
		"Peer Benchmarking Insights",
		"Action Plan",
		"Appendix: Process Document Index",
	}, headings)
}

func TestReportCompilerAppendixListsUpstreamArtifacts(t *testing.T) {
	_, art := compileDraft(t, manufacturingInput())

	draft, err := core.DecodePayload[core.DraftReport](art)
	require.NoError(t, err)
	appendix := draft.Sections[len(draft.Sections)-1].Body
	assert.Contains(t, appendix, "Stakeholder Analysis (StakeholderAnalysis)")
	assert.Contains(t, appendix, "Materiality Matrix (Materiality)")
	assert.Contains(t, appendix, "Policy Alignment Checklist (PolicyBenchmark)")
	assert.Contains(t, appendix, "Peer Benchmark Analysis (PeerBenchmark)")
}

func TestReportCompilerConsolidatesCitations(t *testing.T) {
	rc, art := compileDraft(t, bankingInput())

	var lists [][]core.Citation
	for _, stage := range []core.StageName{core.StageMateriality, core.StagePolicyBenchmark, core.StagePeerBenchmark} {
		up, ok := rc.Artifact(stage)
		require.True(t, ok)
		lists = append(lists, up.Citations)
	}
	assert.Equal(t, core.MergeCitations(lists...), art.Citations)

	// The peer artifact contributes the engagement clauses on top of the
	// materiality union.
	clauses := map[string]bool{}
	for _, c := range art.Citations {
		clauses[string(c.Source)+" "+c.Clause] = true
	}
	assert.True(t, clauses["SSE 4.2"])
	assert.True(t, clauses["GRI 3-1"])
}

func TestReportCompilerMissingDependency(t *testing.T) {
	svc := guideline.NewService()
	rc := newRunContext(manufacturingInput())
	runThrough(t, rc, NewStakeholderAnalysis(svc), NewMateriality(svc), NewPolicyBenchmark(svc))

	_, err := NewReportCompiler().Execute(rc)

	var stageErr *core.StageExecutionError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, core.StageReportCompiler, stageErr.Stage)
	assert.Contains(t, stageErr.Reason, "PeerBenchmark")
}
