package esgflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/esgflow/core"
	"github.com/hupe1980/esgflow/export"
	"github.com/hupe1980/esgflow/generator"
	"github.com/hupe1980/esgflow/ledger"
)

func TestESGFlowEndToEnd(t *testing.T) {
	flow, err := New()
	require.NoError(t, err)
	defer flow.Close()

	input := core.EnterpriseInput{
		Name:            "Ping An Trust",
		Industry:        "Banking",
		Region:          "Shenzhen",
		ReportingPeriod: "2024",
		Description:     "National joint-stock commercial bank",
		StrategyFocus:   "green finance transition",
	}

	pkg, err := flow.Run(context.Background(), input)
	require.NoError(t, err)
	require.NoError(t, pkg.Validate())
	assert.Equal(t, core.StatusComplete, pkg.Status)
	require.Len(t, pkg.Artifacts, 5)

	// The archived snapshot matches the sealed package.
	got, err := flow.Get(pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, pkg.ID, got.ID)

	summaries, err := flow.List()
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	// Review cycle: valid confirmations append in order, an unknown section
	// is rejected without touching the ledger.
	require.NoError(t, flow.Confirm(pkg.ID, core.NewConfirmationEntry("Materiality", true, "matrix approved")))
	require.NoError(t, flow.Confirm(pkg.ID, core.NewConfirmationEntry("Report Overview", false, "expand strategy")))

	err = flow.Confirm(pkg.ID, core.NewConfirmationEntry("Forecast", true, ""))
	var verr *ledger.ValidationError
	assert.ErrorAs(t, err, &verr)

	got, err = flow.Get(pkg.ID)
	require.NoError(t, err)
	require.Len(t, got.Confirmations, 2)
	assert.Equal(t, "Materiality", got.Confirmations[0].Section)

	// The draft report exports as readable text.
	text, err := export.ReportText(got)
	require.NoError(t, err)
	assert.Contains(t, text, "Ping An Trust 2024 Sustainability Report Draft")
}

func TestESGFlowWithGenerator(t *testing.T) {
	gen := generator.NewDeterministic()
	flow, err := New(func(o *Options) { o.Generator = gen })
	require.NoError(t, err)
	defer flow.Close()

	pkg, err := flow.Run(context.Background(), core.EnterpriseInput{
		Name:            "Acme Co",
		Industry:        "Manufacturing",
		ReportingPeriod: "2024",
	})
	require.NoError(t, err)
	assert.Equal(t, core.StatusComplete, pkg.Status)

	report, ok := pkg.FindArtifact(core.StageReportCompiler)
	require.True(t, ok)
	draft, err := core.DecodePayload[core.DraftReport](report)
	require.NoError(t, err)
	assert.Contains(t, draft.Sections[0].Body, "Draft narrative:")
}
