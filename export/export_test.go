package export

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/esgflow/core"
	"github.com/hupe1980/esgflow/workflow"
)

func completePackage(t *testing.T) *core.Package {
	t.Helper()
	engine, err := workflow.New(func(o *workflow.Options) { o.Store = nil })
	require.NoError(t, err)
	pkg, err := engine.Run(context.Background(), core.EnterpriseInput{
		Name:            "Acme Co",
		Industry:        "Manufacturing",
		ReportingPeriod: "2024",
	})
	require.NoError(t, err)
	return pkg
}

func TestReportText(t *testing.T) {
	pkg := completePackage(t)

	text, err := ReportText(pkg)
	require.NoError(t, err)
	assert.Contains(t, text, "Acme Co 2024 Sustainability Report Draft")
	assert.Contains(t, text, "1. Report Overview")
	assert.Contains(t, text, "8. Appendix: Process Document Index")
	assert.Contains(t, text, "Citations:")
	assert.Contains(t, text, "SSE 2.1")
}

func TestReportTextWithoutReportArtifact(t *testing.T) {
	pkg := completePackage(t)
	pkg.Artifacts = pkg.Artifacts[:2]

	_, err := ReportText(pkg)
	assert.Error(t, err)
}

func TestMarshalArtifact(t *testing.T) {
	pkg := completePackage(t)

	data, err := MarshalArtifact(pkg, core.StagePolicyBenchmark)
	require.NoError(t, err)

	var art core.Artifact
	require.NoError(t, json.Unmarshal(data, &art))
	assert.Equal(t, core.StagePolicyBenchmark, art.Stage)

	_, err = MarshalArtifact(pkg, core.StageName("Forecast"))
	assert.Error(t, err)
}

func TestMarshalConfirmations(t *testing.T) {
	pkg := completePackage(t)
	pkg.Confirmations = append(pkg.Confirmations,
		core.NewConfirmationEntry("Materiality", true, "reviewed"),
		core.NewConfirmationEntry("Report Overview", false, "rewrite"),
	)

	data, err := MarshalConfirmations(pkg)
	require.NoError(t, err)

	var entries []core.ConfirmationEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Materiality", entries[0].Section)
	assert.Equal(t, "Report Overview", entries[1].Section)
}
