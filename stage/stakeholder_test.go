package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/esgflow/core"
	"github.com/hupe1980/esgflow/guideline"
)

func TestStakeholderAnalysisBaseGroups(t *testing.T) {
	rc := newRunContext(core.EnterpriseInput{Name: "Acme", Industry: "Software", ReportingPeriod: "2024"})
	art := runThrough(t, rc, NewStakeholderAnalysis(guideline.NewService()))

	smap, err := core.DecodePayload[core.StakeholderMap](art)
	require.NoError(t, err)
	require.Len(t, smap.Groups, 5)

	// High-priority groups come first, insertion order preserved within a tier.
	assert.Equal(t, "Investors", smap.Groups[0].Category)
	assert.Equal(t, "High", smap.Groups[0].Priority)
	assert.Equal(t, "Suppliers", smap.Groups[4].Category)
	assert.Equal(t, "Medium", smap.Groups[4].Priority)
}

func TestStakeholderAnalysisIndustryGroups(t *testing.T) {
	svc := guideline.NewService()

	rc := newRunContext(manufacturingInput())
	art := runThrough(t, rc, NewStakeholderAnalysis(svc))
	smap, err := core.DecodePayload[core.StakeholderMap](art)
	require.NoError(t, err)
	assert.True(t, hasGroup(smap, "Local communities"))
	assert.False(t, hasGroup(smap, "Industry associations"))

	rc = newRunContext(bankingInput())
	art = runThrough(t, rc, NewStakeholderAnalysis(svc))
	smap, err = core.DecodePayload[core.StakeholderMap](art)
	require.NoError(t, err)
	assert.True(t, hasGroup(smap, "Industry associations"))
	assert.False(t, hasGroup(smap, "Local communities"))
}

func TestStakeholderAnalysisCitations(t *testing.T) {
	rc := newRunContext(manufacturingInput())
	art := runThrough(t, rc, NewStakeholderAnalysis(guideline.NewService()))

	require.Len(t, art.Citations, 2)
	assert.Equal(t, core.SourceDisclosureGuide, art.Citations[0].Source)
	assert.Equal(t, "4.2", art.Citations[0].Clause)
	assert.Equal(t, core.SourceGRI, art.Citations[1].Source)
	assert.Equal(t, "3-1", art.Citations[1].Clause)
}
