package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/esgflow/archive"
	"github.com/hupe1980/esgflow/core"
	"github.com/hupe1980/esgflow/workflow"
)

func archivedPackage(t *testing.T, store core.ArchiveStore) *core.Package {
	t.Helper()
	engine, err := workflow.New(func(o *workflow.Options) { o.Store = store })
	require.NoError(t, err)
	pkg, err := engine.Run(context.Background(), core.EnterpriseInput{
		Name:            "Acme Co",
		Industry:        "Manufacturing",
		ReportingPeriod: "2024",
	})
	require.NoError(t, err)
	return pkg
}

func TestLedgerAppendValidSections(t *testing.T) {
	store := archive.NewInMemoryStore()
	pkg := archivedPackage(t, store)
	l := New(store)

	first := core.NewConfirmationEntry("Materiality", true, "matrix reviewed")
	second := core.NewConfirmationEntry("Materiality", false, "scores need data backing")
	require.NoError(t, l.Append(pkg.ID, first))
	require.NoError(t, l.Append(pkg.ID, second))

	// Artifact titles and report headings are valid targets too.
	require.NoError(t, l.Append(pkg.ID, core.NewConfirmationEntry("Draft Sustainability Report", true, "")))
	require.NoError(t, l.Append(pkg.ID, core.NewConfirmationEntry("Report Overview", true, "")))

	got, err := store.Get(pkg.ID)
	require.NoError(t, err)
	require.Len(t, got.Confirmations, 4)
	assert.Equal(t, first.ID, got.Confirmations[0].ID)
	assert.Equal(t, second.ID, got.Confirmations[1].ID)
}

func TestLedgerRejectsUnknownSection(t *testing.T) {
	store := archive.NewInMemoryStore()
	pkg := archivedPackage(t, store)
	l := New(store)

	require.NoError(t, l.Append(pkg.ID, core.NewConfirmationEntry("Materiality", true, "")))
	require.NoError(t, l.Append(pkg.ID, core.NewConfirmationEntry("Materiality", true, "")))

	err := l.Append(pkg.ID, core.NewConfirmationEntry("Forecast", true, ""))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "Forecast")

	// The rejected append left the first two entries untouched.
	got, err := store.Get(pkg.ID)
	require.NoError(t, err)
	assert.Len(t, got.Confirmations, 2)
}

func TestLedgerRejectsEmptySection(t *testing.T) {
	store := archive.NewInMemoryStore()
	pkg := archivedPackage(t, store)
	l := New(store)

	err := l.Append(pkg.ID, core.NewConfirmationEntry("", true, ""))
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestLedgerPassesThroughStoreErrors(t *testing.T) {
	l := New(archive.NewInMemoryStore())

	err := l.Append("missing", core.NewConfirmationEntry("Materiality", true, ""))
	assert.ErrorIs(t, err, archive.ErrNotFound)
}
