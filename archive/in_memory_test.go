package archive

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/esgflow/core"
)

var _ core.ArchiveStore = (*InMemoryStore)(nil)

func sealedPackage(t *testing.T) *core.Package {
	t.Helper()
	input := core.EnterpriseInput{Name: "Acme Co", Industry: "Manufacturing", ReportingPeriod: "2024"}
	artifacts := make([]core.Artifact, 0, len(core.CanonicalStageOrder()))
	for _, stage := range core.CanonicalStageOrder() {
		a, err := core.NewArtifact(stage, string(stage), map[string]string{"stage": string(stage)}, nil)
		require.NoError(t, err)
		artifacts = append(artifacts, a)
	}
	return core.NewCompletePackage(input, artifacts)
}

func TestInMemoryStorePersistAndGet(t *testing.T) {
	store := NewInMemoryStore()
	pkg := sealedPackage(t)

	id, err := store.Persist(pkg)
	require.NoError(t, err)
	assert.Equal(t, pkg.ID, id)

	got, err := store.Get(pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, pkg.ID, got.ID)
	assert.Len(t, got.Artifacts, 5)
}

func TestInMemoryStoreDuplicateID(t *testing.T) {
	store := NewInMemoryStore()
	pkg := sealedPackage(t)

	_, err := store.Persist(pkg)
	require.NoError(t, err)
	_, err = store.Persist(pkg)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestInMemoryStoreNotFound(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.AppendConfirmation("missing", core.NewConfirmationEntry("Materiality", true, ""))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryStoreSnapshotIsolation(t *testing.T) {
	store := NewInMemoryStore()
	pkg := sealedPackage(t)
	_, err := store.Persist(pkg)
	require.NoError(t, err)

	// Mutating the caller's package or a returned snapshot must not leak into
	// stored state.
	pkg.FailureReason = "mutated"
	got, err := store.Get(pkg.ID)
	require.NoError(t, err)
	assert.Empty(t, got.FailureReason)

	got.Artifacts[0].Title = "mutated"
	again, err := store.Get(pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, "StakeholderAnalysis", again.Artifacts[0].Title)
}

func TestInMemoryStoreAppendConfirmationOrder(t *testing.T) {
	store := NewInMemoryStore()
	pkg := sealedPackage(t)
	_, err := store.Persist(pkg)
	require.NoError(t, err)

	first := core.NewConfirmationEntry("Materiality", true, "reviewed")
	second := core.NewConfirmationEntry("Materiality", false, "needs data")
	require.NoError(t, store.AppendConfirmation(pkg.ID, first))
	require.NoError(t, store.AppendConfirmation(pkg.ID, second))

	got, err := store.Get(pkg.ID)
	require.NoError(t, err)
	require.Len(t, got.Confirmations, 2)
	assert.Equal(t, first.ID, got.Confirmations[0].ID)
	assert.Equal(t, second.ID, got.Confirmations[1].ID)
}

func TestInMemoryStoreConcurrentAppends(t *testing.T) {
	store := NewInMemoryStore()
	pkg := sealedPackage(t)
	_, err := store.Persist(pkg)
	require.NoError(t, err)

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry := core.NewConfirmationEntry("Materiality", true, fmt.Sprintf("reviewer %d", i))
			assert.NoError(t, store.AppendConfirmation(pkg.ID, entry))
		}(i)
	}
	wg.Wait()

	got, err := store.Get(pkg.ID)
	require.NoError(t, err)
	assert.Len(t, got.Confirmations, n)
}

func TestInMemoryStoreList(t *testing.T) {
	store := NewInMemoryStore()
	a := sealedPackage(t)
	b := sealedPackage(t)
	_, err := store.Persist(a)
	require.NoError(t, err)
	_, err = store.Persist(b)
	require.NoError(t, err)

	summaries, err := store.List()
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	ids := map[string]bool{}
	for _, s := range summaries {
		ids[s.ID] = true
		assert.Equal(t, core.StatusComplete, s.Status)
	}
	assert.True(t, ids[a.ID])
	assert.True(t, ids[b.ID])
}
