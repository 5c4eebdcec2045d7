package archive

import (
	"sync"

	"github.com/hupe1980/esgflow/core"
)

// InMemoryStore is a process-local core.ArchiveStore useful for tests,
// examples and single-process prototypes. Packages are cloned on save and
// retrieval to keep stored state immutable from the outside. Each package
// record carries its own append lock so confirmation appends on the same
// package serialize while appends on different packages proceed
// independently.
type InMemoryStore struct {
	mu       sync.RWMutex
	packages map[string]*packageRecord
}

type packageRecord struct {
	mu  sync.Mutex // serializes confirmation appends for this package
	pkg *core.Package
}

// NewInMemoryStore returns an empty in-memory archive store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{packages: make(map[string]*packageRecord)}
}

// Persist stores a clone of the sealed package. Identifiers are never reused:
// persisting an already-known id fails with ErrDuplicateID.
func (s *InMemoryStore) Persist(pkg *core.Package) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.packages[pkg.ID]; exists {
		return "", ErrDuplicateID
	}
	s.packages[pkg.ID] = &packageRecord{pkg: pkg.Clone()}
	return pkg.ID, nil
}

// Get returns a snapshot of the stored package or ErrNotFound.
func (s *InMemoryStore) Get(packageID string) (*core.Package, error) {
	s.mu.RLock()
	rec, ok := s.packages[packageID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.pkg.Clone(), nil
}

// List returns summaries of every archived package. Order is map iteration
// order; callers must not assume sorting.
func (s *InMemoryStore) List() ([]core.PackageSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summaries := make([]core.PackageSummary, 0, len(s.packages))
	for _, rec := range s.packages {
		summaries = append(summaries, rec.pkg.Summary())
	}
	return summaries, nil
}

// AppendConfirmation appends a clone of the entry to the package's
// confirmation list. Appends on the same package are atomic with respect to
// each other; existing artifacts and entries are never touched.
func (s *InMemoryStore) AppendConfirmation(packageID string, entry core.ConfirmationEntry) error {
	s.mu.RLock()
	rec, ok := s.packages[packageID]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.pkg.Confirmations = append(rec.pkg.Confirmations, entry)
	return nil
}

// Close implements core.ArchiveStore; the in-memory store holds no resources.
func (s *InMemoryStore) Close() error { return nil }
