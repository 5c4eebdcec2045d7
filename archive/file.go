package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hupe1980/esgflow/core"
)

// schemaVersion is the current on-disk envelope version. Bump it when the
// persisted package shape changes; readers reject versions they do not know
// so archived packages are never silently misread.
const schemaVersion = 1

// envelope is the versioned on-disk representation of one package.
type envelope struct {
	SchemaVersion int           `json:"schema_version"`
	Package       *core.Package `json:"package"`
}

// FileStore is a durable core.ArchiveStore keeping one JSON document per
// package under a directory. Writes go through a temp file and rename so a
// crash never leaves a partial archive. Confirmation appends read, extend and
// rewrite the document under a per-package lock.
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// OpenFileStore opens (creating if necessary) a file archive rooted at dir.
func OpenFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &PersistenceError{Op: "open", PackageID: "", Err: err}
	}
	return &FileStore{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

func (s *FileStore) path(packageID string) string {
	return filepath.Join(s.dir, packageID+".json")
}

// lockFor returns the append lock for a package id, creating it lazily.
func (s *FileStore) lockFor(packageID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[packageID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[packageID] = l
	}
	return l
}

// Persist writes the sealed package as a fresh document. Existing identifiers
// are rejected with ErrDuplicateID; storage failures surface as retryable
// *PersistenceError.
func (s *FileStore) Persist(pkg *core.Package) (string, error) {
	lock := s.lockFor(pkg.ID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := os.Stat(s.path(pkg.ID)); err == nil {
		return "", ErrDuplicateID
	} else if !os.IsNotExist(err) {
		return "", &PersistenceError{Op: "persist", PackageID: pkg.ID, Err: err}
	}
	if err := s.write(pkg); err != nil {
		return "", err
	}
	return pkg.ID, nil
}

// Get reads and decodes the package document or returns ErrNotFound.
func (s *FileStore) Get(packageID string) (*core.Package, error) {
	lock := s.lockFor(packageID)
	lock.Lock()
	defer lock.Unlock()
	return s.read(packageID)
}

// List scans the archive directory and returns one summary per document.
// Order follows directory listing order; callers must not assume sorting.
func (s *FileStore) List() ([]core.PackageSummary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &PersistenceError{Op: "list", PackageID: "", Err: err}
	}
	summaries := make([]core.PackageSummary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".json")
		pkg, err := s.Get(id)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, pkg.Summary())
	}
	return summaries, nil
}

// AppendConfirmation extends the package's confirmation list and rewrites the
// document atomically. The per-package lock makes concurrent appends on the
// same package serialize; no append is ever lost.
func (s *FileStore) AppendConfirmation(packageID string, entry core.ConfirmationEntry) error {
	lock := s.lockFor(packageID)
	lock.Lock()
	defer lock.Unlock()

	pkg, err := s.read(packageID)
	if err != nil {
		return err
	}
	pkg.Confirmations = append(pkg.Confirmations, entry)
	return s.write(pkg)
}

// Close implements core.ArchiveStore. Every write is already flushed and
// renamed into place, so there is nothing to tear down.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) read(packageID string) (*core.Package, error) {
	data, err := os.ReadFile(s.path(packageID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, &PersistenceError{Op: "read", PackageID: packageID, Err: err}
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &PersistenceError{Op: "read", PackageID: packageID, Err: err}
	}
	if env.SchemaVersion != schemaVersion {
		return nil, &PersistenceError{
			Op:        "read",
			PackageID: packageID,
			Err:       fmt.Errorf("unsupported schema version %d", env.SchemaVersion),
		}
	}
	return env.Package, nil
}

// write encodes compactly: re-indenting would rewrite the raw artifact
// payloads, and payload bytes must survive a round-trip unchanged.
func (s *FileStore) write(pkg *core.Package) error {
	data, err := json.Marshal(envelope{SchemaVersion: schemaVersion, Package: pkg})
	if err != nil {
		return &PersistenceError{Op: "persist", PackageID: pkg.ID, Err: err}
	}
	tmp, err := os.CreateTemp(s.dir, pkg.ID+".tmp-*")
	if err != nil {
		return &PersistenceError{Op: "persist", PackageID: pkg.ID, Err: err}
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &PersistenceError{Op: "persist", PackageID: pkg.ID, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &PersistenceError{Op: "persist", PackageID: pkg.ID, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path(pkg.ID)); err != nil {
		return &PersistenceError{Op: "persist", PackageID: pkg.ID, Err: err}
	}
	return nil
}
