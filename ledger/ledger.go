// Package ledger provides the confirmation ledger: a thin validation layer
// in front of the archive store's append operation. Confirmations may only
// reference content actually present in the referenced package; anything else
// is rejected before a single byte is written.
package ledger

import (
	"fmt"

	"github.com/hupe1980/esgflow/core"
)

// ValidationError reports a rejected confirmation entry. Nothing was written:
// a rejected append leaves the package's confirmation list unchanged.
type ValidationError struct {
	// Reason describes why the entry was rejected.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid confirmation: %s", e.Reason)
}

// Ledger validates and appends reviewer confirmations against archived
// packages. It is stateless and safe for concurrent use; atomicity of the
// append itself is the archive store's concern.
type Ledger struct {
	store core.ArchiveStore
}

// New constructs a Ledger over the given archive store.
func New(store core.ArchiveStore) *Ledger {
	return &Ledger{store: store}
}

// Append validates the entry against the referenced package and appends it.
// It fails with *ValidationError when the target section does not correspond
// to any artifact or sub-section present in the package, and passes archive
// errors (unknown package, storage failure) through unchanged.
func (l *Ledger) Append(packageID string, entry core.ConfirmationEntry) error {
	if entry.Section == "" {
		return &ValidationError{Reason: "section reference is empty"}
	}

	pkg, err := l.store.Get(packageID)
	if err != nil {
		return err
	}

	if !sectionExists(pkg, entry.Section) {
		return &ValidationError{
			Reason: fmt.Sprintf("section %q does not exist in package %s", entry.Section, packageID),
		}
	}

	return l.store.AppendConfirmation(packageID, entry)
}

func sectionExists(pkg *core.Package, section string) bool {
	for _, name := range pkg.SectionNames() {
		if name == section {
			return true
		}
	}
	return false
}
