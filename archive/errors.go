package archive

import "fmt"

var (
	// ErrNotFound is returned when no package exists for the given identifier.
	ErrNotFound = fmt.Errorf("package not found")

	// ErrDuplicateID is returned when persisting a package whose identifier
	// is already taken. Package identifiers are unique for the lifetime of a
	// store.
	ErrDuplicateID = fmt.Errorf("package id already exists")
)

// PersistenceError reports a storage-medium failure on a write. It is
// retryable: the store performs no partial writes, so the caller may simply
// invoke the operation again.
type PersistenceError struct {
	// Op names the failing operation ("persist", "append").
	Op string
	// PackageID identifies the affected package.
	PackageID string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("archive %s %s: %v", e.Op, e.PackageID, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *PersistenceError) Unwrap() error { return e.Err }
