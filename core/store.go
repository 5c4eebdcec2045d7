package core

// ArchiveStore persists sealed packages and their later-appended confirmation
// entries. Implementations must be safe for concurrent use, must keep package
// identifiers unique for their lifetime, and must serialize confirmation
// appends per package so no append is ever lost or reordered.
//
// Listing order is storage-defined; callers must not assume packages are
// returned sorted by creation time.
type ArchiveStore interface {
	// Persist stores a sealed package and returns its identifier. It fails
	// when the identifier is already taken, and with a retryable persistence
	// error on storage failure.
	Persist(pkg *Package) (string, error)
	// Get returns a snapshot of the package, or a not-found error.
	Get(packageID string) (*Package, error)
	// List returns summaries of every archived package.
	List() ([]PackageSummary, error)
	// AppendConfirmation atomically appends an entry to the package's
	// confirmation list. It fails with a not-found error for unknown packages
	// and never modifies existing artifacts or entries.
	AppendConfirmation(packageID string, entry ConfirmationEntry) error
	// Close releases any resources held by the store.
	Close() error
}
