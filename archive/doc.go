// Package archive provides implementations of core.ArchiveStore: the
// process-local InMemoryStore for tests and prototypes, and the durable
// FileStore which keeps one versioned JSON document per package so archived
// packages stay readable indefinitely.
//
// Both stores clone packages on read and write, keep package identifiers
// unique for their lifetime, and serialize confirmation appends per package
// so the append-only ledger never loses or reorders an entry.
package archive
