// Package workflow provides the orchestration engine that sequences the
// report generation stages, passes state between them, captures failures and
// seals every run into an immutable package persisted to the archive.
//
// A single run is strictly sequential: stage N+1 never starts before stage N
// finishes, because later stages depend on earlier artifacts. Independent
// runs may execute concurrently; each owns its run context exclusively and
// shares only the archive store.
package workflow
