// Package core provides the foundational domain types, interfaces and
// execution contexts used by ESGFlow. It defines the core abstractions for:
//
//   - EnterpriseInput (the immutable per-run company profile)
//   - Stages (the closed set of content-producing pipeline steps)
//   - Artifacts (immutable stage outputs with their citations)
//   - Packages (the sealed unit of work produced by one run)
//   - ConfirmationEntries (append-only reviewer acknowledgements)
//   - RunContext (the scoped view of prior artifacts handed to a stage)
//   - Pluggable archive stores for sealed packages
//
// The package intentionally keeps implementation concerns (persistence,
// workflow orchestration, concrete stages) out of scope, exposing small
// interfaces so backends and stage sets can be swapped independently.
package core
