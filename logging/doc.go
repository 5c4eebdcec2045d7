// Package logging provides a tiny abstraction over slog so downstream code
// can depend on a minimal interface (Logger) while allowing users to plug any
// structured logger. It also offers a richer ESGFlowLogger with contextual
// helpers (run, package, component) and domain specific logging helpers for
// stage execution, generator calls and archive operations.
package logging
