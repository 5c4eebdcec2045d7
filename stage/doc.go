// Package stage implements the closed set of content-producing pipeline
// stages: stakeholder analysis, materiality scoring, policy benchmarking,
// peer benchmarking and report compilation. Each stage declares its upstream
// artifact dependencies and produces exactly one immutable artifact from the
// context view the workflow engine hands it.
//
// Structural stage output (groups, topics, scores, checklist statuses,
// citations) is a pure function of the enterprise input. Stages constructed
// with a generator additionally produce narrative text through it; with a nil
// or deterministic generator, repeated runs over the same input yield
// byte-identical payloads.
package stage
