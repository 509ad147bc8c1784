// Package calc estimates operational resource requirements for a Redis
// deployment and projects memory usage over time.
//
// # Reading Guide
//
// Start with these three files to understand the core:
//   - estimator.go: closed-form memory/latency/CPU formulas
//   - simulator.go: the 100-sample memory projection loop
//   - trend.go: trend classification over a projected series
//
// # Architecture
//
// Everything in this package is a pure function of its inputs: no I/O, no
// retained state, safe for concurrent use. The formula constants live in
// Config so deployment profiles can substitute their own values without
// touching formula logic (see DefaultConfig and cmd's profiles.yaml loader).
//
// Presentation concerns (flag parsing, unit selection, styled output, the
// HTTP API) live in cmd/ and internal/; they validate raw inputs with
// WorkloadParameters.Validate before calling in.
//
// The model is a heuristic: fixed overhead constants plus logarithmic
// latency approximations. It is not calibrated against a running server.
package calc
