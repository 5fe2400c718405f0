// Package harness executes YAML conformance scenarios against a fresh
// tracker.
//
// A scenario is a linear script of tracker operations (relate, unrelate,
// depend, scope) and observations (get, children, cycle). Running it
// produces a deterministic trace: one event per step, stamped with a
// logical sequence number. Observation steps may carry expectations;
// mismatches fail the result without stopping the run.
//
// Traces are compared against golden files with goldie, so scenario
// behavior is pinned byte-for-byte:
//
//	go test ./internal/harness -update
package harness
