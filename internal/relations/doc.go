// Package relations provides the in-memory relation, dependency, and
// scope tracking structures used across the lattice toolchain.
//
// Three sub-stores share a common string key space but are otherwise
// independent:
//   - Store: ordered multimap from a key to opaque values
//   - DepGraph: directed depends-on edges with cycle detection
//   - ScopeTree: parent/child scope adjacency
//
// Tracker aggregates one of each behind a single explicitly constructed
// owner (no package-level shared instance).
//
// DESIGN CONSTRAINTS:
//
// Total reads: lookups on unknown keys degrade to empty results, never
// errors. A key with no entries is indistinguishable from a key that was
// never inserted.
//
// Append-only edges: dependency and scope edges are never removed. The
// only destructive operation is Store.Remove, which removes individual
// values by value equality.
//
// Single-threaded: every operation is a synchronous in-memory mutation or
// read. The package performs no I/O and provides no internal locking;
// callers that need concurrent access must serialize externally.
package relations
