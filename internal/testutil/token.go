// Package testutil provides deterministic helpers shared by tests
// across the lattice packages.
package testutil

import "fmt"

// SequentialTokenGenerator mints predictable load tokens for tests.
//
// Unlike registry.UUIDv7Generator, each token is a fixed prefix plus a
// zero-padded counter ("test-load-00000001", ...). The same test run
// always produces byte-identical registry entries, which keeps
// assertions and golden snapshots stable.
//
// Not safe for concurrent use; tests drive it from a single goroutine,
// matching the registry's single-owner contract.
type SequentialTokenGenerator struct {
	prefix string
	n      int
}

// NewSequentialTokenGenerator creates a generator with the given prefix.
// An empty prefix defaults to "test-load".
func NewSequentialTokenGenerator(prefix string) *SequentialTokenGenerator {
	if prefix == "" {
		prefix = "test-load"
	}
	return &SequentialTokenGenerator{prefix: prefix}
}

// Generate returns the next token in sequence.
//
// Implements registry.TokenGenerator.
func (g *SequentialTokenGenerator) Generate() string {
	g.n++
	return fmt.Sprintf("%s-%08d", g.prefix, g.n)
}

// FixedTokenGenerator returns the same token every time.
//
// Useful when a scenario needs all entries to share one token, or when
// only the presence of a token matters.
type FixedTokenGenerator struct {
	token string
}

// NewFixedTokenGenerator creates a generator that always returns token.
// An empty token defaults to "test-token-fixed".
func NewFixedTokenGenerator(token string) *FixedTokenGenerator {
	if token == "" {
		token = "test-token-fixed"
	}
	return &FixedTokenGenerator{token: token}
}

// Generate returns the fixed token.
//
// Implements registry.TokenGenerator.
func (g *FixedTokenGenerator) Generate() string {
	return g.token
}
