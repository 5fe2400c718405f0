package registry

import (
	"fmt"

	"github.com/google/uuid"
)

// TokenGenerator mints load tokens for registry entries.
//
// Tests substitute a deterministic implementation (see
// internal/testutil) so registered entries carry stable IDs.
type TokenGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 load tokens.
//
// UUIDv7 embeds a timestamp in the most significant bits, making tokens
// sortable by creation time. This is helpful for debugging and for
// triaging load order across host processes.
//
// Uses github.com/google/uuid package for RFC 4122 compliant UUIDs.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Format: "550e8400-e29b-41d4-a716-446655440000" (36 characters)
//
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	token, err := uuid.NewV7()
	if err != nil {
		panic(fmt.Sprintf("UUIDv7 generation failed: %v", err))
	}
	return token.String()
}
