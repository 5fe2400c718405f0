package model

import "golang.org/x/text/unicode/norm"

// NormalizeName returns the NFC form of an identifier.
//
// Module and scope names arrive from CUE manifests and from host
// applications. The same visible name can be spelled with different
// Unicode sequences (composed vs decomposed accents), and the tracking
// stores key by exact string, so every producer must normalize before
// inserting or looking up. NFC is the canonical form.
func NormalizeName(name string) string {
	return norm.NFC.String(name)
}

// NormalizeNames normalizes a slice of identifiers in place and returns
// it for convenience.
func NormalizeNames(names []string) []string {
	for i, n := range names {
		names[i] = NormalizeName(n)
	}
	return names
}
