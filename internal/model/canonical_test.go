package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeName_ComposedAndDecomposed tests that NFC collapses the
// two Unicode spellings of an accented identifier to one key.
func TestNormalizeName_ComposedAndDecomposed(t *testing.T) {
	composed := "caf\u00e9"     // e-acute as a single code point
	decomposed := "cafe\u0301" // e + combining acute
	assert.NotEqual(t, composed, decomposed, "raw spellings must differ for this test")

	assert.Equal(t, NormalizeName(composed), NormalizeName(decomposed))
	assert.Equal(t, composed, NormalizeName(decomposed))
}

// TestNormalizeName_ASCIIPassthrough tests that plain ASCII names are
// unchanged.
func TestNormalizeName_ASCIIPassthrough(t *testing.T) {
	assert.Equal(t, "core.http", NormalizeName("core.http"))
	assert.Equal(t, "", NormalizeName(""))
}

// TestNormalizeNames_InPlace tests slice normalization.
func TestNormalizeNames_InPlace(t *testing.T) {
	names := []string{"cafe\u0301", "plain"}
	got := NormalizeNames(names)

	assert.Equal(t, []string{"caf\u00e9", "plain"}, got)
	assert.Equal(t, got, names, "normalization happens in place")
}

// TestManifest_Module tests lookup by normalized name.
func TestManifest_Module(t *testing.T) {
	m := &Manifest{
		Modules: []ModuleSpec{
			{Name: "core"},
			{Name: "caf\u00e9"},
		},
	}

	assert.Equal(t, "core", m.Module("core").Name)
	assert.Nil(t, m.Module("missing"))

	// Decomposed spelling finds the composed entry.
	found := m.Module("cafe\u0301")
	assert.NotNil(t, found)
	assert.Equal(t, "caf\u00e9", found.Name)
}
