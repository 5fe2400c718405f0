package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompileRelation_NamespacedKey tests a quoted namespaced relation
// key with ordered payload values.
func TestCompileRelation_NamespacedKey(t *testing.T) {
	src := `relation: "ast:calls": { values: ["main->fetch", "main->parse", "main->fetch"] }`
	v := compileValue(t, src, `relation."ast:calls"`)

	spec, err := CompileRelation(v)
	require.NoError(t, err)

	assert.Equal(t, "ast:calls", spec.Key)
	assert.Equal(t, []string{"main->fetch", "main->parse", "main->fetch"}, spec.Values,
		"duplicate payloads are preserved")
}

// TestCompileRelation_EmptyValues tests that an empty payload list is
// valid.
func TestCompileRelation_EmptyValues(t *testing.T) {
	v := compileValue(t, `relation: empty: { values: [] }`, "relation.empty")

	spec, err := CompileRelation(v)
	require.NoError(t, err)

	assert.Equal(t, "empty", spec.Key)
	assert.Empty(t, spec.Values)
}

// TestCompileRelation_MissingValues tests the required-field error.
func TestCompileRelation_MissingValues(t *testing.T) {
	v := compileValue(t, `relation: bare: {}`, "relation.bare")

	_, err := CompileRelation(v)
	require.Error(t, err)

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "values", compileErr.Field)
}

// TestCompileRelation_BadValuesEntry tests non-string payload entries.
func TestCompileRelation_BadValuesEntry(t *testing.T) {
	v := compileValue(t, `relation: bad: { values: [1, 2] }`, "relation.bad")

	_, err := CompileRelation(v)
	require.Error(t, err)

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "values", compileErr.Field)
}
