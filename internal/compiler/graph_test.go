package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latchlang/lattice/internal/model"
)

// TestAnalyzeCycles_Empty tests that an empty manifest produces no
// warnings.
func TestAnalyzeCycles_Empty(t *testing.T) {
	warnings := AnalyzeCycles(nil)
	assert.Empty(t, warnings, "no modules should produce no warnings")
}

// TestAnalyzeCycles_DAG tests that an acyclic requirement graph produces
// no warnings.
func TestAnalyzeCycles_DAG(t *testing.T) {
	modules := []model.ModuleSpec{
		{Name: "core"},
		{Name: "net", Requires: []string{"core"}},
		{Name: "http", Requires: []string{"net", "core"}},
	}

	warnings := AnalyzeCycles(modules)
	assert.Empty(t, warnings, "DAG should produce no cycle warnings")
}

// TestAnalyzeCycles_SelfRequirement tests detection of a module that
// requires itself.
func TestAnalyzeCycles_SelfRequirement(t *testing.T) {
	modules := []model.ModuleSpec{
		{Name: "loop", Requires: []string{"loop"}},
	}

	warnings := AnalyzeCycles(modules)
	require.Len(t, warnings, 1)

	warning := warnings[0]
	assert.Equal(t, []string{"loop", "loop"}, warning.Path)
	assert.Contains(t, warning.Message, "Self-requirement")
	assert.Equal(t, "warning", warning.Level)
}

// TestAnalyzeCycles_TwoModuleCycle tests detection of a ↔ b and that the
// shared cycle is reported once.
func TestAnalyzeCycles_TwoModuleCycle(t *testing.T) {
	modules := []model.ModuleSpec{
		{Name: "a", Requires: []string{"b"}},
		{Name: "b", Requires: []string{"a"}},
	}

	warnings := AnalyzeCycles(modules)
	require.Len(t, warnings, 1)

	warning := warnings[0]
	assert.Equal(t, []string{"a", "b", "a"}, warning.Path)
	assert.Contains(t, warning.Message, "Requirement cycle")
}

// TestAnalyzeCycles_FeederIntoCycle tests that a module merely requiring
// into a cycle does not duplicate the cycle's warning.
func TestAnalyzeCycles_FeederIntoCycle(t *testing.T) {
	modules := []model.ModuleSpec{
		{Name: "app", Requires: []string{"b"}},
		{Name: "b", Requires: []string{"c"}},
		{Name: "c", Requires: []string{"b"}},
		{Name: "tool", Requires: []string{"c"}},
	}

	warnings := AnalyzeCycles(modules)
	require.Len(t, warnings, 1)
	assert.Equal(t, []string{"b", "c", "b"}, warnings[0].Path)
}

// TestAnalyzeCycles_MultipleIndependentCycles tests one warning per
// distinct cycle.
func TestAnalyzeCycles_MultipleIndependentCycles(t *testing.T) {
	modules := []model.ModuleSpec{
		{Name: "a", Requires: []string{"b"}},
		{Name: "b", Requires: []string{"a"}},
		{Name: "x", Requires: []string{"x"}},
		{Name: "clean", Requires: []string{"a"}},
	}

	warnings := AnalyzeCycles(modules)
	require.Len(t, warnings, 2)
	assert.Equal(t, []string{"a", "b", "a"}, warnings[0].Path)
	assert.Equal(t, []string{"x", "x"}, warnings[1].Path)
}

// TestBuildGraph_DeclarationOrder tests that the lowered graph reflects
// the manifest edges verbatim.
func TestBuildGraph_DeclarationOrder(t *testing.T) {
	modules := []model.ModuleSpec{
		{Name: "m", Requires: []string{"z", "a", "z"}},
	}

	graph := BuildGraph(modules)
	assert.Equal(t, []string{"z", "a", "z"}, graph.Dependencies("m"))
	assert.Empty(t, graph.Dependencies("z"))
}
