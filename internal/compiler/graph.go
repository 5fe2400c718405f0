package compiler

import (
	"fmt"
	"strings"

	"github.com/latchlang/lattice/internal/model"
	"github.com/latchlang/lattice/internal/relations"
)

// CycleWarning represents a requirement cycle among manifest modules.
//
// Cycles are warnings, not errors, because they may be intentional or
// transient:
//   - Mid-refactor states where a split module still references its host
//   - Mutually recursive module pairs scheduled for merging
type CycleWarning struct {
	Path    []string `json:"path"`    // Cycle path: ["mod-a", "mod-b", "mod-a"]
	Message string   `json:"message"` // Human-readable description
	Level   string   `json:"level"`   // "warning" or "info"
}

// BuildGraph lowers manifest requirement edges into a dependency graph.
//
// Edges are added in declaration order, duplicates included, so the
// graph reflects the manifest verbatim.
func BuildGraph(modules []model.ModuleSpec) *relations.DepGraph {
	graph := relations.NewDepGraph()
	for _, mod := range modules {
		for _, req := range mod.Requires {
			graph.AddDependency(mod.Name, req)
		}
	}
	return graph
}

// AnalyzeCycles performs static cycle analysis on manifest modules.
//
// Each module is checked with the path-based circularity search; modules
// already covered by a reported cycle path are skipped so one cycle
// produces one warning. A requirement DAG returns an empty list.
func AnalyzeCycles(modules []model.ModuleSpec) []CycleWarning {
	if len(modules) == 0 {
		return []CycleWarning{}
	}

	graph := BuildGraph(modules)

	reported := make(map[string]bool)
	warnings := []CycleWarning{}
	for _, mod := range modules {
		if reported[mod.Name] {
			continue
		}
		if !graph.HasCircularDependency(mod.Name) {
			continue
		}

		// The module may only feed into a cycle rather than sit on it;
		// dedupe on the cycle's own nodes so shared cycles are reported
		// once.
		path := findCyclePath(graph, mod.Name)
		if allReported(path, reported) {
			continue
		}
		for _, node := range path {
			reported[node] = true
		}
		warnings = append(warnings, cyclePathToWarning(path))
	}

	return warnings
}

// allReported reports whether every node on path has already been
// covered by an earlier warning.
func allReported(path []string, reported map[string]bool) bool {
	if len(path) == 0 {
		return false
	}
	for _, node := range path {
		if !reported[node] {
			return false
		}
	}
	return true
}

// findCyclePath re-runs the path-based search from item, tracking the
// active chain, and returns the first cycle found as a closed path
// (first and last element equal). Returns nil if no cycle is reachable.
//
// Depth here is bounded by manifest size, so plain recursion is fine.
func findCyclePath(graph *relations.DepGraph, item string) []string {
	var path []string
	onPath := make(map[string]int) // node -> index in path

	var walk func(node string) []string
	walk = func(node string) []string {
		if start, ok := onPath[node]; ok {
			cycle := append([]string{}, path[start:]...)
			return append(cycle, node)
		}

		onPath[node] = len(path)
		path = append(path, node)

		for _, dep := range graph.Dependencies(node) {
			if cycle := walk(dep); cycle != nil {
				return cycle
			}
		}

		delete(onPath, node)
		path = path[:len(path)-1]
		return nil
	}

	return walk(item)
}

// cyclePathToWarning converts a closed cycle path to a CycleWarning.
func cyclePathToWarning(path []string) CycleWarning {
	if len(path) == 2 && path[0] == path[1] {
		return CycleWarning{
			Path:    path,
			Message: fmt.Sprintf("Self-requirement detected: %s → %s", path[0], path[1]),
			Level:   "warning",
		}
	}

	return CycleWarning{
		Path:    path,
		Message: fmt.Sprintf("Requirement cycle detected: %s", strings.Join(path, " → ")),
		Level:   "warning",
	}
}
