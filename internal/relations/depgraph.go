package relations

// DepGraph records directed depends-on edges between named items.
//
// Edges are append-only: duplicates are stored redundantly and there is
// no edge-removal operation. An item with no recorded dependencies is
// indistinguishable from an item the graph has never seen.
type DepGraph struct {
	dependencies map[string][]string
}

// NewDepGraph creates an empty dependency graph.
func NewDepGraph() *DepGraph {
	return &DepGraph{dependencies: make(map[string][]string)}
}

// AddDependency records that item depends on dependsOn.
// Always succeeds; duplicate edges are kept verbatim.
func (g *DepGraph) AddDependency(item, dependsOn string) {
	g.dependencies[item] = append(g.dependencies[item], dependsOn)
}

// Dependencies returns the direct dependencies of item in insertion
// order. The returned slice is a copy; unknown items yield an empty
// sequence.
func (g *DepGraph) Dependencies(item string) []string {
	deps := g.dependencies[item]
	if len(deps) == 0 {
		return nil
	}
	out := make([]string, len(deps))
	copy(out, deps)
	return out
}

// HasCircularDependency reports whether following depends-on edges from
// item can return to item.
//
// The search keeps a per-path visited set that is backtracked when a
// branch is exhausted. Shared subgraphs reachable through different
// chains are therefore revisited rather than memoized - correct for
// detecting cycle existence, but worst-case exponential on dense
// diamond-shaped graphs. Callers may depend on the revisit behavior, so
// no global "fully explored" memo is kept.
//
// The traversal uses an explicit frame stack rather than recursion so
// pathologically deep dependency chains cannot exhaust the native call
// stack. Observable behavior is identical to the recursive formulation.
func (g *DepGraph) HasCircularDependency(item string) bool {
	type frame struct {
		node string
		next int // index of the next dependency edge to follow
	}

	onPath := map[string]bool{item: true}
	stack := []frame{{node: item}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		deps := g.dependencies[top.node]

		if top.next < len(deps) {
			dep := deps[top.next]
			top.next++
			if onPath[dep] {
				return true
			}
			onPath[dep] = true
			stack = append(stack, frame{node: dep})
			continue
		}

		// Branch exhausted with no cycle: backtrack the path set so the
		// node can be revisited via a different chain.
		delete(onPath, top.node)
		stack = stack[:len(stack)-1]
	}

	return false
}
