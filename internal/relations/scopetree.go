package relations

// ScopeTree records parent-to-child scope adjacency.
//
// The tree is assumed acyclic by construction but does not enforce or
// verify this. Traversal is strictly top-down, one level at a time:
// there is no parent back-pointer and no ancestor lookup.
type ScopeTree struct {
	scopeTree map[string][]string
}

// NewScopeTree creates an empty scope tree.
func NewScopeTree() *ScopeTree {
	return &ScopeTree{scopeTree: make(map[string][]string)}
}

// AddScope appends child to the ordered child list of parent.
// Always succeeds; duplicate children are kept.
func (t *ScopeTree) AddScope(parent, child string) {
	t.scopeTree[parent] = append(t.scopeTree[parent], child)
}

// Children returns the recorded children of parent in insertion order.
// The returned slice is a copy; parents with no children yield an empty
// sequence.
func (t *ScopeTree) Children(parent string) []string {
	children := t.scopeTree[parent]
	if len(children) == 0 {
		return nil
	}
	out := make([]string, len(children))
	copy(out, children)
	return out
}
