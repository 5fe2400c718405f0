package relations

// Tracker aggregates a relation store, a dependency graph, and a scope
// tree behind a single owner.
//
// The three sub-stores use independent key spaces: a key in the relation
// store has no connection to the same name used as a dependency item or
// a scope.
//
// A Tracker is constructed explicitly and handed to consumers, typically
// once at host-process start, and lives for the process lifetime. There
// is no teardown or reset operation.
type Tracker[V comparable] struct {
	relations *Store[V]
	deps      *DepGraph
	scopes    *ScopeTree
}

// NewTracker creates a Tracker with all three sub-stores empty.
func NewTracker[V comparable]() *Tracker[V] {
	return &Tracker[V]{
		relations: NewStore[V](),
		deps:      NewDepGraph(),
		scopes:    NewScopeTree(),
	}
}

// Add appends value to the relation sequence at key.
func (t *Tracker[V]) Add(key string, value V) {
	t.relations.Add(key, value)
}

// Get returns the relation values for key in insertion order.
func (t *Tracker[V]) Get(key string) []V {
	return t.relations.Get(key)
}

// Remove deletes every occurrence of value from the relation at key.
func (t *Tracker[V]) Remove(key string, value V) {
	t.relations.Remove(key, value)
}

// AddDependency records that item depends on dependsOn.
func (t *Tracker[V]) AddDependency(item, dependsOn string) {
	t.deps.AddDependency(item, dependsOn)
}

// Dependencies returns the direct dependencies of item.
func (t *Tracker[V]) Dependencies(item string) []string {
	return t.deps.Dependencies(item)
}

// HasCircularDependency reports whether item sits on a dependency cycle
// reachable from itself.
func (t *Tracker[V]) HasCircularDependency(item string) bool {
	return t.deps.HasCircularDependency(item)
}

// AddScope appends child to the child list of parent.
func (t *Tracker[V]) AddScope(parent, child string) {
	t.scopes.AddScope(parent, child)
}

// Children returns the recorded children of parent.
func (t *Tracker[V]) Children(parent string) []string {
	return t.scopes.Children(parent)
}

// Relations exposes the underlying relation store for consumers that
// hold a sub-store directly.
func (t *Tracker[V]) Relations() *Store[V] {
	return t.relations
}

// Deps exposes the underlying dependency graph.
func (t *Tracker[V]) Deps() *DepGraph {
	return t.deps
}

// Scopes exposes the underlying scope tree.
func (t *Tracker[V]) Scopes() *ScopeTree {
	return t.scopes
}
