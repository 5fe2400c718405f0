// Package scope builds lexical scope nesting during a compile walk.
//
// A Builder maintains the active scope stack (root to innermost) while
// the caller descends the source. Entered scopes are recorded in a
// relations.ScopeTree; the tree itself stays top-down only, parent
// links live exclusively in the builder's stack.
package scope

import (
	"errors"

	"github.com/latchlang/lattice/internal/model"
	"github.com/latchlang/lattice/internal/relations"
)

// ErrExitRoot is returned by Exit when only the root scope remains.
var ErrExitRoot = errors.New("cannot exit the root scope")

// Builder constructs scope nesting and per-scope symbol declarations.
//
// Not safe for concurrent use; a builder belongs to a single compile walk.
type Builder struct {
	tree    *relations.ScopeTree
	symbols *relations.Store[string]
	stack   []string
}

// NewBuilder creates a builder rooted at root. The root scope exists
// immediately and is always the bottom of the stack.
func NewBuilder(root string) *Builder {
	return &Builder{
		tree:    relations.NewScopeTree(),
		symbols: relations.NewStore[string](),
		stack:   []string{model.NormalizeName(root)},
	}
}

// Enter records child under the current scope and makes it current.
func (b *Builder) Enter(child string) {
	child = model.NormalizeName(child)
	b.tree.AddScope(b.Current(), child)
	b.stack = append(b.stack, child)
}

// Exit pops the current scope, returning to its parent. Exiting the
// root scope is an error; the stack is left unchanged.
func (b *Builder) Exit() error {
	if len(b.stack) == 1 {
		return ErrExitRoot
	}
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

// Current returns the innermost active scope.
func (b *Builder) Current() string {
	return b.stack[len(b.stack)-1]
}

// Depth returns the number of active scopes, root included.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Declare records a symbol in the current scope. Duplicate declarations
// are kept; the symbol store is an ordered multimap.
func (b *Builder) Declare(symbol string) {
	b.symbols.Add(b.Current(), symbol)
}

// Lookup resolves a symbol innermost-out along the active stack and
// returns the scope that declares it. Shadowing therefore wins: the
// innermost declaration is found first. Returns ok=false when no active
// scope declares the symbol.
func (b *Builder) Lookup(symbol string) (string, bool) {
	for i := len(b.stack) - 1; i >= 0; i-- {
		for _, declared := range b.symbols.Get(b.stack[i]) {
			if declared == symbol {
				return b.stack[i], true
			}
		}
	}
	return "", false
}

// Symbols returns the symbols declared directly in scope, in
// declaration order. Enclosing scopes are not consulted.
func (b *Builder) Symbols(scope string) []string {
	return b.symbols.Get(model.NormalizeName(scope))
}

// Children returns the direct child scopes of parent in entry order.
func (b *Builder) Children(parent string) []string {
	return b.tree.Children(model.NormalizeName(parent))
}

// Tree exposes the underlying scope adjacency.
func (b *Builder) Tree() *relations.ScopeTree {
	return b.tree
}
