// Package registry provides the in-memory module registry used by
// loaders and interpreters: module names and source paths mapped to
// their exported symbols, plus the requirement edges between loaded
// modules.
//
// The registry is intentionally small. It answers three questions:
// is this module loaded, what does it export, and do its requirements
// loop back on themselves. Requirement tracking delegates to
// relations.DepGraph, so the circularity check carries that package's
// path-based search semantics.
//
// Like the underlying stores, the registry provides no internal
// synchronization; callers that mutate it from multiple goroutines must
// serialize externally.
package registry

import (
	"sort"

	"github.com/latchlang/lattice/internal/model"
	"github.com/latchlang/lattice/internal/relations"
)

// Entry records one loaded module.
type Entry struct {
	// ID is the UUIDv7 load token stamped at registration.
	ID string `json:"id"`

	// Name is the NFC-normalized module name.
	Name string `json:"name"`

	// Path is the source path the module was loaded from, if any.
	Path string `json:"path,omitempty"`

	// Exports maps exported symbol names to their declared types.
	Exports map[string]string `json:"exports,omitempty"`

	// LoadSeq is the logical load order stamp (1 for the first module).
	LoadSeq int64 `json:"load_seq"`
}

// Registry maps module names and paths to their exports and tracks
// requirement edges between modules.
type Registry struct {
	byName map[string]Entry
	byPath map[string]string // path -> normalized name
	deps   *relations.DepGraph
	clock  *Clock
	tokens TokenGenerator
}

// New creates an empty registry with UUIDv7 load tokens.
func New() *Registry {
	return NewWithTokenGenerator(UUIDv7Generator{})
}

// NewWithTokenGenerator creates an empty registry with a caller-supplied
// token generator. Tests use this for deterministic entry IDs.
func NewWithTokenGenerator(gen TokenGenerator) *Registry {
	return &Registry{
		byName: make(map[string]Entry),
		byPath: make(map[string]string),
		deps:   relations.NewDepGraph(),
		clock:  NewClock(),
		tokens: gen,
	}
}

// Register records a loaded module and returns its entry.
//
// The name is NFC-normalized before keying. Exports are copied in, so
// later mutation of the caller's map does not reach the registry.
// Re-registering a name replaces the previous entry (a reload); the new
// entry gets a fresh token and load seq.
func (r *Registry) Register(name, path string, exports map[string]string) Entry {
	entry := Entry{
		ID:      r.tokens.Generate(),
		Name:    model.NormalizeName(name),
		Path:    path,
		Exports: copyExports(exports),
		LoadSeq: r.clock.Next(),
	}
	r.byName[entry.Name] = entry
	if path != "" {
		r.byPath[path] = entry.Name
	}
	return entry
}

// IsLoadedByName reports whether a module with the given name has been
// registered.
func (r *Registry) IsLoadedByName(name string) bool {
	_, ok := r.byName[model.NormalizeName(name)]
	return ok
}

// IsLoadedByPath reports whether a module was registered from the given
// source path.
func (r *Registry) IsLoadedByPath(path string) bool {
	_, ok := r.byPath[path]
	return ok
}

// ExportsByName returns a copy of the exports recorded for name, or nil
// if the module is not loaded (or exports nothing).
func (r *Registry) ExportsByName(name string) map[string]string {
	entry, ok := r.byName[model.NormalizeName(name)]
	if !ok {
		return nil
	}
	return copyExports(entry.Exports)
}

// ExportsByPath returns a copy of the exports for the module registered
// from path, or nil if no module was loaded from that path.
func (r *Registry) ExportsByPath(path string) map[string]string {
	name, ok := r.byPath[path]
	if !ok {
		return nil
	}
	return r.ExportsByName(name)
}

// EntryByName returns the entry for name. The returned entry's exports
// map is a copy.
func (r *Registry) EntryByName(name string) (Entry, bool) {
	entry, ok := r.byName[model.NormalizeName(name)]
	if !ok {
		return Entry{}, false
	}
	entry.Exports = copyExports(entry.Exports)
	return entry, true
}

// Entries returns all registered entries in load order.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.byName))
	for _, entry := range r.byName {
		entry.Exports = copyExports(entry.Exports)
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LoadSeq < entries[j].LoadSeq
	})
	return entries
}

// RecordDependency tracks that module requires dependsOn. Neither side
// has to be registered yet; edges may precede loads during resolution.
func (r *Registry) RecordDependency(module, dependsOn string) {
	r.deps.AddDependency(model.NormalizeName(module), model.NormalizeName(dependsOn))
}

// Dependencies returns the recorded direct requirements of module.
func (r *Registry) Dependencies(module string) []string {
	return r.deps.Dependencies(model.NormalizeName(module))
}

// HasCircularDependency reports whether module's requirement chain loops
// back on itself.
func (r *Registry) HasCircularDependency(module string) bool {
	return r.deps.HasCircularDependency(model.NormalizeName(module))
}

// Graph exposes the underlying dependency graph.
func (r *Registry) Graph() *relations.DepGraph {
	return r.deps
}

func copyExports(exports map[string]string) map[string]string {
	if exports == nil {
		return nil
	}
	out := make(map[string]string, len(exports))
	for k, v := range exports {
		out[k] = v
	}
	return out
}
