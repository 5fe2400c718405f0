package model

// ModuleSpec describes a named module and the modules it requires.
type ModuleSpec struct {
	Name     string   `json:"name"`
	Path     string   `json:"path,omitempty"`     // source path, informational only
	Requires []string `json:"requires,omitempty"` // direct dependencies, declaration order
}

// ScopeSpec describes one level of declared scope nesting.
// Children are ordered; duplicates are preserved as declared.
type ScopeSpec struct {
	Parent   string   `json:"parent"`
	Children []string `json:"children"`
}

// RelationSpec is an arbitrary named relation and its payload values.
// The key carries no semantics beyond identifying the relation.
type RelationSpec struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

// Manifest is a compiled project manifest: the modules, scopes, and
// relations a host tool wants tracked.
type Manifest struct {
	Modules   []ModuleSpec   `json:"modules,omitempty"`
	Scopes    []ScopeSpec    `json:"scopes,omitempty"`
	Relations []RelationSpec `json:"relations,omitempty"`
}

// Module returns the module spec with the given (normalized) name, or
// nil if the manifest does not declare it.
func (m *Manifest) Module(name string) *ModuleSpec {
	name = NormalizeName(name)
	for i := range m.Modules {
		if m.Modules[i].Name == name {
			return &m.Modules[i]
		}
	}
	return nil
}
