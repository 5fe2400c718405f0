package compiler

import (
	"cuelang.org/go/cue"

	"github.com/latchlang/lattice/internal/model"
)

// CompileScope parses a CUE value into a ScopeSpec.
//
// The parent name comes from the struct label; children are declared as
// an ordered list:
//
//	scope: main: { children: ["init", "loop"] }
//
// A children field is required but may be empty. Duplicate children are
// preserved as declared.
func CompileScope(v cue.Value) (*model.ScopeSpec, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	spec := &model.ScopeSpec{}

	labels := v.Path().Selectors()
	if len(labels) > 0 {
		spec.Parent = model.NormalizeName(selectorString(labels[len(labels)-1]))
	}
	if spec.Parent == "" {
		return nil, &CompileError{
			Field:   "scope",
			Message: "scope parent name is required",
			Pos:     v.Pos(),
		}
	}

	childrenVal := v.LookupPath(cue.ParsePath("children"))
	if !childrenVal.Exists() {
		return nil, &CompileError{
			Field:   "children",
			Message: "children is required (use [] for a leaf scope)",
			Pos:     v.Pos(),
		}
	}

	children, err := compileNameList(childrenVal, "children")
	if err != nil {
		return nil, err
	}
	if children == nil {
		children = []string{}
	}
	spec.Children = children

	return spec, nil
}
