package compiler

import (
	"cuelang.org/go/cue"

	"github.com/latchlang/lattice/internal/model"
)

// CompileModule parses a CUE value into a ModuleSpec.
// Uses the CUE SDK's Go API directly (not CLI subprocess).
//
// The CUE value should be the module struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`module: http: { requires: ["core"] }`)
//	spec, err := CompileModule(v.LookupPath(cue.ParsePath("module.http")))
//
// The module name comes from the struct label and is NFC-normalized, as
// are all requirement names.
func CompileModule(v cue.Value) (*model.ModuleSpec, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	spec := &model.ModuleSpec{}

	// Module name from the struct label (the path selector)
	labels := v.Path().Selectors()
	if len(labels) > 0 {
		spec.Name = model.NormalizeName(selectorString(labels[len(labels)-1]))
	}
	if spec.Name == "" {
		return nil, &CompileError{
			Field:   "module",
			Message: "module name is required",
			Pos:     v.Pos(),
		}
	}

	// path (optional)
	pathVal := v.LookupPath(cue.ParsePath("path"))
	if pathVal.Exists() {
		p, err := pathVal.String()
		if err != nil {
			return nil, &CompileError{
				Field:   "path",
				Message: "path must be a string",
				Pos:     pathVal.Pos(),
			}
		}
		spec.Path = p
	}

	// requires (optional list of module names)
	reqVal := v.LookupPath(cue.ParsePath("requires"))
	if reqVal.Exists() {
		requires, err := compileNameList(reqVal, "requires")
		if err != nil {
			return nil, err
		}
		spec.Requires = requires
	}

	return spec, nil
}

// compileNameList parses a CUE list of identifier strings, normalizing
// each entry.
func compileNameList(v cue.Value, field string) ([]string, error) {
	iter, err := v.List()
	if err != nil {
		return nil, &CompileError{
			Field:   field,
			Message: field + " must be a list of strings",
			Pos:     v.Pos(),
		}
	}

	var names []string
	for iter.Next() {
		name, err := iter.Value().String()
		if err != nil {
			return nil, &CompileError{
				Field:   field,
				Message: field + " entries must be strings",
				Pos:     iter.Value().Pos(),
			}
		}
		names = append(names, model.NormalizeName(name))
	}
	return names, nil
}

// selectorString renders a path selector as a bare name, stripping the
// quotes CUE adds around non-identifier labels like "ast:calls".
func selectorString(sel cue.Selector) string {
	if sel.IsString() {
		return sel.Unquoted()
	}
	return sel.String()
}
