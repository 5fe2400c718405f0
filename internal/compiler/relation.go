package compiler

import (
	"cuelang.org/go/cue"

	"github.com/latchlang/lattice/internal/model"
)

// CompileRelation parses a CUE value into a RelationSpec.
//
// The relation key comes from the struct label (often a quoted
// namespaced name like "ast:calls"); values are an ordered list of
// opaque string payloads:
//
//	relation: "ast:calls": { values: ["main->fetch", "main->parse"] }
//
// Values are stored verbatim: they are payloads, not identifiers, so no
// normalization is applied.
func CompileRelation(v cue.Value) (*model.RelationSpec, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	spec := &model.RelationSpec{}

	labels := v.Path().Selectors()
	if len(labels) > 0 {
		spec.Key = model.NormalizeName(selectorString(labels[len(labels)-1]))
	}
	if spec.Key == "" {
		return nil, &CompileError{
			Field:   "relation",
			Message: "relation key is required",
			Pos:     v.Pos(),
		}
	}

	valuesVal := v.LookupPath(cue.ParsePath("values"))
	if !valuesVal.Exists() {
		return nil, &CompileError{
			Field:   "values",
			Message: "values is required",
			Pos:     v.Pos(),
		}
	}

	iter, err := valuesVal.List()
	if err != nil {
		return nil, &CompileError{
			Field:   "values",
			Message: "values must be a list of strings",
			Pos:     valuesVal.Pos(),
		}
	}

	values := []string{}
	for iter.Next() {
		val, err := iter.Value().String()
		if err != nil {
			return nil, &CompileError{
				Field:   "values",
				Message: "values entries must be strings",
				Pos:     iter.Value().Pos(),
			}
		}
		values = append(values, val)
	}
	spec.Values = values

	return spec, nil
}
