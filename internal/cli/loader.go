package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/latchlang/lattice/internal/compiler"
	"github.com/latchlang/lattice/internal/model"
)

// LoadMode controls how errors are handled during manifest loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// LoadResult contains the results of loading a manifest directory.
type LoadResult struct {
	Manifest  model.Manifest
	CUEValue  cue.Value // The raw CUE value for additional processing
	FileCount int       // Number of CUE files found
}

// LoadError represents an error that occurred during manifest loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadManifest loads and compiles a CUE manifest from a directory.
// If mode is LoadModeFailFast, returns on first error.
// If mode is LoadModeCollectAll, collects all errors.
func LoadManifest(dir string, mode LoadMode) (*LoadResult, []error) {
	var errs []error

	// Verify directory exists
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("manifest directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing manifest directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	// Find CUE files
	cueFiles, err := FindCUEFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(cueFiles) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

	// Load CUE instances
	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}

	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	// Build value from instance
	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}}
	}

	result := &LoadResult{
		CUEValue:  value,
		FileCount: len(cueFiles),
	}

	// Extract modules
	modulesVal := value.LookupPath(cue.ParsePath("module"))
	if modulesVal.Exists() {
		iter, iterErr := modulesVal.Fields()
		if iterErr != nil {
			errs = append(errs, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("iterating modules: %v", iterErr)})
			if mode == LoadModeFailFast {
				return result, errs
			}
		} else {
			for iter.Next() {
				spec, compileErr := compiler.CompileModule(iter.Value())
				if compileErr != nil {
					errs = append(errs, convertCompileError(compileErr, "module."+iter.Selector().String()))
					if mode == LoadModeFailFast {
						return result, errs
					}
					continue
				}
				result.Manifest.Modules = append(result.Manifest.Modules, *spec)
			}
		}
	}

	// Extract scopes
	scopesVal := value.LookupPath(cue.ParsePath("scope"))
	if scopesVal.Exists() {
		iter, iterErr := scopesVal.Fields()
		if iterErr != nil {
			errs = append(errs, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("iterating scopes: %v", iterErr)})
			if mode == LoadModeFailFast {
				return result, errs
			}
		} else {
			for iter.Next() {
				spec, compileErr := compiler.CompileScope(iter.Value())
				if compileErr != nil {
					errs = append(errs, convertCompileError(compileErr, "scope."+iter.Selector().String()))
					if mode == LoadModeFailFast {
						return result, errs
					}
					continue
				}
				result.Manifest.Scopes = append(result.Manifest.Scopes, *spec)
			}
		}
	}

	// Extract relations
	relationsVal := value.LookupPath(cue.ParsePath("relation"))
	if relationsVal.Exists() {
		iter, iterErr := relationsVal.Fields()
		if iterErr != nil {
			errs = append(errs, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("iterating relations: %v", iterErr)})
			if mode == LoadModeFailFast {
				return result, errs
			}
		} else {
			for iter.Next() {
				spec, compileErr := compiler.CompileRelation(iter.Value())
				if compileErr != nil {
					errs = append(errs, convertCompileError(compileErr, "relation."+iter.Selector().String()))
					if mode == LoadModeFailFast {
						return result, errs
					}
					continue
				}
				result.Manifest.Relations = append(result.Manifest.Relations, *spec)
			}
		}
	}

	// Check if we found anything
	if len(result.Manifest.Modules) == 0 && len(result.Manifest.Scopes) == 0 &&
		len(result.Manifest.Relations) == 0 && len(errs) == 0 {
		errs = append(errs, &LoadError{Code: ErrCodeGeneric, Message: "no modules, scopes, or relations found in manifest"})
	}

	return result, errs
}

// FindCUEFiles walks the directory and returns all .cue file paths.
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// convertCompileError converts a compiler error to a LoadError with position info.
func convertCompileError(err error, context string) *LoadError {
	var compileErr *compiler.CompileError
	if errors.As(err, &compileErr) {
		return &LoadError{
			Code:    MapFieldToErrorCode(compileErr.Field),
			Message: compileErr.Message,
			Pos:     compileErr.Pos,
		}
	}
	return &LoadError{
		Code:    ErrCodeGeneric,
		Message: fmt.Sprintf("%s: %v", context, err),
	}
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No CUE files found
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE build failed

	// Module validation errors
	ErrCodeModuleName     = "E101" // Malformed module declaration
	ErrCodeModulePath     = "E102" // Invalid module path
	ErrCodeModuleRequires = "E103" // Invalid requires list

	// Scope validation errors
	ErrCodeScopeChildren = "E111" // Missing or invalid children list

	// Relation validation errors
	ErrCodeRelationValues = "E121" // Missing or invalid values list
)

// MapFieldToErrorCode maps a compiler error field to an error code.
func MapFieldToErrorCode(field string) string {
	switch field {
	case "module":
		return ErrCodeModuleName
	case "path":
		return ErrCodeModulePath
	case "requires":
		return ErrCodeModuleRequires
	case "scope", "children":
		return ErrCodeScopeChildren
	case "relation", "values":
		return ErrCodeRelationValues
	default:
		return ErrCodeGeneric
	}
}
