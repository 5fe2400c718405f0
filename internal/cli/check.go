package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/latchlang/lattice/internal/compiler"
)

// CheckReport is the payload produced by the check command.
type CheckReport struct {
	Modules  int                     `json:"modules"`
	Edges    int                     `json:"edges"`
	Warnings []compiler.CycleWarning `json:"warnings,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <manifest-dir>",
		Short: "Check a manifest for requirement cycles",
		Long: `Load a CUE manifest and analyze the module requirement graph.

Reports every requirement cycle once, in declaration order. Exits 1
when cycles are found, 2 when the manifest cannot be loaded.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, manifestDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	result, loadErrors := LoadManifest(manifestDir, LoadModeCollectAll)
	if len(loadErrors) > 0 {
		return outputLoadErrors(formatter, loadErrors)
	}
	formatter.VerboseLog("Found %d CUE file(s) in %s", result.FileCount, manifestDir)

	report := CheckReport{
		Modules:  len(result.Manifest.Modules),
		Warnings: compiler.AnalyzeCycles(result.Manifest.Modules),
	}
	for _, mod := range result.Manifest.Modules {
		report.Edges += len(mod.Requires)
	}

	if len(report.Warnings) > 0 {
		if formatter.Format == "json" {
			_ = formatter.Success(report)
		} else {
			for _, warning := range report.Warnings {
				fmt.Fprintln(formatter.Writer, warning.Message)
			}
			fmt.Fprintf(formatter.Writer, "%d cycle(s) found across %d module(s)\n",
				len(report.Warnings), report.Modules)
		}
		return NewExitError(ExitFailure, fmt.Sprintf("%d requirement cycle(s) found", len(report.Warnings)))
	}

	if formatter.Format == "json" {
		return formatter.Success(report)
	}
	fmt.Fprintf(formatter.Writer, "OK: %d module(s), %d requirement edge(s), no cycles\n",
		report.Modules, report.Edges)
	return nil
}

// outputLoadErrors reports manifest load errors and returns a
// command-level ExitError (exit code 2).
func outputLoadErrors(formatter *OutputFormatter, errs []error) error {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
			messages = append(messages, loadErr.Error())
			continue
		}
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		messages = append(messages, err.Error())
	}
	return WrapExitError(ExitCommandError, strings.Join(messages, "; "), nil)
}
