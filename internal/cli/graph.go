package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// GraphNode is one module's outgoing requirement edges.
type GraphNode struct {
	Name     string   `json:"name"`
	Requires []string `json:"requires,omitempty"`
}

// GraphReport is the payload produced by the graph command.
type GraphReport struct {
	Nodes []GraphNode `json:"nodes"`
}

// NewGraphCommand creates the graph command.
func NewGraphCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <manifest-dir>",
		Short: "Print the module requirement graph",
		Long: `Load a CUE manifest and print each module's requirements as an
adjacency listing, in declaration order.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runGraph(opts *RootOptions, manifestDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result, loadErrors := LoadManifest(manifestDir, LoadModeCollectAll)
	if len(loadErrors) > 0 {
		return outputLoadErrors(formatter, loadErrors)
	}
	formatter.VerboseLog("Found %d CUE file(s) in %s", result.FileCount, manifestDir)

	report := GraphReport{Nodes: make([]GraphNode, 0, len(result.Manifest.Modules))}
	for _, mod := range result.Manifest.Modules {
		report.Nodes = append(report.Nodes, GraphNode{
			Name:     mod.Name,
			Requires: mod.Requires,
		})
	}

	if formatter.Format == "json" {
		return formatter.Success(report)
	}

	for _, node := range report.Nodes {
		if len(node.Requires) == 0 {
			fmt.Fprintf(formatter.Writer, "%s (no requirements)\n", node.Name)
			continue
		}
		fmt.Fprintf(formatter.Writer, "%s -> %s\n", node.Name, strings.Join(node.Requires, ", "))
	}
	return nil
}
