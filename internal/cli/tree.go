package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/latchlang/lattice/internal/model"
	"github.com/latchlang/lattice/internal/relations"
)

// NewTreeCommand creates the tree command.
func NewTreeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <manifest-dir>",
		Short: "Render declared scope nesting as a tree",
		Long: `Load a CUE manifest and render the declared scope adjacency as a
tree. Scopes that never appear as a child are rendered as roots.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runTree(opts *RootOptions, manifestDir string, cmd *cobra.Command) error {
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

	if len(result.Manifest.Scopes) == 0 {
		return outputLoadErrors(formatter, []error{
			&LoadError{Code: ErrCodeGeneric, Message: "no scopes declared in manifest"},
		})
	}

	tree, roots := buildScopeTree(result.Manifest.Scopes)

	if formatter.Format == "json" {
		return formatter.Success(scopeNodesJSON(tree, roots))
	}

	for _, root := range roots {
		rendered := treeprint.NewWithRoot(root)
		appendScopeChildren(rendered, tree, root, map[string]bool{root: true})
		fmt.Fprint(formatter.Writer, rendered.String())
	}
	return nil
}

// buildScopeTree lowers scope declarations into an adjacency and
// returns it with the root scopes: parents that never appear as a
// child, in declaration order.
func buildScopeTree(scopes []model.ScopeSpec) (*relations.ScopeTree, []string) {
	tree := relations.NewScopeTree()
	isChild := map[string]bool{}
	var parents []string
	seenParent := map[string]bool{}

	for _, spec := range scopes {
		if !seenParent[spec.Parent] {
			seenParent[spec.Parent] = true
			parents = append(parents, spec.Parent)
		}
		for _, child := range spec.Children {
			tree.AddScope(spec.Parent, child)
			isChild[child] = true
		}
	}

	var roots []string
	for _, parent := range parents {
		if !isChild[parent] {
			roots = append(roots, parent)
		}
	}
	return tree, roots
}

// appendScopeChildren recursively adds children to the rendered tree.
// The path set guards against cyclic scope declarations; a scope seen
// again on the current path is marked and not descended into.
func appendScopeChildren(branch treeprint.Tree, tree *relations.ScopeTree, scope string, path map[string]bool) {
	for _, child := range tree.Children(scope) {
		if path[child] {
			branch.AddNode(child + " (cycle)")
			continue
		}
		sub := branch.AddBranch(child)
		path[child] = true
		appendScopeChildren(sub, tree, child, path)
		delete(path, child)
	}
}

// ScopeNode is the JSON shape for one scope and its children.
type ScopeNode struct {
	Name     string      `json:"name"`
	Children []ScopeNode `json:"children,omitempty"`
}

// scopeNodesJSON converts the adjacency to nested nodes rooted at roots.
func scopeNodesJSON(tree *relations.ScopeTree, roots []string) []ScopeNode {
	var build func(scope string, path map[string]bool) ScopeNode
	build = func(scope string, path map[string]bool) ScopeNode {
		node := ScopeNode{Name: scope}
		for _, child := range tree.Children(scope) {
			if path[child] {
				node.Children = append(node.Children, ScopeNode{Name: child + " (cycle)"})
				continue
			}
			path[child] = true
			node.Children = append(node.Children, build(child, path))
			delete(path, child)
		}
		return node
	}

	nodes := make([]ScopeNode, 0, len(roots))
	for _, root := range roots {
		nodes = append(nodes, build(root, map[string]bool{root: true}))
	}
	return nodes
}
