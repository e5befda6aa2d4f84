package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/e-sung/AxQuery/pkg/axnode"
	"github.com/e-sung/AxQuery/pkg/snapshot"
	"github.com/e-sung/AxQuery/pkg/style"
	"github.com/e-sung/AxQuery/pkg/visibility"
)

func newTreeCmd() *cobra.Command {
	var showHidden bool

	cmd := &cobra.Command{
		Use:   "tree <snapshot>",
		Short: "Render the accessibility tree",
		Long: `Tree loads a snapshot and renders it as a tree. By default only
elements exposed to assistive technologies are shown; --all includes
the rest, marked as hidden.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := snapshot.Load(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("all") {
				showHidden = cfg.Tree.ShowHidden
			}

			format := outputFormat()
			if format == style.FormatJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(treeSummary(root, showHidden))
			}

			node, ok := treeNode(root, showHidden, format == style.FormatTerminal)
			if !ok {
				fmt.Println("no exposed elements")
				return nil
			}
			rendered, err := pterm.DefaultTree.WithRoot(node).Srender()
			if err != nil {
				return err
			}
			fmt.Print(rendered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showHidden, "all", false, "Include elements not exposed to assistive technologies")
	return cmd
}

// treeNode converts a subtree into a pterm tree. Subtrees with nothing
// to show collapse away; a hidden node with visible descendants is kept
// as their anchor.
func treeNode(n axnode.Node, showHidden, styled bool) (pterm.TreeNode, bool) {
	var children []pterm.TreeNode
	for _, child := range n.Children() {
		if node, ok := treeNode(child, showHidden, styled); ok {
			children = append(children, node)
		}
	}

	exposed := visibility.IsExposed(n)
	if !exposed && !showHidden && len(children) == 0 {
		return pterm.TreeNode{}, false
	}

	text := describeNode(n, styled)
	if !exposed {
		if styled {
			text = style.HiddenStyle.Render(describeNode(n, false) + " (hidden)")
		} else {
			text += " (hidden)"
		}
	}
	return pterm.TreeNode{Text: text, Children: children}, true
}

type treeNodeSummary struct {
	nodeSummary
	Exposed  bool              `json:"exposed"`
	Children []treeNodeSummary `json:"children,omitempty"`
}

func treeSummary(n axnode.Node, showHidden bool) treeNodeSummary {
	summary := treeNodeSummary{
		nodeSummary: summarize(n),
		Exposed:     visibility.IsExposed(n),
	}
	for _, child := range n.Children() {
		childSummary := treeSummary(child, showHidden)
		if !childSummary.Exposed && !showHidden && len(childSummary.Children) == 0 {
			continue
		}
		summary.Children = append(summary.Children, childSummary)
	}
	return summary
}
