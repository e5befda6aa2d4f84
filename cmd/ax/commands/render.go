package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/e-sung/AxQuery/pkg/axnode"
	"github.com/e-sung/AxQuery/pkg/style"
	"github.com/e-sung/AxQuery/pkg/visibility"
)

// nodeSummary is the machine-readable shape of a node in json output.
type nodeSummary struct {
	Kind       string   `json:"kind"`
	Label      *string  `json:"label,omitempty"`
	Value      *string  `json:"value,omitempty"`
	Hint       *string  `json:"hint,omitempty"`
	Identifier *string  `json:"id,omitempty"`
	Traits     []string `json:"traits,omitempty"`
	Actions    []string `json:"actions,omitempty"`
	Enabled    bool     `json:"enabled"`
	Selected   bool     `json:"selected"`
}

func summarize(n axnode.Node) nodeSummary {
	return nodeSummary{
		Kind:       string(n.Kind()),
		Label:      visibility.EffectiveLabel(n),
		Value:      visibility.EffectiveValue(n),
		Hint:       n.Hint(),
		Identifier: n.Identifier(),
		Traits:     n.Traits().Names(),
		Actions:    n.ActionNames(),
		Enabled:    axnode.Enabled(n),
		Selected:   axnode.Selected(n),
	}
}

// describeNode renders one node as a single line:
//
//	button "Submit" = "..." (id=submit-button) [button]
func describeNode(n axnode.Node, styled bool) string {
	var sb strings.Builder

	kind := string(n.Kind())
	if styled {
		kind = style.KindStyle.Render(kind)
	}
	sb.WriteString(kind)

	if label := visibility.EffectiveLabel(n); label != nil {
		text := fmt.Sprintf("%q", *label)
		if styled {
			text = style.LabelStyle.Render(text)
		}
		sb.WriteString(" " + text)
	}
	if value := visibility.EffectiveValue(n); value != nil {
		sb.WriteString(" = " + fmt.Sprintf("%q", *value))
	}
	if id := n.Identifier(); id != nil {
		text := fmt.Sprintf("(id=%s)", *id)
		if styled {
			text = style.IdentifierStyle.Render(text)
		}
		sb.WriteString(" " + text)
	}
	if names := n.Traits().Names(); len(names) > 0 {
		text := "[" + strings.Join(names, ",") + "]"
		if styled {
			text = style.TraitStyle.Render(text)
		}
		sb.WriteString(" " + text)
	}
	return sb.String()
}

// renderNodes writes the nodes in the resolved output format. json gets
// an array of summaries, the other formats one line per node.
func renderNodes(w io.Writer, nodes []axnode.Node, format style.Format) error {
	if format == style.FormatJSON {
		summaries := make([]nodeSummary, len(nodes))
		for i, n := range nodes {
			summaries[i] = summarize(n)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	styled := format == style.FormatTerminal
	for _, n := range nodes {
		if _, err := fmt.Fprintln(w, describeNode(n, styled)); err != nil {
			return err
		}
	}
	return nil
}
