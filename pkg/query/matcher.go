package query

import (
	"fmt"

	"github.com/e-sung/AxQuery/pkg/axnode"
	"github.com/e-sung/AxQuery/pkg/textmatch"
	"github.com/e-sung/AxQuery/pkg/visibility"
)

type matcherKind int

const (
	matcherRole matcherKind = iota
	matcherLabel
	matcherIdentifier
	matcherValue
	matcherHint
	matcherAction
	matcherEnabled
	matcherSelected
)

// Matcher is one atomic predicate over a node. Matchers are immutable
// value objects evaluated independently of each other, each consulting
// only the node's own properties.
type Matcher struct {
	kind  matcherKind
	trait axnode.Trait
	text  textmatch.TextMatch
	str   string
	flag  bool
}

// Matches evaluates the matcher against a single node.
func (m Matcher) Matches(n axnode.Node) bool {
	switch m.kind {
	case matcherRole:
		return n.Traits().Has(m.trait)
	case matcherLabel:
		return m.text.Matches(visibility.EffectiveLabel(n))
	case matcherValue:
		return m.text.Matches(visibility.EffectiveValue(n))
	case matcherHint:
		return m.text.Matches(n.Hint())
	case matcherIdentifier:
		id := n.Identifier()
		return id != nil && *id == m.str
	case matcherAction:
		for _, name := range n.ActionNames() {
			if name == m.str {
				return true
			}
		}
		return false
	case matcherEnabled:
		return axnode.Enabled(n) == m.flag
	case matcherSelected:
		return axnode.Selected(n) == m.flag
	default:
		return false
	}
}

// String renders the matcher as name(args) for query descriptions.
func (m Matcher) String() string {
	switch m.kind {
	case matcherRole:
		return fmt.Sprintf("role(%s)", m.trait)
	case matcherLabel:
		return fmt.Sprintf("label(%s)", m.text)
	case matcherValue:
		return fmt.Sprintf("value(%s)", m.text)
	case matcherHint:
		return fmt.Sprintf("hint(%s)", m.text)
	case matcherIdentifier:
		return fmt.Sprintf("identifier(%q)", m.str)
	case matcherAction:
		return fmt.Sprintf("action(%q)", m.str)
	case matcherEnabled:
		return fmt.Sprintf("enabled(%t)", m.flag)
	case matcherSelected:
		return fmt.Sprintf("selected(%t)", m.flag)
	default:
		return "unknown()"
	}
}
