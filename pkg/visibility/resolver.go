package visibility

import (
	"github.com/e-sung/AxQuery/pkg/axnode"
)

// IsExposed reports whether a node is visible to assistive technology:
// the node itself must be marked as an accessibility element and no
// ancestor in its container chain may be marked as one. The nearest
// accessible ancestor swallows its descendants even though they remain
// in the raw tree.
func IsExposed(n axnode.Node) bool {
	if !n.IsAccessibilityElement() {
		return false
	}
	for _, ancestor := range n.ContainerChain() {
		if ancestor.IsAccessibilityElement() {
			return false
		}
	}
	return true
}

// EffectiveLabel returns the label used for matching: the explicit label
// when non-empty, otherwise the node kind's implicit fallback, otherwise
// absent.
func EffectiveLabel(n axnode.Node) *string {
	if label := n.Label(); label != nil && *label != "" {
		return label
	}
	rule, ok := ruleFor(n.Kind())
	if !ok || rule.Label == nil {
		return nil
	}
	return rule.Label(n)
}

// EffectiveValue returns the value used for matching: the explicit value
// when non-empty, otherwise the node kind's implicit fallback, otherwise
// absent.
func EffectiveValue(n axnode.Node) *string {
	if value := n.Value(); value != nil && *value != "" {
		return value
	}
	rule, ok := ruleFor(n.Kind())
	if !ok || rule.Value == nil {
		return nil
	}
	return rule.Value(n)
}
