package visibility

import (
	"github.com/e-sung/AxQuery/pkg/axnode"
	"github.com/e-sung/AxQuery/pkg/registry"
)

// Text-view content longer than this is not promoted to an implicit
// label; it remains reachable through the value.
const longTextLabelLimit = 128

// KindRule supplies the implicit label and value for one node kind.
// Either function may be nil when the kind has no convention for that
// slot; both are pure functions of the node.
type KindRule struct {
	Label func(n axnode.Node) *string
	Value func(n axnode.Node) *string
}

var kindRules = registry.New[KindRule]()

// RegisterKindRule adds a fallback rule for a node kind. Hosts bridging
// another toolkit register rules for their own kinds; registering a kind
// twice is an error.
func RegisterKindRule(kind axnode.Kind, rule KindRule) error {
	return kindRules.Register(string(kind), rule)
}

// RegisteredKinds lists the kinds that currently have a fallback rule.
func RegisteredKinds() []string {
	return kindRules.List()
}

func ruleFor(kind axnode.Kind) (KindRule, bool) {
	rule, err := kindRules.Get(string(kind))
	if err != nil {
		return KindRule{}, false
	}
	return rule, true
}

func field(n axnode.Node, name string) *string {
	return n.Field(name)
}

func literal(s string) *string {
	return &s
}

func init() {
	builtin := map[axnode.Kind]KindRule{
		axnode.KindLabel: {
			Label: func(n axnode.Node) *string { return field(n, axnode.FieldText) },
		},
		axnode.KindButton: {
			Label: func(n axnode.Node) *string {
				if title := field(n, axnode.FieldTitle); title != nil {
					return title
				}
				return field(n, axnode.FieldAttributedTitle)
			},
		},
		axnode.KindTextField: {
			Label: func(n axnode.Node) *string { return field(n, axnode.FieldPlaceholder) },
			Value: func(n axnode.Node) *string { return field(n, axnode.FieldText) },
		},
		axnode.KindTextView: {
			Label: func(n axnode.Node) *string {
				text := field(n, axnode.FieldText)
				if text == nil || len(*text) > longTextLabelLimit {
					return nil
				}
				return text
			},
			Value: func(n axnode.Node) *string { return field(n, axnode.FieldText) },
		},
		axnode.KindSwitch: {
			Label: func(n axnode.Node) *string {
				on := field(n, axnode.FieldOn)
				if on == nil {
					return nil
				}
				if *on == "1" {
					return literal("On")
				}
				return literal("Off")
			},
			Value: func(n axnode.Node) *string {
				on := field(n, axnode.FieldOn)
				if on == nil {
					return nil
				}
				if *on == "1" {
					return literal("1")
				}
				return literal("0")
			},
		},
		axnode.KindSlider: {
			Value: func(n axnode.Node) *string { return field(n, axnode.FieldNumeric) },
		},
		axnode.KindStepper: {
			Value: func(n axnode.Node) *string { return field(n, axnode.FieldNumeric) },
		},
		axnode.KindProgress: {
			Value: func(n axnode.Node) *string { return field(n, axnode.FieldNumeric) },
		},
		axnode.KindDatePicker: {
			Value: func(n axnode.Node) *string { return field(n, axnode.FieldDate) },
		},
		axnode.KindActivityIndicator: {
			Label: func(n axnode.Node) *string {
				animating := field(n, axnode.FieldAnimating)
				if animating != nil && *animating == "1" {
					return literal("In progress")
				}
				return nil
			},
			Value: func(n axnode.Node) *string {
				animating := field(n, axnode.FieldAnimating)
				if animating == nil {
					return nil
				}
				if *animating == "1" {
					return literal("animating")
				}
				return literal("stopped")
			},
		},
	}

	for kind, rule := range builtin {
		registry.MustRegister(kindRules, string(kind), rule)
	}
}
