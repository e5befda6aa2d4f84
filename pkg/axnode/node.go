package axnode

// Node is the capability interface the host UI tree provides to the
// query engine. Nodes are borrowed read-only for the duration of a single
// traversal; the engine never mutates or retains them.
type Node interface {
	// Kind returns the control family used for implicit label/value rules.
	Kind() Kind

	// Traits returns the node's role/state trait set.
	Traits() Trait

	// Label returns the developer-set accessible name, or nil.
	Label() *string

	// Value returns the developer-set accessible value, or nil.
	Value() *string

	// Hint returns the supplementary description, or nil.
	Hint() *string

	// Identifier returns the stable automation identifier, or nil.
	Identifier() *string

	// ActionNames returns the names of the node's custom actions, in order.
	ActionNames() []string

	// IsAccessibilityElement reports whether the node opts in as an
	// accessibility element. Exposure additionally requires that no
	// ancestor in the container chain opts in.
	IsAccessibilityElement() bool

	// Children returns the direct descendants, in order.
	Children() []Node

	// ContainerChain returns the ancestors in the containment chain,
	// nearest first, walking outward. Used only for exposure resolution.
	ContainerChain() []Node

	// Field returns a kind-specific implicit property (display text,
	// placeholder, numeric state, ...), or nil when the node has none.
	Field(name string) *string
}

// Enabled reports the derived enabled flag: set unless the trait set
// carries the not-enabled marker.
func Enabled(n Node) bool {
	return !n.Traits().Has(TraitNotEnabled)
}

// Selected reports the derived selected flag.
func Selected(n Node) bool {
	return n.Traits().Has(TraitSelected)
}
