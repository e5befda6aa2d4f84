package axnode

// Element is the in-memory Node implementation. Snapshot decoders produce
// Element trees, and tests build fixtures with it. Setters return the
// element so trees can be assembled by chaining; once a query is running
// the tree must not be modified.
type Element struct {
	kind       Kind
	traits     Trait
	label      *string
	value      *string
	hint       *string
	identifier *string
	actions    []string
	accessible bool
	fields     map[string]string
	children   []*Element
	parent     *Element
}

// NewElement creates an element of the given kind with no traits and the
// accessibility-element flag unset.
func NewElement(kind Kind) *Element {
	return &Element{kind: kind}
}

// SetTraits replaces the element's trait set.
func (e *Element) SetTraits(traits Trait) *Element {
	e.traits = traits
	return e
}

// AddTraits adds bits to the element's trait set.
func (e *Element) AddTraits(traits Trait) *Element {
	e.traits = e.traits.Add(traits)
	return e
}

// SetLabel sets the explicit accessible name.
func (e *Element) SetLabel(label string) *Element {
	e.label = &label
	return e
}

// SetValue sets the explicit accessible value.
func (e *Element) SetValue(value string) *Element {
	e.value = &value
	return e
}

// SetHint sets the supplementary description.
func (e *Element) SetHint(hint string) *Element {
	e.hint = &hint
	return e
}

// SetIdentifier sets the stable automation identifier.
func (e *Element) SetIdentifier(id string) *Element {
	e.identifier = &id
	return e
}

// AddAction appends a custom action name.
func (e *Element) AddAction(name string) *Element {
	e.actions = append(e.actions, name)
	return e
}

// SetAccessible marks or unmarks the element as an accessibility element.
func (e *Element) SetAccessible(accessible bool) *Element {
	e.accessible = accessible
	return e
}

// SetField sets a kind-specific implicit property.
func (e *Element) SetField(name, value string) *Element {
	if e.fields == nil {
		e.fields = make(map[string]string)
	}
	e.fields[name] = value
	return e
}

// AddChild appends children and records this element as their parent.
func (e *Element) AddChild(children ...*Element) *Element {
	for _, child := range children {
		child.parent = e
		e.children = append(e.children, child)
	}
	return e
}

// Parent returns the element's parent, or nil at the root.
func (e *Element) Parent() *Element {
	return e.parent
}

func (e *Element) Kind() Kind          { return e.kind }
func (e *Element) Traits() Trait       { return e.traits }
func (e *Element) Label() *string      { return e.label }
func (e *Element) Value() *string      { return e.value }
func (e *Element) Hint() *string       { return e.hint }
func (e *Element) Identifier() *string { return e.identifier }

func (e *Element) ActionNames() []string {
	return e.actions
}

func (e *Element) IsAccessibilityElement() bool {
	return e.accessible
}

func (e *Element) Children() []Node {
	children := make([]Node, len(e.children))
	for i, child := range e.children {
		children[i] = child
	}
	return children
}

// ContainerChain returns the parent chain, nearest first.
func (e *Element) ContainerChain() []Node {
	var chain []Node
	for p := e.parent; p != nil; p = p.parent {
		chain = append(chain, p)
	}
	return chain
}

func (e *Element) Field(name string) *string {
	if e.fields == nil {
		return nil
	}
	value, ok := e.fields[name]
	if !ok {
		return nil
	}
	return &value
}
