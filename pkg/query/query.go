package query

import (
	"strings"

	"github.com/e-sung/AxQuery/pkg/axnode"
	"github.com/e-sung/AxQuery/pkg/textmatch"
)

// Combinator is the reduction rule applied across a query's matcher list.
type Combinator int

const (
	// And matches when every matcher matches; vacuously true when the
	// matcher list is empty.
	And Combinator = iota
	// Or matches when at least one matcher matches; vacuously false
	// when the matcher list is empty.
	Or
)

func (c Combinator) String() string {
	if c == Or {
		return "OR"
	}
	return "AND"
}

// Query is an immutable predicate over nodes: an ordered matcher list
// plus one combinator. Composition returns new queries and never
// mutates existing ones.
type Query struct {
	matchers   []Matcher
	combinator Combinator
}

func atomic(m Matcher) Query {
	return Query{matchers: []Matcher{m}, combinator: And}
}

// Role matches nodes whose trait set contains every bit of trait.
func Role(trait axnode.Trait) Query {
	return atomic(Matcher{kind: matcherRole, trait: trait})
}

// Label matches against the node's effective label.
func Label(tm textmatch.TextMatch) Query {
	return atomic(Matcher{kind: matcherLabel, text: tm})
}

// Value matches against the node's effective value.
func Value(tm textmatch.TextMatch) Query {
	return atomic(Matcher{kind: matcherValue, text: tm})
}

// Hint matches against the node's raw hint text.
func Hint(tm textmatch.TextMatch) Query {
	return atomic(Matcher{kind: matcherHint, text: tm})
}

// Identifier matches the node's automation identifier exactly.
func Identifier(id string) Query {
	return atomic(Matcher{kind: matcherIdentifier, str: id})
}

// Action matches nodes carrying a custom action with the given name.
func Action(name string) Query {
	return atomic(Matcher{kind: matcherAction, str: name})
}

// Enabled matches nodes whose derived enabled flag equals want.
func Enabled(want bool) Query {
	return atomic(Matcher{kind: matcherEnabled, flag: want})
}

// Selected matches nodes whose derived selected flag equals want.
func Selected(want bool) Query {
	return atomic(Matcher{kind: matcherSelected, flag: want})
}

func (q Query) compose(other Query, combinator Combinator) Query {
	matchers := make([]Matcher, 0, len(q.matchers)+len(other.matchers))
	matchers = append(matchers, q.matchers...)
	matchers = append(matchers, other.matchers...)
	return Query{matchers: matchers, combinator: combinator}
}

// And concatenates both operands' matcher lists and sets the combinator
// of the whole resulting list to AND, overriding whatever combinator
// either operand carried.
func (q Query) And(other Query) Query {
	return q.compose(other, And)
}

// Or concatenates both operands' matcher lists and sets the combinator
// of the whole resulting list to OR, overriding whatever combinator
// either operand carried.
func (q Query) Or(other Query) Query {
	return q.compose(other, Or)
}

// Combinator returns the reduction rule currently in force.
func (q Query) Combinator() Combinator {
	return q.combinator
}

// Len returns the number of matchers in the query.
func (q Query) Len() int {
	return len(q.matchers)
}

// Matches evaluates every matcher against the node independently and
// reduces the results with the query's combinator.
func (q Query) Matches(n axnode.Node) bool {
	switch q.combinator {
	case Or:
		for _, m := range q.matchers {
			if m.Matches(n) {
				return true
			}
		}
		return false
	default:
		for _, m := range q.matchers {
			if !m.Matches(n) {
				return false
			}
		}
		return true
	}
}

// Description renders the matcher list joined by the combinator, for
// diagnostics and error messages only — never for equality or hashing.
func (q Query) Description() string {
	if len(q.matchers) == 0 {
		return "<empty>"
	}
	parts := make([]string, len(q.matchers))
	for i, m := range q.matchers {
		parts[i] = m.String()
	}
	return strings.Join(parts, " "+q.combinator.String()+" ")
}
