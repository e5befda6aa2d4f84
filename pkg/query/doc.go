// Package query implements the composable predicate algebra used to
// locate accessibility nodes. A Query is an immutable, ordered list of
// atomic matchers reduced by a single combinator (AND/OR) that applies
// uniformly to the whole list. Composition concatenates matcher lists
// and sets the combinator named by the call, so chaining Or after
// several And calls changes the reduction for all accumulated matchers
// — there is deliberately no expression-tree grouping.
package query
