// Package engine walks a rooted accessibility tree, filters it down to
// the nodes exposed to assistive technology, and applies a query with
// cardinality-specific result semantics. All operations are pure
// functions of the tree snapshot at call time: no caching, no mutation,
// no background work. The five retrieval operations always agree on the
// underlying match set and differ only in how emptiness and multiplicity
// are reported.
package engine
