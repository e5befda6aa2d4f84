// Package visibility decides what assistive technology actually sees:
// whether a node is exposed at all, and which label and value it carries
// once implicit per-kind conventions are applied. Exposure follows the
// nearest-accessible-ancestor-swallows-descendants rule; labels and
// values follow explicit-wins-over-implicit resolution backed by a
// registered rule table keyed by node kind.
package visibility
