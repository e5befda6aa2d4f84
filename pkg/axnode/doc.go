// Package axnode defines the accessibility node model the query engine
// operates on: role/state traits, node kinds, the Node capability
// interface the host tree must provide, and an in-memory Element
// implementation used by snapshots and tests.
package axnode
