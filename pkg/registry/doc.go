// Package registry provides a generic, type-safe registry for items
// keyed by name. It backs the visibility resolver's per-kind fallback
// rule table and the snapshot decoder table, both populated through
// init() registration.
package registry
