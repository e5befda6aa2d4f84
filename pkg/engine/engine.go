package engine

import (
	"github.com/rs/zerolog"

	"github.com/e-sung/AxQuery/pkg/axnode"
	"github.com/e-sung/AxQuery/pkg/errors"
	"github.com/e-sung/AxQuery/pkg/logging"
	"github.com/e-sung/AxQuery/pkg/query"
	"github.com/e-sung/AxQuery/pkg/visibility"
)

// Engine runs queries against a rooted node tree.
type Engine struct {
	logger zerolog.Logger
}

// New creates a query engine.
func New() *Engine {
	return &Engine{
		logger: logging.GetLogger("engine"),
	}
}

// Exposed collects the root and all of its descendants in pre-order,
// root first, and keeps the nodes the visibility resolver reports as
// exposed. Order is stable for reproducibility but carries no further
// meaning.
func (e *Engine) Exposed(root axnode.Node) []axnode.Node {
	var all []axnode.Node
	collect(root, &all)

	var exposed []axnode.Node
	for _, n := range all {
		if visibility.IsExposed(n) {
			exposed = append(exposed, n)
		}
	}

	e.logger.Debug().
		Int("total", len(all)).
		Int("exposed", len(exposed)).
		Msg("collected exposed nodes")

	return exposed
}

func collect(n axnode.Node, out *[]axnode.Node) {
	*out = append(*out, n)
	for _, child := range n.Children() {
		collect(child, out)
	}
}

// QueryAll returns every exposed node matching the query, in traversal
// order. An empty result is not an error.
func (e *Engine) QueryAll(q query.Query, root axnode.Node) []axnode.Node {
	var matches []axnode.Node
	for _, n := range e.Exposed(root) {
		if q.Matches(n) {
			matches = append(matches, n)
		}
	}

	e.logger.Debug().
		Str("query", q.Description()).
		Int("matches", len(matches)).
		Msg("query evaluated")

	return matches
}

// GetAll returns every matching node and fails with NO_ELEMENTS_FOUND
// when nothing matches.
func (e *Engine) GetAll(q query.Query, root axnode.Node) ([]axnode.Node, error) {
	matches := e.QueryAll(q, root)
	if len(matches) == 0 {
		return nil, noElementsFound(q)
	}
	return matches, nil
}

// GetOne returns the single matching node. Zero matches fail with
// NO_ELEMENTS_FOUND, more than one with MULTIPLE_ELEMENTS_FOUND carrying
// the observed count.
func (e *Engine) GetOne(q query.Query, root axnode.Node) (axnode.Node, error) {
	matches := e.QueryAll(q, root)
	switch len(matches) {
	case 0:
		return nil, noElementsFound(q)
	case 1:
		return matches[0], nil
	default:
		return nil, multipleElementsFound(q, len(matches))
	}
}

// QueryOne returns the single matching node, or nil without error when
// nothing matches. More than one match fails with
// MULTIPLE_ELEMENTS_FOUND; QueryOne never produces NO_ELEMENTS_FOUND.
func (e *Engine) QueryOne(q query.Query, root axnode.Node) (axnode.Node, error) {
	matches := e.QueryAll(q, root)
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	default:
		return nil, multipleElementsFound(q, len(matches))
	}
}

// Contains reports whether any exposed node matches the query.
func (e *Engine) Contains(q query.Query, root axnode.Node) bool {
	return len(e.QueryAll(q, root)) > 0
}

func noElementsFound(q query.Query) error {
	desc := q.Description()
	return errors.Newf(errors.ErrNoElementsFound,
		"no elements found matching %s", desc).
		WithDetail("query", desc)
}

func multipleElementsFound(q query.Query, count int) error {
	desc := q.Description()
	return errors.Newf(errors.ErrMultipleElementsFound,
		"expected one element matching %s, found %d", desc, count).
		WithDetail("query", desc).
		WithDetail("count", count)
}
