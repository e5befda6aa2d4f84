package engine

import (
	"github.com/e-sung/AxQuery/pkg/axnode"
	"github.com/e-sung/AxQuery/pkg/errors"
	"github.com/e-sung/AxQuery/pkg/query"
)

// AssertNone fails with ELEMENT_SHOULD_NOT_EXIST when any exposed node
// matches the query. The negative counterpart of GetOne.
func (e *Engine) AssertNone(q query.Query, root axnode.Node) error {
	matches := e.QueryAll(q, root)
	if len(matches) == 0 {
		return nil
	}
	desc := q.Description()
	return errors.Newf(errors.ErrElementShouldNotExist,
		"expected no elements matching %s, found %d", desc, len(matches)).
		WithDetail("query", desc).
		WithDetail("count", len(matches))
}

// AssertCount fails with ELEMENT_COUNT_MISMATCH unless exactly want
// exposed nodes match the query.
func (e *Engine) AssertCount(q query.Query, root axnode.Node, want int) error {
	matches := e.QueryAll(q, root)
	if len(matches) == want {
		return nil
	}
	desc := q.Description()
	return errors.Newf(errors.ErrElementCountMismatch,
		"expected %d elements matching %s, found %d", want, desc, len(matches)).
		WithDetail("query", desc).
		WithDetail("expected", want).
		WithDetail("actual", len(matches))
}
