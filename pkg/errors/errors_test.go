package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrNoElementsFound, "no elements matched")

	assert.Equal(t, ErrNoElementsFound, err.Code)
	assert.Equal(t, "no elements matched", err.Message)
	assert.NotNil(t, err.Details)
	assert.Equal(t, "[NO_ELEMENTS_FOUND] no elements matched", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrMultipleElementsFound, "expected one element, found %d", 3)
	assert.Equal(t, "[MULTIPLE_ELEMENTS_FOUND] expected one element, found 3", err.Error())
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("yaml: line 4: mapping values are not allowed")
	err := Wrap(cause, ErrSnapshotParse, "failed to decode snapshot")

	require.NotNil(t, err)
	assert.Equal(t, ErrSnapshotParse, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to decode snapshot")
	assert.Contains(t, err.Error(), "yaml: line 4")

	assert.Nil(t, Wrap(nil, ErrSnapshotParse, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrSnapshotParse, "ignored %d", 1))
}

func TestIs_MatchesByCode(t *testing.T) {
	a := New(ErrNoElementsFound, "one message")
	b := New(ErrNoElementsFound, "a different message")
	c := New(ErrMultipleElementsFound, "one message")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrMultipleElementsFound, "too many matches").
		WithDetail("query", `label(exact("Submit"))`).
		WithDetail("count", 2)

	details := GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, `label(exact("Submit"))`, details["query"])
	assert.Equal(t, 2, details["count"])
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrElementCountMismatch, "count mismatch")

	assert.True(t, IsErrorCode(err, ErrElementCountMismatch))
	assert.False(t, IsErrorCode(err, ErrNoElementsFound))

	// Works through wrapping
	wrapped := fmt.Errorf("engine: %w", err)
	assert.True(t, IsErrorCode(wrapped, ErrElementCountMismatch))

	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrElementCountMismatch))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrInvalidQuery, GetErrorCode(New(ErrInvalidQuery, "bad expression")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
	assert.Nil(t, GetErrorDetails(fmt.Errorf("plain")))
}
