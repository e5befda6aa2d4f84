package queryparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-sung/AxQuery/pkg/axnode"
	"github.com/e-sung/AxQuery/pkg/errors"
	"github.com/e-sung/AxQuery/pkg/query"
)

func submitButton() *axnode.Element {
	return axnode.NewElement(axnode.KindButton).
		AddTraits(axnode.TraitButton).
		SetLabel("Submit").
		SetIdentifier("submit-button").
		AddAction("long-press").
		SetAccessible(true)
}

func TestParse_SingleTerms(t *testing.T) {
	button := submitButton()
	disabled := axnode.NewElement(axnode.KindButton).
		AddTraits(axnode.TraitButton | axnode.TraitNotEnabled).
		SetLabel("Submit").
		SetAccessible(true)

	tests := []struct {
		expr        string
		matches     bool
		matchesAlso bool // against the disabled button
	}{
		{expr: `role=button`, matches: true, matchesAlso: true},
		{expr: `label="Submit"`, matches: true, matchesAlso: true},
		{expr: `label=Submit`, matches: true, matchesAlso: true},
		{expr: `label~sub`, matches: true, matchesAlso: true},
		{expr: `label=~"^Sub"`, matches: true, matchesAlso: true},
		{expr: `label=~"mit$"`, matches: true, matchesAlso: true},
		{expr: `id=submit-button`, matches: true, matchesAlso: false},
		{expr: `action=long-press`, matches: true, matchesAlso: false},
		{expr: `enabled=true`, matches: true, matchesAlso: false},
		{expr: `enabled=false`, matches: false, matchesAlso: true},
		{expr: `selected=false`, matches: true, matchesAlso: true},
		{expr: `label="Cancel"`, matches: false, matchesAlso: false},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			q, err := Parse(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.matches, q.Matches(button))
			assert.Equal(t, tt.matchesAlso, q.Matches(disabled))
		})
	}
}

func TestParse_Connectives(t *testing.T) {
	button := submitButton()

	q, err := Parse(`role=button and label="Submit"`)
	require.NoError(t, err)
	assert.Equal(t, query.And, q.Combinator())
	assert.Equal(t, 2, q.Len())
	assert.True(t, q.Matches(button))

	q, err = Parse(`label="Cancel" or id=submit-button`)
	require.NoError(t, err)
	assert.Equal(t, query.Or, q.Combinator())
	assert.True(t, q.Matches(button))

	// Connectives fold left: the last one governs the whole list.
	q, err = Parse(`label="Cancel" and role=button or id=submit-button`)
	require.NoError(t, err)
	assert.Equal(t, query.Or, q.Combinator())
	assert.Equal(t, 3, q.Len())
	assert.True(t, q.Matches(button))

	q, err = Parse(`label="Cancel" or role=button and id=submit-button`)
	require.NoError(t, err)
	assert.Equal(t, query.And, q.Combinator())
	assert.False(t, q.Matches(button))
}

func TestParse_ConnectiveCaseInsensitive(t *testing.T) {
	q, err := Parse(`role=button AND enabled=true`)
	require.NoError(t, err)
	assert.Equal(t, query.And, q.Combinator())

	q, err = Parse(`role=button OR enabled=true`)
	require.NoError(t, err)
	assert.Equal(t, query.Or, q.Combinator())
}

func TestParse_QuotedValues(t *testing.T) {
	labelled := axnode.NewElement(axnode.KindLabel).
		SetLabel(`Say "hello" now`).
		SetAccessible(true)

	q, err := Parse(`label="Say \"hello\" now"`)
	require.NoError(t, err)
	assert.True(t, q.Matches(labelled))

	spaced := axnode.NewElement(axnode.KindLabel).
		SetLabel("Sign in with email").
		SetAccessible(true)

	q, err = Parse(`label~"in with"`)
	require.NoError(t, err)
	assert.True(t, q.Matches(spaced))
}

func TestParse_RegexFallbackEngine(t *testing.T) {
	// Lookahead is rejected by the primary engine but handled by the
	// fallback one, so it must survive the trip through the parser.
	q, err := Parse(`label=~"Sub(?=mit)"`)
	require.NoError(t, err)
	assert.True(t, q.Matches(submitButton()))
}

func TestParse_Errors(t *testing.T) {
	exprs := []string{
		"",
		"label",
		"label=",
		`label="unterminated`,
		"bogus=1",
		"role~button",
		"role=bogus-trait",
		"id~partial",
		"action=~tap.*",
		"enabled=maybe",
		"enabled~true",
		`label="a" xor label="b"`,
		`label="a" and`,
		`label=~"(unclosed"`,
	}
	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			_, err := Parse(expr)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidQuery))
		})
	}
}

func TestParse_WhitespaceTolerance(t *testing.T) {
	q, err := Parse("  role = button   and   enabled = true  ")
	require.NoError(t, err)
	assert.Equal(t, 2, q.Len())
	assert.True(t, q.Matches(submitButton()))
}
