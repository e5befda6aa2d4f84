// Package queryparse turns textual query expressions into the query
// algebra, for callers that receive queries as strings (the CLI, test
// harness configs). The grammar is deliberately flat, mirroring the
// algebra: terms separated by and/or, folded left through Query.And and
// Query.Or, so a trailing connective re-reduces the whole accumulated
// matcher list exactly as the API does.
//
//	role=button and label~sub
//	label="Submit" or id=submit-button
//	value=~"[0-9]+ items" and enabled=true
package queryparse

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/e-sung/AxQuery/pkg/axnode"
	"github.com/e-sung/AxQuery/pkg/errors"
	"github.com/e-sung/AxQuery/pkg/query"
	"github.com/e-sung/AxQuery/pkg/textmatch"
)

// Parse compiles an expression into a Query. Failures carry the
// INVALID_QUERY code.
func Parse(expression string) (query.Query, error) {
	p := &parser{input: expression}
	q, err := p.parse()
	if err != nil {
		return query.Query{}, errors.Wrapf(err, errors.ErrInvalidQuery,
			"invalid query expression %q", expression)
	}
	return q, nil
}

type term struct {
	key   string
	op    string
	value string
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parse() (query.Query, error) {
	first, err := p.readTerm()
	if err != nil {
		return query.Query{}, err
	}
	q, err := first.toQuery()
	if err != nil {
		return query.Query{}, err
	}

	for {
		p.skipSpace()
		if p.pos >= len(p.input) {
			return q, nil
		}

		connective, err := p.readWord()
		if err != nil {
			return query.Query{}, err
		}

		next, err := p.readTerm()
		if err != nil {
			return query.Query{}, err
		}
		nq, err := next.toQuery()
		if err != nil {
			return query.Query{}, err
		}

		switch strings.ToLower(connective) {
		case "and":
			q = q.And(nq)
		case "or":
			q = q.Or(nq)
		default:
			return query.Query{}, fmt.Errorf("expected 'and' or 'or', got %q", connective)
		}
	}
}

func (p *parser) readTerm() (term, error) {
	p.skipSpace()
	key, err := p.readWord()
	if err != nil {
		return term{}, err
	}

	op, err := p.readOp()
	if err != nil {
		return term{}, err
	}

	value, err := p.readValue()
	if err != nil {
		return term{}, err
	}

	return term{key: strings.ToLower(key), op: op, value: value}, nil
}

func (p *parser) readOp() (string, error) {
	p.skipSpace()
	switch {
	case strings.HasPrefix(p.input[p.pos:], "=~"):
		p.pos += 2
		return "=~", nil
	case p.pos < len(p.input) && p.input[p.pos] == '=':
		p.pos++
		return "=", nil
	case p.pos < len(p.input) && p.input[p.pos] == '~':
		p.pos++
		return "~", nil
	default:
		return "", fmt.Errorf("expected an operator (=, ~ or =~) at position %d", p.pos)
	}
}

func (p *parser) readValue() (string, error) {
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == '"' {
		return p.readQuoted()
	}
	return p.readWord()
}

func (p *parser) readQuoted() (string, error) {
	p.pos++ // consume opening quote
	var sb strings.Builder
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if ch == '\\' && p.pos+1 < len(p.input) {
			p.pos++
			sb.WriteByte(p.input[p.pos])
			p.pos++
			continue
		}
		if ch == '"' {
			p.pos++
			return sb.String(), nil
		}
		sb.WriteByte(ch)
		p.pos++
	}
	return "", fmt.Errorf("unterminated string")
}

func (p *parser) readWord() (string, error) {
	start := p.pos
	for p.pos < len(p.input) {
		ch := rune(p.input[p.pos])
		if unicode.IsSpace(ch) || ch == '=' || ch == '~' || ch == '"' {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return "", fmt.Errorf("expected a word at position %d", start)
	}
	return p.input[start:p.pos], nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

func (t term) toQuery() (query.Query, error) {
	switch t.key {
	case "role":
		if t.op != "=" {
			return query.Query{}, fmt.Errorf("role only supports =")
		}
		trait, err := axnode.ParseTrait(t.value)
		if err != nil {
			return query.Query{}, err
		}
		return query.Role(trait), nil

	case "label", "value", "hint":
		tm, err := t.textMatch()
		if err != nil {
			return query.Query{}, err
		}
		switch t.key {
		case "label":
			return query.Label(tm), nil
		case "value":
			return query.Value(tm), nil
		default:
			return query.Hint(tm), nil
		}

	case "id":
		if t.op != "=" {
			return query.Query{}, fmt.Errorf("id only supports =")
		}
		return query.Identifier(t.value), nil

	case "action":
		if t.op != "=" {
			return query.Query{}, fmt.Errorf("action only supports =")
		}
		return query.Action(t.value), nil

	case "enabled", "selected":
		if t.op != "=" {
			return query.Query{}, fmt.Errorf("%s only supports =", t.key)
		}
		want, err := parseBool(t.value)
		if err != nil {
			return query.Query{}, err
		}
		if t.key == "enabled" {
			return query.Enabled(want), nil
		}
		return query.Selected(want), nil

	default:
		return query.Query{}, fmt.Errorf("unknown key %q", t.key)
	}
}

func (t term) textMatch() (textmatch.TextMatch, error) {
	switch t.op {
	case "=":
		return textmatch.Exact(t.value), nil
	case "~":
		return textmatch.Containing(t.value), nil
	case "=~":
		return textmatch.Regex(t.value)
	default:
		return nil, fmt.Errorf("unsupported operator %q", t.op)
	}
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected a boolean, got %q", s)
	}
}
