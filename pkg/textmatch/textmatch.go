// Package textmatch implements the text-matching strategies used by
// label, value, and hint matchers: exact, substring, regular expression,
// and arbitrary predicate. Candidates are optional strings; an absent
// candidate never matches except through a predicate, which receives the
// absence and decides for itself.
package textmatch

import (
	"fmt"
	"strings"
)

// TextMatch compares an optional candidate string against a pattern.
type TextMatch interface {
	// Matches reports whether the candidate satisfies the pattern.
	// A nil candidate means the node has no such text at all.
	Matches(candidate *string) bool

	// String renders the match for query descriptions.
	String() string
}

type exactMatch struct {
	expected string
}

// Exact matches a present candidate that equals expected byte-for-byte.
func Exact(expected string) TextMatch {
	return exactMatch{expected: expected}
}

func (m exactMatch) Matches(candidate *string) bool {
	return candidate != nil && *candidate == m.expected
}

func (m exactMatch) String() string {
	return fmt.Sprintf("exact(%q)", m.expected)
}

type substringMatch struct {
	needle        string
	caseSensitive bool
}

// Substring matches a present candidate containing needle. When
// caseSensitive is false both sides are lower-cased before comparing.
func Substring(needle string, caseSensitive bool) TextMatch {
	return substringMatch{needle: needle, caseSensitive: caseSensitive}
}

// Containing is shorthand for the common case-insensitive substring match.
func Containing(needle string) TextMatch {
	return Substring(needle, false)
}

func (m substringMatch) Matches(candidate *string) bool {
	if candidate == nil {
		return false
	}
	if m.caseSensitive {
		return strings.Contains(*candidate, m.needle)
	}
	return strings.Contains(strings.ToLower(*candidate), strings.ToLower(m.needle))
}

func (m substringMatch) String() string {
	sensitivity := "insensitive"
	if m.caseSensitive {
		sensitivity = "sensitive"
	}
	return fmt.Sprintf("substring(%q, %s)", m.needle, sensitivity)
}

type predicateMatch struct {
	fn func(candidate *string) bool
}

// Predicate delegates matching entirely to fn. This is the only variant
// that can react meaningfully to an absent candidate.
func Predicate(fn func(candidate *string) bool) TextMatch {
	return predicateMatch{fn: fn}
}

func (m predicateMatch) Matches(candidate *string) bool {
	return m.fn(candidate)
}

func (m predicateMatch) String() string {
	return "predicate(func)"
}
