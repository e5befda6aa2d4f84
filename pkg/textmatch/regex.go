package textmatch

import (
	"fmt"
	"regexp"

	"github.com/dlclark/regexp2"
)

// compiled is one compiled pattern, regardless of backend. Matching is
// search semantics: a match anywhere in the candidate suffices.
type compiled interface {
	MatchString(s string) bool
}

// engine compiles patterns. Two interchangeable backends exist: the
// native stdlib engine (preferred, linear-time) and regexp2 (fallback,
// accepts lookarounds and backreferences the native engine rejects).
// Callers never see which backend compiled their pattern.
type engine interface {
	Name() string
	Compile(pattern string) (compiled, error)
}

type stdEngine struct{}

func (stdEngine) Name() string { return "std" }

func (stdEngine) Compile(pattern string) (compiled, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re, nil
}

type regexp2Engine struct{}

func (regexp2Engine) Name() string { return "regexp2" }

func (regexp2Engine) Compile(pattern string) (compiled, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, err
	}
	return regexp2Pattern{re: re}, nil
}

type regexp2Pattern struct {
	re *regexp2.Regexp
}

func (p regexp2Pattern) MatchString(s string) bool {
	// regexp2 reports an error only on timeout; no timeout is configured.
	ok, err := p.re.MatchString(s)
	return err == nil && ok
}

var engines = []engine{stdEngine{}, regexp2Engine{}}

type regexMatch struct {
	pattern  string
	compiled compiled
}

// Regex compiles pattern against the preferred backend, then the
// fallback. It errors only when both backends reject the pattern.
func Regex(pattern string) (TextMatch, error) {
	var lastErr error
	for _, eng := range engines {
		c, err := eng.Compile(pattern)
		if err == nil {
			return regexMatch{pattern: pattern, compiled: c}, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("pattern %q rejected by all regex backends: %w", pattern, lastErr)
}

// Pattern builds a TextMatch from a raw convenience string: a regular
// expression when some backend compiles it, otherwise an exact match.
// It never fails.
func Pattern(raw string) TextMatch {
	if m, err := Regex(raw); err == nil {
		return m
	}
	return Exact(raw)
}

func (m regexMatch) Matches(candidate *string) bool {
	return candidate != nil && m.compiled.MatchString(*candidate)
}

func (m regexMatch) String() string {
	return fmt.Sprintf("regex(%q)", m.pattern)
}
