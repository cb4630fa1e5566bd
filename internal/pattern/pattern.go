// Package pattern compiles string-matching rules used by overloads, directory
// conditions and list excludes.
package pattern

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/tacogips/depot/internal/tagged"
)

// Kind identifies the matching strategy of a Pattern.
type Kind int

const (
	// Glob matches with path-aware globbing: '*' stops at '/', '**' crosses it.
	Glob Kind = iota
	// StartsWith matches by plain string prefix.
	StartsWith
)

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case Glob:
		return "glob"
	case StartsWith:
		return "starts-with"
	default:
		return "unknown"
	}
}

// Pattern is an uncompiled matching rule.
type Pattern struct {
	Kind  Kind
	Value string
}

// NewGlob returns a glob pattern.
func NewGlob(value string) Pattern {
	return Pattern{Kind: Glob, Value: value}
}

// NewStartsWith returns a prefix pattern.
func NewStartsWith(value string) Pattern {
	return Pattern{Kind: StartsWith, Value: value}
}

// String renders the pattern in its tagged configuration form.
func (p Pattern) String() string {
	return fmt.Sprintf("[%s %q]", p.Kind, p.Value)
}

// Matcher is a compiled Pattern.
type Matcher interface {
	// Match reports whether s satisfies the pattern.
	Match(s string) bool
}

type globMatcher struct {
	pattern string
}

func (m globMatcher) Match(s string) bool {
	// The pattern was validated at compile time, so Match cannot fail here.
	ok, _ := doublestar.Match(m.pattern, s)
	return ok
}

type prefixMatcher struct {
	prefix string
}

func (m prefixMatcher) Match(s string) bool {
	return strings.HasPrefix(s, m.prefix)
}

// Compile turns a Pattern into a Matcher.
func Compile(p Pattern) (Matcher, error) {
	switch p.Kind {
	case Glob:
		if !doublestar.ValidatePattern(p.Value) {
			return nil, &CompileError{Pattern: p, Cause: doublestar.ErrBadPattern}
		}
		return globMatcher{pattern: p.Value}, nil
	case StartsWith:
		return prefixMatcher{prefix: p.Value}, nil
	default:
		return nil, &CompileError{Pattern: p, Cause: fmt.Errorf("unknown pattern kind %d", int(p.Kind))}
	}
}

// CompileAll compiles patterns in order, stopping at the first failure.
func CompileAll(patterns []Pattern) ([]Matcher, error) {
	matchers := make([]Matcher, 0, len(patterns))
	for _, p := range patterns {
		m, err := Compile(p)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}

// MatchAny reports whether any matcher accepts s.
func MatchAny(matchers []Matcher, s string) bool {
	for _, m := range matchers {
		if m.Match(s) {
			return true
		}
	}
	return false
}

// CompileError reports a pattern that could not be compiled.
type CompileError struct {
	Pattern Pattern
	Cause   error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("invalid %s pattern %q: %v", e.Pattern.Kind, e.Pattern.Value, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *CompileError) Unwrap() error {
	return e.Cause
}

var allowedTags = []string{"glob", "starts-with"}

func fromShape(s tagged.Shape) (Pattern, error) {
	if s.Bare {
		return NewGlob(s.Value), nil
	}
	switch s.Tag {
	case "glob":
		v, err := s.One()
		if err != nil {
			return Pattern{}, err
		}
		return NewGlob(v), nil
	case "starts-with":
		v, err := s.One()
		if err != nil {
			return Pattern{}, err
		}
		return NewStartsWith(v), nil
	default:
		return Pattern{}, &tagged.UnknownTagError{Kind: "pattern", Tag: s.Tag, Allowed: allowedTags}
	}
}

// UnmarshalJSON accepts "glob" or ["glob"|"starts-with", value].
func (p *Pattern) UnmarshalJSON(data []byte) error {
	s, err := tagged.FromJSON(data)
	if err != nil {
		return fmt.Errorf("pattern: %w", err)
	}
	v, err := fromShape(s)
	if err != nil {
		return fmt.Errorf("pattern: %w", err)
	}
	*p = v
	return nil
}

// UnmarshalYAML accepts the same shapes as UnmarshalJSON.
func (p *Pattern) UnmarshalYAML(node *yaml.Node) error {
	s, err := tagged.FromYAML(node)
	if err != nil {
		return fmt.Errorf("pattern: %w", err)
	}
	v, err := fromShape(s)
	if err != nil {
		return fmt.Errorf("pattern: %w", err)
	}
	*p = v
	return nil
}

