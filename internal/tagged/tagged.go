// Package tagged decodes the two shapes configuration values may take: a bare
// string, or a list whose first element names the variant and whose remaining
// elements are its arguments, e.g. ["shell", "git fetch", "git status"].
package tagged

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Shape is a decoded value prior to variant dispatch.
type Shape struct {
	// Bare is true when the value was a plain string.
	Bare bool
	// Value holds the plain string when Bare is true.
	Value string
	// Tag is the first list element when Bare is false.
	Tag string
	// Args are the list elements after Tag.
	Args []string
}

// FromJSON decodes a JSON string or array of strings.
func FromJSON(data []byte) (Shape, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Shape{}, fmt.Errorf("empty value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return Shape{}, err
		}
		return Shape{Bare: true, Value: s}, nil
	case '[':
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return Shape{}, err
		}
		return fromList(list)
	default:
		return Shape{}, fmt.Errorf("expected a string or a list of strings, got %s", string(data))
	}
}

// FromYAML decodes a YAML scalar or sequence of scalars.
func FromYAML(node *yaml.Node) (Shape, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return Shape{Bare: true, Value: node.Value}, nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return Shape{}, err
		}
		return fromList(list)
	default:
		return Shape{}, fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
	}
}

func fromList(list []string) (Shape, error) {
	if len(list) == 0 {
		return Shape{}, fmt.Errorf("empty list, expected a variant name as first element")
	}
	return Shape{Tag: list[0], Args: list[1:]}, nil
}

// One returns the single argument of a tagged shape.
func (s Shape) One() (string, error) {
	if len(s.Args) != 1 {
		return "", fmt.Errorf("%q takes exactly 1 argument, got %d", s.Tag, len(s.Args))
	}
	return s.Args[0], nil
}

// None checks that a tagged shape carries no arguments.
func (s Shape) None() error {
	if len(s.Args) != 0 {
		return fmt.Errorf("%q takes no arguments, got %d", s.Tag, len(s.Args))
	}
	return nil
}

// AtLeastOne returns the arguments of a tagged shape, requiring one or more.
func (s Shape) AtLeastOne() ([]string, error) {
	if len(s.Args) == 0 {
		return nil, fmt.Errorf("%q takes at least 1 argument", s.Tag)
	}
	return s.Args, nil
}

// UnknownTagError reports a variant name that the target type does not define.
type UnknownTagError struct {
	// Kind names the type being decoded ("generator", "behavior", ...).
	Kind string
	// Tag is the unrecognized variant name.
	Tag string
	// Allowed lists the accepted names.
	Allowed []string
}

// Error implements the error interface.
func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown %s type %q (expected one of %v)", e.Kind, e.Tag, e.Allowed)
}
