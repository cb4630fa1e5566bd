package behavior

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tacogips/depot/internal/tagged"
)

var behaviorTags = []string{"template", "shell", "nop", "not-supported"}

func fromShape(s tagged.Shape) (Behavior, error) {
	if s.Bare {
		return NewShellChain(s.Value), nil
	}
	switch s.Tag {
	case "template":
		v, err := s.One()
		if err != nil {
			return Behavior{}, err
		}
		return NewTemplate(v), nil
	case "shell":
		cmds, err := s.AtLeastOne()
		if err != nil {
			return Behavior{}, err
		}
		return NewShellChain(cmds...), nil
	case "nop":
		if err := s.None(); err != nil {
			return Behavior{}, err
		}
		return NewNop(), nil
	case "not-supported":
		if err := s.None(); err != nil {
			return Behavior{}, err
		}
		return Behavior{}, nil
	default:
		return Behavior{}, &tagged.UnknownTagError{Kind: "behavior", Tag: s.Tag, Allowed: behaviorTags}
	}
}

// UnmarshalJSON accepts "cmd", ["template", v], ["shell", cmd, ...], ["nop"]
// or ["not-supported"].
func (b *Behavior) UnmarshalJSON(data []byte) error {
	s, err := tagged.FromJSON(data)
	if err != nil {
		return fmt.Errorf("behavior: %w", err)
	}
	v, err := fromShape(s)
	if err != nil {
		return fmt.Errorf("behavior: %w", err)
	}
	*b = v
	return nil
}

// UnmarshalYAML accepts the same shapes as UnmarshalJSON.
func (b *Behavior) UnmarshalYAML(node *yaml.Node) error {
	s, err := tagged.FromYAML(node)
	if err != nil {
		return fmt.Errorf("behavior: %w", err)
	}
	v, err := fromShape(s)
	if err != nil {
		return fmt.Errorf("behavior: %w", err)
	}
	*b = v
	return nil
}
