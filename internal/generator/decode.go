package generator

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tacogips/depot/internal/tagged"
)

var (
	generatorTags = []string{"string", "template", "shell"}
	staticTags    = []string{"string", "template"}
)

func generatorFromShape(s tagged.Shape) (Generator, error) {
	if s.Bare {
		return NewTemplate(s.Value), nil
	}
	switch s.Tag {
	case "string":
		v, err := s.One()
		if err != nil {
			return Generator{}, err
		}
		return NewLiteral(v), nil
	case "template":
		v, err := s.One()
		if err != nil {
			return Generator{}, err
		}
		return NewTemplate(v), nil
	case "shell":
		cmds, err := s.AtLeastOne()
		if err != nil {
			return Generator{}, err
		}
		return NewShellChain(cmds...), nil
	default:
		return Generator{}, &tagged.UnknownTagError{Kind: "generator", Tag: s.Tag, Allowed: generatorTags}
	}
}

func staticFromShape(s tagged.Shape) (Static, error) {
	if !s.Bare && s.Tag == "shell" {
		return Static{}, fmt.Errorf("shell generators are not allowed here")
	}
	if !s.Bare && s.Tag != "string" && s.Tag != "template" {
		return Static{}, &tagged.UnknownTagError{Kind: "generator", Tag: s.Tag, Allowed: staticTags}
	}
	g, err := generatorFromShape(s)
	if err != nil {
		return Static{}, err
	}
	if g.Kind == Literal {
		return NewStaticLiteral(g.Value), nil
	}
	return NewStaticTemplate(g.Value), nil
}

// UnmarshalJSON accepts "tmpl", ["string", v], ["template", v] or
// ["shell", cmd, ...].
func (g *Generator) UnmarshalJSON(data []byte) error {
	s, err := tagged.FromJSON(data)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	v, err := generatorFromShape(s)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	*g = v
	return nil
}

// UnmarshalYAML accepts the same shapes as UnmarshalJSON.
func (g *Generator) UnmarshalYAML(node *yaml.Node) error {
	s, err := tagged.FromYAML(node)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	v, err := generatorFromShape(s)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	*g = v
	return nil
}

// UnmarshalJSON accepts "tmpl", ["string", v] or ["template", v].
func (g *Static) UnmarshalJSON(data []byte) error {
	s, err := tagged.FromJSON(data)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	v, err := staticFromShape(s)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	*g = v
	return nil
}

// UnmarshalYAML accepts the same shapes as UnmarshalJSON.
func (g *Static) UnmarshalYAML(node *yaml.Node) error {
	s, err := tagged.FromYAML(node)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	v, err := staticFromShape(s)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	*g = v
	return nil
}
