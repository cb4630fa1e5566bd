// Package overload picks a named parameter set for an address.
//
// An Overload names a list of address patterns. The first overload with a
// matching pattern, in declaration order, selects the parameters stored under
// its name in every Overloadable section of the configuration.
package overload

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tacogips/depot/internal/pattern"
)

// Overload is a named list of address patterns.
type Overload struct {
	Name     string            `json:"name" yaml:"name"`
	Patterns []pattern.Pattern `json:"patterns" yaml:"patterns"`
}

// Set is an ordered list of overloads.
type Set []Overload

// FindName returns the name of the first overload with a pattern matching
// address. Patterns are compiled as they are reached, so a bad pattern after
// the first match is never reported.
func (s Set) FindName(address string) (string, bool, error) {
	for _, o := range s {
		for _, p := range o.Patterns {
			m, err := pattern.Compile(p)
			if err != nil {
				return "", false, fmt.Errorf("overload %q: %w", o.Name, err)
			}
			if m.Match(address) {
				return o.Name, true, nil
			}
		}
	}
	return "", false, nil
}

// Names returns the overload names in declaration order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for _, o := range s {
		names = append(names, o.Name)
	}
	return names
}

// Overloadable holds default parameters plus per-overload replacements.
// In configuration files the default parameters are written inline and the
// replacements go under an "overloads" key:
//
//	{"path": "...", "overloads": {"work": {"path": "..."}}}
//
// A replacement is a complete parameter set; it is not merged with Default.
type Overloadable[P any] struct {
	Default   P
	Overloads map[string]P
}

// Get returns the parameters for name, or Default when name is empty or has
// no entry.
func (o Overloadable[P]) Get(name string) P {
	if name == "" {
		return o.Default
	}
	if p, ok := o.Overloads[name]; ok {
		return p
	}
	return o.Default
}

// UnmarshalJSON decodes the inline defaults and the "overloads" map.
func (o *Overloadable[P]) UnmarshalJSON(data []byte) error {
	var def P
	if err := json.Unmarshal(data, &def); err != nil {
		return err
	}
	var aux struct {
		Overloads map[string]P `json:"overloads"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("overloads: %w", err)
	}
	o.Default = def
	o.Overloads = aux.Overloads
	return nil
}

// UnmarshalYAML decodes the inline defaults and the "overloads" map.
func (o *Overloadable[P]) UnmarshalYAML(node *yaml.Node) error {
	var def P
	if err := node.Decode(&def); err != nil {
		return err
	}
	var aux struct {
		Overloads map[string]P `yaml:"overloads"`
	}
	if err := node.Decode(&aux); err != nil {
		return fmt.Errorf("overloads: %w", err)
	}
	o.Default = def
	o.Overloads = aux.Overloads
	return nil
}
