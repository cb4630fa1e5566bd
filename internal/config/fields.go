package config

import (
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/tacogips/depot/internal/generator"
	"github.com/tacogips/depot/internal/walker"
)

// DefaultField is listed when no fields are requested.
const DefaultField = "path"

// Fields maps list field names to generators.
type Fields map[string]generator.Generator

// PresetFields returns the built-in fields.
func PresetFields() Fields {
	return Fields{
		"path":      generator.NewTemplate("${DEPOT_LOCAL_REL_PATH}"),
		"full-path": generator.NewTemplate("${DEPOT_LOCAL_PATH}"),
	}
}

// withPresets adds every preset f does not define.
func (f Fields) withPresets() Fields {
	out := make(Fields, len(f)+2)
	for name, g := range PresetFields() {
		out[name] = g
	}
	for name, g := range f {
		out[name] = g
	}
	return out
}

// UnmarshalJSON decodes user fields on top of the presets.
func (f *Fields) UnmarshalJSON(data []byte) error {
	var m map[string]generator.Generator
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*f = Fields(m).withPresets()
	return nil
}

// UnmarshalYAML decodes user fields on top of the presets.
func (f *Fields) UnmarshalYAML(node *yaml.Node) error {
	var m map[string]generator.Generator
	if err := node.Decode(&m); err != nil {
		return err
	}
	*f = Fields(m).withPresets()
	return nil
}

// Names returns the field names in sorted order.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the named fields in the requested order. No names selects
// DefaultField. An unknown name is a configuration error.
func (f Fields) Select(names []string) ([]walker.Field, error) {
	if len(names) == 0 {
		names = []string{DefaultField}
	}
	out := make([]walker.Field, 0, len(names))
	for _, name := range names {
		g, ok := f[name]
		if !ok {
			return nil, NewConfigErrorWithField(ConfigValidationFailed, "", "subcommands.list.fields",
				fmt.Sprintf("field name not found: %s (available: %v)", name, f.Names()))
		}
		out = append(out, walker.Field{Name: name, Generator: g})
	}
	return out, nil
}
