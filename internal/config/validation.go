package config

import (
	"fmt"
	"sort"

	"github.com/tacogips/depot/internal/logging"
)

// Validate validates the configuration.
func Validate(config *Config) error {
	loader := NewLoader()
	return loader.Validate(config)
}

// Validate checks the structure of the configuration. Patterns are not
// compiled here: a bad glob is only an error once evaluation reaches it.
func (l *FileLoader) Validate(config *Config) error {
	if config == nil {
		return NewConfigError(ConfigValidationFailed, "", "configuration cannot be nil")
	}
	if err := validateOverloads(config); err != nil {
		return err
	}
	warnUnknownOverloads(config)
	return nil
}

func validateOverloads(config *Config) error {
	seen := make(map[string]bool, len(config.Overloads))
	for i, o := range config.Overloads {
		field := fmt.Sprintf("overloads[%d]", i)
		if o.Name == "" {
			return NewConfigErrorWithField(ConfigValidationFailed, "", field+".name", "overload name is required")
		}
		if seen[o.Name] {
			return NewConfigErrorWithField(ConfigValidationFailed, "", field+".name",
				fmt.Sprintf("duplicate overload name %q", o.Name))
		}
		seen[o.Name] = true
		if len(o.Patterns) == 0 {
			return NewConfigErrorWithField(ConfigValidationFailed, "", field+".patterns",
				fmt.Sprintf("overload %q has no patterns", o.Name))
		}
	}
	return nil
}

// warnUnknownOverloads logs parameter sets keyed by a name no overload
// declares. They can never be selected.
func warnUnknownOverloads(config *Config) {
	declared := make(map[string]bool, len(config.Overloads))
	for _, name := range config.Overloads.Names() {
		declared[name] = true
	}

	sections := []struct {
		name  string
		names []string
	}{
		{"resolve", keys(config.Resolve.Overloads)},
		{"subcommands.get", keys(config.Subcommands.Get.Overloads)},
		{"subcommands.create", keys(config.Subcommands.Create.Overloads)},
		{"subcommands.move", keys(config.Subcommands.Move.Overloads)},
	}
	for _, section := range sections {
		for _, name := range section.names {
			if !declared[name] {
				logging.Warn("%s.overloads.%s: no overload named %q is declared", section.name, name, name)
			}
		}
	}
}

func keys[P any](m map[string]P) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
