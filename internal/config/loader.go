package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/tacogips/depot/internal/logging"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads and validates configuration from the specified file path.
	Load(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for file-based configuration loading.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Format is a configuration file syntax.
type Format int

const (
	// FormatJSON is JSON with comments and trailing commas allowed.
	FormatJSON Format = iota
	// FormatYAML is YAML.
	FormatYAML
)

// FormatOf picks the syntax from the file extension. Anything that is not
// .yaml or .yml is read as JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load loads configuration from the specified file path.
func (l *FileLoader) Load(path string) (*Config, error) {
	logging.Debug("[config] loading %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	cfg, err := Parse(data, FormatOf(path))
	if err != nil {
		if cfgErr, ok := err.(*ConfigError); ok {
			cfgErr.File = path
			return nil, cfgErr
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to parse configuration", err)
	}

	if err := l.Validate(cfg); err != nil {
		if cfgErr, ok := err.(*ConfigError); ok && cfgErr.File == "" {
			cfgErr.File = path
		}
		return nil, err
	}

	return cfg, nil
}

// Parse decodes a configuration document, checks required keys and fills in
// defaults. It does not validate.
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, NewConfigErrorWithCause(ConfigInvalid, "", "invalid YAML", err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return nil, NewConfigErrorWithCause(ConfigInvalid, "", "invalid JSON", err)
		}
	}

	if cfg.Core.Root.IsZero() {
		return nil, NewConfigErrorWithField(ConfigInvalid, "", "core.root", "root generator is required")
	}
	if cfg.Resolve.Default.Path.IsZero() {
		return nil, NewConfigErrorWithField(ConfigInvalid, "", "resolve.path", "path generator is required")
	}

	mergeConfig(&cfg, DefaultConfig())
	return &cfg, nil
}

// Save writes a configuration document to path, creating parent
// directories. An existing file is replaced only when overwrite is true.
func Save(path string, content []byte, overwrite bool) error {
	cleanPath := filepath.Clean(path)

	if !overwrite {
		if _, err := os.Stat(cleanPath); err == nil {
			return NewConfigError(ConfigInvalid, cleanPath, "configuration file already exists (use --force to overwrite)")
		}
	}

	dir := filepath.Dir(cleanPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, cleanPath, "failed to create directory "+dir, err)
	}

	if err := os.WriteFile(cleanPath, content, 0644); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, cleanPath, "failed to write configuration file", err)
	}
	return nil
}
