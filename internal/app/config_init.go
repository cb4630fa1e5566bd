package app

import (
	"github.com/tacogips/depot/internal/config"
	"github.com/tacogips/depot/internal/logging"
)

// ConfigInitOptions contains options for ConfigInit.
type ConfigInitOptions struct {
	// Path is the file to write. Its extension picks JSON or YAML.
	Path string
	// Force overwrites an existing file.
	Force bool
	// Answers fill in the starter configuration.
	Answers config.StarterOptions
}

// ConfigInit writes a starter configuration and returns the path written.
func ConfigInit(opts ConfigInitOptions) (string, error) {
	path, err := config.ExpandPath(opts.Path)
	if err != nil {
		return "", NewAppError(ConfigInitFailed, "invalid path", err)
	}
	if path == "" {
		if path, err = config.DefaultConfigPath(); err != nil {
			return "", NewAppError(ConfigInitFailed, "failed to determine configuration path", err)
		}
	}

	logging.DebugValue("[app] config init path", path)
	content := config.Starter(opts.Answers, config.FormatOf(path))
	if err := config.Save(path, content, opts.Force); err != nil {
		return "", NewAppError(ConfigInitFailed, "failed to write configuration", err)
	}
	return path, nil
}
