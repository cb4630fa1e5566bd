package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// ExpandEnv expands shell-style parameter references ($VAR, ${VAR},
// ${VAR:-default}) in s against env, a list of KEY=VALUE pairs. Command
// substitution is rejected.
func ExpandEnv(s string, env []string) (string, error) {
	word, err := syntax.NewParser().Document(strings.NewReader(s))
	if err != nil {
		return "", fmt.Errorf("failed to parse %q: %w", s, err)
	}
	// A nil CmdSubst makes command substitution an error.
	cfg := &expand.Config{Env: expand.ListEnviron(env...)}
	return expand.Document(cfg, word)
}

// DefaultConfigPath returns the default configuration file path. When the
// JSON file does not exist but a YAML sibling does, the sibling is returned.
func DefaultConfigPath() (string, error) {
	path, err := ExpandEnv(DefaultConfigTemplate, os.Environ())
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	for _, ext := range []string{".yaml", ".yml"} {
		if _, err := os.Stat(base + ext); err == nil {
			return base + ext, nil
		}
	}
	return path, nil
}

// ResolvePath picks the configuration file: flagPath when set, otherwise
// $DEPOT_CONFIG, otherwise DefaultConfigPath.
func ResolvePath(flagPath string) (string, error) {
	if flagPath != "" {
		return ExpandPath(flagPath)
	}
	if env := os.Getenv(ConfigEnvVar); env != "" {
		return ExpandPath(env)
	}
	return DefaultConfigPath()
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		switch {
		case len(path) == 1:
			path = homeDir
		case path[1] == filepath.Separator:
			path = filepath.Join(homeDir, path[2:])
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	return absPath, nil
}
