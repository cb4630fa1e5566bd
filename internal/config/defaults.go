package config

import (
	"github.com/tacogips/depot/internal/behavior"
	"github.com/tacogips/depot/internal/condition"
	"github.com/tacogips/depot/internal/generator"
	"github.com/tacogips/depot/internal/overload"
	"github.com/tacogips/depot/internal/remote"
	"github.com/tacogips/depot/internal/shell"
)

// DefaultConfig returns the configuration values used for every setting a
// configuration file leaves out. Core.Root and Resolve have no usable default
// and must be set by the file.
func DefaultConfig() *Config {
	return &Config{
		Shell: ShellConfig{
			Path: generator.NewStaticLiteral(shell.DefaultProgram),
			Args: []generator.Static{generator.NewStaticLiteral(shell.DefaultArg)},
		},
		Parse: ParseConfig{
			Default: ParseDefault{
				Scheme: remote.DefaultScheme,
				Host:   remote.DefaultHost,
			},
		},
		Subcommands: SubcommandsConfig{
			Move: overload.Overloadable[MoveParams]{
				Default: MoveParams{PreCommand: behavior.NewNop()},
			},
			List: ListConfig{
				Project: ProjectConfig{
					Condition: condition.Default(),
				},
				Fields: PresetFields(),
			},
		},
	}
}

// mergeConfig merges missing fields from defaults into cfg.
func mergeConfig(cfg, defaults *Config) {
	// Shell
	if cfg.Shell.Path.Value == "" {
		cfg.Shell.Path = defaults.Shell.Path
	}
	if cfg.Shell.Args == nil {
		cfg.Shell.Args = defaults.Shell.Args
	}

	// Parse
	if cfg.Parse.Default.Scheme == "" {
		cfg.Parse.Default.Scheme = defaults.Parse.Default.Scheme
	}
	if cfg.Parse.Default.Host == "" {
		cfg.Parse.Default.Host = defaults.Parse.Default.Host
	}

	// List
	if cfg.Subcommands.List.Project.Condition == nil {
		cfg.Subcommands.List.Project.Condition = defaults.Subcommands.List.Project.Condition
	}
	if cfg.Subcommands.List.Fields == nil {
		cfg.Subcommands.List.Fields = defaults.Subcommands.List.Fields
	}
}

// DefaultConfigTemplate is the configuration path used when neither
// --config nor DEPOT_CONFIG is given. It is expanded against the process
// environment.
const DefaultConfigTemplate = "${HOME}/.depotconfig.json"

// ConfigEnvVar names the environment variable holding a configuration path.
const ConfigEnvVar = "DEPOT_CONFIG"
