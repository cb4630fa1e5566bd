package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/tacogips/depot/internal/behavior"
	"github.com/tacogips/depot/internal/condition"
	"github.com/tacogips/depot/internal/generator"
	"github.com/tacogips/depot/internal/overload"
	"github.com/tacogips/depot/internal/pattern"
)

// Config represents the depot configuration file.
type Config struct {
	// Core holds the depot root.
	Core CoreConfig `json:"core" yaml:"core"`
	// Shell is the program used to run shell generators and behaviors.
	Shell ShellConfig `json:"shell" yaml:"shell"`
	// Parse configures address parsing.
	Parse ParseConfig `json:"parse" yaml:"parse"`
	// Resolve maps an address to a path relative to the root.
	Resolve overload.Overloadable[ResolveParams] `json:"resolve" yaml:"resolve"`
	// EnvFile is an optional dotenv file loaded into the context store.
	EnvFile string `json:"env_file,omitempty" yaml:"env_file,omitempty"`
	// Subcommands configures the per-command behaviors.
	Subcommands SubcommandsConfig `json:"subcommands" yaml:"subcommands"`
	// Overloads names address patterns, tried in order.
	Overloads overload.Set `json:"overloads" yaml:"overloads"`
}

// CoreConfig represents core settings.
type CoreConfig struct {
	// Root generates the absolute depot root directory.
	Root generator.Generator `json:"root" yaml:"root"`
}

// ShellConfig represents the shell invocation. The command string is
// appended after Args.
type ShellConfig struct {
	Path generator.Static   `json:"path" yaml:"path"`
	Args []generator.Static `json:"args" yaml:"args"`
}

// ParseConfig represents address parsing settings.
type ParseConfig struct {
	Default ParseDefault `json:"default" yaml:"default"`
}

// ParseDefault is the base URL that relative addresses resolve against.
type ParseDefault struct {
	Scheme string `json:"scheme" yaml:"scheme"`
	Host   string `json:"host" yaml:"host"`
}

// ResolveParams are the resolve parameters of one overload.
type ResolveParams struct {
	// Path generates the directory relative to the root.
	Path generator.Generator `json:"path" yaml:"path"`
}

// SubcommandsConfig represents per-command settings.
type SubcommandsConfig struct {
	Get    overload.Overloadable[GetParams]  `json:"get" yaml:"get"`
	Create overload.Overloadable[GetParams]  `json:"create" yaml:"create"`
	Move   overload.Overloadable[MoveParams] `json:"move" yaml:"move"`
	List   ListConfig                        `json:"list" yaml:"list"`
}

// GetParams are the parameters of get and create.
type GetParams struct {
	Command behavior.Behavior `json:"command" yaml:"command"`
}

// MoveParams are the parameters of move. PreCommand runs first and the
// move is skipped unless it exits 0.
type MoveParams struct {
	PreCommand behavior.Behavior `json:"pre_command" yaml:"pre_command"`
	Command    behavior.Behavior `json:"command" yaml:"command"`
}

type moveParamsAlias MoveParams

// UnmarshalJSON defaults PreCommand to nop when absent.
func (p *MoveParams) UnmarshalJSON(data []byte) error {
	v := moveParamsAlias{PreCommand: behavior.NewNop()}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = MoveParams(v)
	return nil
}

// UnmarshalYAML defaults PreCommand to nop when absent.
func (p *MoveParams) UnmarshalYAML(node *yaml.Node) error {
	v := moveParamsAlias{PreCommand: behavior.NewNop()}
	if err := node.Decode(&v); err != nil {
		return err
	}
	*p = MoveParams(v)
	return nil
}

// ListConfig represents list settings.
type ListConfig struct {
	Project ProjectConfig `json:"project" yaml:"project"`
	Fields  Fields        `json:"fields" yaml:"fields"`
}

// ProjectConfig decides which directories list reports.
type ProjectConfig struct {
	// Condition classifies project directories. Nil means the default.
	Condition condition.Condition `json:"condition" yaml:"condition"`
	// Excludes are root-relative paths that are skipped with their subtree.
	Excludes []pattern.Pattern `json:"excludes" yaml:"excludes"`
}
