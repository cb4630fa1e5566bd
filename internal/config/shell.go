package config

import (
	"github.com/tacogips/depot/internal/shell"
	"github.com/tacogips/depot/internal/template"
)

// Compile expands the shell settings against vars.
func (c ShellConfig) Compile(vars template.Lookup) *shell.Compiled {
	args := make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		args = append(args, a.Expand(vars))
	}
	return &shell.Compiled{
		Program: c.Path.Expand(vars),
		Args:    args,
	}
}
