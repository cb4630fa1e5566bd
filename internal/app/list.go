package app

import (
	"context"

	"github.com/tacogips/depot/internal/condition"
	"github.com/tacogips/depot/internal/logging"
	"github.com/tacogips/depot/internal/pattern"
	"github.com/tacogips/depot/internal/walker"
)

// ListOptions contains options for List.
type ListOptions struct {
	// Fields are the field names to print per project. Empty means "path".
	Fields []string
}

// List prints one row per project under the root.
func List(ctx context.Context, s *Session, opts ListOptions) error {
	project := s.Config.Subcommands.List.Project

	fields, err := s.Config.Subcommands.List.Fields.Select(opts.Fields)
	if err != nil {
		return err
	}
	excludes, err := pattern.CompileAll(project.Excludes)
	if err != nil {
		return NewAppError(ListFailed, "invalid exclude pattern", err)
	}
	cond, err := condition.Compile(project.Condition)
	if err != nil {
		return NewAppError(ListFailed, "invalid project condition", err)
	}

	root, err := s.expandRoot(ctx)
	if err != nil {
		return err
	}
	logging.DebugValue("[app] list fields", opts.Fields)

	w := walker.New(walker.Options{
		Fs:        s.Fs,
		Root:      root,
		Excludes:  excludes,
		Condition: cond,
		Fields:    fields,
		Exec:      s.Exec,
		Store:     s.Store,
		Out:       s.Stdout,
		ErrOut:    s.Stderr,
	})
	if err := w.Walk(ctx); err != nil {
		return NewAppError(ListFailed, "failed to list projects", err)
	}
	return nil
}
