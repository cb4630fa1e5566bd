package app

import (
	"context"

	"github.com/tacogips/depot/internal/behavior"
	"github.com/tacogips/depot/internal/config"
	"github.com/tacogips/depot/internal/logging"
	"github.com/tacogips/depot/internal/overload"
)

// Get runs the get command configured for address and returns its exit code.
func Get(ctx context.Context, s *Session, address string) (int, error) {
	return runGetLike(ctx, s, "get", s.Config.Subcommands.Get, address)
}

// Create runs the create command configured for address and returns its
// exit code.
func Create(ctx context.Context, s *Session, address string) (int, error) {
	return runGetLike(ctx, s, "create", s.Config.Subcommands.Create, address)
}

func runGetLike(ctx context.Context, s *Session, command string, params overload.Overloadable[config.GetParams], address string) (int, error) {
	logging.DebugSection("[app] " + command + " " + address)

	name, err := s.locate(ctx, address)
	if err != nil {
		return 1, err
	}

	b := params.Get(name).Command
	logging.DebugValue("[app] behavior", b.Kind.String())
	code, err := behavior.Execute(ctx, b, s.Exec, s.Store, s.Stdout)
	if err != nil {
		return code, NewAppError(BehaviorFailed, command+" failed", err)
	}
	return code, nil
}
