package app

import (
	"context"

	"github.com/tacogips/depot/internal/logging"
)

// ExternalPrefix is prepended to an unknown subcommand name to find its
// program on PATH.
const ExternalPrefix = "depot-"

// External runs the program depot-NAME with args and DEPOT_ROOT_PATH
// exported, returning its exit code.
func External(ctx context.Context, s *Session, name string, args []string) (int, error) {
	if _, err := s.expandRoot(ctx); err != nil {
		return 1, err
	}

	program := ExternalPrefix + name
	logging.Debug("[app] external subcommand %s %v", program, args)
	code, err := s.Exec.RunProgram(ctx, program, args, s.Store.Environ())
	if err != nil {
		return 1, NewAppError(ExternalFailed, "failed to run "+program, err)
	}
	return code, nil
}
