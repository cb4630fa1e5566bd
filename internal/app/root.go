package app

import "context"

// Root returns the expanded depot root.
func Root(ctx context.Context, s *Session) (string, error) {
	return s.expandRoot(ctx)
}
