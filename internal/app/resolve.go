package app

import (
	"context"

	"github.com/tacogips/depot/internal/generator"
	"github.com/tacogips/depot/internal/logging"
	"github.com/tacogips/depot/internal/store"
)

// ResolveOptions contains options for Resolve.
type ResolveOptions struct {
	// Address is the remote address.
	Address string
	// Template, when set, replaces the configured resolve path.
	Template string
}

// Resolve returns the local directory for an address.
func Resolve(ctx context.Context, s *Session, opts ResolveOptions) (string, error) {
	logging.DebugSection("[app] Resolve " + opts.Address)

	loc, err := s.parse(opts.Address)
	if err != nil {
		return "", err
	}
	store.SetRemoteRaw(s.Store, opts.Address)
	store.SetRemoteLocator(s.Store, loc)

	root, err := s.expandRoot(ctx)
	if err != nil {
		return "", err
	}

	var rel string
	if opts.Template != "" {
		rel, err = generator.NewTemplate(opts.Template).Expand(ctx, s.Exec, s.Store)
		if err != nil {
			return "", NewAppError(PathResolveFailed, "failed to expand template", err)
		}
	} else {
		name, err := s.findOverload(opts.Address)
		if err != nil {
			return "", err
		}
		if rel, err = s.relPath(ctx, s.Store, name); err != nil {
			return "", err
		}
	}

	return JoinPath(root, rel), nil
}

// GetOverload returns the overload name selected for address.
func GetOverload(s *Session, address string) (string, bool, error) {
	name, found, err := s.Config.Overloads.FindName(address)
	if err != nil {
		return "", false, NewAppError(OverloadResolveFailed, "failed to resolve overload", err)
	}
	return name, found, nil
}
