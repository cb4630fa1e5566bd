package app

import (
	"context"

	"github.com/tacogips/depot/internal/behavior"
	"github.com/tacogips/depot/internal/logging"
	"github.com/tacogips/depot/internal/store"
)

// MoveOptions contains options for Move.
type MoveOptions struct {
	// Source is a local path, or an address when ResolveSource is set.
	Source string
	// Address is the destination address.
	Address string
	// ResolveSource treats Source as an address resolved like the
	// destination. Its overload then selects the pre-command.
	ResolveSource bool
}

// Move runs the configured pre-command and, when it succeeds, the move
// command. The source is exported under the DEPOT_SOURCE_ keys.
func Move(ctx context.Context, s *Session, opts MoveOptions) (int, error) {
	logging.DebugSection("[app] move " + opts.Source + " -> " + opts.Address)

	root, err := s.expandRoot(ctx)
	if err != nil {
		return 1, err
	}

	moves := s.Config.Subcommands.Move
	var pre behavior.Behavior
	if opts.ResolveSource {
		srcName, err := s.locateSource(ctx, root, opts.Source)
		if err != nil {
			return 1, err
		}
		pre = moves.Get(srcName).PreCommand
	} else {
		store.SetSourceLocalPath(s.Store, opts.Source, "")
		pre = moves.Get("").PreCommand
	}

	dstName, err := s.recordRemote(opts.Address)
	if err != nil {
		return 1, err
	}
	rel, err := s.relPath(ctx, s.Store, dstName)
	if err != nil {
		return 1, err
	}
	store.SetLocalPath(s.Store, JoinPath(root, rel), rel)

	code, err := behavior.Chain(ctx, pre, moves.Get(dstName).Command, s.Exec, s.Store, s.Stdout)
	if err != nil {
		return code, NewAppError(BehaviorFailed, "move failed", err)
	}
	return code, nil
}

// locateSource records the DEPOT_SOURCE_ keys for a source address. The
// source path is generated against a copy of the store that sees the source
// as the remote, so the destination keys are never touched.
func (s *Session) locateSource(ctx context.Context, root, address string) (string, error) {
	loc, err := s.parse(address)
	if err != nil {
		return "", err
	}
	store.SetSourceRemoteRaw(s.Store, address)
	store.SetSourceRemoteLocator(s.Store, loc)

	tmp := s.Store.Clone()
	store.SetRootPath(tmp, root)
	store.SetRemoteRaw(tmp, address)
	store.SetRemoteLocator(tmp, loc)

	name, err := s.findOverload(address)
	if err != nil {
		return "", err
	}
	rel, err := s.relPath(ctx, tmp, name)
	if err != nil {
		return "", err
	}
	store.SetSourceLocalPath(s.Store, JoinPath(root, rel), rel)
	return name, nil
}
