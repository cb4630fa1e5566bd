package app

import (
	"context"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/tacogips/depot/internal/config"
	"github.com/tacogips/depot/internal/logging"
	"github.com/tacogips/depot/internal/remote"
	"github.com/tacogips/depot/internal/shell"
	"github.com/tacogips/depot/internal/store"
)

// SessionOptions configures a Session.
type SessionOptions struct {
	// ResetEnv starts from a blank store instead of the process environment.
	ResetEnv bool
	// Runner runs external commands. Defaults to shell.NewExecRunner().
	Runner shell.Runner
	// Fs is the filesystem list walks. Defaults to the OS filesystem.
	Fs afero.Fs
	// Stdout receives command output. Defaults to os.Stdout.
	Stdout io.Writer
	// Stderr receives per-path list errors. Nil logs them as warnings.
	Stderr io.Writer
}

// Session is the state shared by the steps of one command: the loaded
// configuration, the context store, and the shell.
type Session struct {
	Config *config.Config
	Store  store.Store
	Exec   *shell.Executor
	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer

	parser *remote.Parser
}

// NewSession prepares a session. The env file, when configured, is loaded
// into the store before the shell settings are expanded.
func NewSession(cfg *config.Config, opts SessionOptions) (*Session, error) {
	st := store.New(!opts.ResetEnv)

	if cfg.EnvFile != "" {
		path, err := config.ExpandPath(cfg.EnvFile)
		if err != nil {
			return nil, NewAppError(EnvFileLoadFailed, "failed to expand env_file path", err)
		}
		logging.DebugValue("[app] env file", path)
		if err := store.LoadEnvFile(st, path); err != nil {
			return nil, NewAppError(EnvFileLoadFailed, "failed to load env file "+path, err)
		}
	}

	if opts.Runner == nil {
		opts.Runner = shell.NewExecRunner()
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	sh := cfg.Shell.Compile(st)
	logging.DebugValue("[app] shell", append([]string{sh.Program}, sh.Args...))

	return &Session{
		Config: cfg,
		Store:  st,
		Exec:   shell.NewExecutor(sh, opts.Runner),
		Fs:     opts.Fs,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
		parser: remote.NewParser(cfg.Parse.Default.Scheme, cfg.Parse.Default.Host),
	}, nil
}

// expandRoot evaluates the root generator and records DEPOT_ROOT_PATH.
func (s *Session) expandRoot(ctx context.Context) (string, error) {
	root, err := s.Config.Core.Root.Expand(ctx, s.Exec, s.Store)
	if err != nil {
		return "", NewAppError(RootExpandFailed, "failed to expand root path", err)
	}
	logging.DebugValue("[app] root", root)
	store.SetRootPath(s.Store, root)
	return root, nil
}

// findOverload returns the overload name for address, empty when none matches.
func (s *Session) findOverload(address string) (string, error) {
	name, found, err := s.Config.Overloads.FindName(address)
	if err != nil {
		return "", NewAppError(OverloadResolveFailed, "failed to resolve overload", err)
	}
	if found {
		logging.Debug("[app] %s matches overload %q", address, name)
	}
	return name, nil
}

func (s *Session) parse(address string) (*remote.Locator, error) {
	loc, err := s.parser.Parse(address)
	if err != nil {
		return nil, NewAppError(AddressParseFailed, "failed to parse address", err)
	}
	return loc, nil
}

// recordRemote parses address into the destination remote keys and returns
// its overload name.
func (s *Session) recordRemote(address string) (string, error) {
	name, err := s.findOverload(address)
	if err != nil {
		return "", err
	}
	loc, err := s.parse(address)
	if err != nil {
		return "", err
	}
	store.SetRemoteRaw(s.Store, address)
	store.SetRemoteLocator(s.Store, loc)
	return name, nil
}

// relPath evaluates the resolve path of overload name against st.
func (s *Session) relPath(ctx context.Context, st store.Store, name string) (string, error) {
	rel, err := s.Config.Resolve.Get(name).Path.Expand(ctx, s.Exec, st)
	if err != nil {
		return "", NewAppError(PathResolveFailed, "failed to resolve path", err)
	}
	return rel, nil
}

// locate records the remote and local keys for a destination address and
// returns its overload name.
func (s *Session) locate(ctx context.Context, address string) (string, error) {
	name, err := s.recordRemote(address)
	if err != nil {
		return "", err
	}
	root, err := s.expandRoot(ctx)
	if err != nil {
		return "", err
	}
	rel, err := s.relPath(ctx, s.Store, name)
	if err != nil {
		return "", err
	}
	store.SetLocalPath(s.Store, JoinPath(root, rel), rel)
	return name, nil
}
