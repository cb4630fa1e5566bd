package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tacogips/depot/internal/app"
	"github.com/tacogips/depot/internal/config"
	"github.com/tacogips/depot/internal/logging"
	"github.com/tacogips/depot/internal/shell"
)

// Global flags
var (
	globalConfig   string
	globalNoColor  bool
	globalQuiet    bool
	globalDebug    bool
	globalResetEnv bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "depot",
	Short: "Manage a tree of repository working copies",
	Long: `depot keeps repository working copies under one root directory, laid out
by their remote address.

Every command is driven by the configuration file (~/.depotconfig.json by
default, or $DEPOT_CONFIG): how addresses map to local paths, what "get",
"create" and "move" run, and how "list" finds projects.

Unknown commands are dispatched to a "depot-NAME" program on PATH, with
DEPOT_ROOT_PATH exported.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetDebug(globalDebug)
		logging.SetNoColor(globalNoColor)
		color.NoColor = color.NoColor || globalNoColor
	},
	RunE: runExternal,
}

// ExitCodeError carries a non-zero exit code out of a command without an
// error message.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// exitWith converts a propagated command exit code into a cobra result.
func exitWith(code int) error {
	if code == 0 {
		return nil
	}
	return &ExitCodeError{Code: code}
}

// Execute runs the root command with the process arguments and returns the
// exit code. This is called by main.main().
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	logging.SetOutput(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if logging.IsEnabled() {
		logging.Error(err, "command failed")
	}
	printError(stderr, err)
	if config.IsType(err, config.ConfigNotFound) {
		printInfo(stderr, "Run \"depot config init\" to create a configuration file.")
	}
	return 1
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&globalConfig, FlagConfig, "c", "", DescConfig)
	rootCmd.PersistentFlags().BoolVarP(&globalDebug, FlagDebug, "d", false, DescDebug)
	rootCmd.PersistentFlags().BoolVarP(&globalResetEnv, FlagResetEnv, "e", false, DescResetEnv)
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)

	// Stop at the first positional so flags after an external command name
	// are passed through to it.
	rootCmd.Flags().SetInterspersed(false)

	// Add subcommands
	rootCmd.AddCommand(rootPathCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getOverloadCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// newSession loads the configuration named by --config, $DEPOT_CONFIG or the
// default path, and prepares a session whose commands share cmd's streams.
func newSession(cmd *cobra.Command) (*app.Session, error) {
	path, err := config.ResolvePath(globalConfig)
	if err != nil {
		return nil, err
	}
	logging.DebugValue("[cli] config", path)

	cfg, err := config.NewLoader().Load(path)
	if err != nil {
		return nil, err
	}

	return app.NewSession(cfg, app.SessionOptions{
		ResetEnv: globalResetEnv,
		Runner: &shell.ExecRunner{
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		},
		Stdout: cmd.OutOrStdout(),
	})
}

// runExternal handles "depot NAME args...", where NAME is not a built-in
// command.
func runExternal(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	name := args[0]
	if strings.HasPrefix(name, "-") || strings.ContainsRune(name, os.PathSeparator) {
		return fmt.Errorf("unknown command %q for %q", name, cmd.CommandPath())
	}
	if !externalAvailable(name) {
		return fmt.Errorf("unknown command %q for %q", name, cmd.CommandPath())
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	code, err := app.External(cmd.Context(), s, name, args[1:])
	if err != nil {
		return err
	}
	return exitWith(code)
}
