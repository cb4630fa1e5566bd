package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tacogips/depot/internal/app"
)

// getCmd fetches a working copy.
var getCmd = &cobra.Command{
	Use:   "get ADDRESS",
	Short: "Fetch a remote repository into the root",
	Long: `Resolve ADDRESS to its local path and run subcommands.get.command (or the
selected overload's command) with every DEPOT_ variable exported.

Examples:
  depot get owner/repo
  depot get git@github.com:owner/repo.git`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAddressCommand(cmd, args[0], app.Get)
	},
}

// createCmd creates a new working copy.
var createCmd = &cobra.Command{
	Use:   "create ADDRESS",
	Short: "Create a new project for a remote address",
	Long: `Resolve ADDRESS to its local path and run subcommands.create.command (or
the selected overload's command) with every DEPOT_ variable exported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAddressCommand(cmd, args[0], app.Create)
	},
}

var moveResolveSource bool

// moveCmd moves an existing working copy to where an address resolves.
var moveCmd = &cobra.Command{
	Use:   "move SOURCE ADDRESS",
	Short: "Move a working copy to the path of an address",
	Long: `Run subcommands.move.pre_command and then subcommands.move.command to move
SOURCE to the local path of ADDRESS. The source is exported as
DEPOT_SOURCE_LOCAL_PATH.

With --resolve, SOURCE is itself an address. Its DEPOT_SOURCE_REMOTE_ variables
are exported too and its overload picks the pre-command.

Examples:
  depot move ./old-checkout github.com/owner/repo
  depot move -r github.com/owner/old github.com/owner/new`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ValidateAddress(args[1]); err != nil {
			return err
		}
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		code, err := app.Move(cmd.Context(), s, app.MoveOptions{
			Source:        args[0],
			Address:       args[1],
			ResolveSource: moveResolveSource,
		})
		if err != nil {
			return err
		}
		return exitWith(code)
	},
}

func init() {
	moveCmd.Flags().BoolVarP(&moveResolveSource, FlagResolve, "r", false, DescResolve)
}

// runAddressCommand runs a get-like workflow and propagates its exit code.
func runAddressCommand(cmd *cobra.Command, address string, workflow func(context.Context, *app.Session, string) (int, error)) error {
	if err := ValidateAddress(address); err != nil {
		return err
	}
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	code, err := workflow(cmd.Context(), s, address)
	if err != nil {
		return err
	}
	return exitWith(code)
}
