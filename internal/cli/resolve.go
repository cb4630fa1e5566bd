package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/depot/internal/app"
)

// rootPathCmd prints the expanded root directory.
var rootPathCmd = &cobra.Command{
	Use:   "root",
	Short: "Print the root directory",
	Long: `Print the root directory all working copies live under, as configured by
core.root.

Examples:
  cd "$(depot root)"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		root, err := app.Root(cmd.Context(), s)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), root)
		return nil
	},
}

var resolveTemplate string

// resolveCmd prints the local path of an address.
var resolveCmd = &cobra.Command{
	Use:   "resolve ADDRESS",
	Short: "Print the local path of a remote address",
	Long: `Print where the working copy of ADDRESS lives: the root directory joined
with resolve.path (or the overload's replacement of it).

With --template, the given template is expanded instead of resolve.path.

Examples:
  depot resolve github.com/owner/repo
  depot resolve -t '${DEPOT_REMOTE_PATH}' git@github.com:owner/repo.git`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ValidateAddress(args[0]); err != nil {
			return err
		}
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		path, err := app.Resolve(cmd.Context(), s, app.ResolveOptions{
			Address:  args[0],
			Template: resolveTemplate,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// getOverloadCmd prints which overload an address selects.
var getOverloadCmd = &cobra.Command{
	Use:   "get-overload ADDRESS",
	Short: "Print the overload an address selects",
	Long: `Print the name of the first overload whose patterns match ADDRESS, or
"(no overload)" when none does.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		name, ok, err := app.GetOverload(s, args[0])
		if err != nil {
			return err
		}
		if !ok {
			name = "(no overload)"
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveTemplate, FlagTemplate, "t", "", DescTemplate)
}
