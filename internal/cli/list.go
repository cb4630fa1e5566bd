package cli

import (
	"github.com/spf13/cobra"

	"github.com/tacogips/depot/internal/app"
)

var listFields []string

// listCmd prints the projects under the root.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects under the root",
	Long: `Walk the root directory and print one row per project. A directory is a
project when subcommands.list.project.condition says so (by default, when it
contains .git).

Each row holds the requested fields, tab separated. Fields are defined in
subcommands.list.fields; "path" is the default.

Examples:
  depot list
  depot list -f path,full-path`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return app.List(cmd.Context(), s, app.ListOptions{Fields: listFields})
	},
}

func init() {
	listCmd.Flags().StringSliceVarP(&listFields, FlagFields, "f", nil, DescFields)
}
