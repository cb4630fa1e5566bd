package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tacogips/depot/internal/app"
	"github.com/tacogips/depot/internal/config"
)

// configCmd groups configuration file commands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

// Config init flags
var (
	configInitForce bool
	configInitYes   bool
	configInitPath  string
)

// configInitCmd writes a starter configuration.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	Long: `Write a commented starter configuration, asking for the root directory and
the default scheme and host of short addresses.

The file is written to --path, $DEPOT_CONFIG, or ~/.depotconfig.json. A path
ending in .yaml or .yml gets a YAML configuration.

Examples:
  depot config init
  depot config init --yes --path ~/.depotconfig.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, FlagForce, false, DescForce)
	configInitCmd.Flags().BoolVarP(&configInitYes, FlagYes, "y", false, DescYes)
	configInitCmd.Flags().StringVar(&configInitPath, FlagPath, "", DescPath)

	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.ResolvePath(configInitPath)
	if err != nil {
		return err
	}

	answers := config.DefaultStarterOptions()
	if !configInitYes {
		if answers, err = PromptForStarter(answers); err != nil {
			return err
		}
	}

	_, statErr := os.Stat(path)
	existed := statErr == nil

	written, err := app.ConfigInit(app.ConfigInitOptions{
		Path:    path,
		Force:   configInitForce,
		Answers: answers,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if existed {
		printWarning(out, "Overwrote existing configuration")
	}
	printSuccess(out, "Wrote "+written)
	printInfo(out, "Run \"depot root\" to check the root directory.")
	return nil
}
