package cli

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/tacogips/depot/internal/app"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig   = "config"
	FlagDebug    = "debug"
	FlagResetEnv = "reset-env"
	FlagNoColor  = "no-color"
	FlagQuiet    = "quiet"
	FlagTemplate = "template"
	FlagResolve  = "resolve"
	FlagFields   = "fields"
	FlagForce    = "force"
	FlagYes      = "yes"
	FlagPath     = "path"

	// Flag descriptions
	DescConfig   = "Path to config file (default $DEPOT_CONFIG or ~/.depotconfig.json)"
	DescDebug    = "Enable debug logging"
	DescResetEnv = "Start from an empty environment instead of inheriting the process environment"
	DescNoColor  = "Disable colored output"
	DescQuiet    = "Suppress non-error output"
	DescTemplate = "Template for the path relative to the root, instead of resolve.path"
	DescResolve  = "Treat SOURCE as an address and resolve it like the destination"
	DescFields   = "Comma-separated list fields to print"
	DescForce    = "Overwrite an existing configuration file"
	DescYes      = "Accept defaults without prompting"
	DescPath     = "Configuration file to write"
)

// ValidateAddress rejects addresses no parser accepts.
func ValidateAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return fmt.Errorf("address cannot be empty")
	}
	return nil
}

// externalAvailable reports whether depot-NAME can be found on PATH.
func externalAvailable(name string) bool {
	_, err := exec.LookPath(app.ExternalPrefix + name)
	return err == nil
}
