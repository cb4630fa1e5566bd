package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successMark = color.New(color.FgGreen).SprintFunc()
	warningMark = color.New(color.FgYellow).SprintFunc()
	errorLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Output formatting helpers. Command results (paths, list rows) are written
// plainly to stdout; these are for status messages around them.

// printInfo prints an informational message
func printInfo(w io.Writer, msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(w, msg)
}

// printSuccess prints a success message
func printSuccess(w io.Writer, msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(w, "%s %s\n", successMark("✓"), msg)
}

// printWarning prints a warning message
func printWarning(w io.Writer, msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(w, "%s %s\n", warningMark("⚠"), msg)
}

// printError prints a fatal error. Errors are printed even with --quiet.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorLabel("Error:"), err)
}
