package main

import (
	"os"

	"github.com/tacogips/depot/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
