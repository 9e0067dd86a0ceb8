package main

import (
	"os"

	"github.com/SimonDaKappa/pave-fields/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
