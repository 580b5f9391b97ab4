package main

import (
	"os"

	"github.com/idilsaglam/todoloop/internal/cli"
)

func main() {
	err := cli.Execute(os.Args[1:], cli.StdIO())
	os.Exit(cli.ExitCode(err))
}
