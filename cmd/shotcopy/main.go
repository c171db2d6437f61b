package main

import (
	"os"

	"github.com/spf13/afero"

	"shotcopy/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(cli.Execute(cli.Deps{
		FS:      afero.NewOsFs(),
		In:      os.Stdin,
		Out:     os.Stdout,
		Err:     os.Stderr,
		Version: version,
	}, os.Args[1:]))
}
