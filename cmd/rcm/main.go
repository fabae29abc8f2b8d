package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/keboola/remote-config-modifier/internal/pkg/env"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/cmd"
)

func main() {
	// Run command
	root := cmd.NewRootCommand(os.Stdin, os.Stdout, os.Stderr, env.FromOs(), afero.NewOsFs())
	os.Exit(root.Execute())
}
