package main

import (
	"context"
	"os"

	"github.com/indaco/versionator/internal/cli"
	"github.com/indaco/versionator/internal/config"
	"github.com/indaco/versionator/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

// runCLI loads the configuration and runs the command line in args.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return err
	}

	app := cli.New(cfg)
	return app.Run(context.Background(), args)
}
