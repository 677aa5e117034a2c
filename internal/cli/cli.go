package cli

import (
	"context"
	"fmt"

	"github.com/indaco/versionator/internal/commands/bump"
	"github.com/indaco/versionator/internal/commands/info"
	"github.com/indaco/versionator/internal/commands/initialize"
	"github.com/indaco/versionator/internal/commands/tag"
	"github.com/indaco/versionator/internal/config"
	"github.com/indaco/versionator/internal/printer"
	"github.com/indaco/versionator/internal/tui"
	"github.com/indaco/versionator/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the versionator cli.
func New(cfg *config.Config) *urfavecli.Command {
	var noColorFlag bool

	return &urfavecli.Command{
		Name:                  "versionator",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Read and bump the version in version.json or _version.py",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "path",
				Aliases:     []string{"p"},
				Usage:       "Version file, or directory to search for one",
				Value:       cfg.Path,
				DefaultText: ".",
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			if noColorFlag {
				printer.SetNoColor(true)
			}
			tui.SetTheme(cfg.Theme)
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			initialize.Run(cfg),
			info.Run(cfg),
			bump.Run(cfg),
			tag.Run(cfg),
		},
	}
}
