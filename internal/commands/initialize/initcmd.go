// Package initialize implements the "init" command, which creates a version
// file and optionally a configuration file.
package initialize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/indaco/versionator/internal/clix"
	"github.com/indaco/versionator/internal/config"
	"github.com/indaco/versionator/internal/parser"
	"github.com/indaco/versionator/internal/printer"
	"github.com/indaco/versionator/internal/semver"
	"github.com/indaco/versionator/internal/versionfile"
	"github.com/urfave/cli/v3"
)

// Run returns the "init" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create a version file",
		UsageText: "versionator init [--format json|python] [--version X.Y.Z] [--force] [--config]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "Version file format: json or python",
				Value: string(parser.FormatJSON),
			},
			&cli.StringFlag{
				Name:  "version",
				Usage: "Initial version",
				Value: versionfile.DefaultVersion,
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing version file of the same format",
			},
			&cli.BoolFlag{
				Name:  "config",
				Usage: "Also write " + config.FileName + " in the working directory",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInitCmd(ctx, cmd, cfg)
		},
	}
}

func runInitCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	version, err := semver.ParseVersion(cmd.String("version"))
	if err != nil {
		return err
	}

	format, ok := parser.ParseFormat(cmd.String("format"))
	if !ok {
		return fmt.Errorf("unsupported format %q (expected json or python)", cmd.String("format"))
	}

	execCtx, err := clix.GetExecutionContext(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	dir, format, err := targetDir(execCtx.Path, format, cmd.IsSet("format"))
	if err != nil {
		return err
	}

	file, err := execCtx.Engine.Init(ctx, dir, format, version, cmd.Bool("force"))
	if err != nil {
		return err
	}
	printer.PrintSuccess(fmt.Sprintf("Created %s with version %s", file.Path, version))

	if cmd.Bool("config") {
		if err := writeConfig(ctx, execCtx.Config, dir); err != nil {
			return err
		}
	}
	return nil
}

// targetDir maps the path argument to the directory the file is created in.
// A path naming a version file also selects its format unless one was given.
func targetDir(path string, format parser.Format, formatSet bool) (string, parser.Format, error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return path, format, nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", "", err
	}

	fileFormat, ok := parser.FormatForFile(path)
	if !ok {
		return "", "", fmt.Errorf("%s is not a directory or a .json/.py file", path)
	}
	if formatSet && fileFormat != format {
		return "", "", fmt.Errorf("--format %s conflicts with %s", format, filepath.Base(path))
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return dir, fileFormat, nil
}

// writeConfig writes the config file to the working directory, where it is
// loaded from, with path pointing at dir.
func writeConfig(ctx context.Context, cfg *config.Config, dir string) error {
	path := config.FileName
	if _, err := os.Stat(path); err == nil {
		printer.PrintWarning(fmt.Sprintf("%s already exists, leaving it unchanged", path))
		return nil
	}

	out := *cfg
	out.Path = configPath(dir)
	if err := config.NewConfigSaver(nil, nil).SaveTo(ctx, &out, path); err != nil {
		return err
	}
	printer.PrintSuccess(fmt.Sprintf("Created %s", path))
	return nil
}

// configPath returns dir relative to the working directory, or dir made
// absolute when it lies outside it.
func configPath(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return abs
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	if resolved, err := filepath.EvalSymlinks(wd); err == nil {
		wd = resolved
	}

	rel, err := filepath.Rel(wd, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return abs
	}
	return filepath.ToSlash(rel)
}
