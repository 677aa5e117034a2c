package tag

import (
	"context"
	"fmt"

	"github.com/indaco/versionator/internal/cli/flags"
	"github.com/indaco/versionator/internal/clix"
	"github.com/indaco/versionator/internal/config"
	"github.com/indaco/versionator/internal/operations"
	"github.com/indaco/versionator/internal/printer"
	"github.com/indaco/versionator/internal/tui"
	"github.com/urfave/cli/v3"
)

// runStepFn is replaced in tests.
var runStepFn operations.StepRunner = tui.RunWithSpinner

// Run returns the "tag" command, which tags the current version without
// changing the version file.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "tag",
		Usage:     "Create a git tag for the current version",
		UsageText: "versionator tag [--message msg] [--commit] [--push] [--dry-run]",
		Flags:     flags.ReleaseFlags(false),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runTagCmd(ctx, cmd, cfg)
		},
	}
}

func runTagCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	execCtx, err := clix.GetExecutionContext(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	rel := flags.GetReleaseOptions(cmd)
	opts := operations.TagOptions{
		DryRun:  rel.DryRun,
		Commit:  rel.Commit || execCtx.Config.Tag != nil && execCtx.Config.Tag.Commit,
		Push:    rel.Push,
		Message: rel.Message,
		RunStep: runStepFn,
	}

	if !opts.DryRun && !rel.Yes && execCtx.Interactive {
		preview, err := execCtx.Engine.Tag(ctx, execCtx.Path, operations.TagOptions{DryRun: true})
		if err != nil {
			return err
		}
		if err := execCtx.Confirm(rel.Yes, fmt.Sprintf("Create tag %s?", preview.TagName), preview.File.Path); err != nil {
			return err
		}
	}

	result, err := execCtx.Engine.Tag(ctx, execCtx.Path, opts)
	if result == nil {
		return err
	}

	if result.DryRun {
		printer.PrintInfo(fmt.Sprintf("[dry-run] Would create tag: %s", result.TagName))
		return nil
	}
	clix.PrintRelease(result)
	return err
}
