package bump

import (
	"context"
	"fmt"
	"strings"

	"github.com/indaco/versionator/internal/cli/flags"
	"github.com/indaco/versionator/internal/clix"
	"github.com/indaco/versionator/internal/config"
	"github.com/indaco/versionator/internal/operations"
	"github.com/indaco/versionator/internal/printer"
	"github.com/indaco/versionator/internal/semver"
	"github.com/indaco/versionator/internal/tui"
	"github.com/urfave/cli/v3"
)

// runStepFn is replaced in tests.
var runStepFn operations.StepRunner = tui.RunWithSpinner

// Run returns the "bump" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "bump",
		Usage:     "Bump semantic version (major, minor, patch)",
		UsageText: "versionator bump <major|minor|patch> [--flags]",
		ArgsUsage: "<major|minor|patch>",
		Flags:     flags.ReleaseFlags(true),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runBumpCmd(ctx, cmd, cfg)
		},
	}
}

func runBumpCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one bump kind (%s), got %d arguments", kindList(), cmd.Args().Len())
	}
	kind, err := semver.ParseBumpKind(cmd.Args().First())
	if err != nil {
		return err
	}

	execCtx, err := clix.GetExecutionContext(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	rel := flags.GetReleaseOptions(cmd)
	opts := operations.BumpOptions{
		DryRun:  rel.DryRun,
		Tag:     cmd.Bool("tag") || rel.Commit || rel.Push,
		Commit:  rel.Commit || execCtx.Config.Tag != nil && execCtx.Config.Tag.Commit,
		Push:    rel.Push,
		Message: rel.Message,
		RunStep: runStepFn,
	}

	if opts.Tag && !opts.DryRun && !rel.Yes && execCtx.Interactive {
		preview, err := execCtx.Engine.Bump(ctx, execCtx.Path, kind, operations.BumpOptions{DryRun: true, Tag: true})
		if err != nil {
			return err
		}
		title := fmt.Sprintf("Bump %s to %s and create tag %s?", preview.Old, preview.New, preview.TagName)
		if err := execCtx.Confirm(rel.Yes, title, preview.File.Path); err != nil {
			return err
		}
	}

	result, err := execCtx.Engine.Bump(ctx, execCtx.Path, kind, opts)
	if result != nil {
		printBumpResult(result)
	}
	return err
}

// printBumpResult reports each step that completed.
func printBumpResult(r *operations.BumpResult) {
	if r.DryRun {
		printer.PrintInfo(fmt.Sprintf("[dry-run] Would update %s from %s to %s", r.File.Path, r.Old, r.New))
		if r.TagName != "" {
			printer.PrintInfo(fmt.Sprintf("[dry-run] Would create tag: %s", r.TagName))
		}
		return
	}

	printer.PrintSuccess(fmt.Sprintf("Updated version from %s to %s in %s", r.Old, r.New, r.File.Path))
	clix.PrintRelease(r)
}

func kindList() string {
	names := make([]string, len(semver.BumpKinds))
	for i, k := range semver.BumpKinds {
		names[i] = k.String()
	}
	return strings.Join(names, "|")
}
