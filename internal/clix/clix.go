// Package clix resolves what a command invocation operates on: the version
// path, the engine bound to the configuration and the prompt policy.
package clix

import (
	"context"
	"fmt"
	"strconv"

	"github.com/indaco/versionator/internal/config"
	"github.com/indaco/versionator/internal/core"
	"github.com/indaco/versionator/internal/operations"
	"github.com/indaco/versionator/internal/printer"
	"github.com/indaco/versionator/internal/tagmanager"
	"github.com/indaco/versionator/internal/tui"
	"github.com/indaco/versionator/internal/versionfile"
	"github.com/urfave/cli/v3"
)

// Hooks replaced in tests.
var (
	NewEngineFn     = NewEngine
	NewPrompterFn   = tui.NewPrompter
	IsInteractiveFn = tui.IsInteractive
)

// ExecutionContext carries the per-invocation state shared by commands.
type ExecutionContext struct {
	// Path is the version file or directory the command operates on.
	Path string

	Engine   *operations.Engine
	Config   *config.Config
	Prompter tui.Prompter

	// Interactive reports whether prompts may be shown.
	Interactive bool
}

// NewEngine builds an engine reading through the OS filesystem and tagging
// with the tag settings of cfg.
func NewEngine(cfg *config.Config) *operations.Engine {
	var opts []versionfile.Option
	if cfg.Package != "" {
		opts = append(opts, versionfile.WithPackageDir(cfg.Package))
	}
	store := versionfile.NewStore(core.NewOSFileSystem(), opts...)

	tmCfg := cfg.TagManagerConfig()
	return operations.NewEngine(store, func(repoDir string) *tagmanager.Manager {
		return tagmanager.NewManager(tmCfg, repoDir)
	})
}

// GetExecutionContext resolves the execution context for cmd. The --path
// flag wins over the configured path, which defaults to the working directory.
func GetExecutionContext(_ context.Context, cmd *cli.Command, cfg *config.Config) (*ExecutionContext, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	return &ExecutionContext{
		Path:        VersionPath(cmd, cfg),
		Engine:      NewEngineFn(cfg),
		Config:      cfg,
		Prompter:    NewPrompterFn(),
		Interactive: IsInteractiveFn(),
	}, nil
}

// VersionPath returns the path a command should operate on.
func VersionPath(cmd *cli.Command, cfg *config.Config) string {
	if cmd.IsSet("path") {
		if p := cmd.String("path"); p != "" {
			return p
		}
	}
	if cfg != nil && cfg.Path != "" {
		return cfg.Path
	}
	return "."
}

// Confirm asks the user to approve action unless skip is set or the session
// is not interactive. Declining yields an error so the caller aborts.
func (e *ExecutionContext) Confirm(skip bool, title, description string) error {
	if skip || !e.Interactive {
		return nil
	}

	ok, err := e.Prompter.Confirm(title, description)
	if err != nil {
		return err
	}
	if !ok {
		return tui.ErrAborted
	}
	return nil
}

// WarnTags prints a warning when tags could not be listed.
func WarnTags(err error) {
	if err != nil {
		printer.PrintWarning(fmt.Sprintf("Could not list tags: %v", err))
	}
}

// PrintTagList prints the tag count followed by one tag per line.
func PrintTagList(tags []string) {
	if len(tags) == 0 {
		printer.PrintFaint("no tags")
		return
	}
	printer.PrintKeyValue("tags", strconv.Itoa(len(tags)))
	for _, t := range tags {
		printer.Println("  " + t)
	}
}

// PrintRelease reports the git steps recorded in r and, once a tag was
// created, the repository's tags.
func PrintRelease(r *operations.BumpResult) {
	if r.Committed {
		printer.PrintSuccess(fmt.Sprintf("Committed release changes for %s", r.New))
	}
	if !r.Tagged {
		return
	}
	printer.PrintSuccess(fmt.Sprintf("Created tag: %s", r.TagName))
	if r.Pushed {
		printer.PrintSuccess(fmt.Sprintf("Pushed tag: %s", r.TagName))
	}
	if r.TagsErr != nil {
		WarnTags(r.TagsErr)
		return
	}
	PrintTagList(r.Tags)
}
