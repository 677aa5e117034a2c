// Package operations implements the version engine: computing the next
// version and sequencing read, write and tag steps for a version file.
package operations

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/indaco/versionator/internal/semver"
	"github.com/indaco/versionator/internal/tagmanager"
	"github.com/indaco/versionator/internal/versionfile"
)

// StepRunner runs a long git step, for example behind a spinner.
type StepRunner func(ctx context.Context, title string, step func(context.Context) error) error

// TagManagerFactory returns a tag manager bound to the repository containing repoDir.
type TagManagerFactory func(repoDir string) *tagmanager.Manager

// Engine coordinates the version store and the git tag collaborator.
// Every call resolves its own file from the path it is given.
type Engine struct {
	store         *versionfile.Store
	newTagManager TagManagerFactory
}

// NewEngine creates an Engine. A nil factory uses tagmanager.NewManager with
// the default config.
func NewEngine(store *versionfile.Store, newTagManager TagManagerFactory) *Engine {
	if newTagManager == nil {
		newTagManager = func(repoDir string) *tagmanager.Manager {
			return tagmanager.NewManager(nil, repoDir)
		}
	}
	return &Engine{
		store:         store,
		newTagManager: newTagManager,
	}
}

// BumpOptions controls the side effects of Bump.
type BumpOptions struct {
	// DryRun computes and reports without writing, committing or tagging.
	DryRun bool

	// Tag creates a tag for the new version after writing it.
	Tag bool

	// Commit stages and commits the version file before tagging.
	Commit bool

	// Push pushes the created tag to origin.
	Push bool

	// Message makes the tag annotated with this message.
	Message string

	// RunStep wraps the push when set.
	RunStep StepRunner
}

// BumpResult describes the outcome of Bump and Tag.
type BumpResult struct {
	File    versionfile.File
	Old     semver.Version
	New     semver.Version
	Kind    semver.BumpKind
	DryRun  bool
	TagName string

	Tagged    bool
	Committed bool
	Pushed    bool

	// Tags is the repository's tag list after tagging, in git's order.
	Tags []string

	// TagsErr records a failure to list tags once the tag was created.
	TagsErr error
}

// ComputeBump returns the version that follows current for kind. It does no I/O.
func ComputeBump(current semver.Version, kind semver.BumpKind) (semver.Version, error) {
	return semver.Bump(current, kind)
}

// Bump reads the version file for path, computes the next version and,
// unless opts.DryRun is set, writes it back and optionally tags it.
//
// When tagging is requested the tag is checked before the file is written,
// so an already-tagged target fails with *tagmanager.AlreadyTaggedError and
// leaves the file untouched.
func (e *Engine) Bump(ctx context.Context, path string, kind semver.BumpKind, opts BumpOptions) (*BumpResult, error) {
	file, current, err := e.load(ctx, path)
	if err != nil {
		return nil, err
	}

	next, err := ComputeBump(current, kind)
	if err != nil {
		return nil, err
	}

	result := &BumpResult{
		File:   file,
		Old:    current,
		New:    next,
		Kind:   kind,
		DryRun: opts.DryRun,
	}

	if opts.DryRun {
		if opts.Tag {
			result.TagName = e.tagManagerFor(file).FormatTagName(next)
		}
		return result, nil
	}

	var tm *tagmanager.Manager
	if opts.Tag {
		tm = e.tagManagerFor(file)
		result.TagName = tm.FormatTagName(next)
		if err := tm.ValidateTagAvailable(ctx, next); err != nil {
			return nil, err
		}
	}

	if err := e.store.Serialize(ctx, file, next); err != nil {
		return nil, fmt.Errorf("failed to write version to %s: %w", file.Path, err)
	}

	if !opts.Tag {
		return result, nil
	}

	if err := e.release(ctx, tm, file, next, opts, result); err != nil {
		return result, err
	}
	return result, nil
}

// TagOptions controls the side effects of Tag.
type TagOptions struct {
	DryRun  bool
	Commit  bool
	Push    bool
	Message string
	RunStep StepRunner
}

// Tag creates a tag for the version currently declared by the file for path,
// without changing the file.
func (e *Engine) Tag(ctx context.Context, path string, opts TagOptions) (*BumpResult, error) {
	file, current, err := e.load(ctx, path)
	if err != nil {
		return nil, err
	}

	tm := e.tagManagerFor(file)
	result := &BumpResult{
		File:    file,
		Old:     current,
		New:     current,
		DryRun:  opts.DryRun,
		TagName: tm.FormatTagName(current),
	}

	if err := tm.ValidateTagAvailable(ctx, current); err != nil {
		return nil, err
	}
	if opts.DryRun {
		return result, nil
	}

	bumpOpts := BumpOptions{
		Tag:     true,
		Commit:  opts.Commit,
		Push:    opts.Push,
		Message: opts.Message,
		RunStep: opts.RunStep,
	}
	if err := e.release(ctx, tm, file, current, bumpOpts, result); err != nil {
		return result, err
	}
	return result, nil
}

// release runs the optional commit, the tag creation, the optional push and
// the final tag listing, recording progress in result. The commit is skipped
// when the version file has no changes against HEAD. A listing failure after
// the tag exists goes to result.TagsErr instead of failing the release.
func (e *Engine) release(ctx context.Context, tm *tagmanager.Manager, file versionfile.File, version semver.Version, opts BumpOptions, result *BumpResult) error {
	if opts.Commit {
		committed, err := tm.CommitRelease(ctx, version, absPath(file.Path))
		if err != nil {
			return fmt.Errorf("failed to commit release changes: %w", err)
		}
		result.Committed = committed
	}

	if err := tm.CreateTag(ctx, version, opts.Message); err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}
	result.Tagged = true

	if opts.Push || tm.GetConfig().Push {
		push := func(ctx context.Context) error {
			return tm.PushTag(ctx, version)
		}
		run := opts.RunStep
		if run == nil {
			run = func(ctx context.Context, _ string, step func(context.Context) error) error {
				return step(ctx)
			}
		}
		if err := run(ctx, "Pushing "+result.TagName, push); err != nil {
			return err
		}
		result.Pushed = true
	}

	tags, err := tm.ListTags(ctx)
	if err != nil {
		result.TagsErr = err
		return nil
	}
	result.Tags = tags
	return nil
}

func (e *Engine) load(ctx context.Context, path string) (versionfile.File, semver.Version, error) {
	if err := ctx.Err(); err != nil {
		return versionfile.File{}, semver.Version{}, err
	}

	file, err := e.store.Resolve(ctx, path)
	if err != nil {
		return versionfile.File{}, semver.Version{}, err
	}

	current, err := e.store.Parse(ctx, file)
	if err != nil {
		return versionfile.File{}, semver.Version{}, err
	}
	return file, current, nil
}

func (e *Engine) tagManagerFor(file versionfile.File) *tagmanager.Manager {
	return e.newTagManager(filepath.Dir(absPath(file.Path)))
}

// absPath returns path made absolute, or path unchanged if that fails.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
