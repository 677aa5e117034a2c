package tagmanager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/indaco/versionator/internal/core"
)

// execCommandFn builds git subprocesses; tests replace it.
type execCommandFn func(ctx context.Context, name string, arg ...string) *exec.Cmd

// OSGitTagOperations implements core.GitTagOperations using actual git
// commands run against a single repository directory.
type OSGitTagOperations struct {
	dir         string
	execCommand execCommandFn
}

// NewOSGitTagOperations creates tag operations for the repository containing dir.
func NewOSGitTagOperations(dir string) *OSGitTagOperations {
	return &OSGitTagOperations{
		dir:         dir,
		execCommand: exec.CommandContext,
	}
}

// Verify OSGitTagOperations implements core.GitTagOperations.
var _ core.GitTagOperations = (*OSGitTagOperations)(nil)

func (g *OSGitTagOperations) CreateAnnotatedTag(ctx context.Context, name, message string) error {
	if _, err := runGit(ctx, g.execCommand, g.dir, "git tag (annotated)", "tag", "-a", name, "-m", message); err != nil {
		return err
	}
	return nil
}

func (g *OSGitTagOperations) CreateLightweightTag(ctx context.Context, name string) error {
	if _, err := runGit(ctx, g.execCommand, g.dir, "git tag (lightweight)", "tag", name); err != nil {
		return err
	}
	return nil
}

func (g *OSGitTagOperations) TagExists(ctx context.Context, name string) (bool, error) {
	out, err := runGit(ctx, g.execCommand, g.dir, "git tag list", "tag", "-l", name)
	if err != nil {
		return false, fmt.Errorf("failed to list tags: %w", err)
	}

	// git tag -l prints the name back when the tag exists
	return strings.TrimSpace(out) == name, nil
}

// ListTags returns the repository's tags oldest first. An empty pattern lists all tags.
func (g *OSGitTagOperations) ListTags(ctx context.Context, pattern string) ([]string, error) {
	args := []string{"tag", "-l", "--sort=creatordate"}
	if pattern != "" {
		args = append(args, pattern)
	}

	out, err := runGit(ctx, g.execCommand, g.dir, "git tag list", args...)
	if err != nil {
		return nil, err
	}

	output := strings.TrimSpace(out)
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

func (g *OSGitTagOperations) PushTag(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, core.TimeoutGit)
	defer cancel()

	if _, err := runGit(ctx, g.execCommand, g.dir, "git push tag", "push", "origin", name); err != nil {
		return err
	}
	return nil
}

// OSGitCommitOperations implements core.GitCommitOperations using git commands.
type OSGitCommitOperations struct {
	dir         string
	execCommand execCommandFn
}

// NewOSGitCommitOperations creates commit operations for the repository containing dir.
func NewOSGitCommitOperations(dir string) *OSGitCommitOperations {
	return &OSGitCommitOperations{
		dir:         dir,
		execCommand: exec.CommandContext,
	}
}

// Verify OSGitCommitOperations implements core.GitCommitOperations.
var _ core.GitCommitOperations = (*OSGitCommitOperations)(nil)

func (g *OSGitCommitOperations) StageFiles(ctx context.Context, files ...string) error {
	if len(files) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, files...)
	if _, err := runGit(ctx, g.execCommand, g.dir, "git add", args...); err != nil {
		return err
	}
	return nil
}

// HasStagedChanges reports whether the index differs from HEAD.
func (g *OSGitCommitOperations) HasStagedChanges(ctx context.Context) (bool, error) {
	_, err := runGit(ctx, g.execCommand, g.dir, "git diff", "diff", "--cached", "--quiet")
	if err == nil {
		return false, nil
	}
	// --quiet exits 1 when there are differences
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return true, nil
	}
	return false, err
}

func (g *OSGitCommitOperations) Commit(ctx context.Context, message string) error {
	if _, err := runGit(ctx, g.execCommand, g.dir, "git commit", "commit", "-m", message); err != nil {
		return err
	}
	return nil
}

// runGit runs `git -C dir args...` and returns stdout. When git fails, its
// stderr is folded into the returned error.
func runGit(ctx context.Context, execCommand execCommandFn, dir, op string, args ...string) (string, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, core.TimeoutShort)
		defer cancel()
	}

	if dir != "" {
		args = append([]string{"-C", dir}, args...)
	}

	cmd := execCommand(ctx, "git", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%s timed out: %w", op, ctxErr)
		}
		stderrMsg := strings.TrimSpace(stderr.String())
		if stderrMsg != "" {
			return "", fmt.Errorf("%s: %w", stderrMsg, err)
		}
		return "", fmt.Errorf("%s failed: %w", op, err)
	}
	return stdout.String(), nil
}
