package tagmanager

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/indaco/versionator/internal/core"
	"github.com/indaco/versionator/internal/semver"
	modsemver "golang.org/x/mod/semver"
)

const (
	// DefaultPrefix is prepended to versions to form tag names.
	DefaultPrefix = "v"

	// DefaultMessageTemplate is used for annotated tags without an explicit message.
	DefaultMessageTemplate = "Release {version}"

	// DefaultCommitMessageTemplate is used for the commit created before tagging.
	DefaultCommitMessageTemplate = "chore(release): {tag}"
)

// Config holds tag naming and creation settings.
type Config struct {
	// Prefix is the tag prefix (default: "v").
	Prefix string

	// Annotate creates annotated tags instead of lightweight tags.
	Annotate bool

	// Push pushes tags to origin after creation.
	Push bool

	// MessageTemplate is the annotated tag message. See FormatMessage.
	MessageTemplate string

	// CommitMessageTemplate is the message of the commit made before tagging.
	CommitMessageTemplate string
}

// DefaultConfig returns the default tag configuration.
func DefaultConfig() *Config {
	return &Config{
		Prefix:                DefaultPrefix,
		Annotate:              false,
		Push:                  false,
		MessageTemplate:       DefaultMessageTemplate,
		CommitMessageTemplate: DefaultCommitMessageTemplate,
	}
}

// Manager maps versions to tags and creates them through the git collaborators.
type Manager struct {
	config    *Config
	gitOps    core.GitTagOperations
	commitOps core.GitCommitOperations
}

// NewManager creates a Manager bound to the git repository containing repoDir.
func NewManager(cfg *Config, repoDir string) *Manager {
	return NewManagerWithOps(cfg, NewOSGitTagOperations(repoDir), NewOSGitCommitOperations(repoDir))
}

// NewManagerWithOps creates a Manager with custom git operations.
func NewManagerWithOps(cfg *Config, gitOps core.GitTagOperations, commitOps core.GitCommitOperations) *Manager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Manager{
		config:    cfg,
		gitOps:    gitOps,
		commitOps: commitOps,
	}
}

// GetConfig returns the manager configuration.
func (m *Manager) GetConfig() *Config {
	return m.config
}

// FormatTagName formats a version as a tag name using the configured prefix.
func (m *Manager) FormatTagName(version semver.Version) string {
	return m.config.Prefix + version.String()
}

// ParseTagName returns the semantic version named by tag in the canonical
// "vMAJOR.MINOR.PATCH[-PRERELEASE]" form. Tags without the configured prefix,
// shorthand versions such as "v1.2" and tags with build metadata are rejected.
func (m *Manager) ParseTagName(tag string) (string, bool) {
	rest, ok := strings.CutPrefix(tag, m.config.Prefix)
	if !ok || rest == "" || rest[0] == 'v' {
		return "", false
	}
	v := "v" + rest
	if !modsemver.IsValid(v) || modsemver.Canonical(v) != v {
		return "", false
	}
	return v, true
}

// TagExists checks if a tag for the given version already exists.
func (m *Manager) TagExists(ctx context.Context, version semver.Version) (bool, error) {
	return m.gitOps.TagExists(ctx, m.FormatTagName(version))
}

// ValidateTagAvailable returns an *AlreadyTaggedError when version is
// already tagged.
func (m *Manager) ValidateTagAvailable(ctx context.Context, version semver.Version) error {
	exists, err := m.TagExists(ctx, version)
	if err != nil {
		return fmt.Errorf("failed to check tag availability: %w", err)
	}
	if exists {
		return &AlreadyTaggedError{Tag: m.FormatTagName(version)}
	}
	return nil
}

// CreateTag creates the tag for version. A non-empty message, or Annotate in
// the config, produces an annotated tag; otherwise the tag is lightweight.
func (m *Manager) CreateTag(ctx context.Context, version semver.Version, message string) error {
	if err := m.ValidateTagAvailable(ctx, version); err != nil {
		return err
	}

	tagName := m.FormatTagName(version)

	switch {
	case message != "":
		if err := m.gitOps.CreateAnnotatedTag(ctx, tagName, message); err != nil {
			return fmt.Errorf("failed to create annotated tag: %w", err)
		}
	case m.config.Annotate:
		if err := m.gitOps.CreateAnnotatedTag(ctx, tagName, m.FormatTagMessage(version)); err != nil {
			return fmt.Errorf("failed to create annotated tag: %w", err)
		}
	default:
		if err := m.gitOps.CreateLightweightTag(ctx, tagName); err != nil {
			return fmt.Errorf("failed to create lightweight tag: %w", err)
		}
	}

	return nil
}

// PushTag pushes the tag for version to origin.
func (m *Manager) PushTag(ctx context.Context, version semver.Version) error {
	if err := m.gitOps.PushTag(ctx, m.FormatTagName(version)); err != nil {
		return fmt.Errorf("failed to push tag: %w", err)
	}
	return nil
}

// FormatTagMessage formats a tag message using the configured template.
func (m *Manager) FormatTagMessage(version semver.Version) string {
	template := m.config.MessageTemplate
	if template == "" {
		template = DefaultMessageTemplate
	}
	return FormatMessage(template, NewTemplateData(version, m.config.Prefix))
}

// CommitRelease stages files and commits them with the configured commit
// message so the release tag points at the version change. It reports false
// without committing when staging leaves the index identical to HEAD.
func (m *Manager) CommitRelease(ctx context.Context, version semver.Version, files ...string) (bool, error) {
	files = deduplicateStrings(files)
	if len(files) == 0 {
		return false, nil
	}

	if err := m.commitOps.StageFiles(ctx, files...); err != nil {
		return false, fmt.Errorf("failed to stage files: %w", err)
	}

	changed, err := m.commitOps.HasStagedChanges(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to inspect staged changes: %w", err)
	}
	if !changed {
		return false, nil
	}

	template := m.config.CommitMessageTemplate
	if template == "" {
		template = DefaultCommitMessageTemplate
	}
	message := FormatMessage(template, NewTemplateData(version, m.config.Prefix))

	if err := m.commitOps.Commit(ctx, message); err != nil {
		return false, fmt.Errorf("failed to commit: %w", err)
	}
	return true, nil
}

// ListTags returns every tag in the repository, in the order git reports them.
func (m *Manager) ListTags(ctx context.Context) ([]string, error) {
	return m.gitOps.ListTags(ctx, "")
}

// LatestRelease returns the tag naming the highest release version among
// tags, or "" if there is none. Pre-release tags such as "v1.3.0-rc.1" are
// not releases.
func (m *Manager) LatestRelease(tags []string) string {
	type candidate struct {
		tag       string
		canonical string
	}

	var releases []candidate
	for _, tag := range tags {
		canonical, ok := m.ParseTagName(tag)
		if !ok || modsemver.Prerelease(canonical) != "" {
			continue
		}
		releases = append(releases, candidate{tag: tag, canonical: canonical})
	}
	if len(releases) == 0 {
		return ""
	}

	latest := slices.MaxFunc(releases, func(a, b candidate) int {
		return modsemver.Compare(a.canonical, b.canonical)
	})
	return latest.tag
}

// deduplicateStrings removes empty and duplicate strings while preserving order.
func deduplicateStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		result = append(result, item)
	}
	return result
}
