package tagmanager

import (
	"context"
	"errors"
	"slices"

	"github.com/indaco/versionator/internal/core"
)

// MockGitTagOperations is a mock implementation of core.GitTagOperations for testing.
type MockGitTagOperations struct {
	CreateAnnotatedTagFn   func(name, message string) error
	CreateLightweightTagFn func(name string) error
	TagExistsFn            func(name string) (bool, error)
	PushTagFn              func(name string) error
	ListTagsFn             func(pattern string) ([]string, error)
}

// Verify MockGitTagOperations implements core.GitTagOperations.
var _ core.GitTagOperations = (*MockGitTagOperations)(nil)

// CreateAnnotatedTag implements core.GitTagOperations.
func (m *MockGitTagOperations) CreateAnnotatedTag(_ context.Context, name, message string) error {
	if m.CreateAnnotatedTagFn != nil {
		return m.CreateAnnotatedTagFn(name, message)
	}
	return nil
}

// CreateLightweightTag implements core.GitTagOperations.
func (m *MockGitTagOperations) CreateLightweightTag(_ context.Context, name string) error {
	if m.CreateLightweightTagFn != nil {
		return m.CreateLightweightTagFn(name)
	}
	return nil
}

// TagExists implements core.GitTagOperations.
func (m *MockGitTagOperations) TagExists(_ context.Context, name string) (bool, error) {
	if m.TagExistsFn != nil {
		return m.TagExistsFn(name)
	}
	return false, nil
}

// PushTag implements core.GitTagOperations.
func (m *MockGitTagOperations) PushTag(_ context.Context, name string) error {
	if m.PushTagFn != nil {
		return m.PushTagFn(name)
	}
	return nil
}

// ListTags implements core.GitTagOperations.
func (m *MockGitTagOperations) ListTags(_ context.Context, pattern string) ([]string, error) {
	if m.ListTagsFn != nil {
		return m.ListTagsFn(pattern)
	}
	return []string{}, nil
}

// FakeRepository is an in-memory tag store that satisfies both git
// collaborator interfaces. Tags are kept in creation order.
type FakeRepository struct {
	Tags     []string
	Messages map[string]string
	Staged   []string
	Commits  []string
	Pushed   []string

	// Unmodified lists files identical to HEAD; staging them leaves the index
	// unchanged, and committing an unchanged index fails like git does.
	Unmodified []string

	// ListErr fails both ListTags and TagExists. ListTagsErr fails ListTags only.
	ListErr     error
	ListTagsErr error
	CreateErr   error
	CommitErr   error

	index []string
}

var (
	_ core.GitTagOperations    = (*FakeRepository)(nil)
	_ core.GitCommitOperations = (*FakeRepository)(nil)
)

func (r *FakeRepository) ListTags(_ context.Context, _ string) ([]string, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	if r.ListTagsErr != nil {
		return nil, r.ListTagsErr
	}
	return append([]string{}, r.Tags...), nil
}

func (r *FakeRepository) TagExists(_ context.Context, name string) (bool, error) {
	if r.ListErr != nil {
		return false, r.ListErr
	}
	for _, t := range r.Tags {
		if t == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *FakeRepository) CreateLightweightTag(ctx context.Context, name string) error {
	return r.CreateAnnotatedTag(ctx, name, "")
}

func (r *FakeRepository) CreateAnnotatedTag(_ context.Context, name, message string) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.Tags = append(r.Tags, name)
	if message != "" {
		if r.Messages == nil {
			r.Messages = make(map[string]string)
		}
		r.Messages[name] = message
	}
	return nil
}

func (r *FakeRepository) PushTag(_ context.Context, name string) error {
	r.Pushed = append(r.Pushed, name)
	return nil
}

func (r *FakeRepository) StageFiles(_ context.Context, files ...string) error {
	r.Staged = append(r.Staged, files...)
	for _, f := range files {
		if !slices.Contains(r.Unmodified, f) {
			r.index = append(r.index, f)
		}
	}
	return nil
}

func (r *FakeRepository) HasStagedChanges(_ context.Context) (bool, error) {
	return len(r.index) > 0, nil
}

func (r *FakeRepository) Commit(_ context.Context, message string) error {
	if r.CommitErr != nil {
		return r.CommitErr
	}
	if len(r.index) == 0 {
		return errors.New("nothing to commit, working tree clean")
	}
	r.index = nil
	r.Commits = append(r.Commits, message)
	return nil
}
