package tagmanager

import (
	"context"

	"github.com/indaco/versionator/internal/core"
)

// MockGitCommitOperations is a mock implementation of core.GitCommitOperations for testing.
type MockGitCommitOperations struct {
	StageFilesFn       func(files ...string) error
	HasStagedChangesFn func() (bool, error)
	CommitFn           func(message string) error
}

// Verify MockGitCommitOperations implements core.GitCommitOperations.
var _ core.GitCommitOperations = (*MockGitCommitOperations)(nil)

// StageFiles implements core.GitCommitOperations.
func (m *MockGitCommitOperations) StageFiles(_ context.Context, files ...string) error {
	if m.StageFilesFn != nil {
		return m.StageFilesFn(files...)
	}
	return nil
}

// HasStagedChanges implements core.GitCommitOperations. Without a
// HasStagedChangesFn the index is reported as changed.
func (m *MockGitCommitOperations) HasStagedChanges(_ context.Context) (bool, error) {
	if m.HasStagedChangesFn != nil {
		return m.HasStagedChangesFn()
	}
	return true, nil
}

// Commit implements core.GitCommitOperations.
func (m *MockGitCommitOperations) Commit(_ context.Context, message string) error {
	if m.CommitFn != nil {
		return m.CommitFn(message)
	}
	return nil
}
