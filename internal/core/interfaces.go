package core

import (
	"context"
	"os"
)

// FileSystem abstracts the file operations needed to locate, read and rewrite
// version files.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error
	Stat(ctx context.Context, path string) (os.FileInfo, error)
}

// GitTagOperations is the version-control collaborator used to inspect and
// create tags. Implementations are bound to a single repository directory.
type GitTagOperations interface {
	ListTags(ctx context.Context, pattern string) ([]string, error)
	TagExists(ctx context.Context, name string) (bool, error)
	CreateLightweightTag(ctx context.Context, name string) error
	CreateAnnotatedTag(ctx context.Context, name, message string) error
	PushTag(ctx context.Context, name string) error
}

// GitCommitOperations stages and commits files before a release tag is created.
type GitCommitOperations interface {
	StageFiles(ctx context.Context, files ...string) error
	HasStagedChanges(ctx context.Context) (bool, error)
	Commit(ctx context.Context, message string) error
}

// Marshaler encodes a value into a serialized representation.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}
