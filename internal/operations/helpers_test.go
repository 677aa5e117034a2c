package operations

import (
	"testing"

	"github.com/indaco/versionator/internal/core"
	"github.com/indaco/versionator/internal/tagmanager"
	"github.com/indaco/versionator/internal/versionfile"
)

// newTestEngine returns an engine over an in-memory filesystem seeded with
// files and a fake repository shared by every tag manager it creates.
func newTestEngine(t *testing.T, files map[string]string, repo *tagmanager.FakeRepository) (*Engine, *core.MockFileSystem, *[]string) {
	t.Helper()

	fs := core.NewMockFileSystem()
	for path, content := range files {
		fs.SetFile(path, []byte(content))
	}

	var repoDirs []string
	factory := func(repoDir string) *tagmanager.Manager {
		repoDirs = append(repoDirs, repoDir)
		return tagmanager.NewManagerWithOps(tagmanager.DefaultConfig(), repo, repo)
	}

	return NewEngine(versionfile.NewStore(fs), factory), fs, &repoDirs
}

func mustFile(t *testing.T, fs *core.MockFileSystem, path string) string {
	t.Helper()
	data, ok := fs.GetFile(path)
	if !ok {
		t.Fatalf("file %s not found", path)
	}
	return string(data)
}
