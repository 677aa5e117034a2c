package operations

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/indaco/versionator/internal/semver"
	"github.com/indaco/versionator/internal/tagmanager"
	"github.com/indaco/versionator/internal/versionfile"
)

func TestComputeBump(t *testing.T) {
	v := semver.Version{Major: 1, Minor: 4, Patch: 7}

	tests := []struct {
		kind semver.BumpKind
		want semver.Version
	}{
		{semver.BumpMajor, semver.Version{Major: 2}},
		{semver.BumpMinor, semver.Version{Major: 1, Minor: 5}},
		{semver.BumpPatch, semver.Version{Major: 1, Minor: 4, Patch: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, err := ComputeBump(v, tt.kind)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ComputeBump(%s, %s) = %s, want %s", v, tt.kind, got, tt.want)
			}
		})
	}

	if _, err := ComputeBump(v, "auto"); !errors.Is(err, semver.ErrInvalidBumpKind) {
		t.Errorf("expected ErrInvalidBumpKind, got %v", err)
	}
}

func TestEngine_Bump_JSONMinor(t *testing.T) {
	repo := &tagmanager.FakeRepository{}
	engine, fs, _ := newTestEngine(t, map[string]string{
		"/proj/version.json": `{"version": "1.1.0"}`,
	}, repo)

	result, err := engine.Bump(context.Background(), "/proj", semver.BumpMinor, BumpOptions{})
	if err != nil {
		t.Fatalf("Bump() error = %v", err)
	}

	if got := mustFile(t, fs, "/proj/version.json"); got != `{"version": "1.2.0"}` {
		t.Errorf("file content = %q", got)
	}
	if result.Old.String() != "1.1.0" || result.New.String() != "1.2.0" {
		t.Errorf("old/new = %s/%s, want 1.1.0/1.2.0", result.Old, result.New)
	}
	if result.DryRun || result.Tagged {
		t.Errorf("unexpected flags: %+v", result)
	}
	if len(repo.Tags) != 0 {
		t.Errorf("no tag expected, got %v", repo.Tags)
	}
}

func TestEngine_Bump_PythonPatchDryRun(t *testing.T) {
	content := `__version__ = "2.1.0"`
	engine, fs, _ := newTestEngine(t, map[string]string{
		"/proj/_version.py": content,
	}, &tagmanager.FakeRepository{})

	result, err := engine.Bump(context.Background(), "/proj/_version.py", semver.BumpPatch, BumpOptions{DryRun: true})
	if err != nil {
		t.Fatalf("Bump() error = %v", err)
	}

	if got := mustFile(t, fs, "/proj/_version.py"); got != content {
		t.Errorf("dry run changed file to %q", got)
	}
	if !result.DryRun || result.New.String() != "2.1.1" {
		t.Errorf("result = %+v", result)
	}
}

func TestEngine_Bump_DryRunNeverMutates(t *testing.T) {
	files := map[string]string{
		"/a/version.json": "{\n  \"version\": \"0.9.9\",\n  \"version_info\": [0, 9, 9]\n}\n",
		"/b/_version.py":  "__version__ = \"3.0.0\"\n",
	}

	for path, content := range files {
		for _, kind := range semver.BumpKinds {
			t.Run(path+"/"+kind.String(), func(t *testing.T) {
				repo := &tagmanager.FakeRepository{}
				engine, fs, _ := newTestEngine(t, map[string]string{path: content}, repo)

				result, err := engine.Bump(context.Background(), path, kind, BumpOptions{DryRun: true, Tag: true, Commit: true, Push: true})
				if err != nil {
					t.Fatalf("Bump() error = %v", err)
				}
				if got := mustFile(t, fs, path); got != content {
					t.Errorf("file changed: %q", got)
				}
				if fs.Writes != 0 {
					t.Errorf("Writes = %d, want 0", fs.Writes)
				}
				if len(repo.Tags) != 0 || len(repo.Commits) != 0 || len(repo.Pushed) != 0 {
					t.Errorf("dry run touched git: %+v", repo)
				}
				if result.TagName != "v"+result.New.String() {
					t.Errorf("TagName = %q", result.TagName)
				}
			})
		}
	}
}

func TestEngine_Bump_Tag(t *testing.T) {
	repo := &tagmanager.FakeRepository{Tags: []string{"v0.9.0", "v1.0.0"}}
	engine, fs, repoDirs := newTestEngine(t, map[string]string{
		"/repo/version.json": `{"version": "1.0.0"}`,
	}, repo)

	result, err := engine.Bump(context.Background(), "/repo", semver.BumpMajor, BumpOptions{Tag: true})
	if err != nil {
		t.Fatalf("Bump() error = %v", err)
	}

	if got := mustFile(t, fs, "/repo/version.json"); got != `{"version": "2.0.0"}` {
		t.Errorf("file content = %q", got)
	}
	if !result.Tagged || result.TagName != "v2.0.0" {
		t.Errorf("result = %+v", result)
	}

	want := []string{"v0.9.0", "v1.0.0", "v2.0.0"}
	if !slices.Equal(repo.Tags, want) {
		t.Errorf("repo tags = %v, want %v", repo.Tags, want)
	}
	if !slices.Equal(result.Tags, want) {
		t.Errorf("result tags = %v, want %v", result.Tags, want)
	}
	if len(*repoDirs) == 0 || (*repoDirs)[0] != "/repo" {
		t.Errorf("tag manager bound to %v, want /repo", *repoDirs)
	}
	if len(repo.Commits) != 0 {
		t.Errorf("commit not requested, got %v", repo.Commits)
	}
}

func TestEngine_Bump_AlreadyTagged(t *testing.T) {
	content := `{"version": "1.0.0"}`
	repo := &tagmanager.FakeRepository{Tags: []string{"v1.0.1"}}
	engine, fs, _ := newTestEngine(t, map[string]string{"/repo/version.json": content}, repo)

	_, err := engine.Bump(context.Background(), "/repo", semver.BumpPatch, BumpOptions{Tag: true})

	var at *tagmanager.AlreadyTaggedError
	if !errors.As(err, &at) {
		t.Fatalf("expected AlreadyTaggedError, got %v", err)
	}
	if at.Tag != "v1.0.1" {
		t.Errorf("Tag = %q", at.Tag)
	}
	if got := mustFile(t, fs, "/repo/version.json"); got != content {
		t.Errorf("file must be untouched, got %q", got)
	}
	if len(repo.Tags) != 1 {
		t.Errorf("no new tag expected, got %v", repo.Tags)
	}
}

func TestEngine_Bump_CommitAndPush(t *testing.T) {
	repo := &tagmanager.FakeRepository{}
	engine, _, _ := newTestEngine(t, map[string]string{
		"/repo/pkg/_version.py": "__version__ = \"0.1.0\"\n",
	}, repo)

	var steps []string
	result, err := engine.Bump(context.Background(), "/repo/pkg/_version.py", semver.BumpMinor, BumpOptions{
		Tag:     true,
		Commit:  true,
		Push:    true,
		Message: "second release",
		RunStep: func(ctx context.Context, title string, step func(context.Context) error) error {
			steps = append(steps, title)
			return step(ctx)
		},
	})
	if err != nil {
		t.Fatalf("Bump() error = %v", err)
	}

	if !result.Committed || !result.Tagged || !result.Pushed {
		t.Errorf("result = %+v", result)
	}
	if !slices.Equal(repo.Staged, []string{"/repo/pkg/_version.py"}) {
		t.Errorf("staged = %v", repo.Staged)
	}
	if !slices.Equal(repo.Commits, []string{"chore(release): v0.2.0"}) {
		t.Errorf("commits = %v", repo.Commits)
	}
	if repo.Messages["v0.2.0"] != "second release" {
		t.Errorf("tag message = %q", repo.Messages["v0.2.0"])
	}
	if !slices.Equal(repo.Pushed, []string{"v0.2.0"}) {
		t.Errorf("pushed = %v", repo.Pushed)
	}
	if !slices.Equal(steps, []string{"Pushing v0.2.0"}) {
		t.Errorf("steps = %v", steps)
	}
}

func TestEngine_Bump_TagFailureSurfaces(t *testing.T) {
	repo := &tagmanager.FakeRepository{CreateErr: errors.New("fatal: not a git repository")}
	engine, fs, _ := newTestEngine(t, map[string]string{"/x/version.json": `{"version": "0.0.1"}`}, repo)

	result, err := engine.Bump(context.Background(), "/x", semver.BumpPatch, BumpOptions{Tag: true})
	if err == nil {
		t.Fatal("expected error from tag creation")
	}
	if result == nil || result.Tagged {
		t.Errorf("result = %+v", result)
	}
	if got := mustFile(t, fs, "/x/version.json"); got != `{"version": "0.0.2"}` {
		t.Errorf("file should hold the new version, got %q", got)
	}
}

func TestEngine_Bump_ListFailureBeforeWrite(t *testing.T) {
	content := `{"version": "0.0.1"}`
	repo := &tagmanager.FakeRepository{ListErr: errors.New("not a git repository")}
	engine, fs, _ := newTestEngine(t, map[string]string{"/x/version.json": content}, repo)

	if _, err := engine.Bump(context.Background(), "/x", semver.BumpPatch, BumpOptions{Tag: true}); err == nil {
		t.Fatal("expected error")
	}
	if got := mustFile(t, fs, "/x/version.json"); got != content {
		t.Errorf("file must be untouched, got %q", got)
	}
}

func TestEngine_Bump_ListFailureAfterTag(t *testing.T) {
	repo := &tagmanager.FakeRepository{ListTagsErr: errors.New("git tag list timed out")}
	engine, fs, _ := newTestEngine(t, map[string]string{"/x/version.json": `{"version": "0.0.1"}`}, repo)

	result, err := engine.Bump(context.Background(), "/x", semver.BumpPatch, BumpOptions{Tag: true})
	if err != nil {
		t.Fatalf("Bump() error = %v, want listing failure recorded", err)
	}
	if !result.Tagged || result.TagsErr == nil || result.Tags != nil {
		t.Errorf("result = %+v", result)
	}
	if !slices.Equal(repo.Tags, []string{"v0.0.2"}) {
		t.Errorf("tags = %v", repo.Tags)
	}
	if got := mustFile(t, fs, "/x/version.json"); got != `{"version": "0.0.2"}` {
		t.Errorf("file content = %q", got)
	}
}

func TestEngine_Bump_Overflow(t *testing.T) {
	content := `{"version": "9223372036854775807.0.0"}`
	engine, fs, _ := newTestEngine(t, map[string]string{"/x/version.json": content}, &tagmanager.FakeRepository{})

	if _, err := engine.Bump(context.Background(), "/x", semver.BumpMajor, BumpOptions{}); !errors.Is(err, semver.ErrInvalidVersion) {
		t.Fatalf("expected ErrInvalidVersion, got %v", err)
	}
	if got := mustFile(t, fs, "/x/version.json"); got != content {
		t.Errorf("file must be untouched, got %q", got)
	}
}

func TestEngine_Bump_Errors(t *testing.T) {
	engine, _, _ := newTestEngine(t, map[string]string{
		"/bad/version.json": `{"version": "1.0"}`,
	}, &tagmanager.FakeRepository{})
	ctx := context.Background()

	var nf *versionfile.NotFoundError
	if _, err := engine.Bump(ctx, "/nowhere", semver.BumpPatch, BumpOptions{}); !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %v", err)
	}

	var pe *versionfile.ParseError
	if _, err := engine.Bump(ctx, "/bad", semver.BumpPatch, BumpOptions{}); !errors.As(err, &pe) {
		t.Errorf("expected ParseError, got %v", err)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := engine.Bump(canceled, "/bad", semver.BumpPatch, BumpOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestEngine_Tag(t *testing.T) {
	repo := &tagmanager.FakeRepository{}
	content := `__version__ = "1.4.0"`
	engine, fs, _ := newTestEngine(t, map[string]string{"/p/_version.py": content}, repo)
	ctx := context.Background()

	dry, err := engine.Tag(ctx, "/p", TagOptions{DryRun: true})
	if err != nil {
		t.Fatalf("Tag(dry) error = %v", err)
	}
	if dry.TagName != "v1.4.0" || dry.Tagged || len(repo.Tags) != 0 {
		t.Errorf("dry run result = %+v, tags = %v", dry, repo.Tags)
	}

	result, err := engine.Tag(ctx, "/p", TagOptions{})
	if err != nil {
		t.Fatalf("Tag() error = %v", err)
	}
	if !result.Tagged || !slices.Equal(repo.Tags, []string{"v1.4.0"}) {
		t.Errorf("result = %+v, tags = %v", result, repo.Tags)
	}
	if got := mustFile(t, fs, "/p/_version.py"); got != content {
		t.Errorf("Tag must not modify the file, got %q", got)
	}

	var at *tagmanager.AlreadyTaggedError
	if _, err := engine.Tag(ctx, "/p", TagOptions{}); !errors.As(err, &at) {
		t.Errorf("expected AlreadyTaggedError on second tag, got %v", err)
	}
}

func TestEngine_Tag_CommitUnchangedFile(t *testing.T) {
	repo := &tagmanager.FakeRepository{Unmodified: []string{"/p/version.json"}}
	engine, _, _ := newTestEngine(t, map[string]string{"/p/version.json": `{"version": "3.1.0"}`}, repo)

	result, err := engine.Tag(context.Background(), "/p", TagOptions{Commit: true})
	if err != nil {
		t.Fatalf("Tag() error = %v", err)
	}
	if result.Committed || !result.Tagged {
		t.Errorf("result = %+v", result)
	}
	if len(repo.Commits) != 0 || !slices.Equal(repo.Tags, []string{"v3.1.0"}) {
		t.Errorf("commits = %v, tags = %v", repo.Commits, repo.Tags)
	}
	if !slices.Equal(result.Tags, []string{"v3.1.0"}) {
		t.Errorf("result tags = %v", result.Tags)
	}
}
