package initialize

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indaco/versionator/internal/config"
	"github.com/indaco/versionator/internal/semver"
	"github.com/indaco/versionator/internal/testutils"
	"github.com/indaco/versionator/internal/versionfile"
	"github.com/urfave/cli/v3"
)

func newApp(path string) *cli.Command {
	cfg := config.DefaultConfig()
	cfg.Path = path
	return testutils.BuildCLIForTests(path, []*cli.Command{Run(cfg)})
}

func TestInitCmd_DefaultJSON(t *testing.T) {
	dir := t.TempDir()

	output := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, newApp(dir), []string{"versionator", "init"}, dir)
	})

	got := testutils.ReadTempVersionFile(t, filepath.Join(dir, "version.json"))
	if got != "{\"version\":\"0.0.0\"}\n" {
		t.Errorf("content = %q", got)
	}
	if !strings.Contains(output, "with version 0.0.0") {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestInitCmd_PythonWithVersion(t *testing.T) {
	dir := t.TempDir()

	testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, newApp(dir), []string{"versionator", "init", "--format", "python", "--version", "1.2.3"}, dir)
	})

	got := testutils.ReadTempVersionFile(t, filepath.Join(dir, "_version.py"))
	if got != "__version__ = \"1.2.3\"\n" {
		t.Errorf("content = %q", got)
	}
}

func TestInitCmd_FilePathSelectsFormat(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "src", "pkg", "_version.py")

	testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, newApp(target), []string{"versionator", "init"}, dir)
	})

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected %s to be created: %v", target, err)
	}

	err := testutils.RunCLITestAllowError(t, newApp(filepath.Join(dir, "x", "version.json")), []string{"versionator", "init", "--format", "python"}, dir)
	if err == nil || !strings.Contains(err.Error(), "conflicts") {
		t.Errorf("expected format conflict, got %v", err)
	}
}

func TestInitCmd_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := testutils.WriteTempVersionFile(t, dir, "version.json", `{"version": "5.0.0"}`)

	err := testutils.RunCLITestAllowError(t, newApp(dir), []string{"versionator", "init"}, dir)
	var exists *versionfile.ExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("expected ExistsError, got %v", err)
	}

	testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, newApp(dir), []string{"versionator", "init", "--force", "--version", "0.1.0"}, dir)
	})
	if got := testutils.ReadTempVersionFile(t, path); got != "{\"version\":\"0.1.0\"}\n" {
		t.Errorf("force did not overwrite: %q", got)
	}
}

func TestInitCmd_InvalidInput(t *testing.T) {
	dir := t.TempDir()

	err := testutils.RunCLITestAllowError(t, newApp(dir), []string{"versionator", "init", "--version", "1.0"}, dir)
	if !errors.Is(err, semver.ErrInvalidVersion) {
		t.Errorf("expected ErrInvalidVersion, got %v", err)
	}

	err = testutils.RunCLITestAllowError(t, newApp(dir), []string{"versionator", "init", "--format", "toml"}, dir)
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("expected format error, got %v", err)
	}
}

func TestInitCmd_WritesConfig(t *testing.T) {
	dir := t.TempDir()

	testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, newApp(dir), []string{"versionator", "init", "--config"}, dir)
	})

	cfg, err := config.LoadFile(filepath.Join(dir, config.FileName))
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if cfg.Path != "." || cfg.TagPrefix() != "v" {
		t.Errorf("unexpected config: %+v", cfg)
	}

	// A second run keeps the existing config.
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte("theme: charm\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, errOut := testutils.CaptureOutput(func() {
		testutils.RunCLITest(t, newApp(dir), []string{"versionator", "init", "--force", "--config"}, dir)
	})
	if !strings.Contains(errOut, "already exists") {
		t.Errorf("expected warning, got %q", errOut)
	}
	if data, _ := os.ReadFile(filepath.Join(dir, config.FileName)); string(data) != "theme: charm\n" {
		t.Errorf("config overwritten: %q", data)
	}
}

func TestInitCmd_ConfigInWorkingDirectory(t *testing.T) {
	tmp := t.TempDir()
	sub := filepath.Join(tmp, "pkg")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, newApp("."), []string{"versionator", "--path", "pkg", "init", "--config"}, tmp)
	})

	if _, err := os.Stat(filepath.Join(sub, "version.json")); err != nil {
		t.Fatalf("version file not created in pkg: %v", err)
	}
	if _, err := os.Stat(filepath.Join(sub, config.FileName)); !os.IsNotExist(err) {
		t.Errorf("config must not be written next to the version file, stat err = %v", err)
	}

	cfg, err := config.LoadFile(filepath.Join(tmp, config.FileName))
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if cfg.Path != "pkg" {
		t.Errorf("config path = %q, want pkg", cfg.Path)
	}
}
