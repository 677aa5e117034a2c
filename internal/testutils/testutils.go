// Package testutils holds helpers shared by command tests.
package testutils

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/indaco/versionator/internal/printer"
	"github.com/urfave/cli/v3"
)

// BuildCLIForTests returns a root command with the global flags of the real
// CLI and the given subcommands.
func BuildCLIForTests(path string, commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name: "versionator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Value:   path,
			},
			&cli.BoolFlag{Name: "no-color"},
		},
		Commands: commands,
	}
}

// RunCLITest runs app with args from workDir and fails the test on error.
func RunCLITest(t *testing.T, app *cli.Command, args []string, workDir string) {
	t.Helper()
	if err := RunCLITestAllowError(t, app, args, workDir); err != nil {
		t.Fatalf("CLI run failed: %v", err)
	}
}

// RunCLITestAllowError runs app with args from workDir and returns its error.
func RunCLITestAllowError(t *testing.T, app *cli.Command, args []string, workDir string) error {
	t.Helper()
	if workDir != "" {
		t.Chdir(workDir)
	}
	return app.Run(context.Background(), args)
}

// CaptureOutput redirects printer output while fn runs and returns what was
// written to stdout and stderr.
func CaptureOutput(fn func()) (stdout, stderr string) {
	var out, errOut bytes.Buffer
	oldOut, oldErr := printer.Stdout, printer.Stderr
	printer.Stdout, printer.Stderr = &out, &errOut
	defer func() { printer.Stdout, printer.Stderr = oldOut, oldErr }()

	fn()
	return out.String(), errOut.String()
}

// CaptureStdout is CaptureOutput restricted to stdout.
func CaptureStdout(fn func()) string {
	out, _ := CaptureOutput(fn)
	return out
}

// WriteTempVersionFile writes a version file named name into dir and
// returns its path.
func WriteTempVersionFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write version file: %v", err)
	}
	return path
}

// ReadTempVersionFile returns the content of path.
func ReadTempVersionFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read version file: %v", err)
	}
	return string(data)
}

// WriteTempConfig writes a .versionator.yaml with content into a new temp
// dir and returns its path.
func WriteTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".versionator.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}
