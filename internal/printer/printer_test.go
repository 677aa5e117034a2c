package printer

import (
	"bytes"
	"strings"
	"testing"
)

// capture redirects Stdout and Stderr for the duration of fn.
func capture(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	oldOut, oldErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	defer func() { Stdout, Stderr = oldOut, oldErr }()

	fn()
	return out.String(), errOut.String()
}

func TestRenderFunctions(t *testing.T) {
	tests := []struct {
		name     string
		function func(string) string
	}{
		{"Faint", Faint},
		{"Bold", Bold},
		{"Success", Success},
		{"Error", Error},
		{"Warning", Warning},
		{"Info", Info},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.function("test text")
			// ANSI codes depend on the terminal, the text itself must survive.
			if !strings.Contains(result, "test text") {
				t.Errorf("%s() = %q, want to contain input", tt.name, result)
			}
		})
	}
}

func TestPrintFunctions_Destinations(t *testing.T) {
	tests := []struct {
		name     string
		function func(string)
		toStderr bool
	}{
		{"PrintFaint", PrintFaint, false},
		{"PrintBold", PrintBold, false},
		{"PrintSuccess", PrintSuccess, false},
		{"PrintInfo", PrintInfo, false},
		{"Println", Println, false},
		{"PrintError", PrintError, true},
		{"PrintWarning", PrintWarning, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr := capture(t, func() { tt.function("hello") })

			got, other := stdout, stderr
			if tt.toStderr {
				got, other = stderr, stdout
			}
			if !strings.Contains(got, "hello") || !strings.HasSuffix(got, "\n") {
				t.Errorf("%s() wrote %q", tt.name, got)
			}
			if other != "" {
				t.Errorf("%s() wrote to the wrong stream: %q", tt.name, other)
			}
		})
	}
}

func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	for _, s := range []string{Success("ok"), Error("bad"), Bold("b"), Faint("f")} {
		if strings.Contains(s, "\x1b[") {
			t.Errorf("expected plain text with colors disabled, got %q", s)
		}
	}
	if got := Success("ok"); got != "ok" {
		t.Errorf("Success() = %q, want %q", got, "ok")
	}
}

func TestKeyValue(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	stdout, _ := capture(t, func() { PrintKeyValue("version", "1.2.3") })
	if stdout != "version:   1.2.3\n" {
		t.Errorf("PrintKeyValue() = %q", stdout)
	}
}
