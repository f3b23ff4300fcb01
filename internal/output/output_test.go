package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// captureOutput captures stdout during test execution
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestSuccess(t *testing.T) {
	out := captureOutput(func() {
		Success("demo passed")
	})
	if !strings.Contains(out, "demo passed") {
		t.Errorf("Success output missing message, got: %q", out)
	}
	if !strings.Contains(out, "✓") {
		t.Errorf("Success output missing checkmark, got: %q", out)
	}
}

func TestError(t *testing.T) {
	out := captureOutput(func() {
		Error("demo failed")
	})
	if !strings.Contains(out, "demo failed") {
		t.Errorf("Error output missing message, got: %q", out)
	}
}

func TestVerboseGating(t *testing.T) {
	SetVerbose(false)
	out := captureOutput(func() {
		Verbose("hidden")
	})
	if strings.Contains(out, "hidden") {
		t.Errorf("Verbose printed while disabled: %q", out)
	}

	SetVerbose(true)
	defer SetVerbose(false)
	out = captureOutput(func() {
		Verbose("shown")
	})
	if !strings.Contains(out, "shown") {
		t.Errorf("Verbose did not print while enabled: %q", out)
	}
}
