package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(os.Stdout, os.Stderr)
		SetQuiet(false)
	})
	return &out, &errOut
}

func TestMessagesGoToStderr(t *testing.T) {
	out, errOut := captureOutput(t)

	PrintError("request failed: %s", "boom")
	PrintTip("Check your token.\nThen retry.")
	PrintMarkdown("# Result")

	if got := out.String(); got != "# Result\n" {
		t.Errorf("stdout = %q, want markdown only", got)
	}
	want := "✗ request failed: boom\n  Tip: Check your token.\n       Then retry.\n"
	if got := errOut.String(); got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestQuietSuppressesInfo(t *testing.T) {
	_, errOut := captureOutput(t)
	SetQuiet(true)

	PrintInfo("hello")
	PrintSuccess("done")
	PrintWarning("careful")

	if got := errOut.String(); got != "⚠ careful\n" {
		t.Errorf("stderr = %q, want only the warning", got)
	}
}

func TestProgressLine(t *testing.T) {
	captureOutput(t)

	bar := NewProgressBar(4, 8)
	bar.Update(2, 1, "id 42")
	line := bar.Line()
	for _, want := range []string{"████░░░░", " 50%", "2/4", "(1 failed)", "id 42"} {
		if !strings.Contains(line, want) {
			t.Errorf("Line() = %q, missing %q", line, want)
		}
	}
}
