package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/lokalise/lokalise-mcp/internal/config"
	"github.com/lokalise/lokalise-mcp/internal/lokalisetest"
	"github.com/lokalise/lokalise-mcp/internal/ui"
)

// run executes args against a root command built from env and returns the
// exit code, stdout and stderr.
func run(t *testing.T, env map[string]string, args ...string) (int, string, string) {
	t.Helper()

	var out, errOut bytes.Buffer
	ui.SetOutput(&out, &errOut)
	t.Cleanup(func() {
		ui.SetOutput(os.Stdout, os.Stderr)
		ui.SetQuiet(false)
	})

	root := newRootCmd(lokalisetest.Loader(t, env))
	root.SetOut(&out)
	root.SetErr(&errOut)
	code := execute(context.Background(), root, args)
	return code, out.String(), errOut.String()
}

func findCmd(root *cobra.Command, name string) *cobra.Command {
	for _, c := range root.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// TestRootCommandInitialization verifies the built-in and domain commands
// are registered.
func TestRootCommandInitialization(t *testing.T) {
	root := newRootCmd(lokalisetest.Loader(t, nil))

	if root.Use != "lokalise-mcp" {
		t.Errorf("root Use = %q, want lokalise-mcp", root.Use)
	}

	expected := []string{
		"serve", "config", "schema", "version",
		"list-projects", "list-keys", "bulk-update-translations", "create-task",
		"list-glossary-terms", "list-usergroups", "list-queued-processes",
	}
	for _, name := range expected {
		if findCmd(root, name) == nil {
			t.Errorf("expected command %q not found", name)
		}
	}

	for _, name := range []string{"debug", "quiet"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected global flag %q not found", name)
		}
	}
}

// TestSubcommandsHaveShortDescriptionAndGroup verifies help output stays
// organised.
func TestSubcommandsHaveShortDescriptionAndGroup(t *testing.T) {
	root := newRootCmd(lokalisetest.Loader(t, nil))
	for _, cmd := range root.Commands() {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			continue
		}
		if cmd.Short == "" {
			t.Errorf("command %q is missing Short description", cmd.Name())
		}
		if cmd.GroupID == "" {
			t.Errorf("command %q has no help group", cmd.Name())
		}
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, nil, "version")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out, "lokalise-mcp dev") || !strings.Contains(out, "Commit: none") {
		t.Errorf("stdout = %q", out)
	}
}

func TestConfigShowMasksAPIKey(t *testing.T) {
	code, out, _ := run(t, map[string]string{
		config.KeyAPIKey: "abcdefgh1234",
		config.KeyPort:   "8080",
	}, "config", "show")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if strings.Contains(out, "abcdefgh1234") {
		t.Errorf("stdout leaks the API key: %q", out)
	}
	for _, want := range []string{"********1234", "| `PORT` | 8080 | env |", "**Port**: 8080"} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q:\n%s", want, out)
		}
	}
}

func TestConfigShowWarnsWithoutAPIKey(t *testing.T) {
	code, out, _ := run(t, nil, "config", "show")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out, "LOKALISE_API_KEY is not set") {
		t.Errorf("stdout = %q, want missing key warning", out)
	}
}

func TestConfigPath(t *testing.T) {
	code, out, _ := run(t, nil, "config", "path")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out, ".env") || !strings.Contains(out, "configs.json") {
		t.Errorf("stdout = %q", out)
	}
}

func TestSchemaFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"json", `"name": "lokalise-mcp"`},
		{"yaml", "name: lokalise-mcp"},
		{"markdown", "# lokalise-mcp CLI Reference"},
		{"llm", "### list-keys"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			code, out, _ := run(t, nil, "schema", "--format", tt.format)
			if code != 0 {
				t.Fatalf("exit code = %d, want 0", code)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("stdout missing %q", tt.want)
			}
		})
	}

	code, _, errOut := run(t, nil, "schema", "--format", "xml")
	if code != 1 || !strings.Contains(errOut, "unknown format") {
		t.Errorf("exit code %d stderr %q, want unknown format error", code, errOut)
	}
}

func TestUnknownCommandSuggestion(t *testing.T) {
	code, _, errOut := run(t, nil, "keys", "list", "--project-id", "123.abc")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, "lokalise-mcp list-keys --project-id 123.abc") {
		t.Errorf("stderr = %q, want list-keys suggestion", errOut)
	}
}

func TestDestructiveCommandReportsOnce(t *testing.T) {
	code, out, errOut := run(t, map[string]string{config.KeyAPIKey: "k"}, "delete-project", "--project-id", "123.abc")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
	if n := strings.Count(errOut, "without --confirm"); n != 1 {
		t.Errorf("confirmation error printed %d times, want 1:\n%s", n, errOut)
	}
}

func TestServeRejectsUnknownTransport(t *testing.T) {
	code, _, errOut := run(t, nil, "serve", "--transport", "grpc")
	if code != 1 || !strings.Contains(errOut, `unknown transport "grpc"`) {
		t.Errorf("exit code %d stderr %q", code, errOut)
	}
}

func TestServeRejectsBadPort(t *testing.T) {
	code, _, errOut := run(t, nil, "serve", "--transport", "http", "--port", "70000")
	if code != 1 || !strings.Contains(errOut, "port must be between") {
		t.Errorf("exit code %d stderr %q", code, errOut)
	}
}
