package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func testRoot() *cobra.Command {
	root := &cobra.Command{Use: "lokalise-mcp", Short: "Lokalise MCP server and CLI"}
	root.PersistentFlags().Bool("debug", false, "Enable debug logging")
	root.AddGroup(&cobra.Group{ID: "keys", Title: "Translation keys:"})

	list := &cobra.Command{
		Use:     "list-keys",
		GroupID: "keys",
		Short:   "List keys in a project",
		Example: `  lokalise-mcp list-keys --project-id <id>
  # with translations
  lokalise-mcp list-keys --project-id <id> \
    --include-translations`,
		Run: func(*cobra.Command, []string) {},
	}
	list.Flags().String("project-id", "", "Project ID | required")
	list.Flags().Int("limit", 100, "Page size")

	del := &cobra.Command{Use: "delete-key", GroupID: "keys", Short: "Delete a key", Run: func(*cobra.Command, []string) {}}
	del.Flags().Bool("confirm", false, "Confirm")

	hidden := &cobra.Command{Use: "internal", Hidden: true, Run: func(*cobra.Command, []string) {}}
	version := &cobra.Command{Use: "version", Short: "Show version", Run: func(*cobra.Command, []string) {}}

	root.AddCommand(list, del, hidden, version)
	return root
}

func TestGetCLISchema(t *testing.T) {
	s := GetCLISchema(testRoot(), "1.2.3")

	if s.Name != "lokalise-mcp" || s.Version != "1.2.3" {
		t.Errorf("name/version = %q/%q", s.Name, s.Version)
	}
	if len(s.Groups) != 1 || s.Groups[0].Title != "Translation keys" {
		t.Errorf("groups = %+v", s.Groups)
	}
	if len(s.Commands) != 3 {
		t.Fatalf("got %d commands, want 3 (hidden excluded)", len(s.Commands))
	}

	byPath := map[string]CommandInfo{}
	for _, c := range s.Commands {
		byPath[c.Path] = c
	}

	list := byPath["list-keys"]
	if list.Group != "keys" || list.Destructive {
		t.Errorf("list-keys = %+v", list)
	}
	if len(list.Flags) != 2 {
		t.Errorf("list-keys flags = %+v", list.Flags)
	}
	wantExamples := []string{
		"lokalise-mcp list-keys --project-id <id>",
		"lokalise-mcp list-keys --project-id <id> --include-translations",
	}
	if strings.Join(list.Examples, "\n") != strings.Join(wantExamples, "\n") {
		t.Errorf("examples = %q, want %q", list.Examples, wantExamples)
	}

	if !byPath["delete-key"].Destructive {
		t.Error("delete-key should be destructive")
	}
	if len(s.GlobalFlags) != 1 || s.GlobalFlags[0].Name != "debug" {
		t.Errorf("global flags = %+v", s.GlobalFlags)
	}
	if len(s.Workflows) == 0 || !strings.HasPrefix(s.Workflows[0].Steps[0], "lokalise-mcp ") {
		t.Errorf("workflows = %+v", s.Workflows)
	}
}

func TestRenderJSONAndYAML(t *testing.T) {
	s := GetCLISchema(testRoot(), "1.2.3")

	out, err := Render(s, FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	var fromJSON CLISchema
	if err := json.Unmarshal([]byte(out), &fromJSON); err != nil {
		t.Fatalf("json output does not parse: %v", err)
	}
	if len(fromJSON.Commands) != len(s.Commands) {
		t.Errorf("json commands = %d, want %d", len(fromJSON.Commands), len(s.Commands))
	}

	out, err = Render(s, FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	var fromYAML CLISchema
	if err := yaml.Unmarshal([]byte(out), &fromYAML); err != nil {
		t.Fatalf("yaml output does not parse: %v", err)
	}
	if fromYAML.Commands[0].Group != s.Commands[0].Group {
		t.Errorf("yaml group = %q, want %q", fromYAML.Commands[0].Group, s.Commands[0].Group)
	}

	if _, err := Render(s, "xml"); err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("Render(xml) error = %v", err)
	}
}

func TestToMarkdown(t *testing.T) {
	md := ToMarkdown(GetCLISchema(testRoot(), "1.2.3"))

	for _, want := range []string{
		"# lokalise-mcp CLI Reference",
		"## keys: Translation keys",
		"### `list-keys`",
		"> Destructive: requires `--confirm`.",
		`Project ID \| required`,
		"## Other commands",
		"### `version`",
		"## Common Workflows",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	if strings.Index(md, "`list-keys`") > strings.Index(md, "`version`") {
		t.Error("grouped commands should come before ungrouped ones")
	}
}

func TestToLLMFormat(t *testing.T) {
	out := ToLLMFormat(GetCLISchema(testRoot(), "1.2.3"))

	for _, want := range []string{"### delete-key", "Delete a key (destructive)", "--project-id (string)", "LOKALISE_API_KEY"} {
		if !strings.Contains(out, want) {
			t.Errorf("llm output missing %q", want)
		}
	}
}
