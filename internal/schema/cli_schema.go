// Package schema describes the CLI in machine-readable form.
//
// The description is generated from the cobra command tree, so it always
// matches the commands that are actually registered. It can be rendered as
// JSON, YAML, Markdown reference docs, or a compact form for LLM context.
package schema

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Formats accepted by Render.
const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
	FormatLLM      = "llm"
)

// Formats lists every format Render accepts.
var Formats = []string{FormatJSON, FormatMarkdown, FormatYAML, FormatLLM}

// CLISchema represents the complete CLI schema.
type CLISchema struct {
	Name        string        `json:"name" yaml:"name"`
	Version     string        `json:"version" yaml:"version"`
	Description string        `json:"description" yaml:"description"`
	Groups      []GroupInfo   `json:"groups" yaml:"groups"`
	Commands    []CommandInfo `json:"commands" yaml:"commands"`
	GlobalFlags []FlagInfo    `json:"global_flags" yaml:"global_flags"`
	Workflows   []Workflow    `json:"workflows" yaml:"workflows"`
}

// GroupInfo is a help group, one per Lokalise domain.
type GroupInfo struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// CommandInfo represents a CLI command.
type CommandInfo struct {
	Path        string        `json:"path" yaml:"path"`
	Group       string        `json:"group,omitempty" yaml:"group,omitempty"`
	Short       string        `json:"short" yaml:"short"`
	Long        string        `json:"long,omitempty" yaml:"long,omitempty"`
	Usage       string        `json:"usage" yaml:"usage"`
	Destructive bool          `json:"destructive,omitempty" yaml:"destructive,omitempty"`
	Examples    []string      `json:"examples,omitempty" yaml:"examples,omitempty"`
	Flags       []FlagInfo    `json:"flags,omitempty" yaml:"flags,omitempty"`
	Subcommands []CommandInfo `json:"subcommands,omitempty" yaml:"subcommands,omitempty"`
}

// FlagInfo represents a CLI flag.
type FlagInfo struct {
	Name        string `json:"name" yaml:"name"`
	Shorthand   string `json:"shorthand,omitempty" yaml:"shorthand,omitempty"`
	Type        string `json:"type" yaml:"type"`
	Default     string `json:"default,omitempty" yaml:"default,omitempty"`
	Description string `json:"description" yaml:"description"`
}

// Workflow represents a common CLI workflow.
type Workflow struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Steps       []string `json:"steps" yaml:"steps"`
}

// GetCLISchema generates the CLI schema from a root Cobra command.
//
// Parameters:
//   - rootCmd: The root Cobra command
//   - version: CLI version string
//
// Returns:
//   - *CLISchema: The generated CLI schema
func GetCLISchema(rootCmd *cobra.Command, version string) *CLISchema {
	s := &CLISchema{
		Name:        rootCmd.Name(),
		Version:     version,
		Description: rootCmd.Short,
		Commands:    extractCommands(rootCmd, ""),
		GlobalFlags: extractFlags(rootCmd.PersistentFlags()),
		Workflows:   commonWorkflows(rootCmd.Name()),
	}
	for _, g := range rootCmd.Groups() {
		s.Groups = append(s.Groups, GroupInfo{ID: g.ID, Title: strings.TrimSuffix(g.Title, ":")})
	}
	return s
}

// extractCommands recursively extracts command information.
func extractCommands(cmd *cobra.Command, parentPath string) []CommandInfo {
	var commands []CommandInfo

	for _, subCmd := range cmd.Commands() {
		if subCmd.Name() == "help" || subCmd.Name() == "completion" || subCmd.Hidden {
			continue
		}

		path := subCmd.Name()
		if parentPath != "" {
			path = parentPath + " " + subCmd.Name()
		}

		info := CommandInfo{
			Path:        path,
			Group:       subCmd.GroupID,
			Short:       subCmd.Short,
			Long:        subCmd.Long,
			Usage:       subCmd.UseLine(),
			Destructive: subCmd.LocalFlags().Lookup("confirm") != nil,
			Examples:    extractExamples(subCmd.Example),
			Flags:       extractFlags(subCmd.LocalFlags()),
		}

		if subCmd.HasSubCommands() {
			info.Subcommands = extractCommands(subCmd, path)
		}

		commands = append(commands, info)
	}

	return commands
}

// extractFlags extracts flag information from a FlagSet.
func extractFlags(flags *pflag.FlagSet) []FlagInfo {
	var flagInfos []FlagInfo

	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		flagInfos = append(flagInfos, FlagInfo{
			Name:        f.Name,
			Shorthand:   f.Shorthand,
			Type:        f.Value.Type(),
			Default:     f.DefValue,
			Description: f.Usage,
		})
	})

	return flagInfos
}

// extractExamples splits the Example field into one command per entry.
// Lines ending in a backslash are joined with the next one.
func extractExamples(example string) []string {
	if example == "" {
		return nil
	}

	var (
		examples []string
		pending  string
	)
	for _, line := range strings.Split(example, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, `\`) {
			pending += strings.TrimSpace(strings.TrimSuffix(line, `\`)) + " "
			continue
		}
		examples = append(examples, pending+line)
		pending = ""
	}
	if pending != "" {
		examples = append(examples, strings.TrimSpace(pending))
	}
	return examples
}

// commonWorkflows returns typical multi-step tasks.
func commonWorkflows(bin string) []Workflow {
	return []Workflow{
		{
			Name:        "Find a project",
			Description: "Most commands need a project ID.",
			Steps: []string{
				bin + " list-projects --limit 20",
				bin + " get-project --project-id <id>",
			},
		},
		{
			Name:        "Translate untranslated strings",
			Description: "List empty translations for one language, then update them in one batch.",
			Steps: []string{
				bin + " list-project-languages --project-id <id>",
				bin + " list-translations --project-id <id> --lang-id <lang> --untranslated --use-cursor",
				bin + " bulk-update-translations --project-id <id> --updates @updates.json",
			},
		},
		{
			Name:        "Add a language and assign it",
			Description: "Add the language, then create a translation task for it.",
			Steps: []string{
				bin + " list-system-languages",
				bin + " add-project-languages --project-id <id> --iso fr",
				bin + " create-task --project-id <id> --title \"French launch\" --languages fr --users <user-id>",
			},
		},
		{
			Name:        "Onboard a translator",
			Description: "Invite a contributor with write access to one language.",
			Steps: []string{
				bin + " add-contributors --project-id <id> --email ana@example.com --languages fr:rw,en",
				bin + " list-contributors --project-id <id>",
			},
		},
		{
			Name: "Check an upload",
			Steps: []string{
				bin + " list-queued-processes --project-id <id>",
				bin + " get-queued-process --project-id <id> --process-id <process>",
			},
		},
	}
}

// Render converts the schema to one of Formats.
//
// Parameters:
//   - s: The CLI schema
//   - format: json, yaml, markdown or llm
//
// Returns:
//   - string: The rendered schema
//   - error: An unknown format or encoding failure
func Render(s *CLISchema, format string) (string, error) {
	switch format {
	case FormatJSON, "":
		return ToJSON(s, true)
	case FormatYAML:
		data, err := yaml.Marshal(s)
		if err != nil {
			return "", fmt.Errorf("failed to marshal schema: %w", err)
		}
		return string(data), nil
	case FormatMarkdown:
		return ToMarkdown(s), nil
	case FormatLLM:
		return ToLLMFormat(s), nil
	}
	return "", fmt.Errorf("unknown format %q: must be one of %s", format, strings.Join(Formats, ", "))
}

// ToJSON converts the schema to JSON.
//
// Parameters:
//   - schema: The CLI schema to convert
//   - indent: Whether to indent the output
//
// Returns:
//   - string: JSON representation
//   - error: Any encoding error
func ToJSON(schema *CLISchema, indent bool) (string, error) {
	var data []byte
	var err error

	if indent {
		data, err = json.MarshalIndent(schema, "", "  ")
	} else {
		data, err = json.Marshal(schema)
	}

	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}
	return string(data), nil
}

// byGroup returns the commands of each group in group order, followed by
// ungrouped commands under "".
func byGroup(s *CLISchema) ([]string, map[string][]CommandInfo) {
	grouped := map[string][]CommandInfo{}
	for _, c := range s.Commands {
		grouped[c.Group] = append(grouped[c.Group], c)
	}
	order := make([]string, 0, len(s.Groups)+1)
	for _, g := range s.Groups {
		order = append(order, g.ID)
	}
	var rest []string
	for id := range grouped {
		if id != "" && !contains(order, id) {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	order = append(order, rest...)
	return append(order, ""), grouped
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func groupTitle(s *CLISchema, id string) string {
	if id == "" {
		return "Other commands"
	}
	for _, g := range s.Groups {
		if g.ID == id {
			return fmt.Sprintf("%s: %s", id, g.Title)
		}
	}
	return id
}

func flagName(f FlagInfo, sep string) string {
	name := "--" + f.Name
	if f.Shorthand != "" {
		name = "-" + f.Shorthand + sep + name
	}
	return name
}

// ToMarkdown converts the schema to Markdown documentation.
//
// Parameters:
//   - schema: The CLI schema to convert
//
// Returns:
//   - string: Markdown documentation
func ToMarkdown(schema *CLISchema) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s CLI Reference\n\n", schema.Name)
	fmt.Fprintf(&sb, "**Version:** %s\n\n", schema.Version)
	fmt.Fprintf(&sb, "%s\n\n", schema.Description)

	if len(schema.GlobalFlags) > 0 {
		sb.WriteString("## Global Flags\n\n")
		sb.WriteString("| Flag | Type | Default | Description |\n")
		sb.WriteString("|------|------|---------|-------------|\n")
		for _, f := range schema.GlobalFlags {
			fmt.Fprintf(&sb, "| `%s` | %s | %s | %s |\n", flagName(f, ", "), f.Type, f.Default, f.Description)
		}
		sb.WriteString("\n")
	}

	order, grouped := byGroup(schema)
	for _, id := range order {
		cmds := grouped[id]
		if len(cmds) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "## %s\n\n", groupTitle(schema, id))
		for _, cmd := range cmds {
			writeCommandMarkdown(&sb, cmd, 3)
		}
	}

	sb.WriteString("## Common Workflows\n\n")
	for _, w := range schema.Workflows {
		fmt.Fprintf(&sb, "### %s\n\n", w.Name)
		if w.Description != "" {
			fmt.Fprintf(&sb, "%s\n\n", w.Description)
		}
		sb.WriteString("```bash\n")
		for _, step := range w.Steps {
			sb.WriteString(step + "\n")
		}
		sb.WriteString("```\n\n")
	}

	return sb.String()
}

// writeCommandMarkdown writes a command to markdown.
func writeCommandMarkdown(sb *strings.Builder, cmd CommandInfo, level int) {
	heading := strings.Repeat("#", level)
	fmt.Fprintf(sb, "%s `%s`\n\n", heading, cmd.Path)
	fmt.Fprintf(sb, "%s\n\n", cmd.Short)

	if cmd.Long != "" {
		fmt.Fprintf(sb, "%s\n\n", cmd.Long)
	}
	if cmd.Destructive {
		sb.WriteString("> Destructive: requires `--confirm`.\n\n")
	}

	fmt.Fprintf(sb, "**Usage:** `%s`\n\n", cmd.Usage)

	if len(cmd.Flags) > 0 {
		sb.WriteString("**Flags:**\n\n")
		sb.WriteString("| Flag | Type | Default | Description |\n")
		sb.WriteString("|------|------|---------|-------------|\n")
		for _, f := range cmd.Flags {
			fmt.Fprintf(sb, "| `%s` | %s | %s | %s |\n", flagName(f, ", "), f.Type, f.Default, strings.ReplaceAll(f.Description, "|", `\|`))
		}
		sb.WriteString("\n")
	}

	if len(cmd.Examples) > 0 {
		sb.WriteString("**Examples:**\n\n```bash\n")
		for _, ex := range cmd.Examples {
			sb.WriteString(ex + "\n")
		}
		sb.WriteString("```\n\n")
	}

	for _, sub := range cmd.Subcommands {
		writeCommandMarkdown(sb, sub, level+1)
	}
}

// ToLLMFormat converts the schema to a compact single-file reference.
//
// Parameters:
//   - schema: The CLI schema to convert
//
// Returns:
//   - string: LLM-oriented documentation
func ToLLMFormat(schema *CLISchema) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s - Complete CLI Reference for LLMs\n\n", schema.Name)
	sb.WriteString("## Prerequisites\n\n")
	sb.WriteString("1. Set `LOKALISE_API_KEY` in the environment, a `.env` file, or `~/.mcp/configs.json`.\n")
	fmt.Fprintf(&sb, "2. Run `%s config show` to check which source supplied each setting.\n\n", schema.Name)

	sb.WriteString("## Rules\n\n")
	sb.WriteString("- Every command prints Markdown on stdout and exits 1 on error.\n")
	sb.WriteString("- Keys and translations accept `--limit` up to 5000; other lists accept up to 500.\n")
	sb.WriteString("- Commands marked destructive refuse to run without `--confirm`.\n")
	sb.WriteString("- JSON flags accept inline JSON, `@file.json`, or `-` for stdin.\n\n")

	sb.WriteString("## Commands\n\n")
	order, grouped := byGroup(schema)
	for _, id := range order {
		for _, cmd := range grouped[id] {
			writeLLMCommand(&sb, cmd)
		}
	}
	return sb.String()
}

// writeLLMCommand writes a command in LLM-friendly format.
func writeLLMCommand(sb *strings.Builder, cmd CommandInfo) {
	fmt.Fprintf(sb, "### %s\n\n", cmd.Path)
	fmt.Fprintf(sb, "%s", cmd.Short)
	if cmd.Destructive {
		sb.WriteString(" (destructive)")
	}
	sb.WriteString("\n\n")

	if len(cmd.Flags) > 0 {
		sb.WriteString("Flags:\n")
		for _, f := range cmd.Flags {
			fmt.Fprintf(sb, "  %s (%s): %s\n", flagName(f, "/"), f.Type, f.Description)
		}
		sb.WriteString("\n")
	}

	if len(cmd.Examples) > 0 {
		sb.WriteString("Examples:\n")
		for _, ex := range cmd.Examples {
			fmt.Fprintf(sb, "  %s\n", ex)
		}
		sb.WriteString("\n")
	}

	for _, sub := range cmd.Subcommands {
		writeLLMCommand(sb, sub)
	}
}
