package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tagline is the product tagline.
const tagline = "Lokalise translation management for AI assistants and the terminal"

// PrintBanner prints the server startup banner to stderr.
//
// Parameters:
//   - version: The build version
//   - transport: The active transport ("stdio" or "http")
//   - address: The HTTP listen address, empty for stdio
func PrintBanner(version, transport, address string) {
	title := render(TitleStyle, "Lokalise MCP")
	info := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(2)

	lines := []string{
		title + " " + render(DimStyle, "v"+version),
		render(info, "Transport: "+transport),
	}
	if address != "" {
		lines = append(lines, render(info, "Endpoint:  http://"+address+"/mcp"))
	}
	infoLine(strings.Join(lines, "\n"))
}

// GetHelpText returns the long description shown by `lokalise-mcp --help`.
func GetHelpText() string {
	heading := func(s string) string { return render(TitleStyle, s) }
	cmd := func(s string) string { return render(TitleStyle, s) }

	return fmt.Sprintf(`%s

%s
  %s                       Start the MCP server (stdio unless TRANSPORT_MODE=http)
  %s  Serve MCP over Streamable HTTP

%s
  %s         List projects
  %s List keys in a project
  %s   Apply many translation edits with retries

%s
  %s         Show the merged configuration and where each value came from
  %s              Machine-readable description of every command

%s  https://docs.lokalise.com/en/articles/1400462-api-tokens`,
		render(DimStyle, tagline),
		heading("Server:"),
		cmd("lokalise-mcp"),
		cmd("lokalise-mcp serve --transport http"),
		heading("Examples:"),
		cmd("lokalise-mcp list-projects"),
		cmd("lokalise-mcp list-keys --project-id <id>"),
		cmd("lokalise-mcp bulk-update-translations"),
		heading("Tooling:"),
		cmd("lokalise-mcp config show"),
		cmd("lokalise-mcp schema"),
		heading("API tokens:"),
	)
}
