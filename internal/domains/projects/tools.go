package projects

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterTools adds the projects tools to s.
func (d *Domain) RegisterTools(s *mcp.Server) {
	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_list_projects",
		Title:       "List projects",
		Description: "Lists the Lokalise projects the API token can access, with progress statistics. Use this first to find project IDs.",
		ReadOnly:    true,
	}, d.ctl.List)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_get_project",
		Title:       "Get project",
		Description: "Shows one project's details, per-language progress and settings.",
		ReadOnly:    true,
	}, d.ctl.Get)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_create_project",
		Title:       "Create project",
		Description: "Creates a new project with a base language and optional target languages.",
	}, d.ctl.Create)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_update_project",
		Title:       "Update project",
		Description: "Renames a project and updates its description.",
	}, d.ctl.Update)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_delete_project",
		Title:       "Delete project",
		Description: "Permanently deletes a project with all keys, translations and history. This cannot be undone.",
		Destructive: true,
	}, d.ctl.Delete)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_empty_project",
		Title:       "Empty project",
		Description: "Deletes every key and translation in a project while keeping the project, its languages and contributors.",
		Destructive: true,
	}, d.ctl.Empty)
}
