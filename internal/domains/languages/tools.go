package languages

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterTools adds the languages tools to s.
func (d *Domain) RegisterTools(s *mcp.Server) {
	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_list_system_languages",
		Title:       "List system languages",
		Description: "Lists every language Lokalise supports, with codes and plural forms. Use it to find the langIso for add_project_languages.",
		ReadOnly:    true,
	}, d.ctl.ListSystem)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_list_project_languages",
		Title:       "List project languages",
		Description: "Lists the languages of a project with their numeric IDs.",
		ReadOnly:    true,
	}, d.ctl.ListProject)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_add_project_languages",
		Title:       "Add project languages",
		Description: "Adds languages to a project, optionally with a custom code, name or plural forms.",
	}, d.ctl.Add)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_get_language",
		Title:       "Get language",
		Description: "Shows one project language.",
		ReadOnly:    true,
	}, d.ctl.Get)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_update_language",
		Title:       "Update language",
		Description: "Changes a project language's code, name or plural forms.",
	}, d.ctl.Update)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_remove_language",
		Title:       "Remove language",
		Description: "Removes a language from a project and permanently deletes all of its translations.",
		Destructive: true,
	}, d.ctl.Remove)
}
