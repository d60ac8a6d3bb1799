package contributors

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterTools adds the contributors tools to s.
func (d *Domain) RegisterTools(s *mcp.Server) {
	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_list_contributors",
		Title:       "List contributors",
		Description: "Lists a project's contributors with their role and language access.",
		ReadOnly:    true,
	}, d.ctl.List)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_get_contributor",
		Title:       "Get contributor",
		Description: "Shows one contributor's role, admin rights and languages.",
		ReadOnly:    true,
	}, d.ctl.Get)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_get_current_contributor",
		Title:       "Get current contributor",
		Description: "Shows the contributor record of the user that owns the API token.",
		ReadOnly:    true,
	}, d.ctl.Current)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_add_contributors",
		Title:       "Add contributors",
		Description: "Invites people to a project by email. Non-admins need at least one language.",
	}, d.ctl.Add)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_update_contributor",
		Title:       "Update contributor",
		Description: "Changes a contributor's admin or reviewer flag, admin rights or languages.",
	}, d.ctl.Update)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_remove_contributor",
		Title:       "Remove contributor",
		Description: "Removes a contributor from a project.",
		Destructive: true,
	}, d.ctl.Remove)
}
