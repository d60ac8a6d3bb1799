package teamusers

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterTools adds the teamusers tools to s.
func (d *Domain) RegisterTools(s *mcp.Server) {
	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_list_team_users",
		Title:       "List team users",
		Description: "Lists the users of a team with their roles.",
		ReadOnly:    true,
	}, d.ctl.List)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_get_team_user",
		Title:       "Get team user",
		Description: "Shows one team user.",
		ReadOnly:    true,
	}, d.ctl.Get)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_update_team_user",
		Title:       "Update team user",
		Description: "Changes a team user's role to owner, admin, member or biller.",
	}, d.ctl.Update)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_delete_team_user",
		Title:       "Delete team user",
		Description: "Removes a user from the team and all of its projects.",
		Destructive: true,
	}, d.ctl.Delete)
}
