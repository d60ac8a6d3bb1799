package usergroups

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterTools adds the usergroups tools to s.
func (d *Domain) RegisterTools(s *mcp.Server) {
	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_list_usergroups",
		Title:       "List user groups",
		Description: "Lists a team's user groups with member and project counts.",
		ReadOnly:    true,
	}, d.ctl.List)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_get_usergroup",
		Title:       "Get user group",
		Description: "Shows a group's permissions, members, projects and languages.",
		ReadOnly:    true,
	}, d.ctl.Get)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_create_usergroup",
		Title:       "Create user group",
		Description: "Creates a team user group. Non-admin groups need contributable language IDs.",
	}, d.ctl.Create)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_update_usergroup",
		Title:       "Update user group",
		Description: "Replaces a group's name and permissions. Pass the full set: omitted flags are cleared.",
	}, d.ctl.Update)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_delete_usergroup",
		Title:       "Delete user group",
		Description: "Deletes a user group. Members lose the access it granted.",
		Destructive: true,
	}, d.ctl.Delete)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_add_members_to_group",
		Title:       "Add group members",
		Description: "Adds team users to a group.",
	}, d.ctl.AddMembers)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_remove_members_from_group",
		Title:       "Remove group members",
		Description: "Removes team users from a group.",
		Destructive: true,
	}, d.ctl.RemoveMembers)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_add_projects_to_group",
		Title:       "Add group projects",
		Description: "Grants a group access to projects.",
	}, d.ctl.AddProjects)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_remove_projects_from_group",
		Title:       "Remove group projects",
		Description: "Revokes a group's access to projects.",
		Destructive: true,
	}, d.ctl.RemoveProjects)
}
