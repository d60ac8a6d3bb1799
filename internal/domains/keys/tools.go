package keys

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterTools adds the keys tools to s.
func (d *Domain) RegisterTools(s *mcp.Server) {
	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_list_keys",
		Title:       "List keys",
		Description: "Lists translation keys in a project. Supports page or cursor pagination (up to 5000 per page), filters by name, tag, platform and filename, and can include translations.",
		ReadOnly:    true,
	}, d.ctl.List)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_get_key",
		Title:       "Get key",
		Description: "Shows one key with all of its translations, platforms, tags and settings.",
		ReadOnly:    true,
	}, d.ctl.Get)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_create_keys",
		Title:       "Create keys",
		Description: "Creates up to 1000 keys in one request, optionally with initial translations. Each key needs a name and at least one platform.",
	}, d.ctl.Create)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_update_key",
		Title:       "Update key",
		Description: "Changes one key's name, description, platforms, tags or flags. Only the fields given in data change.",
	}, d.ctl.Update)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_bulk_update_keys",
		Title:       "Bulk update keys",
		Description: "Updates up to 1000 keys in one request. Each entry names a keyId and the fields to change.",
	}, d.ctl.BulkUpdate)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_delete_key",
		Title:       "Delete key",
		Description: "Permanently deletes one key and its translations.",
		Destructive: true,
	}, d.ctl.Delete)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_bulk_delete_keys",
		Title:       "Bulk delete keys",
		Description: "Permanently deletes up to 1000 keys and their translations in one request.",
		Destructive: true,
	}, d.ctl.BulkDelete)
}
