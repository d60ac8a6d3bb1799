package translations

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterTools adds the translations tools to s.
func (d *Domain) RegisterTools(s *mcp.Server) {
	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_list_translations",
		Title:       "List translations",
		Description: "Lists translations in a project with cursor or page pagination (up to 5000 per page). Filter by language ID, review state, verification, emptiness, QA issues or active task.",
		ReadOnly:    true,
	}, d.ctl.List)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_get_translation",
		Title:       "Get translation",
		Description: "Shows one translation with its review state, statuses and full text.",
		ReadOnly:    true,
	}, d.ctl.Get)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_update_translation",
		Title:       "Update translation",
		Description: "Changes one translation's text, review flag, unverified flag or custom statuses. Only the given fields change.",
	}, d.ctl.Update)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_bulk_update_translations",
		Title:       "Bulk update translations",
		Description: "Updates up to 100 translations one after another with a short pause between requests. Each failed update is retried up to 3 times; the result lists the outcome of every item.",
	}, d.ctl.BulkUpdate)
}
