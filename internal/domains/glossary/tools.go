package glossary

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/handler"
)

// RegisterTools adds the glossary tools to s.
func (d *Domain) RegisterTools(s *mcp.Server) {
	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_list_glossary_terms",
		Title:       "List glossary terms",
		Description: "Lists a project's glossary terms with cursor pagination. Pass the returned cursor to get the next page.",
		ReadOnly:    true,
	}, d.ctl.List)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_get_glossary_term",
		Title:       "Get glossary term",
		Description: "Shows one glossary term with its approved translations.",
		ReadOnly:    true,
	}, d.ctl.Get)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_create_glossary_terms",
		Title:       "Create glossary terms",
		Description: "Adds terms to the project glossary, with optional flags and translations.",
	}, d.ctl.Create)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_update_glossary_terms",
		Title:       "Update glossary terms",
		Description: "Updates existing glossary terms by ID. Only the given fields change.",
	}, d.ctl.Update)

	handler.AddTool(s, handler.Tool{
		Name:        "lokalise_delete_glossary_terms",
		Title:       "Delete glossary terms",
		Description: "Permanently deletes glossary terms by ID.",
		Destructive: true,
	}, d.ctl.Delete)
}
