// Package domain holds what every Lokalise domain package shares: its
// dependencies, argument validation helpers and pagination conversion.
package domain

import (
	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/config"
	"github.com/lokalise/lokalise-mcp/internal/markdown"
)

// Deps are the process-scoped objects a domain needs.
type Deps struct {
	// Clients supplies the Lokalise client for the current configuration.
	Clients api.ClientSource

	// Config is the merged configuration.
	Config *config.Loader
}

// Hostname returns the Lokalise web hostname used for links, e.g.
// "lokalise.com".
func (d Deps) Hostname() string {
	if d.Config == nil {
		return "lokalise.com"
	}
	return d.Config.LokaliseHostname()
}

// PageOf converts the client's pagination into the Markdown footer input.
func PageOf(p api.Pagination, shown int) markdown.Page {
	return markdown.Page{
		Shown:      shown,
		TotalCount: p.TotalCount,
		Page:       p.Page,
		PageCount:  p.PageCount,
		NextCursor: p.NextCursor,
	}
}
