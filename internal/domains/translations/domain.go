// Package translations exposes Lokalise translations as MCP tools,
// resources and CLI commands, including the paced bulk updater.
package translations

import (
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// Domain is the translations domain.
type Domain struct {
	ctl *Controller
}

// New creates the translations domain.
func New(deps domain.Deps) *Domain {
	return &Domain{ctl: NewController(deps)}
}

// Name returns the domain name.
func (d *Domain) Name() string { return "translations" }

// Description returns a one-line summary.
func (d *Domain) Description() string {
	return "List, inspect and update translations, one at a time or in paced batches"
}
