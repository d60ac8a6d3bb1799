// Package keys exposes Lokalise translation keys as MCP tools, resources
// and CLI commands.
package keys

import (
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// Domain is the keys domain.
type Domain struct {
	ctl *Controller
}

// New creates the keys domain.
func New(deps domain.Deps) *Domain {
	return &Domain{ctl: NewController(deps)}
}

// Name returns the domain name.
func (d *Domain) Name() string { return "keys" }

// Description returns a one-line summary.
func (d *Domain) Description() string {
	return "List, create, update and delete translation keys, one at a time or in bulk"
}
