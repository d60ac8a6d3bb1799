// Package projects exposes Lokalise projects as MCP tools, resources and
// CLI commands.
package projects

import (
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// Domain is the projects domain.
type Domain struct {
	ctl *Controller
}

// New creates the projects domain.
func New(deps domain.Deps) *Domain {
	return &Domain{ctl: NewController(deps)}
}

// Name returns the domain name.
func (d *Domain) Name() string { return "projects" }

// Description returns a one-line summary.
func (d *Domain) Description() string {
	return "Create, inspect, update, empty and delete Lokalise projects"
}
