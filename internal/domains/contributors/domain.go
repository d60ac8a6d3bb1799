// Package contributors manages the people who work on a project.
package contributors

import (
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// Domain is the contributors domain.
type Domain struct {
	ctl *Controller
}

// New creates the contributors domain.
func New(deps domain.Deps) *Domain {
	return &Domain{ctl: NewController(deps)}
}

// Name returns the domain name.
func (d *Domain) Name() string { return "contributors" }

// Description returns a one-line summary.
func (d *Domain) Description() string {
	return "Invite project contributors and manage their language access and rights"
}
