// Package teamusers manages the members of a Lokalise team.
package teamusers

import (
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// Domain is the teamusers domain.
type Domain struct {
	ctl *Controller
}

// New creates the teamusers domain.
func New(deps domain.Deps) *Domain {
	return &Domain{ctl: NewController(deps)}
}

// Name returns the domain name.
func (d *Domain) Name() string { return "teamusers" }

// Description returns a one-line summary.
func (d *Domain) Description() string {
	return "List team members and change or revoke their team role"
}
