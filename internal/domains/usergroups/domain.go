// Package usergroups manages a team's user groups, their members and their
// projects.
package usergroups

import (
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// Domain is the usergroups domain.
type Domain struct {
	ctl *Controller
}

// New creates the usergroups domain.
func New(deps domain.Deps) *Domain {
	return &Domain{ctl: NewController(deps)}
}

// Name returns the domain name.
func (d *Domain) Name() string { return "usergroups" }

// Description returns a one-line summary.
func (d *Domain) Description() string {
	return "Manage team user groups with shared permissions, members and projects"
}
