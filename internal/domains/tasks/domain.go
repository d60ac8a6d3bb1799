// Package tasks exposes Lokalise project tasks.
package tasks

import (
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// Domain is the tasks domain.
type Domain struct {
	ctl *Controller
}

// New creates the tasks domain.
func New(deps domain.Deps) *Domain {
	return &Domain{ctl: NewController(deps)}
}

// Name returns the domain name.
func (d *Domain) Name() string { return "tasks" }

// Description returns a one-line summary.
func (d *Domain) Description() string {
	return "Plan translation and review work as project tasks"
}
