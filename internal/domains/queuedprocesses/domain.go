// Package queuedprocesses reports on Lokalise background jobs such as file
// imports.
package queuedprocesses

import (
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// Domain is the queuedprocesses domain.
type Domain struct {
	ctl *Controller
}

// New creates the queuedprocesses domain.
func New(deps domain.Deps) *Domain {
	return &Domain{ctl: NewController(deps)}
}

// Name returns the domain name.
func (d *Domain) Name() string { return "queuedprocesses" }

// Description returns a one-line summary.
func (d *Domain) Description() string {
	return "Track asynchronous jobs such as file uploads"
}
