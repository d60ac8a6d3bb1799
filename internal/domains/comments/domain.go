// Package comments exposes comments on Lokalise keys.
package comments

import (
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// Domain is the comments domain.
type Domain struct {
	ctl *Controller
}

// New creates the comments domain.
func New(deps domain.Deps) *Domain {
	return &Domain{ctl: NewController(deps)}
}

// Name returns the domain name.
func (d *Domain) Name() string { return "comments" }

// Description returns a one-line summary.
func (d *Domain) Description() string {
	return "Read, add and delete comments on keys"
}
