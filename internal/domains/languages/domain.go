// Package languages exposes system and project languages.
package languages

import (
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// Domain is the languages domain.
type Domain struct {
	ctl *Controller
}

// New creates the languages domain.
func New(deps domain.Deps) *Domain {
	return &Domain{ctl: NewController(deps)}
}

// Name returns the domain name.
func (d *Domain) Name() string { return "languages" }

// Description returns a one-line summary.
func (d *Domain) Description() string {
	return "Browse supported languages and manage the languages of a project"
}
