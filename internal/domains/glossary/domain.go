// Package glossary exposes a Lokalise project's glossary terms.
package glossary

import (
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// Domain is the glossary domain.
type Domain struct {
	ctl *Controller
}

// New creates the glossary domain.
func New(deps domain.Deps) *Domain {
	return &Domain{ctl: NewController(deps)}
}

// Name returns the domain name.
func (d *Domain) Name() string { return "glossary" }

// Description returns a one-line summary.
func (d *Domain) Description() string {
	return "Manage glossary terms and their approved translations"
}
