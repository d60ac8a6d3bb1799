// Package domains assembles every Lokalise domain and registers it with the
// CLI and the MCP server.
package domains

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/lokalise/lokalise-mcp/internal/domain"
	"github.com/lokalise/lokalise-mcp/internal/domains/comments"
	"github.com/lokalise/lokalise-mcp/internal/domains/contributors"
	"github.com/lokalise/lokalise-mcp/internal/domains/glossary"
	"github.com/lokalise/lokalise-mcp/internal/domains/keys"
	"github.com/lokalise/lokalise-mcp/internal/domains/languages"
	"github.com/lokalise/lokalise-mcp/internal/domains/projects"
	"github.com/lokalise/lokalise-mcp/internal/domains/queuedprocesses"
	"github.com/lokalise/lokalise-mcp/internal/domains/tasks"
	"github.com/lokalise/lokalise-mcp/internal/domains/teamusers"
	"github.com/lokalise/lokalise-mcp/internal/domains/translations"
	"github.com/lokalise/lokalise-mcp/internal/domains/usergroups"
	"github.com/lokalise/lokalise-mcp/internal/logging"
)

var log = logging.For("domains")

// Domain is one area of the Lokalise API exposed on every surface.
type Domain interface {
	Name() string
	Description() string
	Commands() []*cobra.Command
	RegisterTools(s *mcp.Server)
	RegisterResources(s *mcp.Server)
}

// All returns every domain, in help order.
func All(deps domain.Deps) []Domain {
	return []Domain{
		projects.New(deps),
		keys.New(deps),
		translations.New(deps),
		languages.New(deps),
		comments.New(deps),
		tasks.New(deps),
		glossary.New(deps),
		contributors.New(deps),
		usergroups.New(deps),
		teamusers.New(deps),
		queuedprocesses.New(deps),
	}
}

// RegisterCommands adds each domain's commands to root under a help group
// named after the domain.
func RegisterCommands(root *cobra.Command, ds []Domain) {
	for _, d := range ds {
		root.AddGroup(&cobra.Group{ID: d.Name(), Title: d.Description() + ":"})
		for _, cmd := range d.Commands() {
			cmd.GroupID = d.Name()
			root.AddCommand(cmd)
		}
	}
}

// RegisterServer adds every domain's tools and resources to s.
func RegisterServer(s *mcp.Server, ds []Domain) {
	for _, d := range ds {
		d.RegisterTools(s)
		d.RegisterResources(s)
		log.Debug("domain registered", "domain", d.Name())
	}
}
