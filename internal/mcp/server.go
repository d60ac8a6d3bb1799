// Package mcp serves the Lokalise domains over the Model Context Protocol.
//
// One SDK server carries every tool and resource. It is run either over
// stdio for a single client, or behind the SDK's Streamable HTTP handler
// where each request may carry its own configuration.
package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lokalise/lokalise-mcp/internal/config"
	"github.com/lokalise/lokalise-mcp/internal/domains"
	"github.com/lokalise/lokalise-mcp/internal/logging"
)

// ServerName is the implementation name reported to clients.
const ServerName = "lokalise-mcp"

const instructions = `Tools and resources for the Lokalise translation management API.
Start with lokalise_list_projects to find a project ID. Keys and translations
accept up to 5000 items per page; other lists accept up to 500. Destructive
tools delete data permanently.`

var log = logging.For("mcp")

// Server wraps the SDK server with the configuration it reloads.
type Server struct {
	mcpServer *mcp.Server
	cfg       *config.Loader
	version   string
}

// NewServer creates a server with every domain registered.
//
// Parameters:
//   - cfg: The configuration loader; client init config is applied to it
//   - ds: The domains to expose
//   - version: The version string reported to clients
//
// Returns:
//   - *Server: A server ready to Run or ServeHTTP
func NewServer(cfg *config.Loader, ds []domains.Domain, version string) *Server {
	s := &Server{cfg: cfg, version: version}
	s.mcpServer = mcp.NewServer(
		&mcp.Implementation{
			Name:    ServerName,
			Title:   "Lokalise",
			Version: version,
		},
		&mcp.ServerOptions{
			Instructions:       instructions,
			InitializedHandler: s.onInitialized,
		},
	)
	domains.RegisterServer(s.mcpServer, ds)
	return s
}

// MCP returns the underlying SDK server.
func (s *Server) MCP() *mcp.Server {
	return s.mcpServer
}

// Run serves one client over stdin/stdout until ctx ends or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	log.Info("serving MCP over stdio", "version", s.version)
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// onInitialized applies the configuration a client sent in its initialize
// request and reloads when it changed anything.
func (s *Server) onInitialized(ctx context.Context, req *mcp.InitializedRequest) {
	if req == nil || req.Session == nil {
		return
	}
	params := req.Session.InitializeParams()
	if params != nil && params.ClientInfo != nil {
		log.Debug("client initialized", "client", params.ClientInfo.Name, "version", params.ClientInfo.Version)
	}
	payload := InitConfig(params)
	if payload == nil {
		return
	}
	if s.cfg.SetMCPInitConfig(payload) {
		log.Info("applying MCP client configuration", "keys", strings.Join(keysOf(payload), ","))
		s.cfg.Reload()
	}
}

// InitConfig extracts the configuration object from initialize params. It
// is read from _meta.config, falling back to capabilities.experimental.config.
func InitConfig(params *mcp.InitializeParams) map[string]any {
	if params == nil {
		return nil
	}
	if m, ok := params.Meta["config"].(map[string]any); ok {
		return m
	}
	if params.Capabilities != nil {
		if m, ok := params.Capabilities.Experimental["config"].(map[string]any); ok {
			return m
		}
	}
	return nil
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
