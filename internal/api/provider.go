package api

import (
	"sync"

	"github.com/lokalise/lokalise-mcp/internal/config"
	"github.com/lokalise/lokalise-mcp/internal/logging"
)

// ClientSource hands out the client for the current configuration.
// Services depend on it rather than on a fixed *Client.
type ClientSource interface {
	Get() (*Client, error)
}

// Provider lazily builds and caches the Client from the merged
// configuration. It registers itself with the loader so every Reload drops
// the cached client, and a changed API key or hostname takes effect on the
// next call.
type Provider struct {
	mu     sync.Mutex
	cfg    *config.Loader
	opts   []Option
	client *Client
}

// NewProvider creates a Provider bound to cfg.
//
// Parameters:
//   - cfg: The configuration loader supplying the API key and hostname
//   - opts: Options applied to every client the provider builds
//
// Returns:
//   - *Provider: A provider with no cached client
func NewProvider(cfg *config.Loader, opts ...Option) *Provider {
	p := &Provider{cfg: cfg, opts: opts}
	cfg.OnReload(p.Reset)
	return p
}

// Get returns the cached client, building it on first use.
//
// Returns:
//   - *Client: The shared client
//   - error: A classified auth error if no API key is configured
func (p *Provider) Get() (*Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}

	p.cfg.Load()
	key, err := p.cfg.APIKey()
	if err != nil {
		return nil, err
	}
	host := p.cfg.APIHostname()

	p.client = NewClient(key, host, p.opts...)
	log.Debug("api client created", "host", host, "api_key", logging.MaskSecret(key))
	return p.client, nil
}

// Reset drops the cached client.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		log.Debug("api client reset")
	}
	p.client = nil
}
