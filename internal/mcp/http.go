package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"
)

// Endpoint is the path of the Streamable HTTP endpoint.
const Endpoint = "/mcp"

// RequestIDHeader carries the request id echoed back to callers.
const RequestIDHeader = "X-Request-ID"

const shutdownTimeout = 5 * time.Second

type requestIDKey struct{}

// RequestID returns the id the HTTP middleware assigned to ctx's request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Handler returns the HTTP handler: the MCP endpoint, a health document at
// the root, CORS and request ids.
func (s *Server) Handler() http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)

	mux := http.NewServeMux()
	mux.Handle(Endpoint, s.withRequestConfig(streamable))
	mux.HandleFunc("GET /{$}", s.handleHealth)
	return withRequestID(withCORS(mux))
}

// withRequestConfig applies the Smithery "config" parameter and the other
// query parameters as configuration layers before the request is served.
func (s *Server) withRequestConfig(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		changed := s.cfg.SetSmitheryConfig(q.Get("config"))
		if s.cfg.SetHTTPQueryConfig(q) {
			changed = true
		}
		if changed {
			log.Info("applying request configuration", "request_id", RequestID(r.Context()))
			s.cfg.Reload()
		}
		next.ServeHTTP(w, r)
	})
}

type health struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Status    string `json:"status"`
	Transport string `json:"transport"`
	Endpoint  string `json:"endpoint"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(health{
		Name:      ServerName,
		Version:   s.version,
		Status:    "ok",
		Transport: "streamable-http",
		Endpoint:  Endpoint,
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Mcp-Session-Id, Mcp-Protocol-Version, Last-Event-ID, "+RequestIDHeader)
		h.Set("Access-Control-Expose-Headers", "Mcp-Session-Id, "+RequestIDHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		log.Debug("http request", "method", r.Method, "path", r.URL.Path, "request_id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// ServeHTTP listens on port and serves until ctx ends, then shuts down
// gracefully.
//
// Parameters:
//   - ctx: Context whose cancellation stops the server
//   - port: TCP port to listen on
//
// Returns:
//   - error: Any listen or shutdown error
func (s *Server) ServeHTTP(ctx context.Context, port int) error {
	ln, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(port)))
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves HTTP on ln until ctx ends.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("serving MCP over HTTP", "addr", ln.Addr().String(), "endpoint", Endpoint, "version", s.version)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
