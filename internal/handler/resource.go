package handler

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/yosida95/uritemplate/v3"

	"github.com/lokalise/lokalise-mcp/internal/apperr"
)

// MarkdownMIME is the MIME type of every resource body.
const MarkdownMIME = "text/markdown"

// Resource describes a URI-addressed Markdown view.
type Resource struct {
	// Name is the resource name, e.g. "lokalise-keys".
	Name string

	// Title is the human-readable title.
	Title string

	// Description is shown to clients listing resources.
	Description string

	// URITemplate is an RFC 6570 template. A trailing {?a,b} query
	// expression lists the accepted query parameters. A template without
	// variables is registered as a static resource.
	URITemplate string
}

// path returns the template without its query expression.
func (r Resource) path() string {
	if i := strings.Index(r.URITemplate, "{?"); i >= 0 {
		return r.URITemplate[:i]
	}
	return r.URITemplate
}

// Params holds the values extracted from a resource URI.
type Params struct {
	URI   string
	Vars  map[string]string
	Query url.Values
}

// Var returns a path variable.
func (p Params) Var(name string) string {
	return p.Vars[name]
}

// String returns a query parameter, empty if absent.
func (p Params) String(name string) string {
	return p.Query.Get(name)
}

// Strings returns a comma-separated or repeated query parameter.
func (p Params) Strings(name string) []string {
	var out []string
	for _, v := range p.Query[name] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Int returns an integer query parameter, 0 if absent.
func (p Params) Int(name string) (int, error) {
	v := p.Query.Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperr.Validation("query parameter %s must be an integer, got %q", name, v)
	}
	return n, nil
}

// Bool returns a boolean query parameter, nil if absent.
func (p Params) Bool(name string) (*bool, error) {
	v := p.Query.Get(name)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, apperr.Validation("query parameter %s must be true or false, got %q", name, v)
	}
	return &b, nil
}

// OptionalInt returns an integer query parameter, nil if absent.
func (p Params) OptionalInt(name string) (*int, error) {
	if _, ok := p.Query[name]; !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(p.Query.Get(name))
	if err != nil {
		return nil, apperr.Validation("query parameter %s must be an integer, got %q", name, p.Query.Get(name))
	}
	return &n, nil
}

// Paging returns the limit and page query parameters, nil when absent.
func (p Params) Paging() (limit, page *int, err error) {
	if limit, err = p.OptionalInt("limit"); err != nil {
		return nil, nil, err
	}
	if page, err = p.OptionalInt("page"); err != nil {
		return nil, nil, err
	}
	return limit, page, nil
}

// ID parses a numeric path variable.
func (p Params) ID(name string) (int64, error) {
	v := p.Var(name)
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return 0, apperr.New(apperr.KindInvalidID, "%s %q is not a valid numeric ID", name, v)
	}
	return n, nil
}

// ResourceFunc produces the Markdown body of one resource read.
type ResourceFunc func(ctx context.Context, p Params) (string, error)

// AddResource registers fn for r. Controller errors are rendered into the
// resource body rather than failing the read, matching tool behaviour.
//
// Parameters:
//   - s: The MCP server
//   - r: Resource metadata
//   - fn: The controller call
func AddResource(s *mcp.Server, r Resource, fn ResourceFunc) {
	base := r.path()
	if !strings.Contains(r.URITemplate, "{") {
		s.AddResource(&mcp.Resource{
			Name:        r.Name,
			Title:       r.Title,
			Description: r.Description,
			MIMEType:    MarkdownMIME,
			URI:         r.URITemplate,
		}, readHandler(r.Name, nil, fn))
		return
	}

	var tmpl *uritemplate.Template
	if strings.Contains(base, "{") {
		tmpl = uritemplate.MustNew(base)
	}
	s.AddResourceTemplate(&mcp.ResourceTemplate{
		Name:        r.Name,
		Title:       r.Title,
		Description: r.Description,
		MIMEType:    MarkdownMIME,
		URITemplate: r.URITemplate,
	}, readHandler(r.Name, tmpl, fn))
}

func readHandler(name string, tmpl *uritemplate.Template, fn ResourceFunc) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := req.Params.URI
		p, ok := ParseURI(tmpl, uri)
		if !ok {
			return nil, mcp.ResourceNotFoundError(uri)
		}

		log.Debug("resource read", "resource", name, "uri", uri)
		md, err := fn(ctx, p)
		if err != nil {
			log.Debug("resource failed", "resource", name, "kind", apperr.KindOf(err), "err", err)
			md = apperr.Markdown(err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      uri,
				MIMEType: MarkdownMIME,
				Text:     md,
			}},
		}, nil
	}
}

// ParseURI matches uri against tmpl (which must not contain a query
// expression) and splits off the query string. A nil tmpl matches any URI
// and yields no variables.
func ParseURI(tmpl *uritemplate.Template, uri string) (Params, bool) {
	path, rawQuery, _ := strings.Cut(uri, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}

	p := Params{URI: uri, Vars: map[string]string{}, Query: query}
	if tmpl == nil {
		return p, true
	}

	values := tmpl.Match(path)
	if values == nil {
		return Params{}, false
	}
	for _, name := range tmpl.Varnames() {
		v := values.Get(name).String()
		if unescaped, err := url.PathUnescape(v); err == nil {
			v = unescaped
		}
		if v == "" {
			return Params{}, false
		}
		p.Vars[name] = v
	}
	return p, true
}
