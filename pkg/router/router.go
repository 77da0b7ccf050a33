// Package router is the navigation controller that consumes a route table.
// It translates URLs into route locations according to a history mode,
// resolves them against the table, and builds outward links by route name.
package router

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/JaimeStill/country-app/pkg/routes"
)

// Options configures a Router.
type Options struct {
	History HistoryMode
	Base    string
	Routes  *routes.Table
}

// Router resolves locations against an immutable route table.
// It holds no mutable state and is safe for concurrent use.
type Router struct {
	history HistoryMode
	base    string
	routes  *routes.Table
	links   map[string]string
}

// New creates a Router. History defaults to hash mode and Base to "/".
func New(opts Options) (*Router, error) {
	if opts.Routes == nil {
		return nil, errors.New("router: route table required")
	}

	if opts.History == "" {
		opts.History = HistoryHash
	}
	if err := opts.History.Validate(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	base, err := normalizeBase(opts.Base)
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := &Router{
		history: opts.History,
		base:    base,
		routes:  opts.Routes,
		links:   make(map[string]string),
	}

	for _, e := range opts.Routes.Entries() {
		if opts.Routes.HasParams(e.Name) {
			continue
		}
		href, err := r.Href(e.Name, nil)
		if err != nil {
			return nil, fmt.Errorf("router: link %s: %w", e.Name, err)
		}
		r.links[e.Name] = href
	}

	return r, nil
}

func normalizeBase(base string) (string, error) {
	if base == "" {
		return "/", nil
	}
	if !strings.HasPrefix(base, "/") {
		return "", fmt.Errorf("base %q must start with /", base)
	}
	if strings.ContainsAny(base, "?#") {
		return "", fmt.Errorf("base %q must not contain a query or fragment", base)
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base, nil
}

// Mode returns the router's history mode.
func (r *Router) Mode() HistoryMode {
	return r.history
}

// Base returns the normalized base path, always ending in "/".
func (r *Router) Base() string {
	return r.base
}

// Routes returns the route table.
func (r *Router) Routes() *routes.Table {
	return r.routes
}

// Location extracts the route location carried by u.
func (r *Router) Location(u *url.URL) string {
	switch r.history {
	case HistoryHash:
		return hashLocation(u.Fragment)
	case HistoryWeb:
		return r.stripBase(u.EscapedPath())
	default:
		if u.Path == "" {
			return "/"
		}
		return u.EscapedPath()
	}
}

func hashLocation(fragment string) string {
	if fragment == "" {
		return "/"
	}
	if !strings.HasPrefix(fragment, "/") {
		return "/" + fragment
	}
	return fragment
}

func (r *Router) stripBase(p string) string {
	trimmed := strings.TrimSuffix(r.base, "/")
	if trimmed != "" && (p == trimmed || strings.HasPrefix(p, r.base)) {
		p = strings.TrimPrefix(p, trimmed)
	}
	if p == "" {
		return "/"
	}
	return p
}

// Resolve resolves a raw location. The location may be a route path
// ("/CountryApp"), a bare fragment ("#/CountryApp"), or a URL carrying the
// location according to the history mode.
func (r *Router) Resolve(location string) (routes.Match, error) {
	return r.routes.Resolve(r.parse(location))
}

func (r *Router) parse(location string) string {
	switch r.history {
	case HistoryHash:
		if i := strings.Index(location, "#"); i >= 0 {
			return hashLocation(location[i+1:])
		}
		if u, err := url.Parse(location); err == nil && u.IsAbs() {
			return "/"
		}
		return location
	case HistoryWeb:
		u, err := url.Parse(location)
		if err != nil {
			return location
		}
		return r.stripBase(u.EscapedPath())
	default:
		return location
	}
}

// Href builds the outward link for the named route.
func (r *Router) Href(name string, params map[string]string) (string, error) {
	p, err := r.routes.Href(name, params)
	if err != nil {
		return "", err
	}

	switch r.history {
	case HistoryHash:
		return r.base + "#" + p, nil
	case HistoryWeb:
		return strings.TrimSuffix(r.base, "/") + p, nil
	default:
		return p, nil
	}
}

// Links returns the outward link of every named route without parameters.
func (r *Router) Links() map[string]string {
	out := make(map[string]string, len(r.links))
	for k, v := range r.links {
		out[k] = v
	}
	return out
}
