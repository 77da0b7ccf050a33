package routes

import (
	"fmt"
	"net/url"
	"strings"
)

// Match is the result of resolving a location against a Table.
// Matched runs from the outermost layout down to the leaf route.
type Match struct {
	Path    string            `json:"path"`
	Matched []Entry           `json:"matched"`
	Params  map[string]string `json:"params,omitempty"`
}

// Route returns the innermost matched entry.
func (m Match) Route() Entry {
	if len(m.Matched) == 0 {
		return Entry{}
	}
	return m.Matched[len(m.Matched)-1]
}

// Name returns the name of the innermost matched route.
func (m Match) Name() string {
	return m.Route().Name
}

// Resolve finds the route chain for location. Query strings and fragments are
// ignored and a trailing slash is tolerated. The first route in declaration
// order that matches structurally wins. An exact match on a layout descends
// into its default child when one is declared.
func (t *Table) Resolve(location string) (Match, error) {
	segs := splitLocation(location)
	path := "/" + strings.Join(segs, "/")

	for _, root := range t.roots {
		params := make(map[string]string)
		if chain, ok := t.match(root, segs, params); ok {
			m := Match{
				Path:    path,
				Matched: make([]Entry, len(chain)),
			}
			for i, n := range chain {
				m.Matched[i] = n.entry
			}
			if len(params) > 0 {
				m.Params = params
			}
			return m, nil
		}
	}

	return Match{}, fmt.Errorf("%w: %s", ErrNoMatch, path)
}

func (t *Table) match(n *node, segs []string, params map[string]string) ([]*node, bool) {
	if len(segs) < len(n.segments) {
		return nil, false
	}

	var bound []string
	for i, s := range n.segments {
		if s.param {
			params[s.value] = segs[i]
			bound = append(bound, s.value)
			continue
		}
		if !t.segmentEqual(s.value, segs[i]) {
			unbind(params, bound)
			return nil, false
		}
	}

	rest := segs[len(n.segments):]
	for _, child := range n.children {
		if chain, ok := t.match(child, rest, params); ok {
			return append([]*node{n}, chain...), true
		}
	}

	if len(rest) == 0 {
		return []*node{n}, true
	}

	unbind(params, bound)
	return nil, false
}

func (t *Table) segmentEqual(declared, actual string) bool {
	if t.caseSensitive {
		return declared == actual
	}
	return strings.EqualFold(declared, actual)
}

func unbind(params map[string]string, names []string) {
	for _, name := range names {
		delete(params, name)
	}
}

// Href builds the effective path of the named route, filling parameter
// segments from params.
func (t *Table) Href(name string, params map[string]string) (string, error) {
	n, ok := t.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}

	var parts []string
	for _, a := range n.chain() {
		for _, s := range a.segments {
			if !s.param {
				parts = append(parts, s.value)
				continue
			}
			v := params[s.value]
			if v == "" {
				return "", fmt.Errorf("%w: %s requires %s", ErrMissingParam, name, s.value)
			}
			parts = append(parts, url.PathEscape(v))
		}
	}

	return "/" + strings.Join(parts, "/"), nil
}

// HasParams reports whether the named route's path contains parameters.
func (t *Table) HasParams(name string) bool {
	n, ok := t.byName[name]
	if !ok {
		return false
	}
	for _, a := range n.chain() {
		for _, s := range a.segments {
			if s.param {
				return true
			}
		}
	}
	return false
}
