package web

import (
	"bytes"
	"fmt"
	"html/template"

	"golang.org/x/net/html"

	"github.com/JaimeStill/country-app/pkg/routes"
)

// Compose renders the matched chain from the leaf outwards. Each layout's
// slot is replaced by the markup of the view beneath it; a layout matched
// without a child renders an empty slot.
func (vs *ViewSet) Compose(m routes.Match, data ViewData) (template.HTML, error) {
	if len(m.Matched) == 0 {
		return "", ErrEmptyMatch
	}

	var child []*html.Node
	for i := len(m.Matched) - 1; i >= 0; i-- {
		e := m.Matched[i]

		nodes, err := vs.renderNodes(e.View, data)
		if err != nil {
			return "", fmt.Errorf("render %s: %w", e.Name, err)
		}

		var filled bool
		nodes, filled = fillSlot(nodes, child)
		if child != nil && !filled {
			return "", fmt.Errorf("%w: %s", ErrMissingSlot, e.View)
		}
		child = nodes
	}

	var buf bytes.Buffer
	for _, n := range child {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("render HTML: %w", err)
		}
	}
	return template.HTML(buf.String()), nil
}

func (vs *ViewSet) renderNodes(ref string, data ViewData) ([]*html.Node, error) {
	var buf bytes.Buffer
	if err := vs.Render(&buf, ref, data); err != nil {
		return nil, err
	}
	return parseFragment(buf.Bytes())
}

// fillSlot replaces the first slot element among nodes with content.
// It reports whether a slot was found.
func fillSlot(nodes, content []*html.Node) ([]*html.Node, bool) {
	for i, n := range nodes {
		if isSlot(n) {
			out := make([]*html.Node, 0, len(nodes)-1+len(content))
			out = append(out, nodes[:i]...)
			out = append(out, content...)
			return append(out, nodes[i+1:]...), true
		}

		var slot *html.Node
		visit(n, func(c *html.Node) bool {
			if isSlot(c) {
				slot = c
				return false
			}
			return true
		})
		if slot == nil {
			continue
		}

		parent := slot.Parent
		for _, c := range content {
			parent.InsertBefore(c, slot)
		}
		parent.RemoveChild(slot)
		return nodes, true
	}
	return nodes, false
}
