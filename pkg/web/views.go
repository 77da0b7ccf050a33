package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SlotElement is the element a layout view places where its matched child
// view is rendered.
const SlotElement = "router-view"

// ViewDef names a renderable view and the template file that implements it.
type ViewDef struct {
	Name     string
	Template string
}

// ViewData is passed to every view template during composition.
type ViewData struct {
	Route  string
	Path   string
	Params map[string]string
	Links  map[string]string
	Data   any
}

type view struct {
	tmpl *template.Template
	slot bool
}

// ViewSet holds parsed views keyed by name. It satisfies routes.ViewSource.
type ViewSet struct {
	views map[string]*view
}

// NewViewSet parses each view in defs from dir within fsys and records
// whether its markup declares a slot.
func NewViewSet(fsys fs.FS, dir string, defs []ViewDef) (*ViewSet, error) {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return nil, err
	}

	vs := &ViewSet{views: make(map[string]*view, len(defs))}
	for _, d := range defs {
		if _, ok := vs.views[d.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateView, d.Name)
		}

		src, err := fs.ReadFile(sub, d.Template)
		if err != nil {
			return nil, fmt.Errorf("read view %s: %w", d.Name, err)
		}

		t, err := template.New(d.Name).Parse(string(src))
		if err != nil {
			return nil, fmt.Errorf("parse view %s: %w", d.Name, err)
		}

		slots, err := countSlots(src)
		if err != nil {
			return nil, fmt.Errorf("scan view %s: %w", d.Name, err)
		}
		if slots > 1 {
			return nil, fmt.Errorf("%w: %s", ErrMultipleSlots, d.Name)
		}

		vs.views[d.Name] = &view{tmpl: t, slot: slots == 1}
	}

	return vs, nil
}

// HasView reports whether ref names a parsed view.
func (vs *ViewSet) HasView(ref string) bool {
	_, ok := vs.views[ref]
	return ok
}

// HasSlot reports whether the view named ref declares a slot.
func (vs *ViewSet) HasSlot(ref string) bool {
	v, ok := vs.views[ref]
	return ok && v.slot
}

// Names returns the sorted view names.
func (vs *ViewSet) Names() []string {
	names := make([]string, 0, len(vs.views))
	for name := range vs.views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render executes a single view without composing it.
func (vs *ViewSet) Render(w io.Writer, ref string, data ViewData) error {
	v, ok := vs.views[ref]
	if !ok {
		return fmt.Errorf("%w: %s", ErrViewNotFound, ref)
	}
	return v.tmpl.Execute(w, data)
}

func countSlots(src []byte) (int, error) {
	nodes, err := parseFragment(src)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range nodes {
		visit(n, func(n *html.Node) bool {
			if isSlot(n) {
				count++
			}
			return true
		})
	}
	return count, nil
}

func parseFragment(src []byte) ([]*html.Node, error) {
	return html.ParseFragment(bytes.NewReader(src), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
}

func isSlot(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == SlotElement
}

// visit walks n depth first until fn returns false.
func visit(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !visit(c, fn) {
			return false
		}
	}
	return true
}
