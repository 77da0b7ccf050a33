package routes

import "fmt"

// Option configures table construction.
type Option func(*options)

type options struct {
	views         ViewSource
	caseSensitive bool
}

// WithViews validates every view reference, and every layout's child slot,
// against views.
func WithViews(views ViewSource) Option {
	return func(o *options) {
		o.views = views
	}
}

// CaseSensitive makes static segments match only on exact case.
// Tables match case-insensitively by default.
func CaseSensitive() Option {
	return func(o *options) {
		o.caseSensitive = true
	}
}

type node struct {
	entry    Entry
	segments []segment
	parent   *node
	children []*node
}

// Table is an immutable, validated route table.
type Table struct {
	routes        []Route
	roots         []*node
	entries       []Entry
	byName        map[string]*node
	caseSensitive bool
}

// New builds a Table from defs. Defs are copied, so later changes by the
// caller do not reach the table. Every configuration problem is reported
// in a single *ConfigurationError.
func New(defs []Route, opts ...Option) (*Table, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	t := &Table{
		routes:        cloneRoutes(defs),
		byName:        make(map[string]*node),
		caseSensitive: o.caseSensitive,
	}

	c := &collector{}
	t.roots = t.compile(t.routes, nil, o.views, c)

	if err := c.err(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) compile(defs []Route, parent *node, views ViewSource, c *collector) []*node {
	nodes := make([]*node, 0, len(defs))

	for _, r := range defs {
		segs, err := parsePath(r.Path, parent == nil)
		if err != nil {
			c.add(r, err)
		}

		n := &node{
			segments: segs,
			parent:   parent,
			entry: Entry{
				Name:   r.Name,
				View:   r.View,
				Layout: r.Layout(),
			},
		}

		if parent == nil {
			n.entry.Path = joinPath("/", r.Path)
		} else {
			n.entry.Path = joinPath(parent.entry.Path, r.Path)
			n.entry.Parent = parent.entry.Name
			n.entry.Depth = parent.entry.Depth + 1
			n.entry.Index = r.Path == ""
		}

		switch _, dup := t.byName[r.Name]; {
		case r.Name == "":
			c.add(r, ErrMissingName)
		case dup:
			c.add(r, ErrDuplicateName)
		default:
			t.byName[r.Name] = n
		}

		if p := n.duplicateParam(); p != "" {
			c.add(r, fmt.Errorf("%w: %s", ErrDuplicateParam, p))
		}

		switch {
		case r.View == "":
			c.add(r, ErrUnresolvedView)
		case views == nil:
		case !views.HasView(r.View):
			c.add(r, fmt.Errorf("%w: %s", ErrUnresolvedView, r.View))
		case r.Layout() && !views.HasSlot(r.View):
			c.add(r, fmt.Errorf("%w: %s", ErrMissingSlot, r.View))
		}

		t.entries = append(t.entries, n.entry)
		n.children = t.compile(r.Children, n, views, c)
		nodes = append(nodes, n)
	}

	return nodes
}

func (n *node) duplicateParam() string {
	seen := make(map[string]bool)
	for a := n; a != nil; a = a.parent {
		for _, s := range a.segments {
			if !s.param {
				continue
			}
			if seen[s.value] {
				return s.value
			}
			seen[s.value] = true
		}
	}
	return ""
}

func (n *node) chain() []*node {
	var out []*node
	for a := n; a != nil; a = a.parent {
		out = append([]*node{a}, out...)
	}
	return out
}

// Routes returns a copy of the declared route sequence.
func (t *Table) Routes() []Route {
	return cloneRoutes(t.routes)
}

// Entries returns every route, depth first in declaration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of routes, nested ones included.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the entry registered under name.
func (t *Table) Lookup(name string) (Entry, bool) {
	n, ok := t.byName[name]
	if !ok {
		return Entry{}, false
	}
	return n.entry, true
}

// Walk calls fn for each entry, depth first in declaration order.
// Walking stops at the first error, which is returned.
func (t *Table) Walk(fn func(Entry) error) error {
	for _, e := range t.entries {
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}
