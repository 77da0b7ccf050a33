// Package routes declares navigation route tables: ordered, nested definitions
// that bind URL paths to named views. A Table is validated once when it is
// built and never changes afterwards, so a single instance can be shared by
// every reader without locking.
package routes

// Route defines a navigable location.
//
// Top-level paths are absolute ("/", "/CountryApp"). Child paths are relative
// to the parent and an empty child path marks the default view shown when the
// parent path matches with no further segments. A Route with Children is a
// layout: its View renders a slot that receives the matched child's view.
type Route struct {
	Path     string
	Name     string
	View     string
	Children []Route
}

// Layout reports whether the route hosts child routes.
func (r Route) Layout() bool {
	return len(r.Children) > 0
}

func (r Route) clone() Route {
	c := r
	c.Children = cloneRoutes(r.Children)
	return c
}

func cloneRoutes(defs []Route) []Route {
	if defs == nil {
		return nil
	}
	out := make([]Route, len(defs))
	for i, r := range defs {
		out[i] = r.clone()
	}
	return out
}

// Entry is the flattened, read-only view of a single route in a Table.
// Path is the effective path: the parent path joined with the route's own.
type Entry struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	View   string `json:"view"`
	Parent string `json:"parent,omitempty"`
	Depth  int    `json:"depth"`
	Layout bool   `json:"layout"`
	Index  bool   `json:"index"`
}

// ViewSource resolves view references at composition time.
// HasSlot reports whether the view renders a slot for child views.
type ViewSource interface {
	HasView(ref string) bool
	HasSlot(ref string) bool
}
