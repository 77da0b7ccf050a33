package app

import (
	"html/template"
	"net/http"
	"time"

	"github.com/JaimeStill/country-app/pkg/handlers"
	"github.com/JaimeStill/country-app/pkg/router"
	"github.com/JaimeStill/country-app/pkg/routes"
	"github.com/JaimeStill/country-app/pkg/web"
)

// RouteInfo describes a table entry together with its outward link.
type RouteInfo struct {
	routes.Entry
	Href string `json:"href,omitempty"`
}

// ResolveResponse is the body of a successful resolve request.
type ResolveResponse struct {
	Location string       `json:"location"`
	Route    string       `json:"route"`
	Match    routes.Match `json:"match"`
}

// Router returns the HTTP handler for the application. Every route lives
// under the router's base path. In hash mode the server only serves the
// shell at the base path; in web mode every path under it renders a page.
func (h *Handler) Router() http.Handler {
	base := h.router.Base()

	r := web.NewRouter()
	r.HandleFunc("GET "+base+"api/routes", h.listRoutes)
	r.HandleFunc("GET "+base+"api/resolve", h.resolve)
	r.HandleFunc("GET "+base+"view", h.view)
	r.HandleFunc("GET "+base+"ws", h.navigate)
	r.Handle("GET "+base+"static/", web.StaticServer(staticFS, "static", base+"static/"))

	if h.router.Mode() == router.HistoryWeb {
		r.HandleFunc("GET "+base+"{path...}", h.page)
	} else {
		r.HandleFunc("GET "+base+"{$}", h.page)
	}

	r.SetFallback(h.notFound)

	return r
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	location := h.router.Location(r.URL)

	status := http.StatusOK
	content, m, err := h.compose(location, transportPage)
	if err != nil {
		status = MapHTTPStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("compose page", "location", location, "error", err)
			http.Error(w, http.StatusText(status), status)
			return
		}
	}

	h.renderShell(w, status, location, m, content)
}

// notFound answers requests no pattern claims with the shell and an empty
// outlet.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderShell(w, http.StatusNotFound, r.URL.Path, routes.Match{}, "")
}

func (h *Handler) renderShell(w http.ResponseWriter, status int, location string, m routes.Match, content template.HTML) {
	title := "Country App"
	if name := m.Name(); name != "" {
		title += " | " + name
	}

	data := web.PageData{
		Title:    title,
		History:  string(h.router.Mode()),
		Location: location,
		Route:    m.Name(),
		Links:    h.router.Links(),
		Content:  content,
	}

	if err := h.layouts.Render(w, status, shellLayout, data); err != nil {
		h.logger.Error("render page", "location", location, "error", err)
	}
}

func (h *Handler) view(w http.ResponseWriter, r *http.Request) {
	location := locationParam(r)

	content, _, err := h.compose(location, transportView)
	if err != nil {
		status := MapHTTPStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("compose view", "location", location, "error", err)
		}
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(content))
}

func (h *Handler) listRoutes(w http.ResponseWriter, r *http.Request) {
	entries := h.router.Routes().Entries()
	links := h.router.Links()

	out := make([]RouteInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, RouteInfo{Entry: e, Href: links[e.Name]})
	}

	handlers.RespondJSON(w, http.StatusOK, out)
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	location := locationParam(r)

	m, err := h.router.Resolve(location)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ResolveResponse{
		Location: location,
		Route:    m.Name(),
		Match:    m,
	})
}

// compose resolves location and renders its view chain. The returned match
// is empty when resolution fails.
func (h *Handler) compose(location, transport string) (content template.HTML, m routes.Match, err error) {
	defer func(start time.Time) {
		h.metrics.observe(transport, m, err, start)
	}(time.Now())

	m, err = h.router.Resolve(location)
	if err != nil {
		return "", routes.Match{}, err
	}

	content, err = h.views.Compose(m, h.viewData(m))
	if err != nil {
		return "", m, err
	}
	return content, m, nil
}

func (h *Handler) viewData(m routes.Match) web.ViewData {
	return web.ViewData{
		Route:  m.Name(),
		Path:   m.Path,
		Params: m.Params,
		Links:  h.router.Links(),
		Data:   countries,
	}
}

func locationParam(r *http.Request) string {
	if v := r.URL.Query().Get("location"); v != "" {
		return v
	}
	return "/"
}
