// Package app is the country application: its route table, embedded views,
// and the HTTP surface that serves them.
package app

import (
	"embed"
	"fmt"
	"log/slog"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/JaimeStill/country-app/internal/config"
	"github.com/JaimeStill/country-app/pkg/router"
	"github.com/JaimeStill/country-app/pkg/routes"
	"github.com/JaimeStill/country-app/pkg/web"
)

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

//go:embed static/*
var staticFS embed.FS

const shellLayout = "app.html"

var views = []web.ViewDef{
	{Name: "HomeView", Template: "home.html"},
	{Name: "CountryLayout", Template: "country-layout.html"},
	{Name: "PanelCountries", Template: "panel-countries.html"},
	{Name: "FirstView", Template: "first-view.html"},
	{Name: "SecondView", Template: "second-view.html"},
}

// Handler serves the application.
type Handler struct {
	views    *web.ViewSet
	layouts  *web.LayoutSet
	router   *router.Router
	logger   *slog.Logger
	socket   config.SocketConfig
	upgrader websocket.Upgrader
	metrics  *metrics
}

// NewViews parses the embedded views.
func NewViews() (*web.ViewSet, error) {
	return web.NewViewSet(viewFS, "server/views", views)
}

// NewHandler builds views, the route table, and the router, in that order.
// Any configuration error stops construction. Navigation metrics are
// registered with reg when it is non-nil.
func NewHandler(cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*Handler, error) {
	vs, err := NewViews()
	if err != nil {
		return nil, fmt.Errorf("views: %w", err)
	}

	var opts []routes.Option
	if cfg.Router.MatchCase() {
		opts = append(opts, routes.CaseSensitive())
	}

	table, err := BuildRouteTable(vs, opts...)
	if err != nil {
		return nil, err
	}

	rt, err := router.New(router.Options{
		History: cfg.Router.History,
		Base:    cfg.Router.Base,
		Routes:  table,
	})
	if err != nil {
		return nil, err
	}

	layouts, err := web.NewLayoutSet(layoutFS, "server/layouts/*.html", rt.Base())
	if err != nil {
		return nil, err
	}

	logger.Info(
		"route table ready",
		"routes", table.Len(),
		"views", vs.Names(),
		"history", rt.Mode(),
		"base", rt.Base(),
	)

	return &Handler{
		views:   vs,
		layouts: layouts,
		router:  rt,
		logger:  logger,
		socket:  cfg.Socket,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		metrics: newMetrics(reg),
	}, nil
}

// Navigator returns the router the handler resolves against.
func (h *Handler) Navigator() *router.Router {
	return h.router
}
