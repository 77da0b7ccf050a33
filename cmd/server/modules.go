package main

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JaimeStill/country-app/internal/config"
	"github.com/JaimeStill/country-app/internal/lifecycle"
	"github.com/JaimeStill/country-app/web/app"
)

// Modules holds the handlers mounted on the root mux.
type Modules struct {
	App      *app.Handler
	Registry *prometheus.Registry
}

// NewModules builds every module from cfg.
func NewModules(cfg *config.Config, logger *slog.Logger) (*Modules, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	appHandler, err := app.NewHandler(cfg, logger, reg)
	if err != nil {
		return nil, err
	}

	return &Modules{
		App:      appHandler,
		Registry: reg,
	}, nil
}

// Mount registers each module on mux under its base path and returns mux.
func (m *Modules) Mount(mux *http.ServeMux) http.Handler {
	mux.Handle("GET /metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))

	base := m.App.Navigator().Base()
	mux.Handle(base, m.App.Router())
	return mux
}

func buildRouter(lc *lifecycle.Coordinator) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !lc.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return mux
}
