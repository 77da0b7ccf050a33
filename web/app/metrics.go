package app

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/JaimeStill/country-app/pkg/routes"
)

const (
	transportPage   = "page"
	transportView   = "view"
	transportSocket = "socket"
)

type metrics struct {
	navigations *prometheus.CounterVec
	compose     *prometheus.HistogramVec
	sessions    prometheus.Gauge
}

// newMetrics registers the navigation collectors with reg. A nil reg
// creates unregistered collectors.
func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		navigations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "country_app",
			Subsystem: "navigation",
			Name:      "requests_total",
			Help:      "Navigations resolved against the route table",
		}, []string{"route", "transport", "outcome"}),

		compose: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "country_app",
			Subsystem: "navigation",
			Name:      "compose_duration_seconds",
			Help:      "Time spent resolving and composing a location",
			Buckets:   prometheus.DefBuckets,
		}, []string{"transport"}),

		sessions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "country_app",
			Subsystem: "navigation",
			Name:      "socket_sessions",
			Help:      "Open websocket navigation sessions",
		}),
	}
}

func (m *metrics) observe(transport string, match routes.Match, err error, start time.Time) {
	route := match.Name()
	if route == "" {
		route = "none"
	}

	outcome := "ok"
	switch {
	case errors.Is(err, routes.ErrNoMatch):
		outcome = "not_found"
	case err != nil:
		outcome = "error"
	}

	m.navigations.WithLabelValues(route, transport, outcome).Inc()
	m.compose.WithLabelValues(transport).Observe(time.Since(start).Seconds())
}
