package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ActiveConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ws_active_connections",
		Help: "Active websocket viewer sessions",
	})
	RegistrationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "registrations_total",
		Help: "Successful user registrations",
	})
	BroadcastsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "broadcasts_total",
		Help: "Events broadcast to the live_users group",
	})
)

func Init() {
	prometheus.MustRegister(ActiveConnections, RegistrationsTotal, BroadcastsTotal)
}

// Handler returns an http.Handler for Prometheus scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
