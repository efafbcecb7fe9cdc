// Package metrics exposes Prometheus instrumentation for the risk gate.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rustyeddy/optrisk/risk"
)

// Metrics holds the gate's instruments on a private registry, so tests and
// embedding processes can run several instances without collisions.
type Metrics struct {
	registry *prometheus.Registry

	ordersAdmitted prometheus.Counter
	ordersRejected prometheus.Counter
	rejectReasons  *prometheus.CounterVec

	riskUtil     prometheus.Gauge
	betaExposure prometheus.Gauge
	drawdown     prometheus.Gauge
}

// New creates a Metrics with all instruments registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ordersAdmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "optrisk", Subsystem: "gate",
			Name: "orders_admitted_total",
			Help: "Orders admitted by the risk gate",
		}),
		ordersRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "optrisk", Subsystem: "gate",
			Name: "orders_rejected_total",
			Help: "Orders rejected by the risk gate",
		}),
		rejectReasons: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "optrisk", Subsystem: "gate",
			Name: "reject_reasons_total",
			Help: "Rejection reasons by code; one rejection may count several",
		}, []string{"code"}),
		riskUtil: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "optrisk", Subsystem: "portfolio",
			Name: "risk_utilization",
			Help: "Portfolio heat used over the heat cap",
		}),
		betaExposure: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "optrisk", Subsystem: "portfolio",
			Name: "beta_exposure",
			Help: "Beta-weighted notional over equity",
		}),
		drawdown: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "optrisk", Subsystem: "portfolio",
			Name: "drawdown",
			Help: "Current drawdown from peak equity",
		}),
	}
}

// ObserveDecision counts one gate outcome.
func (m *Metrics) ObserveDecision(d risk.Decision) {
	if d.Admitted {
		m.ordersAdmitted.Inc()
		return
	}
	m.ordersRejected.Inc()
	for _, code := range d.ReasonCodes() {
		m.rejectReasons.WithLabelValues(code).Inc()
	}
}

// ObserveAssessment updates the portfolio gauges.
func (m *Metrics) ObserveAssessment(a risk.Assessment) {
	m.riskUtil.Set(a.RiskUtil)
	m.betaExposure.Set(a.BetaExposure)
	m.drawdown.Set(a.Drawdown)
}

// Handler serves this registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve starts an HTTP server for the metrics endpoint on addr. It returns
// immediately; errors from the listener are reported on the channel.
func (m *Metrics) Serve(addr string) <-chan error {
	errc := make(chan error, 1)
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	go func() {
		errc <- http.ListenAndServe(addr, mux)
	}()
	return errc
}
