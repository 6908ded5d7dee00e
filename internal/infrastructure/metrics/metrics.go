// Package metrics exposes workflow counters over prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lostfound"

// Metrics satisfies the recorder interfaces of the item and claim usecases.
type Metrics struct {
	itemsRegistered  prometheus.Counter
	itemToggles      *prometheus.CounterVec
	claimsFiled      prometheus.Counter
	claimsResolved   *prometheus.CounterVec
	claimsSuperseded prometheus.Counter
	resolveConflicts prometheus.Counter

	gatherer prometheus.Gatherer
}

// New registers the counters on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg, reg)
}

func NewWithRegistry(reg prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	m := &Metrics{
		itemsRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_registered_total",
			Help:      "Items registered as lost or found.",
		}),
		itemToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "item_status_changes_total",
			Help:      "Manual lost/found status changes, by target status.",
		}, []string{"status"}),
		claimsFiled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "claims_filed_total",
			Help:      "Claims filed against items.",
		}),
		claimsResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "claims_resolved_total",
			Help:      "Claims resolved, by decision.",
		}, []string{"decision"}),
		claimsSuperseded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "claims_superseded_total",
			Help:      "Pending claims rejected because a sibling claim was approved.",
		}),
		resolveConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "claim_resolve_conflicts_total",
			Help:      "Resolutions refused because the claim was no longer pending.",
		}),
		gatherer: g,
	}
	reg.MustRegister(m.itemsRegistered, m.itemToggles, m.claimsFiled,
		m.claimsResolved, m.claimsSuperseded, m.resolveConflicts)
	return m
}

func (m *Metrics) ItemRegistered()                 { m.itemsRegistered.Inc() }
func (m *Metrics) ItemStatusChanged(status string) { m.itemToggles.WithLabelValues(status).Inc() }
func (m *Metrics) ClaimFiled()                     { m.claimsFiled.Inc() }
func (m *Metrics) ResolveConflict()                { m.resolveConflicts.Inc() }

func (m *Metrics) ClaimResolved(decision string, superseded int64) {
	m.claimsResolved.WithLabelValues(decision).Inc()
	if superseded > 0 {
		m.claimsSuperseded.Add(float64(superseded))
	}
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
