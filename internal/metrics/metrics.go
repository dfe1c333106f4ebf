package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Query outcome labels.
const (
	OutcomeOK           = "ok"
	OutcomeEmptyCatalog = "empty_catalog"
	OutcomeNotFound     = "not_found"
	OutcomeNoMatches    = "no_matches"
)

// Collector holds the service's prometheus metrics. All observe methods are
// nil-safe so tests can run without a collector.
type Collector struct {
	queriesTotal   *prometheus.CounterVec
	catalogSize    prometheus.Gauge
	catalogReloads prometheus.Counter
	repliesTotal   *prometheus.CounterVec
}

func New() *Collector {
	c := &Collector{}

	c.queriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jgg",
		Name:      "queries_total",
		Help:      "Keyword queries answered, by query kind and outcome",
	}, []string{"kind", "outcome"})

	c.catalogSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "jgg",
		Name:      "catalog_products",
		Help:      "Number of products in the current catalog snapshot",
	})

	c.catalogReloads = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "jgg",
		Name:      "catalog_reloads_total",
		Help:      "Catalog snapshot replacements since start",
	})

	c.repliesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jgg",
		Name:      "line_replies_total",
		Help:      "LINE reply deliveries, by result",
	}, []string{"result"})

	return c
}

func (c *Collector) Register(reg prometheus.Registerer) {
	reg.MustRegister(
		c.queriesTotal,
		c.catalogSize,
		c.catalogReloads,
		c.repliesTotal,
	)
}

// ObserveQuery counts one answered query.
func (c *Collector) ObserveQuery(kind, outcome string) {
	if c == nil {
		return
	}
	c.queriesTotal.WithLabelValues(kind, outcome).Inc()
}

// ObserveReload records a catalog replacement and the new snapshot size.
func (c *Collector) ObserveReload(products int) {
	if c == nil {
		return
	}
	c.catalogReloads.Inc()
	c.catalogSize.Set(float64(products))
}

// ObserveReply counts one LINE reply attempt.
func (c *Collector) ObserveReply(ok bool) {
	if c == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	c.repliesTotal.WithLabelValues(result).Inc()
}
