// Package metrics registers and records the Prometheus metrics exposed
// on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Collector struct {
	eventMutations *prometheus.CounterVec
	gridRenders    prometheus.Counter
	storeFailures  prometheus.Counter
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		eventMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "calendar_event_mutations_total",
			Help: "Event store mutations by operation.",
		}, []string{"operation"}),
		gridRenders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calendar_grid_renders_total",
			Help: "Month grid computations.",
		}),
		storeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calendar_store_write_failures_total",
			Help: "Failed persistence writes (mutation kept in memory).",
		}),
	}

	reg.MustRegister(
		c.eventMutations,
		c.gridRenders,
		c.storeFailures,
	)

	return c
}

func (c *Collector) RecordEventMutation(operation string) {
	c.eventMutations.WithLabelValues(operation).Inc()
}

func (c *Collector) RecordGridRender() {
	c.gridRenders.Inc()
}

func (c *Collector) RecordStoreWriteFailure() {
	c.storeFailures.Inc()
}
