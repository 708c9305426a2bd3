package metacache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/homier/probemap"
)

const namespace = "metacache"

type metrics struct {
	entries    prometheus.Gauge
	capacity   prometheus.Gauge
	loadFactor prometheus.Gauge

	lookups *prometheus.CounterVec
	stores  prometheus.Counter
	deletes prometheus.Counter
	warms   prometheus.Counter
}

// A nil registerer creates unregistered collectors.
func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		entries: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entries",
			Help:      "Number of file metadata entries in the cache.",
		}),
		capacity: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "capacity",
			Help:      "Number of slots in the cache table.",
		}),
		loadFactor: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "load_factor",
			Help:      "Ratio of entries to slots.",
		}),
		lookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Total number of file metadata lookups.",
		}, []string{"result"}),
		stores: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stores_total",
			Help:      "Total number of file metadata inserts and updates.",
		}),
		deletes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deletes_total",
			Help:      "Total number of file metadata entries removed.",
		}),
		warms: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "warms_total",
			Help:      "Total number of rebuilds from the attachment store.",
		}),
	}
}

func (m *metrics) observe(s probemap.Stats) {
	m.entries.Set(float64(s.Size))
	m.capacity.Set(float64(s.Capacity))
	m.loadFactor.Set(s.LoadFactor)
}
