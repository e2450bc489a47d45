package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	searches *prometheus.CounterVec
	duration prometheus.Histogram
	results  prometheus.Histogram
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobfilter",
			Name:      "searches_total",
			Help:      "Job searches by outcome, either ok or the error code.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "jobfilter",
			Name:      "search_duration_seconds",
			Help:      "Time spent compiling and running job searches.",
			Buckets:   prometheus.DefBuckets,
		}),
		results: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "jobfilter",
			Name:      "search_results",
			Help:      "Number of jobs returned by successful searches.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}

	for _, collector := range []prometheus.Collector{m.searches, m.duration, m.results} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}

	return m, nil
}
