package mcts

import "github.com/prometheus/client_golang/prometheus"

// Exposes the process-wide decision counters as prometheus metrics.
// The counters are read on every scrape, nothing is updated through the collector.
type Collector struct {
	mlhConsidered  prometheus.CounterFunc
	mlhChanged     prometheus.CounterFunc
	noiseOverrides prometheus.CounterFunc
	mlhChangeRatio prometheus.GaugeFunc
}

func NewCollector(namespace string) *Collector {
	return &Collector{
		mlhConsidered: prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "decision",
			Name:      "mlh_considered_total",
			Help:      "Root decisions in which the moves-left heuristic was active",
		}, func() float64 { return float64(counters.mlhConsidered.Load()) }),
		mlhChanged: prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "decision",
			Name:      "mlh_changed_total",
			Help:      "Root decisions changed by the moves-left heuristic",
		}, func() float64 { return float64(counters.mlhChanged.Load()) }),
		noiseOverrides: prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "decision",
			Name:      "noise_overrides_total",
			Help:      "Root decisions changed by the noise sampling override",
		}, func() float64 { return float64(counters.noiseOverrides.Load()) }),
		mlhChangeRatio: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "decision",
			Name:      "mlh_change_ratio",
			Help:      "Fraction of moves-left heuristic decisions it changed",
		}, MLHChangeRatio),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.mlhConsidered.Describe(ch)
	c.mlhChanged.Describe(ch)
	c.noiseOverrides.Describe(ch)
	c.mlhChangeRatio.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mlhConsidered.Collect(ch)
	c.mlhChanged.Collect(ch)
	c.noiseOverrides.Collect(ch)
	c.mlhChangeRatio.Collect(ch)
}
