package persist

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts committer activity.
type Metrics struct {
	Commits     prometheus.Counter
	Writes      prometheus.Counter
	WriteErrors prometheus.Counter
}

// NewMetrics creates committer metrics and registers them with reg.
// A nil registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Commits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "splitledger",
			Subsystem: "persist",
			Name:      "commits_total",
			Help:      "Ledger states handed to the committer.",
		}),
		Writes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "splitledger",
			Subsystem: "persist",
			Name:      "writes_total",
			Help:      "Snapshots written to the store.",
		}),
		WriteErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "splitledger",
			Subsystem: "persist",
			Name:      "write_errors_total",
			Help:      "Snapshot writes that failed.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Commits, m.Writes, m.WriteErrors)
	}
	return m
}
