package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	IdentifiersMinted    prometheus.Counter
	IdentifiersRetracted prometheus.Counter
	AnchorCheckDuration  prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		IdentifiersMinted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ssi_identifiers_minted_total",
			Help: "Total number of identifiers minted and anchored",
		}),
		IdentifiersRetracted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ssi_identifiers_retracted_total",
			Help: "Total number of identifiers retracted from the ledger",
		}),
		AnchorCheckDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ssi_anchor_check_duration_seconds",
			Help:    "Duration of on-chain anchor checks (ledger list plus content fetches)",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

func (m *Metrics) IncrementMinted() {
	m.IdentifiersMinted.Inc()
}

func (m *Metrics) IncrementRetracted() {
	m.IdentifiersRetracted.Inc()
}

func (m *Metrics) ObserveAnchorCheck(start time.Time) {
	m.AnchorCheckDuration.Observe(time.Since(start).Seconds())
}
