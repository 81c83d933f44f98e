package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	CredentialsIssued  prometheus.Counter
	CredentialsRevoked *prometheus.CounterVec
	IssueDuration      prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		CredentialsIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ssi_credentials_issued_total",
			Help: "Total number of credentials issued and anchored",
		}),
		CredentialsRevoked: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ssi_credentials_revoked_total",
			Help: "Total number of credential revocations by mode",
		}, []string{"mode"}),
		IssueDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ssi_credential_issue_duration_seconds",
			Help:    "Duration of credential issuance (sign, store, seal, anchor)",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

func (m *Metrics) IncrementIssued() {
	m.CredentialsIssued.Inc()
}

// IncrementRevoked counts a revocation; mode is "hard" or "soft".
func (m *Metrics) IncrementRevoked(mode string) {
	m.CredentialsRevoked.WithLabelValues(mode).Inc()
}

func (m *Metrics) ObserveIssue(start time.Time) {
	m.IssueDuration.Observe(time.Since(start).Seconds())
}
