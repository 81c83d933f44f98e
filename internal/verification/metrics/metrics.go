// Package metrics exposes Prometheus instrumentation for the
// cross-verification engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for verification checks.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeRevoked = "revoked"
)

type Metrics struct {
	Verifications *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		Verifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ssi_credential_verifications_total",
			Help: "Credential verification checks by outcome.",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) IncrementVerification(outcome string) {
	m.Verifications.WithLabelValues(outcome).Inc()
}
