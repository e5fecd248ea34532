package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the event lifecycle engine.
type Metrics struct {
	// Registration ledger transitions by resulting status
	RegistrationTransitions *prometheus.CounterVec

	// Completed finalize invocations and the certificates they issued
	Finalizations      prometheus.Counter
	CertificatesIssued prometheus.Counter

	// Notification publish failures (fire-and-forget, so only counted)
	NotifyFailures prometheus.Counter
}

// New creates a Metrics instance with all lifecycle metrics registered on
// the default registry.
func New() *Metrics {
	return &Metrics{
		RegistrationTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "volunteershub_registration_transitions_total",
			Help: "Total registration ledger transitions by resulting status",
		}, []string{"status"}),

		Finalizations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "volunteershub_finalizations_total",
			Help: "Total finalize invocations that locked attendance",
		}),

		CertificatesIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "volunteershub_certificates_issued_total",
			Help: "Total certificates issued",
		}),

		NotifyFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "volunteershub_notify_failures_total",
			Help: "Total failed notification publishes",
		}),
	}
}

// IncrementTransition records a registration status transition.
func (m *Metrics) IncrementTransition(status string) {
	if m != nil {
		m.RegistrationTransitions.WithLabelValues(status).Inc()
	}
}

// IncrementFinalization records a finalize run that locked the event.
func (m *Metrics) IncrementFinalization() {
	if m != nil {
		m.Finalizations.Inc()
	}
}

// IncrementCertificate records an issued certificate.
func (m *Metrics) IncrementCertificate() {
	if m != nil {
		m.CertificatesIssued.Inc()
	}
}

// IncrementNotifyFailure records a failed notification publish.
func (m *Metrics) IncrementNotifyFailure() {
	if m != nil {
		m.NotifyFailures.Inc()
	}
}
