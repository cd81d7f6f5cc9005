package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Call outcome labels
const (
	StatusResolved = "resolved"
	StatusRejected = "rejected"
)

// FacadeMetrics holds Prometheus metrics for the mock network façade.
type FacadeMetrics struct {
	CallsTotal           *prometheus.CounterVec
	CallLatencySeconds   *prometheus.HistogramVec
	RejectionsByCode     *prometheus.CounterVec
	MeetingsCreatedTotal prometheus.Counter
}

// NewFacadeMetrics creates the façade metrics on reg.
func NewFacadeMetrics(reg prometheus.Registerer) *FacadeMetrics {
	factory := promauto.With(reg)

	return &FacadeMetrics{
		CallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meetingsim_facade_calls_total",
				Help: "Total façade calls by operation and outcome",
			},
			[]string{"operation", "status"},
		),
		CallLatencySeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "meetingsim_facade_call_seconds",
				Help:    "Time from call to settlement, simulated latency included",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 1.5, 2, 3, 5},
			},
			[]string{"operation"},
		),
		RejectionsByCode: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meetingsim_facade_rejections_total",
				Help: "Rejected façade calls by HTTP-like status code",
			},
			[]string{"operation", "code"},
		),
		MeetingsCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "meetingsim_meetings_created_total",
				Help: "Meetings created during this session",
			},
		),
	}
}

// RecordCall records a settled call
func (m *FacadeMetrics) RecordCall(operation, status string, seconds float64) {
	if m == nil {
		return
	}
	m.CallsTotal.WithLabelValues(operation, status).Inc()
	m.CallLatencySeconds.WithLabelValues(operation).Observe(seconds)
}

// RecordRejection records the status code of a rejected call
func (m *FacadeMetrics) RecordRejection(operation, code string) {
	if m == nil {
		return
	}
	m.RejectionsByCode.WithLabelValues(operation, code).Inc()
}

// RecordMeetingCreated counts a created meeting
func (m *FacadeMetrics) RecordMeetingCreated() {
	if m == nil {
		return
	}
	m.MeetingsCreatedTotal.Inc()
}
