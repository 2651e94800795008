package metrics

import "github.com/prometheus/client_golang/prometheus"

// SchedulingMetrics exposes counters for the availability and booking flows.
// A nil receiver is a no-op so wiring stays optional in tests.
type SchedulingMetrics struct {
	slotsGenerated *prometheus.CounterVec
	bookingsTotal  *prometheus.CounterVec
	bookingLatency *prometheus.HistogramVec
}

func NewSchedulingMetrics(reg prometheus.Registerer) *SchedulingMetrics {
	m := &SchedulingMetrics{
		slotsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "healthsched",
			Subsystem: "availability",
			Name:      "slots_generated_total",
			Help:      "Total appointment slots generated from availabilities",
		}, []string{"appointment_type"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "healthsched",
			Subsystem: "booking",
			Name:      "attempts_total",
			Help:      "Total booking attempts by outcome",
		}, []string{"outcome"}),
		bookingLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "healthsched",
			Subsystem: "booking",
			Name:      "latency_seconds",
			Help:      "Latency of booking attempts",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.slotsGenerated, m.bookingsTotal, m.bookingLatency)
	return m
}

func (m *SchedulingMetrics) ObserveSlotsGenerated(appointmentType string, count int) {
	if m == nil {
		return
	}
	m.slotsGenerated.WithLabelValues(appointmentType).Add(float64(count))
}

func (m *SchedulingMetrics) ObserveBooking(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
	m.bookingLatency.WithLabelValues(outcome).Observe(seconds)
}
