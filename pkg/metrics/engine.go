package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EngineMetrics records quote and checkout activity for the pricing engine.
type EngineMetrics struct {
	quoteDuration   *prometheus.HistogramVec
	quoteTotal      *prometheus.CounterVec
	checkoutTotal   *prometheus.CounterVec
	orderTransition *prometheus.CounterVec
}

// NewEngineMetrics registers the engine metrics on the provided registerer.
// A nil registerer yields a no-op recorder, which keeps tests quiet.
func NewEngineMetrics(reg prometheus.Registerer) *EngineMetrics {
	if reg == nil {
		return &EngineMetrics{}
	}
	quoteDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quote_duration_seconds",
		Help:    "Duration of quote calculations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	quoteTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_total",
		Help: "Quote requests by outcome.",
	}, []string{"outcome"})
	checkoutTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_total",
		Help: "Checkout attempts by outcome.",
	}, []string{"outcome"})
	orderTransition := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_status_transitions_total",
		Help: "Order status transitions by source and target status.",
	}, []string{"from", "to"})
	reg.MustRegister(quoteDuration, quoteTotal, checkoutTotal, orderTransition)
	return &EngineMetrics{
		quoteDuration:   quoteDuration,
		quoteTotal:      quoteTotal,
		checkoutTotal:   checkoutTotal,
		orderTransition: orderTransition,
	}
}

// ObserveQuote records one quote calculation.
func (m *EngineMetrics) ObserveQuote(outcome string, duration time.Duration) {
	if m == nil || m.quoteDuration == nil {
		return
	}
	label := normalizeLabel(outcome)
	m.quoteDuration.WithLabelValues(label).Observe(duration.Seconds())
	m.quoteTotal.WithLabelValues(label).Inc()
}

// IncCheckout increments the checkout counter for the given outcome.
func (m *EngineMetrics) IncCheckout(outcome string) {
	if m == nil || m.checkoutTotal == nil {
		return
	}
	m.checkoutTotal.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncOrderTransition records one order status transition.
func (m *EngineMetrics) IncOrderTransition(from, to string) {
	if m == nil || m.orderTransition == nil {
		return
	}
	m.orderTransition.WithLabelValues(normalizeLabel(from), normalizeLabel(to)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
