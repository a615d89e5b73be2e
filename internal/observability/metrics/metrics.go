package metrics

import "github.com/prometheus/client_golang/prometheus"

// WidgetMetrics exposes counters/histograms for the site widget endpoints.
type WidgetMetrics struct {
	chatTurnsTotal *prometheus.CounterVec
	classifyTotal  *prometheus.CounterVec
	bookingTotal   *prometheus.CounterVec
	bookingLatency *prometheus.HistogramVec
}

func NewWidgetMetrics(reg prometheus.Registerer) *WidgetMetrics {
	m := &WidgetMetrics{
		chatTurnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "visage",
			Subsystem: "chatbot",
			Name:      "turns_total",
			Help:      "Total chatbot turns",
		}, []string{"kind", "status"}),
		classifyTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "visage",
			Subsystem: "chatbot",
			Name:      "classify_total",
			Help:      "Free-text classifier outcomes by matched node",
		}, []string{"target"}),
		bookingTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "visage",
			Subsystem: "booking",
			Name:      "requests_total",
			Help:      "Total booking widget requests",
		}, []string{"endpoint", "status"}),
		bookingLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "visage",
			Subsystem: "booking",
			Name:      "request_latency_seconds",
			Help:      "Latency of booking widget request handling",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.chatTurnsTotal, m.classifyTotal, m.bookingTotal, m.bookingLatency)
	return m
}

func (m *WidgetMetrics) ObserveChatTurn(kind, status string) {
	if m == nil {
		return
	}
	m.chatTurnsTotal.WithLabelValues(kind, status).Inc()
}

func (m *WidgetMetrics) ObserveClassify(target string) {
	if m == nil {
		return
	}
	m.classifyTotal.WithLabelValues(target).Inc()
}

func (m *WidgetMetrics) ObserveBooking(endpoint, status string) {
	if m == nil {
		return
	}
	m.bookingTotal.WithLabelValues(endpoint, status).Inc()
}

func (m *WidgetMetrics) ObserveBookingLatency(endpoint string, seconds float64) {
	if m == nil {
		return
	}
	m.bookingLatency.WithLabelValues(endpoint).Observe(seconds)
}
