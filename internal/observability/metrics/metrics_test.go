package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestWidgetMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWidgetMetrics(reg)
	m.ObserveChatTurn("resolve", "ok")
	m.ObserveClassify("pricing")
	m.ObserveBooking("availability", "ok")
	m.ObserveBookingLatency("availability", 0.02)
}

func TestWidgetMetricsNilSafe(t *testing.T) {
	var m *WidgetMetrics
	m.ObserveChatTurn("resolve", "ok")
	m.ObserveClassify("none")
	m.ObserveBooking("time_slots", "error")
	m.ObserveBookingLatency("time_slots", 0.1)
}
