package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveBooking(t *testing.T) {
	m := NewWithRegistry("hotel-booking", prometheus.NewRegistry())

	m.ObserveBooking("create", "created")
	m.ObserveBooking("create", "created")
	m.ObserveBooking("create", "conflict")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingOperations.WithLabelValues("create", "created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingOperations.WithLabelValues("create", "conflict")))
}

func TestObserveBooking_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveBooking("cancel", "cancelled") })
}
