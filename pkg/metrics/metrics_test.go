package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_BusinessCounters(t *testing.T) {
	m := NewWithRegisterer("bookminton", prometheus.NewRegistry())

	m.IncReservation("created")
	m.IncReservation("created")
	m.IncReservation("conflict")
	m.IncCheckIn("ok")
	m.IncCancellation()
	m.AddReconciled("released", 3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.reservations.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reservations.WithLabelValues("conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checkIns.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cancellations))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.reconciled.WithLabelValues("released")))
}

func TestMetrics_DBErrors(t *testing.T) {
	m := NewWithRegisterer("bookminton", prometheus.NewRegistry())

	m.ObserveDBQuery("UPDATE", time.Millisecond, nil)
	m.ObserveDBQuery("UPDATE", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("UPDATE")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncReservation("created")
		m.ObserveHTTPRequest("GET", "/api/v1/courts", 200, time.Second)
		m.AddReconciled("reserved", 1)
	})
}
