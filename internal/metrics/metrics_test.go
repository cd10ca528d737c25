package metrics

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCounter int

func (c staticCounter) Count(context.Context) (int, error) { return int(c), nil }

func TestObserve(t *testing.T) {
	m := New()

	m.ObserveCalculation("calculate")
	m.ObserveCalculation("calculate")
	m.ObserveFormEvent("commit_bill")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Calculations.WithLabelValues("calculate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FormEvents.WithLabelValues("commit_bill")))
}

func TestObserve_NilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveCalculation("calculate")
		m.ObserveFormEvent("move_slider")
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.WatchSessions(staticCounter(3))
	m.ObserveCalculation("form")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)

	assert.True(t, strings.Contains(text, "tipsplit_active_sessions 3"), "missing active_sessions gauge")
	assert.True(t, strings.Contains(text, `tipsplit_calculations_total{source="form"} 1`), "missing calculations counter")
}
