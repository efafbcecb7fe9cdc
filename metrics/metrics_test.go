package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/optrisk/risk"
)

func TestObserveDecision(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveDecision(risk.Decision{Admitted: true})
	m.ObserveDecision(risk.Decision{Admitted: false, Reasons: []risk.Reason{
		{Code: "POSITION_RISK_CAP"},
		{Code: "PORTFOLIO_HEAT_CAP"},
	}})

	assert.InDelta(t, 1, testutil.ToFloat64(m.ordersAdmitted), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ordersRejected), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.rejectReasons.WithLabelValues("POSITION_RISK_CAP")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.rejectReasons.WithLabelValues("PORTFOLIO_HEAT_CAP")), 1e-9)
}

func TestObserveAssessment(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveAssessment(risk.Assessment{RiskUtil: 0.225, BetaExposure: 0.09, Drawdown: 0.04})

	assert.InDelta(t, 0.225, testutil.ToFloat64(m.riskUtil), 1e-9)
	assert.InDelta(t, 0.09, testutil.ToFloat64(m.betaExposure), 1e-9)
	assert.InDelta(t, 0.04, testutil.ToFloat64(m.drawdown), 1e-9)
}

func TestHandlerExposesMetrics(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveDecision(risk.Decision{Admitted: true})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "optrisk_gate_orders_admitted_total 1"))
}
