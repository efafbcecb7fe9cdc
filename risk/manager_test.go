package risk

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func recordSequence(m *Manager, equities ...float64) {
	ts := time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC)
	for i, e := range equities {
		m.RecordEquity(ts.Add(time.Duration(i)*time.Minute), e)
	}
}

func TestDrawdownFromPeak(t *testing.T) {
	t.Parallel()

	m := NewManager(DefaultPolicy(), nil)
	assert.Zero(t, m.CurrentDrawdown(), "no equity recorded yet")

	// Intermediate recovery does not reset the peak.
	recordSequence(m, 100000, 90000, 95000)
	assert.InDelta(t, 0.05, m.CurrentDrawdown(), 1e-9)

	recordSequence(m, 90000)
	assert.InDelta(t, 0.10, m.CurrentDrawdown(), 1e-9)
	assert.InDelta(t, 100000, m.PeakEquity(), 1e-9)
}

func TestPeakEquityMonotonic(t *testing.T) {
	t.Parallel()

	m := NewManager(DefaultPolicy(), nil)
	recordSequence(m, 50000, 80000, 60000, 75000, 40000)
	assert.InDelta(t, 80000, m.PeakEquity(), 1e-9)

	recordSequence(m, 120000)
	assert.InDelta(t, 120000, m.PeakEquity(), 1e-9)
}

func TestDrawdownBreached(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()
	p.MaxDrawdown = 0.15
	m := NewManager(p, nil)

	recordSequence(m, 100000, 86000)
	assert.False(t, m.DrawdownBreached(), "14% is inside the limit")

	recordSequence(m, 84000)
	assert.True(t, m.DrawdownBreached())

	// Recovery closes the breaker again.
	recordSequence(m, 95000)
	assert.False(t, m.DrawdownBreached())
}

func TestEquityCurveIsACopy(t *testing.T) {
	t.Parallel()

	m := NewManager(DefaultPolicy(), nil)
	recordSequence(m, 100000, 99000)

	curve := m.EquityCurve()
	assert.Len(t, curve, 2)
	curve[0].Equity = 1

	assert.InDelta(t, 100000, m.EquityCurve()[0].Equity, 1e-9)
}

func TestRecordEquityConcurrent(t *testing.T) {
	t.Parallel()

	m := NewManager(DefaultPolicy(), nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(base float64) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.RecordEquity(time.Now(), base+float64(j))
				_ = m.CurrentDrawdown()
			}
		}(float64(10000 * (i + 1)))
	}
	wg.Wait()

	assert.Len(t, m.EquityCurve(), 800)
	assert.InDelta(t, 80099, m.PeakEquity(), 1e-9)
}
