package risk

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Manager owns the only mutable state in the engine: a rolling equity curve
// and its high-water mark, used for drawdown computation. A mutex serializes
// RecordEquity/CurrentDrawdown/ValidateOrder so a shared Manager stays
// consistent when order generation is concurrent; a torn read-then-write
// could otherwise admit an order past a concurrent drawdown breach.
//
// Lifetime is the trading session. There is no implicit decay; resetting the
// drawdown state means constructing a new Manager.
type Manager struct {
	policy Policy
	log    *zap.Logger

	mu          sync.Mutex
	equityCurve []EquityPoint
	peakEquity  float64
}

// NewManager returns a Manager enforcing the given policy. A nil logger
// disables logging.
func NewManager(policy Policy, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{policy: policy, log: log}
}

// Policy returns the limits this manager enforces.
func (m *Manager) Policy() Policy {
	return m.policy
}

// RecordEquity appends an equity observation and ratchets the high-water
// mark. The peak is monotone non-decreasing for the life of the Manager.
func (m *Manager) RecordEquity(ts time.Time, equity float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.equityCurve = append(m.equityCurve, EquityPoint{Time: ts, Equity: equity})
	if equity > m.peakEquity {
		m.peakEquity = equity
	}
}

// CurrentDrawdown returns max(0, 1 - latest/peak), or 0 before any equity
// has been recorded.
func (m *Manager) CurrentDrawdown() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.drawdownLocked()
}

// DrawdownBreached reports whether the drawdown circuit breaker has
// tripped. While tripped, every new order is rejected; there is no manual
// override, recovery happens only through recorded equity.
func (m *Manager) DrawdownBreached() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.drawdownLocked() > m.policy.MaxDrawdown
}

// EquityCurve returns a copy of the recorded equity observations.
func (m *Manager) EquityCurve() []EquityPoint {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]EquityPoint, len(m.equityCurve))
	copy(out, m.equityCurve)
	return out
}

// PeakEquity returns the high-water mark, 0 before any recording.
func (m *Manager) PeakEquity() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.peakEquity
}

func (m *Manager) drawdownLocked() float64 {
	if len(m.equityCurve) == 0 || m.peakEquity <= 0 {
		return 0
	}
	latest := m.equityCurve[len(m.equityCurve)-1].Equity
	dd := 1 - latest/m.peakEquity
	if dd < 0 {
		return 0
	}
	return dd
}
