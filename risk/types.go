package risk

import (
	"math"
	"time"
)

// Position is one currently-held portfolio line. The engine treats it as a
// read-only view owned by the snapshot's supplier.
type Position struct {
	Symbol  string
	Qty     float64
	Mark    float64 // current price
	Value   float64 // signed notional
	MaxLoss float64 // worst-case dollar loss estimate
	Beta    float64
	Sector  string
}

// EquityPoint is one (timestamp, equity) observation.
type EquityPoint struct {
	Time   time.Time
	Equity float64
}

// PortfolioSnapshot is the caller's view of the portfolio at validation
// time. It is supplied fresh on every call and never mutated here.
type PortfolioSnapshot struct {
	Equity        float64
	Cash          float64
	Positions     []Position
	EquityHistory []EquityPoint
}

// OrderIntent is a candidate trade that is not yet a position. It exists
// only for the duration of one validation call.
//
// CorrelationHint is the estimated correlation of the candidate to the
// portfolio core, in [-1, 1]; NaN means unknown and skips the correlation
// throttle (see UnknownCorrelation).
type OrderIntent struct {
	Symbol          string
	Side            string
	EstMaxLoss      float64
	EstValue        float64
	CorrelationHint float64
	Beta            float64
}

// UnknownCorrelation is the CorrelationHint value for "no view".
func UnknownCorrelation() float64 {
	return math.NaN()
}

// Assessment summarizes portfolio-level risk for one snapshot.
type Assessment struct {
	Equity           float64
	Cash             float64
	PositionCount    int
	RiskUsed         float64 // sum of positive position max-loss estimates
	RiskCap          float64 // PortfolioRiskCap * equity
	RiskUtil         float64 // RiskUsed / RiskCap
	BetaExposure     float64 // |sum(beta*value)| / equity
	Drawdown         float64
	DrawdownBreached bool
}

// Reason is one human-readable ground for rejecting an order. Code is a
// stable identifier for journaling and metrics.
type Reason struct {
	Code string
	Msg  string
}

// Decision is the outcome of validating one order intent. An order is
// admitted iff no check produced a reason; a rejected order may carry
// several.
type Decision struct {
	Admitted bool
	Reasons  []Reason
}

func (d *Decision) reject(code, msg string) {
	d.Admitted = false
	d.Reasons = append(d.Reasons, Reason{Code: code, Msg: msg})
}

// ReasonCodes returns the codes of all reasons, in check order.
func (d Decision) ReasonCodes() []string {
	codes := make([]string, 0, len(d.Reasons))
	for _, r := range d.Reasons {
		codes = append(codes, r.Code)
	}
	return codes
}
