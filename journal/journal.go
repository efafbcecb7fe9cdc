// Package journal persists risk-gate decisions and the equity curve so a
// session can be audited after the fact. The risk engine itself never
// touches the journal; callers record what the gate returned.
package journal

import (
	"strings"
	"time"

	"github.com/rustyeddy/optrisk/pkg/id"
	"github.com/rustyeddy/optrisk/risk"
)

// DecisionRecord is one validated order intent and its outcome.
type DecisionRecord struct {
	DecisionID string
	Time       time.Time
	Symbol     string
	Side       string
	EstMaxLoss float64
	EstValue   float64
	Admitted   bool
	Reasons    string // rejection reason codes joined by ";", empty when admitted
}

// EquitySnapshot is one point of the session equity curve with its
// drawdown state at recording time.
type EquitySnapshot struct {
	Time     time.Time
	Equity   float64
	Peak     float64
	Drawdown float64
}

type Journal interface {
	RecordDecision(DecisionRecord) error
	RecordEquity(EquitySnapshot) error
	Close() error
}

// NewDecisionRecord stamps a ULID and flattens the decision for storage.
func NewDecisionRecord(ts time.Time, order risk.OrderIntent, d risk.Decision) DecisionRecord {
	return DecisionRecord{
		DecisionID: id.New(),
		Time:       ts,
		Symbol:     order.Symbol,
		Side:       order.Side,
		EstMaxLoss: order.EstMaxLoss,
		EstValue:   order.EstValue,
		Admitted:   d.Admitted,
		Reasons:    strings.Join(d.ReasonCodes(), ";"),
	}
}
