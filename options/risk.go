package options

import (
	"sort"

	"go.uber.org/zap"
)

const (
	// UnboundedGainCap bounds the reported max gain of structures whose
	// theoretical upside is unlimited. The flat cap has no economic meaning;
	// it exists because ratio-based consumers break on unbounded values.
	UnboundedGainCap = 10000.0

	// ConservativeMaxLoss is the stand-in worst case for structures the
	// calculator could not price. Profiles carrying it are marked Degraded.
	ConservativeMaxLoss = 10000.0
)

// RiskProfile is the risk decomposition of one multi-leg structure. Credit
// is signed net premium (positive = received); MaxLoss and MaxGain are
// non-negative magnitudes; Breakevens is sorted ascending.
//
// Approximate marks profiles produced by the unrecognized-shape heuristic: a
// genuine but coarse conservative estimate. Degraded marks profiles where
// the inputs could not be priced at all and the conservative sentinel was
// substituted. A profile is constructed once per query and never mutated.
type RiskProfile struct {
	Shape          Shape
	Credit         float64
	MaxLoss        float64
	MaxGain        float64
	Breakevens     []float64
	MarginEstimate float64
	Greeks         AggregateGreeks
	RiskReward     float64
	Approximate    bool
	Degraded       bool
	Warnings       []string
}

// Calculator prices position risk. It holds no state beyond a logger; every
// calculation is deterministic in its inputs.
type Calculator struct {
	log *zap.Logger
}

// NewCalculator returns a Calculator. A nil logger disables logging.
func NewCalculator(log *zap.Logger) *Calculator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Calculator{log: log}
}

// PositionRisk computes the RiskProfile of the given legs. hint may force a
// shape; ShapeAuto classifies from the legs. It never panics: inputs it
// cannot price produce a Degraded profile with the conservative max-loss
// sentinel and zeroed Greeks, so a malformed structure can never silently
// skip the risk check upstream.
func (c *Calculator) PositionRisk(legs []Leg, hint Shape) RiskProfile {
	if len(legs) == 0 {
		return c.degraded(hint, "no legs supplied")
	}
	for _, l := range legs {
		if l.Strike <= 0 || l.Qty == 0 || l.Price < 0 {
			return c.degraded(hint, "malformed leg: strike, qty and price must be valid")
		}
		c.checkGreekSigns(l)
	}

	shape := hint
	if shape == ShapeAuto {
		shape = ClassifyShape(legs)
	}

	p := RiskProfile{
		Shape:  shape,
		Credit: netCredit(legs),
		Greeks: aggregateGreeks(legs),
	}

	switch shape {
	case VerticalSpread:
		c.verticalSpread(legs, &p)
	case IronCondor:
		c.ironCondor(legs, &p)
	case Straddle:
		c.straddle(legs, &p)
	default:
		c.generic(legs, &p)
	}

	sort.Float64s(p.Breakevens)
	p.MarginEstimate = p.MaxLoss
	if p.MaxLoss > 0 {
		p.RiskReward = p.MaxGain / p.MaxLoss
	}
	return p
}

// checkGreekSigns warns on deltas inconsistent with the leg's right. Feed
// data can be noisy, so out-of-range values pass through unchanged.
func (c *Calculator) checkGreekSigns(l Leg) {
	if l.Greeks == nil {
		return
	}
	d := l.Greeks.Delta
	bad := (l.Right == Call && (d < 0 || d > 1)) ||
		(l.Right == Put && (d < -1 || d > 0))
	if bad {
		c.log.Warn("leg delta inconsistent with right",
			zap.String("symbol", l.Symbol),
			zap.Stringer("right", l.Right),
			zap.Float64("delta", d))
	}
}

func (c *Calculator) degraded(hint Shape, warn string) RiskProfile {
	if hint == ShapeAuto {
		hint = Generic
	}
	c.log.Warn("position risk degraded to conservative default", zap.String("reason", warn))
	return RiskProfile{
		Shape:    hint,
		MaxLoss:  ConservativeMaxLoss,
		Degraded: true,
		Warnings: []string{warn},
	}
}

// verticalSpread prices a two-leg same-right spread. Width conservation
// holds: MaxLoss + MaxGain equals width regardless of credit or debit.
func (c *Calculator) verticalSpread(legs []Leg, p *RiskProfile) {
	if len(legs) != 2 || legs[0].Right != legs[1].Right {
		p.Warnings = append(p.Warnings, "legs do not form a vertical spread")
		c.generic(legs, p)
		return
	}

	width := absFloat(legs[0].Strike-legs[1].Strike) * ContractMultiplier
	if p.Credit >= 0 {
		p.MaxGain = p.Credit
		p.MaxLoss = maxFloat(0, width-p.Credit)
	} else {
		p.MaxLoss = -p.Credit
		p.MaxGain = maxFloat(0, width+p.Credit)
	}

	// Breakeven anchors on the short strike for credit spreads and the long
	// strike for debit spreads, shifted by the per-share premium.
	perShare := absFloat(p.Credit) / ContractMultiplier
	anchor, ok := findLeg(legs, func(l Leg) bool { return (p.Credit >= 0) == (l.Qty < 0) })
	if !ok {
		anchor = legs[0]
	}
	if anchor.Right == Call {
		p.Breakevens = []float64{anchor.Strike + perShare}
	} else {
		p.Breakevens = []float64{anchor.Strike - perShare}
	}
}

// ironCondor prices a four-leg two-put/two-call structure as the wider of
// its two vertical widths, with one breakeven per side.
func (c *Calculator) ironCondor(legs []Leg, p *RiskProfile) {
	var puts, calls []Leg
	for _, l := range legs {
		if l.Right == Put {
			puts = append(puts, l)
		} else {
			calls = append(calls, l)
		}
	}
	if len(puts) != 2 || len(calls) != 2 {
		p.Warnings = append(p.Warnings, "legs do not form an iron condor")
		c.generic(legs, p)
		return
	}

	putWidth := absFloat(puts[0].Strike-puts[1].Strike) * ContractMultiplier
	callWidth := absFloat(calls[0].Strike-calls[1].Strike) * ContractMultiplier
	width := maxFloat(putWidth, callWidth)

	if p.Credit >= 0 {
		p.MaxGain = p.Credit
		p.MaxLoss = maxFloat(0, width-p.Credit)
	} else {
		p.MaxLoss = -p.Credit
		p.MaxGain = maxFloat(0, width+p.Credit)
	}

	perShare := absFloat(p.Credit) / ContractMultiplier
	shortPut, ok := findLeg(puts, func(l Leg) bool { return l.Qty < 0 })
	if !ok {
		shortPut = puts[0]
	}
	shortCall, ok := findLeg(calls, func(l Leg) bool { return l.Qty < 0 })
	if !ok {
		shortCall = calls[0]
	}
	p.Breakevens = []float64{shortPut.Strike - perShare, shortCall.Strike + perShare}
}

// straddle prices long straddles and strangles. Upside is theoretically
// unbounded, so MaxGain reports the flat cap.
func (c *Calculator) straddle(legs []Leg, p *RiskProfile) {
	debit := -p.Credit
	if debit < 0 {
		debit = 0
		p.Warnings = append(p.Warnings, "long straddle priced at a net credit")
	}
	p.MaxLoss = debit
	p.MaxGain = UnboundedGainCap

	perShare := debit / ContractMultiplier
	putLeg, okPut := findLeg(legs, func(l Leg) bool { return l.Right == Put })
	callLeg, okCall := findLeg(legs, func(l Leg) bool { return l.Right == Call })
	if okPut {
		p.Breakevens = append(p.Breakevens, putLeg.Strike-perShare)
	}
	if okCall {
		p.Breakevens = append(p.Breakevens, callLeg.Strike+perShare)
	}
}

// generic is the conservative heuristic for unrecognized structures. The
// result is flagged Approximate, not precise.
func (c *Calculator) generic(legs []Leg, p *RiskProfile) {
	var notional float64
	for _, l := range legs {
		notional += absFloat(float64(l.Qty)) * l.Price * ContractMultiplier
	}
	if p.Credit < 0 {
		p.MaxLoss = -p.Credit
		p.MaxGain = notional * 0.3
	} else {
		p.MaxLoss = notional * 0.5
		p.MaxGain = p.Credit
	}
	p.Approximate = true
	p.Warnings = append(p.Warnings, "unrecognized structure, heuristic risk estimate")
}

func findLeg(legs []Leg, match func(Leg) bool) (Leg, bool) {
	for _, l := range legs {
		if match(l) {
			return l, true
		}
	}
	return Leg{}, false
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
