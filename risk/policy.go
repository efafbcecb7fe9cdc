// Package risk implements the pre-trade admission gate: portfolio heat and
// per-position caps, a drawdown circuit breaker, correlation and beta
// throttles. Every proposed order is checked against a caller-supplied
// portfolio snapshot and admitted only when no limit objects.
package risk

// Policy holds the portfolio-level exposure limits. Limits are fractions of
// equity unless noted. Configure via DefaultPolicy plus overrides; the
// engine reads no files or environment.
type Policy struct {
	PortfolioRiskCap float64 // aggregate worst-case risk ("heat") cap
	PerPositionRisk  float64 // worst-case risk cap for a single order
	MaxPositions     int
	MaxCorrelation   float64 // reject correlation hints above this
	MaxBetaExposure  float64 // beta-weighted notional / equity ceiling
	MaxDrawdown      float64 // circuit breaker trip level
	MinEquity        float64 // refuse to trade below this equity
}

// DefaultPolicy returns the documented default limits.
func DefaultPolicy() Policy {
	return Policy{
		PortfolioRiskCap: 0.20,
		PerPositionRisk:  0.02,
		MaxPositions:     10,
		MaxCorrelation:   0.80,
		MaxBetaExposure:  1.5,
		MaxDrawdown:      0.20,
		MinEquity:        10000,
	}
}
