package risk

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// AssessPortfolio summarizes the snapshot's risk posture: heat used against
// the cap, beta exposure, and the current drawdown state.
func (m *Manager) AssessPortfolio(snap PortfolioSnapshot) Assessment {
	m.mu.Lock()
	dd := m.drawdownLocked()
	m.mu.Unlock()

	a := Assessment{
		Equity:           snap.Equity,
		Cash:             snap.Cash,
		PositionCount:    len(snap.Positions),
		RiskUsed:         riskUsed(snap.Positions),
		RiskCap:          m.policy.PortfolioRiskCap * snap.Equity,
		BetaExposure:     betaExposure(snap),
		Drawdown:         dd,
		DrawdownBreached: dd > m.policy.MaxDrawdown,
	}
	if a.RiskCap > 0 {
		a.RiskUtil = a.RiskUsed / a.RiskCap
	}
	return a
}

// ValidateOrder runs every admission check against the order and snapshot.
// Checks do not short-circuit: a rejected order carries one reason per
// violated limit. Malformed snapshots (negative equity and the like) reject
// through the ordinary reasons path rather than failing.
func (m *Manager) ValidateOrder(order OrderIntent, snap PortfolioSnapshot) Decision {
	m.mu.Lock()
	dd := m.drawdownLocked()
	m.mu.Unlock()

	d := Decision{Admitted: true}

	if snap.Equity < m.policy.MinEquity {
		d.reject("EQUITY_TOO_LOW",
			fmt.Sprintf("equity %.2f below minimum %.2f", snap.Equity, m.policy.MinEquity))
	}

	if dd > m.policy.MaxDrawdown {
		d.reject("DRAWDOWN_BREACHED",
			fmt.Sprintf("drawdown %.2f%% exceeds max %.2f%%, circuit breaker open",
				100*dd, 100*m.policy.MaxDrawdown))
	}

	if len(snap.Positions) >= m.policy.MaxPositions {
		d.reject("TOO_MANY_POSITIONS",
			fmt.Sprintf("open positions %d >= max %d", len(snap.Positions), m.policy.MaxPositions))
	}

	perPositionCap := m.policy.PerPositionRisk * snap.Equity
	if order.EstMaxLoss > perPositionCap {
		d.reject("POSITION_RISK_CAP",
			fmt.Sprintf("order max loss %.2f exceeds per-position cap %.2f",
				order.EstMaxLoss, perPositionCap))
	}

	used := riskUsed(snap.Positions)
	riskCap := m.policy.PortfolioRiskCap * snap.Equity
	addition := order.EstMaxLoss
	if addition < 0 {
		addition = 0
	}
	if used+addition > riskCap {
		d.reject("PORTFOLIO_HEAT_CAP",
			fmt.Sprintf("portfolio heat %.2f + order %.2f exceeds cap %.2f",
				used, addition, riskCap))
	}

	if !math.IsNaN(order.CorrelationHint) && order.CorrelationHint > m.policy.MaxCorrelation {
		d.reject("CORRELATION_TOO_HIGH",
			fmt.Sprintf("correlation %.2f exceeds max %.2f",
				order.CorrelationHint, m.policy.MaxCorrelation))
	}

	betaAfter := betaExposure(snap)
	if snap.Equity > minEquityForRatios {
		betaAfter += math.Abs(order.Beta*order.EstValue) / snap.Equity
	}
	if betaAfter > m.policy.MaxBetaExposure {
		d.reject("BETA_EXPOSURE",
			fmt.Sprintf("post-order beta exposure %.2f exceeds max %.2f",
				betaAfter, m.policy.MaxBetaExposure))
	}

	if d.Admitted {
		m.log.Debug("order admitted",
			zap.String("symbol", order.Symbol),
			zap.String("side", order.Side),
			zap.Float64("est_max_loss", order.EstMaxLoss))
	} else {
		m.log.Info("order rejected",
			zap.String("symbol", order.Symbol),
			zap.String("side", order.Side),
			zap.Strings("reasons", d.ReasonCodes()))
	}
	return d
}
