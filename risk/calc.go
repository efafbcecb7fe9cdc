package risk

import "math"

// minEquityForRatios guards the divisions below; snapshots at or under this
// equity report zero exposure ratios.
const minEquityForRatios = 1e-9

// riskUsed sums positive worst-case loss estimates across open positions
// ("portfolio heat" in dollars). Negative estimates count as zero.
func riskUsed(positions []Position) float64 {
	var used float64
	for _, p := range positions {
		if p.MaxLoss > 0 {
			used += p.MaxLoss
		}
	}
	return used
}

// betaExposure is beta-weighted notional over equity, 0 when equity is not
// meaningfully positive.
func betaExposure(snap PortfolioSnapshot) float64 {
	if snap.Equity <= minEquityForRatios {
		return 0
	}
	var weighted float64
	for _, p := range snap.Positions {
		weighted += p.Beta * p.Value
	}
	return math.Abs(weighted) / snap.Equity
}
