package options

import "math"

// Greeks holds the sensitivities of a single option contract.
//
// Units: Theta is per calendar day (annualized theta / 365) and Vega is per
// one percentage point of implied volatility. Downstream consumers depend on
// these exact scalings.
type Greeks struct {
	Delta float64
	Gamma float64
	Theta float64
	Vega  float64
}

// normCDF is the standard normal CDF via the error function.
func normCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// normPDF is the standard normal density.
func normPDF(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}

// BlackScholesGreeks computes closed-form delta, gamma, theta and vega for a
// single option leg. Dividends and carry are not modeled; this system passes
// riskFree = 0.
//
// ok is false when the inputs cannot support the model (non-positive spot,
// strike, time or vol, or sigma*sqrt(T) underflow). Callers must treat a
// missing result as "Greeks unknown", never as zero.
func BlackScholesGreeks(spot, strike, tYears, riskFree, iv float64, right Right) (Greeks, bool) {
	if spot <= 0 || strike <= 0 || tYears <= 0 || iv <= 0 {
		return Greeks{}, false
	}

	sqrtT := math.Sqrt(tYears)
	volT := iv * sqrtT
	if volT < 1e-12 {
		return Greeks{}, false
	}

	d1 := (math.Log(spot/strike) + (riskFree+0.5*iv*iv)*tYears) / volT
	d2 := d1 - volT
	pdf := normPDF(d1)

	g := Greeks{
		Gamma: pdf / (spot * volT),
		Vega:  spot * pdf * sqrtT / 100,
	}

	decay := -spot * pdf * iv / (2 * sqrtT)
	discStrike := strike * math.Exp(-riskFree*tYears)

	switch right {
	case Call:
		g.Delta = normCDF(d1)
		g.Theta = (decay - riskFree*discStrike*normCDF(d2)) / 365
	case Put:
		g.Delta = normCDF(d1) - 1
		g.Theta = (decay + riskFree*discStrike*normCDF(-d2)) / 365
	default:
		return Greeks{}, false
	}
	return g, true
}
