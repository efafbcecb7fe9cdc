// Package sizing converts a per-position risk budget into a concrete share
// or contract count. All functions are pure, deterministic and never return
// a negative size; inputs that cannot support a sizing decision return 0.
package sizing

import "math"

const (
	// DefaultMultiplier is the standard equity-option contract size.
	DefaultMultiplier = 100.0
	// DefaultMaxContracts caps credit-spread sizing.
	DefaultMaxContracts = 10
	// DefaultCorrSoftCap is the correlation above which sizes are scaled down.
	DefaultCorrSoftCap = 0.80
	// DefaultMinCorrScale is the scale factor applied at correlation 1.0.
	DefaultMinCorrScale = 0.25
)

// SharesByVolatility sizes an equity position from trailing realized
// volatility: floor(perPositionRisk*equity / (price*stdev)), where stdev is
// the population standard deviation of percentage returns over the last
// lookback prices. priceNow overrides the last observed price when positive.
//
// Returns 0 when fewer than lookback prices are available, or when the
// window has no volatility or an unusable price.
func SharesByVolatility(prices []float64, equity, perPositionRisk float64, lookback int, priceNow float64) int {
	if lookback < 2 || len(prices) < lookback || equity <= 0 || perPositionRisk <= 0 {
		return 0
	}

	window := prices[len(prices)-lookback:]
	returns := make([]float64, 0, len(window)-1)
	for i := 1; i < len(window); i++ {
		if window[i-1] <= 0 {
			return 0
		}
		returns = append(returns, (window[i]-window[i-1])/window[i-1])
	}

	stdev := populationStdev(returns)
	price := priceNow
	if price <= 0 {
		price = window[len(window)-1]
	}
	if stdev <= 0 || price <= 0 {
		return 0
	}

	shares := math.Floor(perPositionRisk * equity / (price * stdev))
	if math.IsNaN(shares) || math.IsInf(shares, 0) || shares < 0 {
		return 0
	}
	return int(shares)
}

// CreditSpreadContracts sizes a credit spread so that the worst case per
// contract, (width-credit)*multiplier, fits the risk budget. A credit at or
// above the width leaves no defined risk and is treated as invalid input,
// not infinite size. The result is clamped to [0, maxContracts].
//
// Pass multiplier <= 0 or maxContracts <= 0 to take the defaults.
func CreditSpreadContracts(creditPerContract, width, equity, perPositionRisk, multiplier float64, maxContracts int) int {
	if multiplier <= 0 {
		multiplier = DefaultMultiplier
	}
	if maxContracts <= 0 {
		maxContracts = DefaultMaxContracts
	}

	maxLossPerContract := (width - creditPerContract) * multiplier
	if maxLossPerContract <= 0 || equity <= 0 || perPositionRisk <= 0 {
		return 0
	}

	n := int(math.Floor(perPositionRisk * equity / maxLossPerContract))
	if n < 0 {
		return 0
	}
	if n > maxContracts {
		return maxContracts
	}
	return n
}

// CorrelationScale shrinks baseSize when the candidate's average correlation
// to the book exceeds softCap: the scale runs linearly from 1.0 at softCap
// down to minScale at correlation 1.0. Low correlation carries no penalty.
// NaN correlation means unknown and leaves the size unchanged.
//
// Pass softCap <= 0 or minScale <= 0 to take the defaults.
func CorrelationScale(baseSize int, avgCorrToBook, softCap, minScale float64) int {
	if baseSize <= 0 {
		return 0
	}
	if math.IsNaN(avgCorrToBook) {
		return baseSize
	}
	if softCap <= 0 {
		softCap = DefaultCorrSoftCap
	}
	if minScale <= 0 {
		minScale = DefaultMinCorrScale
	}
	if softCap >= 1 || avgCorrToBook <= softCap {
		return baseSize
	}
	if avgCorrToBook > 1 {
		avgCorrToBook = 1
	}

	scale := 1 - (avgCorrToBook-softCap)/(1-softCap)*(1-minScale)
	return int(math.Floor(float64(baseSize) * scale))
}

// populationStdev is the population (not sample) standard deviation.
func populationStdev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))

	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(xs)))
}
