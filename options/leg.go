// Package options prices the risk of multi-leg option structures: closed-form
// Black-Scholes Greeks for single legs, and credit/debit, max loss/gain,
// breakeven and margin decomposition for recognized strategy shapes.
package options

import (
	"fmt"
	"strings"
)

// ContractMultiplier is the standard equity-option contract size. It is
// deliberately not configurable here.
const ContractMultiplier = 100.0

// Right identifies an option as a call or a put.
type Right int

const (
	Call Right = iota
	Put
)

func (r Right) String() string {
	switch r {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return "unknown"
	}
}

// ParseRight converts "call"/"put" (case-insensitive, "c"/"p" accepted)
// into a Right.
func ParseRight(s string) (Right, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	}
	return Call, fmt.Errorf("options: unknown right %q", s)
}

// Leg is one option contract position within a structure. Qty is signed:
// positive long, negative short. Price is the premium per share.
// Greeks is nil when the feed did not supply them.
//
// A Leg is treated as immutable for the duration of one risk calculation.
type Leg struct {
	Symbol string
	Expiry string
	Right  Right
	Strike float64
	Qty    int
	Price  float64
	Greeks *Greeks
}

// AggregateGreeks sums per-leg Greeks across a structure. Delta, theta and
// vega are quantity-signed; gamma is summed over |qty| because short gamma
// contributes risk in the same direction as long.
type AggregateGreeks struct {
	Delta float64
	Gamma float64
	Theta float64
	Vega  float64
}

func aggregateGreeks(legs []Leg) AggregateGreeks {
	var agg AggregateGreeks
	for _, l := range legs {
		if l.Greeks == nil {
			continue
		}
		q := float64(l.Qty)
		agg.Delta += l.Greeks.Delta * q
		agg.Theta += l.Greeks.Theta * q
		agg.Vega += l.Greeks.Vega * q
		agg.Gamma += l.Greeks.Gamma * absFloat(q)
	}
	return agg
}

// netCredit returns the net premium of the structure in dollars: positive
// when premium is received (credit), negative when paid (debit).
func netCredit(legs []Leg) float64 {
	var net float64
	for _, l := range legs {
		premium := absFloat(float64(l.Qty)) * l.Price * ContractMultiplier
		if l.Qty < 0 {
			net += premium
		} else {
			net -= premium
		}
	}
	return net
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
