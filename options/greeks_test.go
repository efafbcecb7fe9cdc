package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlackScholesGreeksATMCall(t *testing.T) {
	t.Parallel()

	g, ok := BlackScholesGreeks(100, 100, 0.25, 0, 0.20, Call)
	require.True(t, ok)

	// d1 = 0.05, d2 = -0.05 for these inputs.
	assert.InDelta(t, 0.51994, g.Delta, 1e-4)
	assert.InDelta(t, 0.039844, g.Gamma, 1e-5)
	assert.InDelta(t, 0.199222, g.Vega, 1e-5)
	assert.InDelta(t, -0.021833, g.Theta, 1e-5)
}

func TestBlackScholesGreeksPutCallParity(t *testing.T) {
	t.Parallel()

	call, ok := BlackScholesGreeks(450, 440, 0.1, 0, 0.35, Call)
	require.True(t, ok)
	put, ok := BlackScholesGreeks(450, 440, 0.1, 0, 0.35, Put)
	require.True(t, ok)

	// Same-strike call and put deltas differ by exactly 1 (r = 0).
	assert.InDelta(t, 1.0, call.Delta-put.Delta, 1e-12)
	assert.InDelta(t, call.Gamma, put.Gamma, 1e-12)
	assert.InDelta(t, call.Vega, put.Vega, 1e-12)
}

func TestBlackScholesGreeksSignConventions(t *testing.T) {
	t.Parallel()

	call, ok := BlackScholesGreeks(100, 90, 0.5, 0, 0.25, Call)
	require.True(t, ok)
	put, ok := BlackScholesGreeks(100, 110, 0.5, 0, 0.25, Put)
	require.True(t, ok)

	assert.Greater(t, call.Delta, 0.0)
	assert.LessOrEqual(t, call.Delta, 1.0)
	assert.Less(t, put.Delta, 0.0)
	assert.GreaterOrEqual(t, put.Delta, -1.0)

	// Long options decay; gamma and vega are positive for both rights.
	assert.Negative(t, call.Theta)
	assert.Negative(t, put.Theta)
	assert.Positive(t, call.Gamma)
	assert.Positive(t, put.Vega)
}

func TestBlackScholesGreeksInvalidInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                        string
		spot, strike, tYears, sigma float64
	}{
		{"zero_vol", 100, 100, 0.25, 0},
		{"negative_vol", 100, 100, 0.25, -0.2},
		{"expired", 100, 100, 0, 0.2},
		{"negative_time", 100, 100, -0.1, 0.2},
		{"zero_spot", 0, 100, 0.25, 0.2},
		{"zero_strike", 100, 0, 0.25, 0.2},
		{"vol_time_underflow", 100, 100, 1e-30, 1e-30},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, ok := BlackScholesGreeks(tt.spot, tt.strike, tt.tYears, 0, tt.sigma, Call)
			assert.False(t, ok, "invalid inputs must report unknown Greeks")
			assert.Zero(t, g)
		})
	}
}

func TestBlackScholesGreeksDeterministic(t *testing.T) {
	t.Parallel()

	a, okA := BlackScholesGreeks(457.3, 460, 0.123, 0, 0.187, Put)
	b, okB := BlackScholesGreeks(457.3, 460, 0.123, 0, 0.187, Put)
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, a, b)
}
