package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "optrisk",
	Short: "Pre-trade risk gate and options risk calculator",
	Long: `Optrisk is the risk core of an options trading stack.

It provides tools for:
  - Decomposing multi-leg option structures into max loss/gain, breakevens,
    Greeks and a risk grade
  - Validating order intents against portfolio heat, drawdown, correlation
    and beta limits
  - Risk-budget position sizing (volatility, credit spreads, correlation)
  - Journaling gate decisions and the session equity curve`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
