package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/optrisk/options"
	"github.com/rustyeddy/optrisk/pkg/logger"
)

var analyzeFile string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute the risk profile of a multi-leg options structure",
	Long: `Analyze reads a YAML file describing option legs and prints the
structure's risk decomposition: net credit/debit, max loss and gain,
breakevens, aggregate Greeks, margin estimate and risk grade.

Example legs file:

  legs:
    - {symbol: SPY, right: put, strike: 435, qty: -1, price: 1.20}
    - {symbol: SPY, right: put, strike: 430, qty: 1, price: 0.80}
  hint: auto`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "path to legs YAML file (required)")
	_ = analyzeCmd.MarkFlagRequired("file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var doc legsDoc
	if err := loadYAML(analyzeFile, &doc); err != nil {
		return err
	}
	legs, hint, err := doc.toLegs()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.DefaultConfig())
	if err != nil {
		return err
	}
	defer log.Sync()

	p := options.NewCalculator(log).PositionRisk(legs, hint)
	printProfile(p)
	return nil
}

func printProfile(p options.RiskProfile) {
	fmt.Printf("shape:       %s\n", p.Shape)
	if p.Credit >= 0 {
		fmt.Printf("net credit:  $%.2f\n", p.Credit)
	} else {
		fmt.Printf("net debit:   $%.2f\n", -p.Credit)
	}
	fmt.Printf("max loss:    $%.2f\n", p.MaxLoss)
	fmt.Printf("max gain:    $%.2f\n", p.MaxGain)
	fmt.Printf("breakevens:  %v\n", p.Breakevens)
	fmt.Printf("margin est:  $%.2f\n", p.MarginEstimate)
	fmt.Printf("greeks:      delta %.4f  gamma %.4f  theta %.4f  vega %.4f\n",
		p.Greeks.Delta, p.Greeks.Gamma, p.Greeks.Theta, p.Greeks.Vega)
	fmt.Printf("risk/reward: %.2f\n", p.RiskReward)
	fmt.Printf("grade:       %s\n", p.Grade())
	if p.Approximate {
		fmt.Println("note:        heuristic estimate (unrecognized structure)")
	}
	if p.Degraded {
		fmt.Println("note:        DEGRADED - inputs could not be priced, conservative defaults")
	}
	for _, w := range p.Warnings {
		fmt.Printf("warning:     %s\n", w)
	}
}
