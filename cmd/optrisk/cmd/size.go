package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/optrisk/sizing"
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Convert a risk budget into a share or contract count",
	Long: `Size computes position sizes from a risk budget.

Subcommands:
  vol     - shares from trailing realized volatility
  spread  - credit-spread contracts from defined risk per contract
  corr    - scale an existing size by correlation to the book`,
}

var (
	volPricesFile string
	volEquity     float64
	volRisk       float64
	volLookback   int
	volPriceNow   float64
)

var sizeVolCmd = &cobra.Command{
	Use:   "vol",
	Short: "Size shares from trailing realized volatility",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prices, err := readPrices(volPricesFile)
		if err != nil {
			return err
		}
		n := sizing.SharesByVolatility(prices, volEquity, volRisk, volLookback, volPriceNow)
		fmt.Printf("%d shares\n", n)
		return nil
	},
}

var (
	spreadCredit float64
	spreadWidth  float64
	spreadEquity float64
	spreadRisk   float64
	spreadMaxN   int
)

var sizeSpreadCmd = &cobra.Command{
	Use:   "spread",
	Short: "Size credit-spread contracts from defined risk",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n := sizing.CreditSpreadContracts(spreadCredit, spreadWidth, spreadEquity, spreadRisk,
			sizing.DefaultMultiplier, spreadMaxN)
		fmt.Printf("%d contracts\n", n)
		return nil
	},
}

var (
	corrBase     int
	corrValue    float64
	corrSoftCap  float64
	corrMinScale float64
)

var sizeCorrCmd = &cobra.Command{
	Use:   "corr",
	Short: "Scale a size by average correlation to the book",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n := sizing.CorrelationScale(corrBase, corrValue, corrSoftCap, corrMinScale)
		fmt.Printf("%d\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)
	sizeCmd.AddCommand(sizeVolCmd, sizeSpreadCmd, sizeCorrCmd)

	sizeVolCmd.Flags().StringVar(&volPricesFile, "prices", "", "file with one closing price per line (required)")
	sizeVolCmd.Flags().Float64Var(&volEquity, "equity", 0, "account equity (required)")
	sizeVolCmd.Flags().Float64Var(&volRisk, "risk", 0.01, "per-position risk fraction")
	sizeVolCmd.Flags().IntVar(&volLookback, "lookback", 20, "volatility lookback window")
	sizeVolCmd.Flags().Float64Var(&volPriceNow, "price", 0, "current price (defaults to last in file)")
	_ = sizeVolCmd.MarkFlagRequired("prices")
	_ = sizeVolCmd.MarkFlagRequired("equity")

	sizeSpreadCmd.Flags().Float64Var(&spreadCredit, "credit", 0, "credit per contract, per share (required)")
	sizeSpreadCmd.Flags().Float64Var(&spreadWidth, "width", 0, "strike width, per share (required)")
	sizeSpreadCmd.Flags().Float64Var(&spreadEquity, "equity", 0, "account equity (required)")
	sizeSpreadCmd.Flags().Float64Var(&spreadRisk, "risk", 0.01, "per-position risk fraction")
	sizeSpreadCmd.Flags().IntVar(&spreadMaxN, "max-contracts", sizing.DefaultMaxContracts, "contract cap")
	_ = sizeSpreadCmd.MarkFlagRequired("credit")
	_ = sizeSpreadCmd.MarkFlagRequired("width")
	_ = sizeSpreadCmd.MarkFlagRequired("equity")

	sizeCorrCmd.Flags().IntVar(&corrBase, "base", 0, "base size to scale (required)")
	sizeCorrCmd.Flags().Float64Var(&corrValue, "corr", 0, "average correlation to the book (required)")
	sizeCorrCmd.Flags().Float64Var(&corrSoftCap, "soft-cap", sizing.DefaultCorrSoftCap, "correlation soft cap")
	sizeCorrCmd.Flags().Float64Var(&corrMinScale, "min-scale", sizing.DefaultMinCorrScale, "scale at correlation 1.0")
	_ = sizeCorrCmd.MarkFlagRequired("base")
	_ = sizeCorrCmd.MarkFlagRequired("corr")
}

// readPrices loads one float per line, ignoring blanks and # comments.
func readPrices(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open prices: %w", err)
	}
	defer f.Close()

	var prices []float64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("parse price %q: %w", line, err)
		}
		prices = append(prices, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return prices, nil
}
