package cmd

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/optrisk/options"
	"github.com/rustyeddy/optrisk/risk"
)

// legDoc is the YAML form of one option leg. Greeks fields are pointers so
// "absent" stays distinguishable from zero.
type legDoc struct {
	Symbol string   `yaml:"symbol"`
	Expiry string   `yaml:"expiry"`
	Right  string   `yaml:"right"`
	Strike float64  `yaml:"strike"`
	Qty    int      `yaml:"qty"`
	Price  float64  `yaml:"price"`
	Delta  *float64 `yaml:"delta"`
	Gamma  *float64 `yaml:"gamma"`
	Theta  *float64 `yaml:"theta"`
	Vega   *float64 `yaml:"vega"`
}

type legsDoc struct {
	Legs []legDoc `yaml:"legs"`
	Hint string   `yaml:"hint"`
}

type positionDoc struct {
	Symbol  string  `yaml:"symbol"`
	Qty     float64 `yaml:"qty"`
	Mark    float64 `yaml:"mark"`
	Value   float64 `yaml:"value"`
	MaxLoss float64 `yaml:"max_loss"`
	Beta    float64 `yaml:"beta"`
	Sector  string  `yaml:"sector"`
}

type equityPointDoc struct {
	Time   time.Time `yaml:"time"`
	Equity float64   `yaml:"equity"`
}

type portfolioDoc struct {
	Equity        float64          `yaml:"equity"`
	Cash          float64          `yaml:"cash"`
	Positions     []positionDoc    `yaml:"positions"`
	EquityHistory []equityPointDoc `yaml:"equity_history"`
}

type orderDoc struct {
	Symbol      string   `yaml:"symbol"`
	Side        string   `yaml:"side"`
	EstMaxLoss  float64  `yaml:"est_max_loss"`
	EstValue    float64  `yaml:"est_value"`
	Correlation *float64 `yaml:"correlation"`
	Beta        float64  `yaml:"beta"`
}

type checkDoc struct {
	Portfolio portfolioDoc `yaml:"portfolio"`
	Order     orderDoc     `yaml:"order"`
}

func loadYAML(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (d legDoc) toLeg() (options.Leg, error) {
	right, err := options.ParseRight(d.Right)
	if err != nil {
		return options.Leg{}, err
	}

	leg := options.Leg{
		Symbol: d.Symbol,
		Expiry: d.Expiry,
		Right:  right,
		Strike: d.Strike,
		Qty:    d.Qty,
		Price:  d.Price,
	}
	if d.Delta != nil || d.Gamma != nil || d.Theta != nil || d.Vega != nil {
		g := &options.Greeks{}
		if d.Delta != nil {
			g.Delta = *d.Delta
		}
		if d.Gamma != nil {
			g.Gamma = *d.Gamma
		}
		if d.Theta != nil {
			g.Theta = *d.Theta
		}
		if d.Vega != nil {
			g.Vega = *d.Vega
		}
		leg.Greeks = g
	}
	return leg, nil
}

func (d legsDoc) toLegs() ([]options.Leg, options.Shape, error) {
	legs := make([]options.Leg, 0, len(d.Legs))
	for i, ld := range d.Legs {
		leg, err := ld.toLeg()
		if err != nil {
			return nil, options.ShapeAuto, fmt.Errorf("leg %d: %w", i, err)
		}
		legs = append(legs, leg)
	}

	hint := options.ShapeAuto
	if d.Hint != "" {
		var err error
		hint, err = options.ParseShape(d.Hint)
		if err != nil {
			return nil, options.ShapeAuto, err
		}
	}
	return legs, hint, nil
}

func (d portfolioDoc) toSnapshot() risk.PortfolioSnapshot {
	snap := risk.PortfolioSnapshot{
		Equity: d.Equity,
		Cash:   d.Cash,
	}
	for _, p := range d.Positions {
		snap.Positions = append(snap.Positions, risk.Position{
			Symbol:  p.Symbol,
			Qty:     p.Qty,
			Mark:    p.Mark,
			Value:   p.Value,
			MaxLoss: p.MaxLoss,
			Beta:    p.Beta,
			Sector:  p.Sector,
		})
	}
	for _, e := range d.EquityHistory {
		snap.EquityHistory = append(snap.EquityHistory, risk.EquityPoint{Time: e.Time, Equity: e.Equity})
	}
	return snap
}

func (d orderDoc) toIntent() risk.OrderIntent {
	corr := math.NaN()
	if d.Correlation != nil {
		corr = *d.Correlation
	}
	return risk.OrderIntent{
		Symbol:          d.Symbol,
		Side:            d.Side,
		EstMaxLoss:      d.EstMaxLoss,
		EstValue:        d.EstValue,
		CorrelationHint: corr,
		Beta:            d.Beta,
	}
}
