package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/optrisk/config"
	"github.com/rustyeddy/optrisk/journal"
	"github.com/rustyeddy/optrisk/metrics"
	"github.com/rustyeddy/optrisk/pkg/logger"
	"github.com/rustyeddy/optrisk/risk"
)

var (
	checkFile   string
	checkConfig string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate an order intent against portfolio risk limits",
	Long: `Check reads a YAML file with a portfolio snapshot and an order
intent, replays the snapshot's equity history into the drawdown tracker,
and prints the gate's verdict with every violated limit.

With a config file, the decision is also journaled and metrics updated.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "path to portfolio+order YAML file (required)")
	checkCmd.Flags().StringVarP(&checkConfig, "config", "c", "", "path to optrisk config file")
	_ = checkCmd.MarkFlagRequired("file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	var doc checkDoc
	if err := loadYAML(checkFile, &doc); err != nil {
		return err
	}

	cfg := config.Default()
	if checkConfig != "" {
		loaded, err := config.LoadFromFile(checkConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync()

	mgr := risk.NewManager(cfg.Policy(), log)
	snap := doc.Portfolio.toSnapshot()
	for _, pt := range snap.EquityHistory {
		mgr.RecordEquity(pt.Time, pt.Equity)
	}

	order := doc.Order.toIntent()
	assessment := mgr.AssessPortfolio(snap)
	decision := mgr.ValidateOrder(order, snap)

	printAssessment(assessment)
	printDecision(order, decision)

	if m := maybeMetrics(cfg); m != nil {
		m.ObserveAssessment(assessment)
		m.ObserveDecision(decision)
	}

	// Rejection is a normal outcome, not a CLI failure.
	return journalDecision(cfg, log, order, decision, mgr)
}

func maybeMetrics(cfg *config.Config) *metrics.Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	m := metrics.New()
	m.Serve(cfg.Metrics.Addr)
	return m
}

func journalDecision(cfg *config.Config, log *zap.Logger, order risk.OrderIntent, d risk.Decision, mgr *risk.Manager) error {
	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	if j == nil {
		return nil
	}
	defer j.Close()

	now := time.Now().UTC()
	rec := journal.NewDecisionRecord(now, order, d)
	if err := j.RecordDecision(rec); err != nil {
		return fmt.Errorf("journal decision: %w", err)
	}

	curve := mgr.EquityCurve()
	if len(curve) > 0 {
		latest := curve[len(curve)-1]
		err = j.RecordEquity(journal.EquitySnapshot{
			Time:     latest.Time,
			Equity:   latest.Equity,
			Peak:     mgr.PeakEquity(),
			Drawdown: mgr.CurrentDrawdown(),
		})
		if err != nil {
			return fmt.Errorf("journal equity: %w", err)
		}
	}

	log.Debug("decision journaled", zap.String("decision_id", rec.DecisionID))
	return nil
}

func openJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "", "none":
		return nil, nil
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	case "csv":
		return journal.NewCSV(cfg.Journal.DecisionsFile, cfg.Journal.EquityFile)
	default:
		return nil, fmt.Errorf("unknown journal type %q", cfg.Journal.Type)
	}
}

func printAssessment(a risk.Assessment) {
	fmt.Printf("equity:        $%.2f  (cash $%.2f, %d positions)\n", a.Equity, a.Cash, a.PositionCount)
	fmt.Printf("heat:          $%.2f of $%.2f cap (%.1f%%)\n", a.RiskUsed, a.RiskCap, 100*a.RiskUtil)
	fmt.Printf("beta exposure: %.2f\n", a.BetaExposure)
	fmt.Printf("drawdown:      %.2f%%", 100*a.Drawdown)
	if a.DrawdownBreached {
		fmt.Print("  [CIRCUIT BREAKER OPEN]")
	}
	fmt.Println()
}

func printDecision(order risk.OrderIntent, d risk.Decision) {
	if d.Admitted {
		fmt.Printf("ADMIT %s %s (max loss $%.2f)\n", order.Side, order.Symbol, order.EstMaxLoss)
		return
	}
	fmt.Printf("REJECT %s %s (max loss $%.2f)\n", order.Side, order.Symbol, order.EstMaxLoss)
	for _, r := range d.Reasons {
		fmt.Printf("  - %s: %s\n", r.Code, r.Msg)
	}
}
