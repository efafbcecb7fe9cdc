package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	decisions *csv.Writer
	equity    *csv.Writer
	df, ef    *os.File
}

func NewCSV(decisionsPath, equityPath string) (*CSVJournal, error) {
	df, err := os.Create(decisionsPath)
	if err != nil {
		return nil, err
	}
	ef, err := os.Create(equityPath)
	if err != nil {
		df.Close()
		return nil, err
	}

	dw := csv.NewWriter(df)
	ew := csv.NewWriter(ef)

	if err := dw.Write([]string{"decision_id", "time", "symbol", "side", "est_max_loss", "est_value", "admitted", "reasons"}); err != nil {
		return nil, err
	}
	if err := ew.Write([]string{"time", "equity", "peak", "drawdown"}); err != nil {
		return nil, err
	}

	dw.Flush()
	if err := dw.Error(); err != nil {
		return nil, err
	}
	ew.Flush()
	if err := ew.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{dw, ew, df, ef}, nil
}

func (j *CSVJournal) RecordDecision(d DecisionRecord) error {
	err := j.decisions.Write([]string{
		d.DecisionID,
		d.Time.Format(time.RFC3339),
		d.Symbol,
		d.Side,
		f(d.EstMaxLoss),
		f(d.EstValue),
		strconv.FormatBool(d.Admitted),
		d.Reasons,
	})
	if err != nil {
		return err
	}
	j.decisions.Flush()
	return j.decisions.Error()
}

func (j *CSVJournal) RecordEquity(e EquitySnapshot) error {
	err := j.equity.Write([]string{
		e.Time.Format(time.RFC3339),
		f(e.Equity),
		f(e.Peak),
		f(e.Drawdown),
	})
	if err != nil {
		return err
	}
	j.equity.Flush()
	return j.equity.Error()
}

func (j *CSVJournal) Close() error {
	j.decisions.Flush()
	if err := j.decisions.Error(); err != nil {
		return err
	}
	j.equity.Flush()
	if err := j.equity.Error(); err != nil {
		return err
	}

	if err := j.df.Close(); err != nil {
		return err
	}
	return j.ef.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
