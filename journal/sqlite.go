package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordDecision(d DecisionRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO decisions
		(decision_id, time, symbol, side, est_max_loss, est_value, admitted, reasons)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.DecisionID, d.Time, d.Symbol, d.Side,
		d.EstMaxLoss, d.EstValue, d.Admitted, d.Reasons,
	)
	return err
}

func (j *SQLite) RecordEquity(e EquitySnapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO equity (time, equity, peak, drawdown)
		VALUES (?, ?, ?, ?)`,
		e.Time, e.Equity, e.Peak, e.Drawdown,
	)
	return err
}

// GetDecision looks a decision up by its ULID.
func (j *SQLite) GetDecision(decisionID string) (DecisionRecord, error) {
	row := j.db.QueryRow(`
		SELECT decision_id, time, symbol, side, est_max_loss, est_value, admitted, reasons
		FROM decisions WHERE decision_id = ?`, decisionID)

	var d DecisionRecord
	err := row.Scan(&d.DecisionID, &d.Time, &d.Symbol, &d.Side,
		&d.EstMaxLoss, &d.EstValue, &d.Admitted, &d.Reasons)
	if err == sql.ErrNoRows {
		return d, fmt.Errorf("decision %s not found", decisionID)
	}
	return d, err
}

// ListDecisionsBetween returns decisions in [start, end), oldest first.
func (j *SQLite) ListDecisionsBetween(start, end time.Time) ([]DecisionRecord, error) {
	rows, err := j.db.Query(`
		SELECT decision_id, time, symbol, side, est_max_loss, est_value, admitted, reasons
		FROM decisions WHERE time >= ? AND time < ?
		ORDER BY time ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []DecisionRecord
	for rows.Next() {
		var d DecisionRecord
		if err := rows.Scan(&d.DecisionID, &d.Time, &d.Symbol, &d.Side,
			&d.EstMaxLoss, &d.EstValue, &d.Admitted, &d.Reasons); err != nil {
			return nil, err
		}
		recs = append(recs, d)
	}
	return recs, rows.Err()
}

// ListRejected returns rejected decisions in [start, end), oldest first.
func (j *SQLite) ListRejected(start, end time.Time) ([]DecisionRecord, error) {
	recs, err := j.ListDecisionsBetween(start, end)
	if err != nil {
		return nil, err
	}
	out := recs[:0]
	for _, d := range recs {
		if !d.Admitted {
			out = append(out, d)
		}
	}
	return out, nil
}

// ListEquity returns the stored equity curve, oldest first.
func (j *SQLite) ListEquity() ([]EquitySnapshot, error) {
	rows, err := j.db.Query(`SELECT time, equity, peak, drawdown FROM equity ORDER BY time ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []EquitySnapshot
	for rows.Next() {
		var e EquitySnapshot
		if err := rows.Scan(&e.Time, &e.Equity, &e.Peak, &e.Drawdown); err != nil {
			return nil, err
		}
		snaps = append(snaps, e)
	}
	return snaps, rows.Err()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
