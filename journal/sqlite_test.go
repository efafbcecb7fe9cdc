package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/optrisk/risk"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('decisions','equity')`)
	require.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["decisions"])
	assert.True(t, found["equity"])
}

func TestRecordAndGetDecision(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	order := risk.OrderIntent{
		Symbol:     "SPY",
		Side:       "sell",
		EstMaxLoss: 420,
		EstValue:   5000,
	}
	decision := risk.Decision{Admitted: false, Reasons: []risk.Reason{
		{Code: "PORTFOLIO_HEAT_CAP", Msg: "over heat cap"},
		{Code: "POSITION_RISK_CAP", Msg: "over position cap"},
	}}

	rec := NewDecisionRecord(time.Date(2026, 3, 9, 15, 4, 0, 0, time.UTC), order, decision)
	require.NotEmpty(t, rec.DecisionID)
	require.NoError(t, j.RecordDecision(rec))

	got, err := j.GetDecision(rec.DecisionID)
	require.NoError(t, err)
	assert.Equal(t, "SPY", got.Symbol)
	assert.False(t, got.Admitted)
	assert.Equal(t, "PORTFOLIO_HEAT_CAP;POSITION_RISK_CAP", got.Reasons)
	assert.InDelta(t, 420, got.EstMaxLoss, 1e-9)
}

func TestGetDecisionMissing(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	_, err := j.GetDecision("01HZZZZZZZZZZZZZZZZZZZZZZZ")
	assert.Error(t, err)
}

func TestListDecisionsBetween(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	base := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	for i, admitted := range []bool{true, false, true} {
		d := risk.Decision{Admitted: admitted}
		if !admitted {
			d.Reasons = []risk.Reason{{Code: "EQUITY_TOO_LOW", Msg: "equity low"}}
		}
		rec := NewDecisionRecord(base.Add(time.Duration(i)*time.Hour),
			risk.OrderIntent{Symbol: "QQQ"}, d)
		require.NoError(t, j.RecordDecision(rec))
	}

	all, err := j.ListDecisionsBetween(base, base.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, all, 3)

	rejected, err := j.ListRejected(base, base.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, "EQUITY_TOO_LOW", rejected[0].Reasons)

	none, err := j.ListDecisionsBetween(base.Add(4*time.Hour), base.Add(5*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRecordEquityRoundTrip(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	ts := time.Date(2026, 3, 9, 16, 0, 0, 0, time.UTC)

	require.NoError(t, j.RecordEquity(EquitySnapshot{Time: ts, Equity: 95000, Peak: 100000, Drawdown: 0.05}))
	require.NoError(t, j.RecordEquity(EquitySnapshot{Time: ts.Add(time.Minute), Equity: 96000, Peak: 100000, Drawdown: 0.04}))

	snaps, err := j.ListEquity()
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.InDelta(t, 95000, snaps[0].Equity, 1e-9)
	assert.InDelta(t, 0.04, snaps[1].Drawdown, 1e-9)
}
