package journal

const Schema = `
CREATE TABLE IF NOT EXISTS decisions (
	decision_id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	est_max_loss REAL NOT NULL,
	est_value REAL NOT NULL,
	admitted INTEGER NOT NULL,
	reasons TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_decisions_time ON decisions(time);

CREATE TABLE IF NOT EXISTS equity (
	time DATETIME NOT NULL,
	equity REAL NOT NULL,
	peak REAL NOT NULL,
	drawdown REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_equity_time ON equity(time);
`
