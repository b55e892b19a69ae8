// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	instrument TEXT NOT NULL,
	market TEXT NOT NULL,
	strategy TEXT NOT NULL,
	platform TEXT NOT NULL,
	direction TEXT NOT NULL,
	entry_time TEXT NOT NULL,
	exit_time TEXT NOT NULL,
	size_qty REAL NOT NULL,
	entry_price REAL NOT NULL,
	exit_price REAL NOT NULL,
	stop_loss REAL NOT NULL,
	target_price REAL NOT NULL,
	exit_reason TEXT NOT NULL DEFAULT '',
	chart_url TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date, entry_time);
`
