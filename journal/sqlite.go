package journal

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/tradebook/pkg/id"
)

// SQLiteJournal stores logged trades in a local sqlite database.
type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

// InsertTrade validates and stores a trade. A blank TradeID is assigned a
// fresh ULID; the ID actually stored is returned.
func (j *SQLiteJournal) InsertTrade(t TradeRecord) (string, error) {
	if t.TradeID == "" {
		t.TradeID = id.New()
	}
	if err := t.Validate(); err != nil {
		return "", err
	}

	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, date, instrument, market, strategy, platform, direction,
		 entry_time, exit_time, size_qty, entry_price, exit_price, stop_loss,
		 target_price, exit_reason, chart_url, notes, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.Date, t.Instrument, t.Market, t.Strategy, t.Platform,
		string(t.Direction), t.EntryTime, t.ExitTime, t.SizeQty, t.EntryPrice,
		t.ExitPrice, t.StopLoss, t.TargetPrice, t.ExitReason, t.ChartURL,
		t.Notes, strings.Join(t.Tags, ","),
	)
	return t.TradeID, err
}

func (j *SQLiteJournal) DeleteTrade(tradeID string) error {
	_, err := j.db.Exec(`DELETE FROM trades WHERE trade_id = ?`, tradeID)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
