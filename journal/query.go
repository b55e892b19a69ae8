package journal

import (
	"database/sql"
	"fmt"
	"strings"
)

const tradeColumns = `trade_id, date, instrument, market, strategy, platform,
	direction, entry_time, exit_time, size_qty, entry_price, exit_price,
	stop_loss, target_price, exit_reason, chart_url, notes, tags`

// GetTrade returns a single trade record by ID.
func (j *SQLiteJournal) GetTrade(tradeID string) (TradeRecord, error) {
	row := j.db.QueryRow(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE trade_id = ?`, tradeID)

	rec, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return TradeRecord{}, fmt.Errorf("trade %q not found", tradeID)
		}
		return TradeRecord{}, err
	}
	return rec, nil
}

// ListTrades returns every logged trade ordered by date then entry time.
func (j *SQLiteJournal) ListTrades() ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT ` + tradeColumns + `
		FROM trades
		ORDER BY date ASC, entry_time ASC`)
	if err != nil {
		return nil, err
	}
	return collectTrades(rows)
}

// ListTradesBetween returns trades whose date is within [start, end).
// Both bounds are YYYY-MM-DD strings.
func (j *SQLiteJournal) ListTradesBetween(start, end string) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE date >= ? AND date < ?
		ORDER BY date ASC, entry_time ASC`, start, end)
	if err != nil {
		return nil, err
	}
	return collectTrades(rows)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(s scanner) (TradeRecord, error) {
	var rec TradeRecord
	var direction, tags string

	err := s.Scan(
		&rec.TradeID,
		&rec.Date,
		&rec.Instrument,
		&rec.Market,
		&rec.Strategy,
		&rec.Platform,
		&direction,
		&rec.EntryTime,
		&rec.ExitTime,
		&rec.SizeQty,
		&rec.EntryPrice,
		&rec.ExitPrice,
		&rec.StopLoss,
		&rec.TargetPrice,
		&rec.ExitReason,
		&rec.ChartURL,
		&rec.Notes,
		&tags,
	)
	if err != nil {
		return TradeRecord{}, err
	}

	rec.Direction = Direction(direction)
	if tags != "" {
		rec.Tags = strings.Split(tags, ",")
	}
	return rec, nil
}

func collectTrades(rows *sql.Rows) ([]TradeRecord, error) {
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
