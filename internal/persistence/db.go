// Package persistence provides SQLite-based save-game storage. The full
// committed state is stored as one JSON snapshot per quarter; reports and
// notifications are mirrored into their own tables for cheap querying.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/mogul/internal/engine"
)

// DB wraps a SQLite connection for save-game persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		turn INTEGER PRIMARY KEY,
		state_json TEXT NOT NULL,
		saved_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS reports (
		quarter INTEGER PRIMARY KEY,
		business_income INTEGER NOT NULL,
		business_expenses INTEGER NOT NULL,
		business_net INTEGER NOT NULL,
		wage_income INTEGER NOT NULL,
		lifestyle_spend INTEGER NOT NULL,
		net_change INTEGER NOT NULL,
		closing_money INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS notifications (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		date TEXT NOT NULL,
		is_read INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS game_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_notifications_read ON notifications(is_read);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveState writes the committed state for a turn: the JSON snapshot plus
// the mirrored reports and notifications, in one transaction.
func (db *DB) SaveState(g *engine.GameState) error {
	blob, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT OR REPLACE INTO snapshots (turn, state_json) VALUES (?, ?)",
		g.Turn, string(blob),
	); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	for _, r := range g.Reports {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO reports
			(quarter, business_income, business_expenses, business_net,
			 wage_income, lifestyle_spend, net_change, closing_money)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			r.Quarter, r.BusinessIncome, r.BusinessExpenses, r.BusinessNet,
			r.WageIncome, r.LifestyleSpend, r.NetChange, r.ClosingMoney,
		); err != nil {
			return fmt.Errorf("insert report %d: %w", r.Quarter, err)
		}
	}

	for _, n := range g.Notifications {
		read := 0
		if n.IsRead {
			read = 1
		}
		if _, err := tx.Exec(`INSERT OR REPLACE INTO notifications
			(id, type, title, message, date, is_read)
			VALUES (?, ?, ?, ?, ?, ?)`,
			n.ID, n.Type, n.Title, n.Message, n.Date, read,
		); err != nil {
			return fmt.Errorf("insert notification %s: %w", n.ID, err)
		}
	}

	if _, err := tx.Exec(
		"INSERT OR REPLACE INTO game_meta (key, value) VALUES ('last_turn', ?)",
		fmt.Sprintf("%d", g.Turn),
	); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	slog.Info("game saved", "turn", g.Turn, "quarter", engine.QuarterLabel(g.Turn))
	return nil
}

// LoadLatest restores the most recently saved state. It returns nil with
// no error when the database holds no snapshots yet.
func (db *DB) LoadLatest() (*engine.GameState, error) {
	var blob string
	err := db.conn.Get(&blob,
		"SELECT state_json FROM snapshots ORDER BY turn DESC LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var g engine.GameState
	if err := json.Unmarshal([]byte(blob), &g); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &g, nil
}

// LoadTurn restores the snapshot for one specific turn.
func (db *DB) LoadTurn(turn int) (*engine.GameState, error) {
	var blob string
	if err := db.conn.Get(&blob,
		"SELECT state_json FROM snapshots WHERE turn = ?", turn); err != nil {
		return nil, fmt.Errorf("load turn %d: %w", turn, err)
	}

	var g engine.GameState
	if err := json.Unmarshal([]byte(blob), &g); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &g, nil
}

type reportRow struct {
	Quarter          int   `db:"quarter"`
	BusinessIncome   int64 `db:"business_income"`
	BusinessExpenses int64 `db:"business_expenses"`
	BusinessNet      int64 `db:"business_net"`
	WageIncome       int64 `db:"wage_income"`
	LifestyleSpend   int64 `db:"lifestyle_spend"`
	NetChange        int64 `db:"net_change"`
	ClosingMoney     int64 `db:"closing_money"`
}

// Reports returns the most recent N quarterly reports, oldest first.
func (db *DB) Reports(limit int) ([]engine.QuarterReport, error) {
	var rows []reportRow
	err := db.conn.Select(&rows,
		"SELECT * FROM reports ORDER BY quarter DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}

	out := make([]engine.QuarterReport, len(rows))
	for i, r := range rows {
		out[len(out)-1-i] = engine.QuarterReport{
			Quarter:          r.Quarter,
			BusinessIncome:   r.BusinessIncome,
			BusinessExpenses: r.BusinessExpenses,
			BusinessNet:      r.BusinessNet,
			WageIncome:       r.WageIncome,
			LifestyleSpend:   r.LifestyleSpend,
			NetChange:        r.NetChange,
			ClosingMoney:     r.ClosingMoney,
		}
	}
	return out, nil
}

// MarkNotificationRead flags one notification as read.
func (db *DB) MarkNotificationRead(id string) error {
	_, err := db.conn.Exec(
		"UPDATE notifications SET is_read = 1 WHERE id = ?", id)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM game_meta WHERE key = ?", key)
	return value, err
}
