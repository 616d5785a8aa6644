package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analysis reports to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_reports (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			symbol          TEXT NOT NULL,
			kind            TEXT NOT NULL,
			vendor          TEXT,
			current_price   REAL,
			rsi             REAL,
			macd            REAL,
			macd_signal     REAL,
			bollinger_upper REAL,
			bollinger_lower REAL,
			rsi_trend       TEXT,
			macd_trend      TEXT,
			bollinger_trend TEXT,
			report          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_ts ON analysis_reports(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_symbol ON analysis_reports(symbol, kind)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordAnalysis inserts one report row.
func (r *SQLiteRecorder) RecordAnalysis(rec *AnalysisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO analysis_reports
		(timestamp, symbol, kind, vendor, current_price,
		 rsi, macd, macd_signal, bollinger_upper, bollinger_lower,
		 rsi_trend, macd_trend, bollinger_trend, report)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.Symbol, rec.Kind, rec.Vendor, rec.CurrentPrice,
		rec.RSI, rec.MACD, rec.MACDSignal, rec.BollingerUpper, rec.BollingerLower,
		rec.RSITrend, rec.MACDTrend, rec.BollingerTrend, rec.Report,
	)
	return err
}

// Close closes the underlying database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
