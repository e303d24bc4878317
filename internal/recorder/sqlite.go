package recorder

import (
	"database/sql"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"NightCycle/internal/model"
)

// SQLiteRecorder persists run history to a SQLite database.
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

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			uuid      TEXT NOT NULL UNIQUE,
			timestamp INTEGER NOT NULL,
			source    TEXT,
			last_date TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS run_metrics (
			run_id   INTEGER NOT NULL REFERENCES runs(id),
			position INTEGER NOT NULL,
			name     TEXT NOT NULL,
			value    REAL,
			PRIMARY KEY (run_id, position)
		)`,

		`CREATE TABLE IF NOT EXISTS trajectory (
			run_id     INTEGER NOT NULL REFERENCES runs(id),
			date       TEXT NOT NULL,
			blended    REAL,
			cumulative REAL,
			rebalanced REAL,
			PRIMARY KEY (run_id, date)
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:30], err)
		}
	}
	return nil
}

// nullable maps undefined and non-finite values to SQL NULL.
func nullable(v model.Value) sql.NullFloat64 {
	if !v.Valid || math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v.Float, Valid: true}
}

// RecordRun stores the run, its summary metrics and its trajectory in one
// transaction and returns the run id.
func (r *SQLiteRecorder) RecordRun(rec *RunRecord) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var lastDate string
	for _, m := range rec.Summary.Metrics {
		if m.Kind == model.KindDate {
			lastDate = m.Date.Format("2006-01-02")
			break
		}
	}

	res, err := tx.Exec(`INSERT INTO runs (uuid, timestamp, source, last_date) VALUES (?,?,?,?)`,
		rec.UUID, rec.RanAt.Unix(), rec.Source, lastDate)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	for i, m := range rec.Summary.Metrics {
		if m.Kind == model.KindDate {
			continue
		}
		if _, err := tx.Exec(`INSERT INTO run_metrics (run_id, position, name, value) VALUES (?,?,?,?)`,
			runID, i, m.Name, nullable(m.Value)); err != nil {
			return 0, fmt.Errorf("insert metric %s: %w", m.Name, err)
		}
	}

	for _, p := range rec.Trajectory {
		if _, err := tx.Exec(`INSERT INTO trajectory (run_id, date, blended, cumulative, rebalanced) VALUES (?,?,?,?,?)`,
			runID, p.Date.Format("2006-01-02"),
			nullable(p.Blended), nullable(p.Cumulative), nullable(p.Rebalanced)); err != nil {
			return 0, fmt.Errorf("insert trajectory %s: %w", p.Date.Format("2006-01-02"), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return runID, nil
}

// MetricHistory returns the recorded values of one metric, oldest run first.
// Undefined values come back as invalid entries.
func (r *SQLiteRecorder) MetricHistory(name string) ([]model.Value, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT m.value FROM run_metrics m
		JOIN runs r ON r.id = m.run_id
		WHERE m.name = ? ORDER BY r.id ASC`, name)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []model.Value
	for rows.Next() {
		var v sql.NullFloat64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		out = append(out, model.Value{Float: v.Float64, Valid: v.Valid})
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
