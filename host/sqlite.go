package host

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id        TEXT PRIMARY KEY,
	created_at    TEXT NOT NULL,
	horizon_ticks INTEGER NOT NULL,
	seed          INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS samples (
	run_id TEXT NOT NULL,
	tick   INTEGER NOT NULL,
	node   INTEGER NOT NULL,
	kind   TEXT NOT NULL,
	port   TEXT NOT NULL,
	value  REAL NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs (run_id)
);
CREATE INDEX IF NOT EXISTS idx_samples_run_tick ON samples (run_id, tick);
`

// SQLiteRecorder persists run metadata and output samples to a SQLite file.
// Samples are staged in one transaction and committed on Close, so a crashed
// run leaves the runs row but no torn sample set.
type SQLiteRecorder struct {
	db     *sql.DB
	tx     *sql.Tx
	insert *sql.Stmt
	runID  string
}

// NewSQLiteRecorder opens (creating if needed) the database at path, ensures
// the schema, and registers the run.
func NewSQLiteRecorder(path, runID string, sc *Scenario) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite trace: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}

	if _, err := db.Exec(
		`INSERT INTO runs (run_id, created_at, horizon_ticks, seed) VALUES (?, ?, ?, ?)`,
		runID, time.Now().UTC().Format(time.RFC3339), sc.HorizonTicks, sc.Seed,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("register run: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("begin sample transaction: %w", err)
	}
	insert, err := tx.Prepare(
		`INSERT INTO samples (run_id, tick, node, kind, port, value) VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		tx.Rollback()
		db.Close()
		return nil, fmt.Errorf("prepare sample insert: %w", err)
	}

	return &SQLiteRecorder{db: db, tx: tx, insert: insert, runID: runID}, nil
}

func (r *SQLiteRecorder) Record(s Sample) error {
	if _, err := r.insert.Exec(r.runID, s.Tick, int64(s.Node), s.Kind, s.Port, s.Value); err != nil {
		return fmt.Errorf("insert sample: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	defer r.db.Close()

	if err := r.insert.Close(); err != nil {
		r.tx.Rollback()
		return fmt.Errorf("close sample insert: %w", err)
	}
	if err := r.tx.Commit(); err != nil {
		return fmt.Errorf("commit samples: %w", err)
	}
	return nil
}
