package export

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/iksnae/voice-pulse/internal"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE session (
	id TEXT PRIMARY KEY,
	corpus TEXT NOT NULL,
	reply TEXT NOT NULL,
	sentiment REAL NOT NULL,
	energy REAL NOT NULL,
	accepted INTEGER NOT NULL,
	updated_at TEXT
);
CREATE TABLE segments (
	id TEXT PRIMARY KEY,
	seq INTEGER NOT NULL,
	text TEXT NOT NULL,
	timestamp TEXT
);
CREATE TABLE keywords (
	rank INTEGER PRIMARY KEY,
	keyword TEXT NOT NULL
);
CREATE TABLE clusters (
	rank INTEGER PRIMARY KEY,
	label TEXT NOT NULL,
	score REAL NOT NULL,
	summary TEXT NOT NULL
);
CREATE TABLE insights (
	rank INTEGER PRIMARY KEY,
	id TEXT NOT NULL,
	label TEXT NOT NULL,
	detail TEXT NOT NULL,
	pulse REAL NOT NULL,
	delta REAL NOT NULL
);`

// SQLiteExporter writes the snapshot into a standalone SQLite database
type SQLiteExporter struct{}

// Export builds the database in a temporary file and streams it to w
func (e *SQLiteExporter) Export(state *internal.State, w io.Writer) error {
	dir, err := os.MkdirTemp("", "voice-pulse-export-*")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	path := filepath.Join(dir, "session.db")
	if err := WriteSQLite(state, path); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open export database: %w", err)
	}
	defer func() { _ = f.Close() }()

	_, err = io.Copy(w, f)
	return err
}

// WriteSQLite writes the snapshot into a new database at path
func WriteSQLite(state *internal.State, path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range strings.Split(sqliteSchema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	a := state.Analysis
	if _, err := tx.Exec(
		"INSERT INTO session (id, corpus, reply, sentiment, energy, accepted, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		state.SessionID, state.Corpus, state.Reply, a.Sentiment, a.Energy, state.Accepted, formatTime(state.UpdatedAt),
	); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	for _, seg := range state.Segments {
		if _, err := tx.Exec("INSERT INTO segments (id, seq, text, timestamp) VALUES (?, ?, ?, ?)",
			seg.ID, seg.Seq, seg.Text, formatTime(seg.Timestamp)); err != nil {
			return fmt.Errorf("failed to insert segment %s: %w", seg.ID, err)
		}
	}
	for i, keyword := range a.Keywords {
		if _, err := tx.Exec("INSERT INTO keywords (rank, keyword) VALUES (?, ?)", i, keyword); err != nil {
			return fmt.Errorf("failed to insert keyword: %w", err)
		}
	}
	for i, c := range a.Clusters {
		if _, err := tx.Exec("INSERT INTO clusters (rank, label, score, summary) VALUES (?, ?, ?, ?)",
			i, c.Label, c.Score, c.Summary); err != nil {
			return fmt.Errorf("failed to insert cluster: %w", err)
		}
	}
	for i, in := range state.Insights {
		if _, err := tx.Exec("INSERT INTO insights (rank, id, label, detail, pulse, delta) VALUES (?, ?, ?, ?, ?, ?)",
			i, in.ID, in.Label, in.Detail, in.Pulse, in.Delta); err != nil {
			return fmt.Errorf("failed to insert insight: %w", err)
		}
	}

	return tx.Commit()
}

func formatTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339Nano)
}

// Extension returns the file extension for this format
func (e *SQLiteExporter) Extension() string {
	return "db"
}
