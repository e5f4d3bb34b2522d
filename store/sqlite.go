package store

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"linechart/models"
)

//go:embed schema.sql
var schemaFS embed.FS

// SQLite keeps observations of both series in one table. Rows come back in insertion order, which is the order
// the line is drawn in.
type SQLite struct {
	db   *sql.DB
	path string
}

func OpenSQLite(path string) (*SQLite, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("executing schema: %w", err)
	}

	return &SQLite{db: db, path: path}, nil
}

// Append adds observations to the end of a series in one transaction.
func (s *SQLite) Append(series string, observations ...models.Observation) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO observations (series, time_ms, views) VALUES (?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range observations {
		if _, err := stmt.Exec(series, o.Time().UnixMilli(), o.Views()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert %s observation: %w", series, err)
		}
	}
	return tx.Commit()
}

// Dataset reads the sessions and events series. Rows of any other series are ignored.
func (s *SQLite) Dataset() (*models.Dataset, error) {
	sessions, err := s.observations(SESSIONS_SERIES)
	if err != nil {
		return nil, err
	}
	events, err := s.observations(EVENTS_SERIES)
	if err != nil {
		return nil, err
	}
	return NewDataset(sessions, events), nil
}

func (s *SQLite) observations(series string) ([]models.Observation, error) {
	rows, err := s.db.Query(`SELECT time_ms, views FROM observations WHERE series = ? ORDER BY rowid`, series)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", series, err)
	}
	defer rows.Close()

	var observations []models.Observation
	for rows.Next() {
		var timeMs int64
		var views float64
		if err := rows.Scan(&timeMs, &views); err != nil {
			return nil, fmt.Errorf("scan %s: %w", series, err)
		}
		observations = append(observations, models.NewObservation(time.UnixMilli(timeMs).UTC(), views))
	}
	return observations, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
