package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dhanbad/wellness-admin/internal/domain"

	_ "modernc.org/sqlite"
)

// sqliteStorage implements SnapshotStorage on a single-table SQLite database:
// one row per key, the aggregate JSON-encoded in the value column. SQLite
// gives the atomic overwrite-on-save the full-snapshot model needs without
// any server.
type sqliteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens (creating if needed) the database at dbPath.
func NewSQLiteStorage(dbPath string) (SnapshotStorage, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS app_state (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create app_state table: %w", err)
	}

	return &sqliteStorage{db: db}, nil
}

func (s *sqliteStorage) Load(ctx context.Context) (domain.AppData, bool, error) {
	var blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, SnapshotKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AppData{}, false, nil
	}
	if err != nil {
		return domain.AppData{}, false, fmt.Errorf("read snapshot: %w", err)
	}

	var data domain.AppData
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		return domain.AppData{}, true, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	// Older blobs predate the invoicing collections.
	data.Normalize()
	return data, true, nil
}

func (s *sqliteStorage) Save(ctx context.Context, data domain.AppData) error {
	blob, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		SnapshotKey, string(blob))
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (s *sqliteStorage) Close() error {
	return s.db.Close()
}
