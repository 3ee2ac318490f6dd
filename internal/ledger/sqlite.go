package ledger

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS defeated_characters (
	name     TEXT PRIMARY KEY,
	defeated INTEGER NOT NULL
)`

// SQLiteStore keeps the ledger in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at dsn and ensures the schema.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open ledger db: %w", err)
	}
	// One writer; the game is single-threaded anyway
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create ledger schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load returns every recorded entry.
func (s *SQLiteStore) Load(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, defeated FROM defeated_characters`)
	if err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	defer rows.Close()

	defeated := map[string]bool{}
	for rows.Next() {
		var (
			name string
			flag int
		)
		if err := rows.Scan(&name, &flag); err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		defeated[name] = flag != 0
	}
	return defeated, rows.Err()
}

// SaveDefeated upserts name as defeated.
func (s *SQLiteStore) SaveDefeated(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO defeated_characters (name, defeated) VALUES (?, 1)
		 ON CONFLICT(name) DO UPDATE SET defeated = 1`, name)
	if err != nil {
		return fmt.Errorf("save defeated %q: %w", name, err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
