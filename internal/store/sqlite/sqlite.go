// Package sqlite implements the snapshot store on a local SQLite file
// via the cgo-free modernc driver. Suited to single-machine
// deployments where running Postgres would be overkill.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // sqlite driver

	"github.com/pantheonhq/soulengine/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	player_id  TEXT PRIMARY KEY,
	doc        BLOB NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
);`

type snapshotStore struct{ db *sql.DB }

var _ store.SnapshotStore = (*snapshotStore)(nil)

// Open opens (creating if needed) the snapshot database at path.
func Open(ctx context.Context, path string) (*snapshotStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// A single writer keeps the engine's one-mutation-at-a-time model.
	db.SetMaxOpenConns(1)

	_, err = db.ExecContext(ctx, schema)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &snapshotStore{db: db}, nil
}

func (s *snapshotStore) Load(ctx context.Context, playerID string) ([]byte, error) {
	var doc []byte

	err := s.db.QueryRowContext(ctx, `
		SELECT doc
		FROM snapshots
		WHERE player_id = ?
	`, playerID).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}

		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	return doc, nil
}

func (s *snapshotStore) Save(ctx context.Context, playerID string, doc []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (player_id, doc)
		VALUES (?, ?)
		ON CONFLICT (player_id)
		DO UPDATE SET doc = excluded.doc,
		              updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
	`, playerID, doc)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return nil
}

func (s *snapshotStore) Delete(ctx context.Context, playerID string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM snapshots
		WHERE player_id = ?
	`, playerID)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}

	return nil
}

func (s *snapshotStore) Close() error {
	return s.db.Close()
}
