// Package postgres implements the snapshot store on PostgreSQL via the
// pgx stdlib driver. Schema is managed by cmd/migrator.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pantheonhq/soulengine/internal/store"
)

type snapshotStore struct{ db *sql.DB }

var _ store.SnapshotStore = (*snapshotStore)(nil)

func New(db *sql.DB) *snapshotStore {
	return &snapshotStore{db: db}
}

func (s *snapshotStore) Load(ctx context.Context, playerID string) ([]byte, error) {
	var doc []byte

	err := s.db.QueryRowContext(ctx, `
		SELECT doc
		FROM snapshots
		WHERE player_id = $1
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
		INSERT INTO snapshots (player_id, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (player_id)
		DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
	`, playerID, doc)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return nil
}

func (s *snapshotStore) Delete(ctx context.Context, playerID string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM snapshots
		WHERE player_id = $1
	`, playerID)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}

	return nil
}

func (s *snapshotStore) Close() error {
	return s.db.Close()
}
