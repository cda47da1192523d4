// Package store persists player snapshots. The codec lives here; the
// backends (postgres, sqlite, memory) implement SnapshotStore over the
// opaque encoded document.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no snapshot exists for a player.
var ErrNotFound = errors.New("snapshot not found")

// SnapshotStore is the durable side of the persistence gateway. Writes
// happen at checkpoints, not on every mutation; the interface is
// deliberately byte-oriented so backends never see engine types.
type SnapshotStore interface {
	Load(ctx context.Context, playerID string) ([]byte, error)
	Save(ctx context.Context, playerID string, doc []byte) error
	Delete(ctx context.Context, playerID string) error
	Close() error
}
