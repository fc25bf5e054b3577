package driven

import (
	"context"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
)

// SnapshotStore persists the complete state of the stores.
// Backed by SQLite.
type SnapshotStore interface {
	// Load returns the last saved snapshot.
	// An empty snapshot is returned when nothing has been saved yet.
	Load(ctx context.Context) (*domain.Snapshot, error)

	// Save replaces the persisted state with the snapshot atomically.
	Save(ctx context.Context, snapshot *domain.Snapshot) error
}
