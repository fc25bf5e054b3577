package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
	"github.com/custodia-labs/lotus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lotus-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lotus-cli/internal/logger"
)

// Ensure StateService implements the interface.
var _ driving.StateService = (*StateService)(nil)

// ErrCodecNotConfigured is returned by Export and Import without a codec.
var ErrCodecNotConfigured = errors.New("snapshot codec not configured")

// StateService owns the contact and note stores on behalf of the other
// services. It serialises access to them and persists the stores after
// every successful mutation.
type StateService struct {
	mu        sync.Mutex
	contacts  driven.ContactStore
	notes     driven.NoteStore
	snapshots driven.SnapshotStore
	codec     driven.SnapshotCodec
}

// NewStateService creates a new state service.
// snapshots and codec may be nil; state then lives only in memory and
// Export/Import are unavailable.
func NewStateService(
	contacts driven.ContactStore,
	notes driven.NoteStore,
	snapshots driven.SnapshotStore,
	codec driven.SnapshotCodec,
) *StateService {
	return &StateService{
		contacts:  contacts,
		notes:     notes,
		snapshots: snapshots,
		codec:     codec,
	}
}

// Load replaces the stores' contents with the persisted snapshot.
// The lock is held across the read so a mutation cannot commit between
// reading the snapshot and restoring it.
func (s *StateService) Load(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading state: %w", err)
	}
	s.restore(snap)
	logger.Debug("Loaded %d contacts, %d notes (next note id %d)",
		len(snap.Contacts), len(snap.Notes), snap.NextNoteID)
	return nil
}

// Reload re-reads the persisted snapshot, discarding in-memory state.
func (s *StateService) Reload(ctx context.Context) error {
	logger.Debug("Reloading state")
	return s.Load(ctx)
}

// Save persists the stores' contents.
func (s *StateService) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(ctx)
}

// Export writes the stores' contents to w.
func (s *StateService) Export(_ context.Context, w io.Writer) error {
	if s.codec == nil {
		return ErrCodecNotConfigured
	}

	s.mu.Lock()
	snap := s.snapshot()
	s.mu.Unlock()

	if err := s.codec.Encode(w, snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// Import replaces the stores' contents with a snapshot read from r.
// The previous contents are kept if decoding or persisting fails.
func (s *StateService) Import(ctx context.Context, r io.Reader) error {
	if s.codec == nil {
		return ErrCodecNotConfigured
	}

	snap, err := s.codec.Decode(r)
	if err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}

	return s.mutate(ctx, func() error {
		s.restore(snap)
		return nil
	})
}

// read runs fn while holding the state lock.
func (s *StateService) read(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// mutate runs fn while holding the state lock and persists the result.
// If fn fails nothing is persisted; fn must not have changed the stores.
// If persisting fails the stores are rolled back to their previous state.
func (s *StateService) mutate(ctx context.Context, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var before *domain.Snapshot
	if s.snapshots != nil {
		before = s.snapshot()
	}

	if err := fn(); err != nil {
		return err
	}

	if err := s.persist(ctx); err != nil {
		if before != nil {
			s.restore(before)
		}
		return err
	}
	return nil
}

// persist saves a snapshot (caller must hold lock).
func (s *StateService) persist(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	if err := s.snapshots.Save(ctx, s.snapshot()); err != nil {
		logger.Warn("Persisting state failed: %v", err)
		return fmt.Errorf("saving state: %w", err)
	}
	return nil
}

// snapshot captures both stores (caller must hold lock).
func (s *StateService) snapshot() *domain.Snapshot {
	notes, next := s.notes.Snapshot()
	return &domain.Snapshot{
		Contacts:   s.contacts.Snapshot(),
		Notes:      notes,
		NextNoteID: next,
	}
}

// restore replaces both stores (caller must hold lock).
func (s *StateService) restore(snap *domain.Snapshot) {
	s.contacts.Restore(snap.Contacts)
	s.notes.Restore(snap.Notes, snap.NextNoteID)
}
