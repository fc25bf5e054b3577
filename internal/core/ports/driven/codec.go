package driven

import (
	"io"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
)

// SnapshotCodec converts a snapshot to and from a portable document.
type SnapshotCodec interface {
	// Encode writes the snapshot to w.
	Encode(w io.Writer, snapshot *domain.Snapshot) error

	// Decode reads a snapshot from r.
	Decode(r io.Reader) (*domain.Snapshot, error)
}
