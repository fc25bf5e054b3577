package driving

import (
	"context"
	"io"
)

// StateService moves the in-memory stores to and from durable storage.
type StateService interface {
	// Load replaces the stores' contents with the persisted snapshot.
	Load(ctx context.Context) error

	// Save persists the stores' contents.
	Save(ctx context.Context) error

	// Export writes the stores' contents to w as a portable document.
	Export(ctx context.Context, w io.Writer) error

	// Reload re-reads the persisted snapshot after another process changed it.
	Reload(ctx context.Context) error

	// Import replaces the stores' contents with a document read from r
	// and persists the result.
	Import(ctx context.Context, r io.Reader) error
}
