package driving

import (
	"context"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
)

// NoteService manages notes and their tags.
type NoteService interface {
	// Add creates a note from a title, body and comma-separated tags.
	Add(ctx context.Context, title, text, tags string) (*domain.Note, error)

	// Get retrieves a note by ID.
	Get(ctx context.Context, id int) (*domain.Note, error)

	// List returns all notes by ascending ID.
	List(ctx context.Context) ([]domain.Note, error)

	// Edit replaces non-empty title/text and adds tags.
	Edit(ctx context.Context, id int, title, text, addTags string) (*domain.Note, error)

	// Delete removes a note.
	Delete(ctx context.Context, id int) error

	// RemoveTag detaches one tag from a note.
	RemoveTag(ctx context.Context, id int, tag string) error

	// SearchByTags returns notes carrying every listed tag.
	SearchByTags(ctx context.Context, tags string) ([]domain.Note, error)

	// Tags returns every tag with the IDs of the notes carrying it.
	Tags(ctx context.Context) (map[string][]int, error)
}
