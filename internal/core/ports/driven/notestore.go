package driven

import "github.com/custodia-labs/lotus-cli/internal/core/domain"

// NoteStore holds notes keyed by ID together with the tag index that
// mirrors their tag sets. Every returned note is a copy.
type NoteStore interface {
	// Add stores a new note and returns it with its assigned ID.
	Add(title, text, tagsCSV string) domain.Note

	// Get returns the note with the given ID.
	Get(id int) (domain.Note, bool)

	// Edit replaces non-empty title/text and merges tags.
	// It returns false if the ID is unknown.
	Edit(id int, title, text, addTagsCSV string) (domain.Note, bool)

	// Delete removes the note. It returns whether the note existed.
	Delete(id int) bool

	// RemoveTag removes one tag from a note and from the index.
	// It returns false, changing nothing, if the note or tag is absent.
	RemoveTag(id int, tag string) bool

	// SearchByTags returns notes carrying every listed tag, by ascending ID.
	SearchByTags(tagsCSV string) []domain.Note

	// List returns all notes by ascending ID.
	List() []domain.Note

	// Tags returns every indexed tag with the ascending IDs carrying it.
	Tags() map[string][]int

	// Len returns the number of notes.
	Len() int

	// Snapshot returns all notes and the next ID to assign.
	Snapshot() ([]domain.Note, int)

	// Restore replaces the store contents and rebuilds the tag index.
	Restore(notes []domain.Note, nextID int)
}
