package memory

import (
	"sort"
	"strings"
	"time"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
	"github.com/custodia-labs/lotus-cli/internal/core/ports/driven"
)

// Ensure NoteStore implements the interface.
var _ driven.NoteStore = (*NoteStore)(nil)

// NoteStore is an in-memory implementation of driven.NoteStore.
// It owns the note records, ID assignment and the tag index, and is the
// only writer of the index.
//
// NoteStore is not safe for concurrent use.
type NoteStore struct {
	notes  map[int]*domain.Note
	index  *TagIndex
	nextID int
	now    func() time.Time
}

// NoteStoreOption configures a NoteStore.
type NoteStoreOption func(*NoteStore)

// WithClock sets the source of note timestamps.
func WithClock(now func() time.Time) NoteStoreOption {
	return func(s *NoteStore) {
		s.now = now
	}
}

// NewNoteStore creates a new in-memory note store.
func NewNoteStore(opts ...NoteStoreOption) *NoteStore {
	s := &NoteStore{
		notes:  make(map[int]*domain.Note),
		index:  NewTagIndex(),
		nextID: 1,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add stores a new note and registers its tags.
func (s *NoteStore) Add(title, text, tagsCSV string) domain.Note {
	if strings.TrimSpace(title) == "" {
		title = domain.DefaultNoteTitle
	}
	now := s.now()

	note := &domain.Note{
		ID:         s.nextID,
		Title:      title,
		Text:       text,
		Tags:       domain.ParseTags(tagsCSV),
		CreatedAt:  now,
		ModifiedAt: now,
	}
	s.nextID++

	s.notes[note.ID] = note
	for _, tag := range note.Tags {
		s.index.Add(note.ID, tag)
	}
	return note.Clone()
}

// Get returns a copy of the note.
func (s *NoteStore) Get(id int) (domain.Note, bool) {
	note, ok := s.notes[id]
	if !ok {
		return domain.Note{}, false
	}
	return note.Clone(), true
}

// Edit replaces non-empty title/text, merges addTagsCSV into the tag set
// and registers only the tags the merge introduced.
func (s *NoteStore) Edit(id int, title, text, addTagsCSV string) (domain.Note, bool) {
	note, ok := s.notes[id]
	if !ok {
		return domain.Note{}, false
	}

	if title != "" {
		note.Title = title
	}
	if text != "" {
		note.Text = text
	}

	before := len(note.Tags)
	note.Tags = domain.MergeTags(note.Tags, strings.Split(addTagsCSV, ","))
	// MergeTags only appends, so the new tags are the tail.
	for _, tag := range note.Tags[before:] {
		s.index.Add(id, tag)
	}

	note.ModifiedAt = s.now()
	return note.Clone(), true
}

// Delete removes the note and its index entries.
func (s *NoteStore) Delete(id int) bool {
	if _, ok := s.notes[id]; !ok {
		return false
	}
	delete(s.notes, id)
	s.index.RemoveNote(id)
	return true
}

// RemoveTag removes tag from the note and the index together.
func (s *NoteStore) RemoveTag(id int, tag string) bool {
	note, ok := s.notes[id]
	if !ok {
		return false
	}
	tag = domain.NormalizeTag(tag)
	pos := -1
	for i, t := range note.Tags {
		if t == tag {
			pos = i
			break
		}
	}
	if pos < 0 {
		return false
	}

	tags := make([]string, 0, len(note.Tags)-1)
	tags = append(tags, note.Tags[:pos]...)
	note.Tags = append(tags, note.Tags[pos+1:]...)
	s.index.Remove(id, tag)
	return true
}

// SearchByTags returns the notes carrying every tag in tagsCSV.
// An empty list matches nothing, as does any tag absent from the index.
func (s *NoteStore) SearchByTags(tagsCSV string) []domain.Note {
	tags := domain.ParseTags(tagsCSV)
	if len(tags) == 0 {
		return []domain.Note{}
	}

	var common map[int]struct{}
	for _, tag := range tags {
		ids := s.index.Search(tag)
		if len(ids) == 0 {
			return []domain.Note{}
		}
		next := make(map[int]struct{}, len(ids))
		for _, id := range ids {
			if common == nil {
				next[id] = struct{}{}
				continue
			}
			if _, ok := common[id]; ok {
				next[id] = struct{}{}
			}
		}
		common = next
		if len(common) == 0 {
			return []domain.Note{}
		}
	}

	result := make([]domain.Note, 0, len(common))
	for _, id := range sortedIDs(common) {
		if note, ok := s.notes[id]; ok {
			result = append(result, note.Clone())
		}
	}
	return result
}

// List returns all notes by ascending ID.
func (s *NoteStore) List() []domain.Note {
	ids := make([]int, 0, len(s.notes))
	for id := range s.notes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := make([]domain.Note, 0, len(ids))
	for _, id := range ids {
		result = append(result, s.notes[id].Clone())
	}
	return result
}

// Tags returns a copy of the tag index.
func (s *NoteStore) Tags() map[string][]int {
	return s.index.All()
}

// Len returns the number of notes.
func (s *NoteStore) Len() int {
	return len(s.notes)
}

// NextID returns the ID the next added note will receive.
func (s *NoteStore) NextID() int {
	return s.nextID
}

// Snapshot returns copies of all notes and the next ID.
func (s *NoteStore) Snapshot() ([]domain.Note, int) {
	return s.List(), s.nextID
}

// Restore replaces all notes and rebuilds the tag index from their tags.
// Tags are re-normalised on the way in. The next ID never falls at or
// below an existing ID.
func (s *NoteStore) Restore(notes []domain.Note, nextID int) {
	s.notes = make(map[int]*domain.Note, len(notes))
	s.index.Reset()
	s.nextID = 1
	if nextID > s.nextID {
		s.nextID = nextID
	}

	for i := range notes {
		note := notes[i].Clone()
		note.Tags = domain.MergeTags(nil, note.Tags)
		if note.Title == "" {
			note.Title = domain.DefaultNoteTitle
		}
		s.notes[note.ID] = &note
		for _, tag := range note.Tags {
			s.index.Add(note.ID, tag)
		}
		if note.ID >= s.nextID {
			s.nextID = note.ID + 1
		}
	}
}
