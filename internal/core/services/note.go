package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
	"github.com/custodia-labs/lotus-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lotus-cli/internal/logger"
)

// Ensure NoteService implements the interface.
var _ driving.NoteService = (*NoteService)(nil)

// NoteService manages notes and their tags.
type NoteService struct {
	state *StateService
}

// NewNoteService creates a new note service.
func NewNoteService(state *StateService) *NoteService {
	return &NoteService{state: state}
}

// Add creates a note from a title, body and comma-separated tags.
func (s *NoteService) Add(ctx context.Context, title, text, tags string) (*domain.Note, error) {
	var note domain.Note
	err := s.state.mutate(ctx, func() error {
		note = s.state.notes.Add(title, text, tags)
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("Note %d added with tags %v", note.ID, note.Tags)
	return &note, nil
}

// Get retrieves a note by ID.
func (s *NoteService) Get(_ context.Context, id int) (*domain.Note, error) {
	var note domain.Note
	var ok bool
	s.state.read(func() {
		note, ok = s.state.notes.Get(id)
	})
	if !ok {
		return nil, noteNotFound(id)
	}
	return &note, nil
}

// List returns all notes by ascending ID.
func (s *NoteService) List(_ context.Context) ([]domain.Note, error) {
	var notes []domain.Note
	s.state.read(func() {
		notes = s.state.notes.List()
	})
	return notes, nil
}

// Edit replaces non-empty title/text and adds tags.
func (s *NoteService) Edit(ctx context.Context, id int, title, text, addTags string) (*domain.Note, error) {
	var note domain.Note
	err := s.state.mutate(ctx, func() error {
		var ok bool
		if note, ok = s.state.notes.Edit(id, title, text, addTags); !ok {
			return noteNotFound(id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("Note %d edited", id)
	return &note, nil
}

// Delete removes a note.
func (s *NoteService) Delete(ctx context.Context, id int) error {
	err := s.state.mutate(ctx, func() error {
		if !s.state.notes.Delete(id) {
			return noteNotFound(id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Debug("Note %d deleted", id)
	return nil
}

// RemoveTag detaches one tag from a note.
func (s *NoteService) RemoveTag(ctx context.Context, id int, tag string) error {
	if domain.NormalizeTag(tag) == "" {
		return fmt.Errorf("%w: tag is empty", domain.ErrInvalidInput)
	}

	return s.state.mutate(ctx, func() error {
		if _, ok := s.state.notes.Get(id); !ok {
			return noteNotFound(id)
		}
		if !s.state.notes.RemoveTag(id, tag) {
			return fmt.Errorf("tag %q on note %d: %w", domain.NormalizeTag(tag), id, domain.ErrNotFound)
		}
		return nil
	})
}

// SearchByTags returns notes carrying every listed tag.
func (s *NoteService) SearchByTags(_ context.Context, tags string) ([]domain.Note, error) {
	if strings.TrimSpace(tags) == "" {
		return []domain.Note{}, nil
	}
	var notes []domain.Note
	s.state.read(func() {
		notes = s.state.notes.SearchByTags(tags)
	})
	return notes, nil
}

// Tags returns every tag with the IDs of the notes carrying it.
func (s *NoteService) Tags(_ context.Context) (map[string][]int, error) {
	var tags map[string][]int
	s.state.read(func() {
		tags = s.state.notes.Tags()
	})
	return tags, nil
}

func noteNotFound(id int) error {
	return fmt.Errorf("note %d: %w", id, domain.ErrNotFound)
}
