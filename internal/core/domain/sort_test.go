package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(contacts []Contact) []string {
	out := make([]string, len(contacts))
	for i := range contacts {
		out[i] = contacts[i].Name
	}
	return out
}

func sampleContacts() []Contact {
	bob := contactBorn("bob", 1985, time.May, 1)
	bob.Email = "a@example.com"
	ann := *NewContact("ann")
	ann.Email = "c@example.com"
	ann.Phones["+380500000002"] = ""
	cid := contactBorn("cid", 1980, time.January, 1)
	cid.Email = "b@example.com"
	cid.Phones["+380500000001"] = ""
	return []Contact{bob, ann, cid}
}

func TestParseContactSort(t *testing.T) {
	s, err := ParseContactSort("", "")
	require.NoError(t, err)
	assert.Equal(t, ContactSort{Field: SortByName}, s)

	s, err = ParseContactSort("Birthday", "DESC")
	require.NoError(t, err)
	assert.Equal(t, ContactSort{Field: SortByBirthday, Descending: true}, s)

	s, err = ParseContactSort("email", "reverse")
	require.NoError(t, err)
	assert.True(t, s.Descending)

	_, err = ParseContactSort("shoe-size", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSortContacts(t *testing.T) {
	tests := []struct {
		name     string
		by       ContactSort
		expected []string
	}{
		{"name", ContactSort{Field: SortByName}, []string{"ann", "bob", "cid"}},
		{"name desc", ContactSort{Field: SortByName, Descending: true}, []string{"cid", "bob", "ann"}},
		{"birthday missing last", ContactSort{Field: SortByBirthday}, []string{"cid", "bob", "ann"}},
		{"email", ContactSort{Field: SortByEmail}, []string{"bob", "cid", "ann"}},
		{"phones", ContactSort{Field: SortByPhones}, []string{"bob", "cid", "ann"}},
		{"insertion", ContactSort{Field: SortByInsertion}, []string{"bob", "ann", "cid"}},
		{"insertion desc", ContactSort{Field: SortByInsertion, Descending: true}, []string{"cid", "ann", "bob"}},
		{"empty field sorts by name", ContactSort{}, []string{"ann", "bob", "cid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contacts := sampleContacts()
			SortContacts(contacts, tt.by)
			assert.Equal(t, tt.expected, names(contacts))
		})
	}
}

func TestParseNoteSort(t *testing.T) {
	s, err := ParseNoteSort("", "")
	require.NoError(t, err)
	assert.Equal(t, NoteSort{Field: NoteSortByID}, s)

	s, err = ParseNoteSort(" Created ", "reverse")
	require.NoError(t, err)
	assert.Equal(t, NoteSort{Field: NoteSortByCreated, Descending: true}, s)

	_, err = ParseNoteSort("colour", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSortNotes(t *testing.T) {
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	sample := func() []Note {
		return []Note{
			{ID: 1, Title: "beta", CreatedAt: base, ModifiedAt: base.Add(3 * time.Hour)},
			{ID: 2, Title: "alpha", CreatedAt: base.Add(time.Hour), ModifiedAt: base.Add(time.Hour)},
			{ID: 3, Title: "beta", CreatedAt: base.Add(2 * time.Hour), ModifiedAt: base.Add(2 * time.Hour)},
		}
	}
	ids := func(notes []Note) []int {
		out := make([]int, len(notes))
		for i := range notes {
			out[i] = notes[i].ID
		}
		return out
	}

	tests := []struct {
		name     string
		by       NoteSort
		expected []int
	}{
		{"id", NoteSort{Field: NoteSortByID}, []int{1, 2, 3}},
		{"id desc", NoteSort{Field: NoteSortByID, Descending: true}, []int{3, 2, 1}},
		{"title ties by id", NoteSort{Field: NoteSortByTitle}, []int{2, 1, 3}},
		{"created desc", NoteSort{Field: NoteSortByCreated, Descending: true}, []int{3, 2, 1}},
		{"modified", NoteSort{Field: NoteSortByModified}, []int{2, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := sample()
			SortNotes(notes, tt.by)
			assert.Equal(t, tt.expected, ids(notes))
		})
	}
}
