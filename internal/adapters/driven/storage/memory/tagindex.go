package memory

import "sort"

// TagIndex maps each tag to the set of note IDs carrying it.
// It never looks at notes; NoteStore keeps it in step with them.
// A tag whose ID set becomes empty is removed.
type TagIndex struct {
	entries map[string]map[int]struct{}
}

// NewTagIndex creates an empty tag index.
func NewTagIndex() *TagIndex {
	return &TagIndex{
		entries: make(map[string]map[int]struct{}),
	}
}

// Add records that noteID carries tag. Adding twice is a no-op.
func (x *TagIndex) Add(noteID int, tag string) {
	ids, ok := x.entries[tag]
	if !ok {
		ids = make(map[int]struct{})
		x.entries[tag] = ids
	}
	ids[noteID] = struct{}{}
}

// Remove drops noteID from tag. Unknown tags or IDs are ignored.
func (x *TagIndex) Remove(noteID int, tag string) {
	ids, ok := x.entries[tag]
	if !ok {
		return
	}
	delete(ids, noteID)
	if len(ids) == 0 {
		delete(x.entries, tag)
	}
}

// RemoveNote drops noteID from every tag.
func (x *TagIndex) RemoveNote(noteID int) {
	for tag, ids := range x.entries {
		if _, ok := ids[noteID]; !ok {
			continue
		}
		delete(ids, noteID)
		if len(ids) == 0 {
			delete(x.entries, tag)
		}
	}
}

// Search returns the IDs carrying tag in ascending order.
// An unknown tag yields an empty slice.
func (x *TagIndex) Search(tag string) []int {
	return sortedIDs(x.entries[tag])
}

// Has reports whether noteID is indexed under tag.
func (x *TagIndex) Has(noteID int, tag string) bool {
	_, ok := x.entries[tag][noteID]
	return ok
}

// All returns a copy of the whole index.
func (x *TagIndex) All() map[string][]int {
	out := make(map[string][]int, len(x.entries))
	for tag, ids := range x.entries {
		out[tag] = sortedIDs(ids)
	}
	return out
}

// Len returns the number of distinct tags.
func (x *TagIndex) Len() int {
	return len(x.entries)
}

// Reset empties the index.
func (x *TagIndex) Reset() {
	x.entries = make(map[string]map[int]struct{})
}

func sortedIDs(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
