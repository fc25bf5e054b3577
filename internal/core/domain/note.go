package domain

import (
	"strings"
	"time"
)

// DefaultNoteTitle is used when a note is created without a title.
const DefaultNoteTitle = "Untitled"

// Note is a free-form note.
type Note struct {
	// ID is assigned by the note store and never reused.
	ID int

	// Title is the human-readable title.
	Title string

	// Text is the note body.
	Text string

	// Tags is ordered by first appearance, lowercase, trimmed and unique.
	Tags []string

	// CreatedAt is set once when the note is added.
	CreatedAt time.Time

	// ModifiedAt is updated on every successful edit.
	ModifiedAt time.Time
}

// HasTag reports whether the note carries the tag.
func (n *Note) HasTag(tag string) bool {
	tag = NormalizeTag(tag)
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a copy of the note that shares no memory with n.
func (n *Note) Clone() Note {
	out := *n
	out.Tags = append([]string(nil), n.Tags...)
	return out
}

// NormalizeTag trims and lowercases a single tag.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// ParseTags splits a comma-separated tag list.
// Tags are trimmed, lowercased, de-duplicated and empty entries dropped.
func ParseTags(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	return MergeTags(nil, strings.Split(csv, ","))
}

// MergeTags appends the normalised additions to tags, skipping empties and
// tags already present. The input slice is not modified.
func MergeTags(tags []string, additions []string) []string {
	out := append([]string(nil), tags...)
	seen := make(map[string]struct{}, len(out)+len(additions))
	for _, t := range out {
		seen[t] = struct{}{}
	}
	for _, raw := range additions {
		t := NormalizeTag(raw)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
