package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name     string
		csv      string
		expected []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single", "Work", []string{"work"}},
		{"trim and lowercase", " Work , HOME ", []string{"work", "home"}},
		{"dedupe keeps first position", "b, a, B, a", []string{"b", "a"}},
		{"drop empties", "a,, ,b,", []string{"a", "b"}},
		{"only commas", ",,,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTags(tt.csv)
			if len(tt.expected) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMergeTags(t *testing.T) {
	existing := []string{"a", "b"}
	merged := MergeTags(existing, []string{"B", " c ", "", "a", "c"})

	assert.Equal(t, []string{"a", "b", "c"}, merged)
	assert.Equal(t, []string{"a", "b"}, existing, "input must not be modified")
}

func TestNote_HasTag(t *testing.T) {
	n := Note{Tags: []string{"work", "ideas"}}
	assert.True(t, n.HasTag("work"))
	assert.True(t, n.HasTag(" IDEAS "))
	assert.False(t, n.HasTag("home"))
}

func TestNote_Clone(t *testing.T) {
	n := Note{ID: 1, Title: "t", Tags: []string{"a"}}
	c := n.Clone()
	c.Tags[0] = "z"
	c.Tags = append(c.Tags, "b")

	assert.Equal(t, []string{"a"}, n.Tags)
	assert.Equal(t, 1, c.ID)
}
