package shell

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HistoryFile is the history file name inside the data directory.
const HistoryFile = "history"

// DefaultHistoryLimit caps the entries kept in memory.
const DefaultHistoryLimit = 1000

// History is a line history backed by an append-only file.
// An empty path keeps the history in memory only.
type History struct {
	path    string
	limit   int
	entries []string

	// cursor indexes entries while browsing; len(entries) means "not browsing".
	cursor int
	draft  string
}

// LoadHistory reads the history at path. A missing file yields an empty history.
func LoadHistory(path string, limit int) (*History, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	h := &History{path: path, limit: limit}
	if path == "" {
		return h, nil
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return h, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			h.entries = append(h.entries, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	h.trim()
	h.cursor = len(h.entries)
	return h, nil
}

// Add records a line and ends browsing. Repeating the last entry is a no-op
// apart from ending browsing.
func (h *History) Add(line string) error {
	line = strings.TrimSpace(line)
	defer h.reset()
	if line == "" {
		return nil
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return nil
	}

	h.entries = append(h.entries, line)
	h.trim()

	if h.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(h.path), 0700); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}
	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}

// Prev steps back through the history. current is kept as the draft
// restored when browsing returns past the newest entry.
func (h *History) Prev(current string) (string, bool) {
	if h.cursor == len(h.entries) {
		h.draft = current
	}
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next steps forward through the history.
func (h *History) Next() (string, bool) {
	if h.cursor >= len(h.entries) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		return h.draft, true
	}
	return h.entries[h.cursor], true
}

// Entries returns a copy of the recorded lines, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

func (h *History) reset() {
	h.cursor = len(h.entries)
	h.draft = ""
}

func (h *History) trim() {
	if extra := len(h.entries) - h.limit; extra > 0 {
		h.entries = append([]string(nil), h.entries[extra:]...)
	}
}
