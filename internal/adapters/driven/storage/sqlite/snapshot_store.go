package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
	"github.com/custodia-labs/lotus-cli/internal/core/ports/driven"
)

// birthdayLayout is the column format of contacts.birthday.
const birthdayLayout = "2006-01-02"

// snapshotStore implements driven.SnapshotStore.
type snapshotStore struct {
	store *Store
}

var _ driven.SnapshotStore = (*snapshotStore)(nil)

// Save replaces every persisted contact and note with the snapshot.
func (s *snapshotStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	// Children go with their parents through ON DELETE CASCADE.
	for _, stmt := range []string{"DELETE FROM contacts", "DELETE FROM notes"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing tables: %w", err)
		}
	}

	if err := saveContacts(ctx, tx, snap.Contacts); err != nil {
		return err
	}
	if err := saveNotes(ctx, tx, snap.Notes); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE note_sequence SET next_id = ? WHERE id = 1", snap.NextNoteID); err != nil {
		return fmt.Errorf("saving note sequence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// Load reads the persisted contacts and notes.
func (s *snapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	snap := &domain.Snapshot{}

	if snap.Contacts, err = loadContacts(ctx, tx); err != nil {
		return nil, err
	}
	if snap.Notes, err = loadNotes(ctx, tx); err != nil {
		return nil, err
	}

	row := tx.QueryRowContext(ctx, "SELECT next_id FROM note_sequence WHERE id = 1")
	if err := row.Scan(&snap.NextNoteID); err != nil {
		return nil, fmt.Errorf("scanning note sequence: %w", err)
	}

	return snap, nil
}

// ==================== Contacts ====================

func saveContacts(ctx context.Context, tx *sql.Tx, contacts []domain.Contact) error {
	contactStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO contacts (name, position, birthday, email, address)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing contact insert: %w", err)
	}
	defer contactStmt.Close()

	phoneStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO contact_phones (contact_name, number, label)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing phone insert: %w", err)
	}
	defer phoneStmt.Close()

	for i, c := range contacts {
		var birthday sql.NullString
		if c.Birthday != nil {
			birthday = sql.NullString{String: c.Birthday.Time().Format(birthdayLayout), Valid: true}
		}

		if _, err := contactStmt.ExecContext(ctx, c.Name, i, birthday,
			nullString(c.Email), nullString(c.Address)); err != nil {
			return fmt.Errorf("saving contact %q: %w", c.Name, err)
		}

		for _, number := range c.PhoneNumbers() {
			if _, err := phoneStmt.ExecContext(ctx, c.Name, number, c.Phones[number]); err != nil {
				return fmt.Errorf("saving phone %s of %q: %w", number, c.Name, err)
			}
		}
	}
	return nil
}

func loadContacts(ctx context.Context, tx *sql.Tx) ([]domain.Contact, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT name, birthday, email, address
		FROM contacts ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	var contacts []domain.Contact //nolint:prealloc // size unknown from query
	index := make(map[string]int)
	for rows.Next() {
		var c domain.Contact
		var birthday, email, address sql.NullString
		if err := rows.Scan(&c.Name, &birthday, &email, &address); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}

		if birthday.Valid {
			t, err := time.Parse(birthdayLayout, birthday.String)
			if err != nil {
				return nil, fmt.Errorf("parsing birthday of %q: %w", c.Name, err)
			}
			d := domain.DateOf(t)
			c.Birthday = &d
		}
		c.Email = email.String
		c.Address = address.String
		c.Phones = make(map[string]string)

		index[c.Name] = len(contacts)
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}

	phoneRows, err := tx.QueryContext(ctx, "SELECT contact_name, number, label FROM contact_phones")
	if err != nil {
		return nil, fmt.Errorf("querying phones: %w", err)
	}
	defer phoneRows.Close()

	for phoneRows.Next() {
		var name, number, label string
		if err := phoneRows.Scan(&name, &number, &label); err != nil {
			return nil, fmt.Errorf("scanning phone: %w", err)
		}
		if i, ok := index[name]; ok {
			contacts[i].Phones[number] = label
		}
	}
	if err := phoneRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phones: %w", err)
	}

	return contacts, nil
}

// ==================== Notes ====================

func saveNotes(ctx context.Context, tx *sql.Tx, notes []domain.Note) error {
	noteStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO notes (id, title, body, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing note insert: %w", err)
	}
	defer noteStmt.Close()

	tagStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO note_tags (note_id, tag, position)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing tag insert: %w", err)
	}
	defer tagStmt.Close()

	for _, n := range notes {
		if _, err := noteStmt.ExecContext(ctx, n.ID, n.Title, n.Text,
			n.CreatedAt.UTC(), n.ModifiedAt.UTC()); err != nil {
			return fmt.Errorf("saving note %d: %w", n.ID, err)
		}
		for pos, tag := range n.Tags {
			if _, err := tagStmt.ExecContext(ctx, n.ID, tag, pos); err != nil {
				return fmt.Errorf("saving tag %q of note %d: %w", tag, n.ID, err)
			}
		}
	}
	return nil
}

func loadNotes(ctx context.Context, tx *sql.Tx) ([]domain.Note, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, title, body, created_at, modified_at
		FROM notes ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.Note //nolint:prealloc // size unknown from query
	index := make(map[int]int)
	for rows.Next() {
		var n domain.Note
		var createdAt, modifiedAt sql.NullTime
		if err := rows.Scan(&n.ID, &n.Title, &n.Text, &createdAt, &modifiedAt); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		if createdAt.Valid {
			n.CreatedAt = createdAt.Time
		}
		if modifiedAt.Valid {
			n.ModifiedAt = modifiedAt.Time
		}
		index[n.ID] = len(notes)
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}

	tagRows, err := tx.QueryContext(ctx, "SELECT note_id, tag FROM note_tags ORDER BY note_id, position")
	if err != nil {
		return nil, fmt.Errorf("querying tags: %w", err)
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var id int
		var tag string
		if err := tagRows.Scan(&id, &tag); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		if i, ok := index[id]; ok {
			notes[i].Tags = append(notes[i].Tags, tag)
		}
	}
	if err := tagRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	return notes, nil
}
