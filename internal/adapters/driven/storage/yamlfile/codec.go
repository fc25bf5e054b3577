// Package yamlfile encodes Lotus snapshots as human-editable YAML documents
// for `lotus export` and `lotus import`.
package yamlfile

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
	"github.com/custodia-labs/lotus-cli/internal/core/ports/driven"
)

// FormatVersion is written to every document and checked on decode.
const FormatVersion = 1

// ErrUnsupportedVersion is returned for documents from a newer format.
var ErrUnsupportedVersion = errors.New("unsupported document version")

// Ensure Codec implements the interface.
var _ driven.SnapshotCodec = (*Codec)(nil)

type document struct {
	Version    int           `yaml:"version"`
	ExportedAt time.Time     `yaml:"exported_at,omitempty"`
	NextNoteID int           `yaml:"next_note_id"`
	Contacts   []contactNode `yaml:"contacts"`
	Notes      []noteNode    `yaml:"notes"`
}

type contactNode struct {
	Name     string      `yaml:"name"`
	Phones   []phoneNode `yaml:"phones,omitempty"`
	Birthday string      `yaml:"birthday,omitempty"`
	Email    string      `yaml:"email,omitempty"`
	Address  string      `yaml:"address,omitempty"`
}

type phoneNode struct {
	Number string `yaml:"number"`
	Label  string `yaml:"label,omitempty"`
}

type noteNode struct {
	ID         int       `yaml:"id"`
	Title      string    `yaml:"title"`
	Text       string    `yaml:"text,omitempty"`
	Tags       []string  `yaml:"tags,omitempty"`
	CreatedAt  time.Time `yaml:"created_at"`
	ModifiedAt time.Time `yaml:"modified_at"`
}

// Codec reads and writes snapshot documents.
type Codec struct {
	// Strict rejects unknown keys when decoding.
	Strict bool

	now func() time.Time
}

// NewCodec creates a new YAML codec.
func NewCodec(strict bool) *Codec {
	return &Codec{Strict: strict, now: time.Now}
}

// Encode writes the snapshot to w.
func (c *Codec) Encode(w io.Writer, snap *domain.Snapshot) error {
	doc := document{
		Version:    FormatVersion,
		ExportedAt: c.now().UTC().Truncate(time.Second),
		NextNoteID: snap.NextNoteID,
		Contacts:   make([]contactNode, 0, len(snap.Contacts)),
		Notes:      make([]noteNode, 0, len(snap.Notes)),
	}

	for i := range snap.Contacts {
		ct := &snap.Contacts[i]
		node := contactNode{
			Name:    ct.Name,
			Email:   ct.Email,
			Address: ct.Address,
		}
		if ct.Birthday != nil {
			node.Birthday = ct.Birthday.String()
		}
		for _, number := range ct.PhoneNumbers() {
			node.Phones = append(node.Phones, phoneNode{Number: number, Label: ct.Phones[number]})
		}
		doc.Contacts = append(doc.Contacts, node)
	}

	for _, n := range snap.Notes {
		doc.Notes = append(doc.Notes, noteNode{
			ID:         n.ID,
			Title:      n.Title,
			Text:       n.Text,
			Tags:       n.Tags,
			CreatedAt:  n.CreatedAt,
			ModifiedAt: n.ModifiedAt,
		})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return encoder.Close()
}

// Decode reads a snapshot from r.
func (c *Codec) Decode(r io.Reader) (*domain.Snapshot, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(c.Strict)

	var doc document
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: invalid yaml: %v", domain.ErrInvalidInput, err)
	}

	if doc.Version > FormatVersion {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrUnsupportedVersion, doc.Version, FormatVersion)
	}

	snap := &domain.Snapshot{
		NextNoteID: doc.NextNoteID,
		Contacts:   make([]domain.Contact, 0, len(doc.Contacts)),
		Notes:      make([]domain.Note, 0, len(doc.Notes)),
	}

	for _, node := range doc.Contacts {
		ct := domain.NewContact(node.Name)
		if ct.Name == "" {
			return nil, fmt.Errorf("%w: contact without a name", domain.ErrInvalidInput)
		}
		for _, p := range node.Phones {
			if err := ct.SetPhone(p.Number, p.Label); err != nil {
				return nil, fmt.Errorf("contact %q: %w", ct.Name, err)
			}
		}
		if node.Birthday != "" {
			d, err := domain.ParseDate(node.Birthday)
			if err != nil {
				return nil, fmt.Errorf("contact %q: %w", ct.Name, err)
			}
			ct.SetBirthday(d)
		}
		ct.SetEmail(node.Email)
		ct.SetAddress(node.Address)
		snap.Contacts = append(snap.Contacts, *ct)
	}

	seen := make(map[int]struct{}, len(doc.Notes))
	for _, node := range doc.Notes {
		if node.ID < 1 {
			return nil, fmt.Errorf("%w: note id %d must be positive", domain.ErrInvalidInput, node.ID)
		}
		if _, dup := seen[node.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate note id %d", domain.ErrInvalidInput, node.ID)
		}
		seen[node.ID] = struct{}{}

		snap.Notes = append(snap.Notes, domain.Note{
			ID:         node.ID,
			Title:      node.Title,
			Text:       node.Text,
			Tags:       domain.MergeTags(nil, node.Tags),
			CreatedAt:  node.CreatedAt,
			ModifiedAt: node.ModifiedAt,
		})
	}

	return snap, nil
}
