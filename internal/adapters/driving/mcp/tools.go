package mcp

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
)

// ContactInput is the input schema for the get_contact tool.
type ContactInput struct {
	Name string `json:"name" jsonschema:"the contact name, matched case-insensitively"`
}

// FindContactInput is the input schema for the find_contact tool.
type FindContactInput struct {
	Phone string `json:"phone,omitempty" jsonschema:"a phone number held by the contact"`
	Email string `json:"email,omitempty" jsonschema:"the contact email address"`
}

// ListContactsInput is the input schema for the list_contacts tool.
type ListContactsInput struct {
	Sort       string `json:"sort,omitempty" jsonschema:"sort field: name, birthday, email, address, phones or none"`
	Descending bool   `json:"descending,omitempty" jsonschema:"reverse the sort order"`
}

// BirthdaysInput is the input schema for the upcoming_birthdays tool.
type BirthdaysInput struct {
	Days int `json:"days,omitempty" jsonschema:"window length in days starting today (default from settings)"`
}

// AddNoteInput is the input schema for the add_note tool.
type AddNoteInput struct {
	Title string `json:"title,omitempty" jsonschema:"note title (default Untitled)"`
	Text  string `json:"text,omitempty" jsonschema:"note body"`
	Tags  string `json:"tags,omitempty" jsonschema:"comma-separated tags"`
}

// SearchNotesInput is the input schema for the search_notes tool.
type SearchNotesInput struct {
	Tags string `json:"tags" jsonschema:"comma-separated tags; notes must carry all of them"`
}

// ListTagsInput is the input schema for the list_tags tool.
type ListTagsInput struct{}

// PhoneOutput is a single phone entry.
type PhoneOutput struct {
	Number string `json:"number"`
	Label  string `json:"label,omitempty"`
}

// ContactOutput is the output schema for contact lookups.
type ContactOutput struct {
	Name     string        `json:"name"`
	Phones   []PhoneOutput `json:"phones"`
	Birthday string        `json:"birthday,omitempty"`
	Email    string        `json:"email,omitempty"`
	Address  string        `json:"address,omitempty"`
}

// ContactsOutput is the output schema for the list_contacts tool.
type ContactsOutput struct {
	Contacts []ContactOutput `json:"contacts"`
	Count    int             `json:"count"`
}

// GreetingOutput is a single upcoming birthday.
type GreetingOutput struct {
	Name               string `json:"name"`
	Birthday           string `json:"birthday"`
	Occurrence         string `json:"occurrence"`
	CongratulationDate string `json:"congratulation_date"`
	Weekday            string `json:"weekday"`
}

// BirthdaysOutput is the output schema for the upcoming_birthdays tool.
type BirthdaysOutput struct {
	Days      int              `json:"days"`
	Greetings []GreetingOutput `json:"greetings"`
	Count     int              `json:"count"`
}

// NoteOutput is a single note.
type NoteOutput struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// NotesOutput is the output schema for the search_notes tool.
type NotesOutput struct {
	Notes []NoteOutput `json:"notes"`
	Count int          `json:"count"`
}

// TagOutput lists the notes carrying one tag.
type TagOutput struct {
	Tag     string `json:"tag"`
	NoteIDs []int  `json:"note_ids"`
}

// TagsOutput is the output schema for the list_tags tool.
type TagsOutput struct {
	Tags []TagOutput `json:"tags"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_contact",
		Description: "Get a contact by name",
	}, s.handleGetContact)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_contact",
		Description: "Find a contact by phone number or email address",
	}, s.handleFindContact)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_contacts",
		Description: "List every contact in the address book",
	}, s.handleListContacts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "upcoming_birthdays",
		Description: "List contacts to congratulate within the next days, with weekend birthdays moved to Monday",
	}, s.handleUpcomingBirthdays)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_note",
		Description: "Create a note with optional comma-separated tags",
	}, s.handleAddNote)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_notes",
		Description: "Find notes carrying all of the given tags",
	}, s.handleSearchNotes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_tags",
		Description: "List every tag with the notes that carry it",
	}, s.handleListTags)
}

// handleGetContact handles the get_contact tool invocation.
func (s *Server) handleGetContact(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ContactInput,
) (*mcp.CallToolResult, ContactOutput, error) {
	contact, err := s.ports.Contacts.Get(ctx, input.Name)
	if err != nil {
		return nil, ContactOutput{}, err
	}
	return nil, toContactOutput(contact), nil
}

// handleFindContact handles the find_contact tool invocation.
func (s *Server) handleFindContact(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindContactInput,
) (*mcp.CallToolResult, ContactOutput, error) {
	var (
		contact *domain.Contact
		err     error
	)
	switch {
	case input.Phone != "":
		contact, err = s.ports.Contacts.FindByPhone(ctx, input.Phone)
	case input.Email != "":
		contact, err = s.ports.Contacts.FindByEmail(ctx, input.Email)
	default:
		err = fmt.Errorf("%w: phone or email is required", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, ContactOutput{}, err
	}
	return nil, toContactOutput(contact), nil
}

// handleListContacts handles the list_contacts tool invocation.
func (s *Server) handleListContacts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListContactsInput,
) (*mcp.CallToolResult, ContactsOutput, error) {
	field := input.Sort
	if field == "" && s.ports.Settings != nil {
		if settings, err := s.ports.Settings.Get(); err == nil {
			field = string(settings.Contacts.Sort)
		}
	}

	by, err := domain.ParseContactSort(field, "")
	if err != nil {
		return nil, ContactsOutput{}, err
	}
	by.Descending = input.Descending

	contacts, err := s.ports.Contacts.List(ctx, by)
	if err != nil {
		return nil, ContactsOutput{}, err
	}

	output := ContactsOutput{
		Contacts: make([]ContactOutput, len(contacts)),
		Count:    len(contacts),
	}
	for i := range contacts {
		output.Contacts[i] = toContactOutput(&contacts[i])
	}
	return nil, output, nil
}

// handleUpcomingBirthdays handles the upcoming_birthdays tool invocation.
func (s *Server) handleUpcomingBirthdays(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BirthdaysInput,
) (*mcp.CallToolResult, BirthdaysOutput, error) {
	days := input.Days
	if days == 0 {
		days = s.defaultHorizon()
	}

	greetings, err := s.ports.Contacts.UpcomingBirthdays(ctx, days)
	if err != nil {
		return nil, BirthdaysOutput{}, err
	}

	output := BirthdaysOutput{
		Days:      days,
		Greetings: make([]GreetingOutput, len(greetings)),
		Count:     len(greetings),
	}
	for i, g := range greetings {
		output.Greetings[i] = GreetingOutput{
			Name:               g.Name,
			Birthday:           g.Birthday.String(),
			Occurrence:         g.Occurrence.String(),
			CongratulationDate: g.CongratulationDate.String(),
			Weekday:            g.CongratulationDate.Weekday().String(),
		}
	}
	return nil, output, nil
}

// handleAddNote handles the add_note tool invocation.
func (s *Server) handleAddNote(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddNoteInput,
) (*mcp.CallToolResult, NoteOutput, error) {
	note, err := s.ports.Notes.Add(ctx, input.Title, input.Text, input.Tags)
	if err != nil {
		return nil, NoteOutput{}, err
	}
	return nil, toNoteOutput(note), nil
}

// handleSearchNotes handles the search_notes tool invocation.
func (s *Server) handleSearchNotes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchNotesInput,
) (*mcp.CallToolResult, NotesOutput, error) {
	notes, err := s.ports.Notes.SearchByTags(ctx, input.Tags)
	if err != nil {
		return nil, NotesOutput{}, err
	}

	output := NotesOutput{
		Notes: make([]NoteOutput, len(notes)),
		Count: len(notes),
	}
	for i := range notes {
		output.Notes[i] = toNoteOutput(&notes[i])
	}
	return nil, output, nil
}

// handleListTags handles the list_tags tool invocation.
func (s *Server) handleListTags(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListTagsInput,
) (*mcp.CallToolResult, TagsOutput, error) {
	index, err := s.ports.Notes.Tags(ctx)
	if err != nil {
		return nil, TagsOutput{}, err
	}

	output := TagsOutput{Tags: make([]TagOutput, 0, len(index))}
	for tag, ids := range index {
		output.Tags = append(output.Tags, TagOutput{Tag: tag, NoteIDs: ids})
	}
	sort.Slice(output.Tags, func(i, j int) bool {
		return output.Tags[i].Tag < output.Tags[j].Tag
	})
	return nil, output, nil
}

func (s *Server) defaultHorizon() int {
	if s.ports.Settings == nil {
		return domain.DefaultBirthdayHorizon
	}
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return domain.DefaultBirthdayHorizon
	}
	return settings.Birthdays.HorizonDays
}

func toContactOutput(c *domain.Contact) ContactOutput {
	out := ContactOutput{
		Name:    c.Name,
		Phones:  make([]PhoneOutput, 0, len(c.Phones)),
		Email:   c.Email,
		Address: c.Address,
	}
	for _, number := range c.PhoneNumbers() {
		out.Phones = append(out.Phones, PhoneOutput{Number: number, Label: c.Phones[number]})
	}
	if c.Birthday != nil {
		out.Birthday = c.Birthday.String()
	}
	return out
}

func toNoteOutput(n *domain.Note) NoteOutput {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return NoteOutput{
		ID:         n.ID,
		Title:      n.Title,
		Text:       n.Text,
		Tags:       tags,
		CreatedAt:  n.CreatedAt,
		ModifiedAt: n.ModifiedAt,
	}
}
