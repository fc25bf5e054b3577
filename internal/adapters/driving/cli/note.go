package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
	Long: `Add, edit, list and delete notes, and find them by tag.

Tags are case-insensitive and given as a comma-separated list.`,
}

var noteAddCmd = &cobra.Command{
	Use:   "add [title] [text]",
	Short: "Add a note",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runNoteAdd,
}

var noteShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteShow,
}

var noteListCmd = &cobra.Command{
	Use:   "list [field] [desc]",
	Short: "List all notes",
	Long: `List all notes as a table.

The sort field is one of id, title, created or modified. A second argument
of desc, reverse or true reverses the order.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runNoteList,
}

var noteEditCmd = &cobra.Command{
	Use:   "edit [id] [title] [text]",
	Short: "Edit a note",
	Long: `Replace a note's title and text and add tags.

An empty or omitted title or text keeps the current value. Tags given with
--tags are added to the note's tags.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runNoteEdit,
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteDelete,
}

var noteUntagCmd = &cobra.Command{
	Use:   "untag [id] [tag]",
	Short: "Remove a tag from a note",
	Args:  cobra.ExactArgs(2),
	RunE:  runNoteUntag,
}

var noteSearchCmd = &cobra.Command{
	Use:   "search [tags...]",
	Short: "Find notes carrying all the given tags",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNoteSearch,
}

var noteTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List every tag and its notes",
	Args:  cobra.NoArgs,
	RunE:  runNoteTags,
}

// Flags for the note commands.
var (
	noteTags     string
	noteSortDesc bool
)

func init() {
	noteAddCmd.Flags().StringVarP(&noteTags, "tags", "t", "", "Comma-separated tags")
	noteEditCmd.Flags().StringVarP(&noteTags, "tags", "t", "", "Comma-separated tags to add")
	noteListCmd.Flags().BoolVarP(&noteSortDesc, "desc", "d", false, "Reverse the order")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteShowCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	noteCmd.AddCommand(noteUntagCmd)
	noteCmd.AddCommand(noteSearchCmd)
	noteCmd.AddCommand(noteTagsCmd)
	rootCmd.AddCommand(noteCmd)
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	if noteService == nil {
		return errNoteServiceMissing
	}

	text := ""
	if len(args) == 2 {
		text = args[1]
	}

	note, err := noteService.Add(cmd.Context(), args[0], text, noteTags)
	if err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}

	cmd.Printf("Note %d '%s' added\n", note.ID, note.Title)
	return nil
}

func runNoteShow(cmd *cobra.Command, args []string) error {
	if noteService == nil {
		return errNoteServiceMissing
	}

	id, err := parseNoteID(args[0])
	if err != nil {
		return err
	}

	note, err := noteService.Get(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("note %d: %w", id, err)
	}

	renderNote(cmd, note)
	return nil
}

func runNoteList(cmd *cobra.Command, args []string) error {
	if noteService == nil {
		return errNoteServiceMissing
	}

	field, direction := "", ""
	if len(args) > 0 {
		field = args[0]
	}
	if len(args) > 1 {
		direction = args[1]
	}
	by, err := domain.ParseNoteSort(field, direction)
	if err != nil {
		return err
	}
	if noteSortDesc {
		by.Descending = true
	}

	notes, err := noteService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	if len(notes) == 0 {
		cmd.Println("No notes yet")
		return nil
	}

	domain.SortNotes(notes, by)
	renderNotes(cmd, notes)
	cmd.Printf("Total: %d notes\n", len(notes))
	return nil
}

func runNoteEdit(cmd *cobra.Command, args []string) error {
	if noteService == nil {
		return errNoteServiceMissing
	}

	id, err := parseNoteID(args[0])
	if err != nil {
		return err
	}
	title, text := "", ""
	if len(args) > 1 {
		title = args[1]
	}
	if len(args) > 2 {
		text = args[2]
	}

	note, err := noteService.Edit(cmd.Context(), id, title, text, noteTags)
	if err != nil {
		return fmt.Errorf("failed to edit note: %w", err)
	}

	cmd.Printf("Note %d '%s' updated\n", note.ID, note.Title)
	return nil
}

func runNoteDelete(cmd *cobra.Command, args []string) error {
	if noteService == nil {
		return errNoteServiceMissing
	}

	id, err := parseNoteID(args[0])
	if err != nil {
		return err
	}

	if err := noteService.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("note %d: %w", id, err)
	}

	cmd.Printf("Note %d removed\n", id)
	return nil
}

func runNoteUntag(cmd *cobra.Command, args []string) error {
	if noteService == nil {
		return errNoteServiceMissing
	}

	id, err := parseNoteID(args[0])
	if err != nil {
		return err
	}

	if err := noteService.RemoveTag(cmd.Context(), id, args[1]); err != nil {
		return fmt.Errorf("failed to remove tag: %w", err)
	}

	cmd.Printf("Tag %s removed from note %d\n", domain.NormalizeTag(args[1]), id)
	return nil
}

func runNoteSearch(cmd *cobra.Command, args []string) error {
	if noteService == nil {
		return errNoteServiceMissing
	}

	notes, err := noteService.SearchByTags(cmd.Context(), strings.Join(args, ","))
	if err != nil {
		return fmt.Errorf("failed to search notes: %w", err)
	}

	if len(notes) == 0 {
		cmd.Println("No matching notes")
		return nil
	}

	renderNotes(cmd, notes)
	cmd.Printf("Found: %d notes\n", len(notes))
	return nil
}

func runNoteTags(cmd *cobra.Command, _ []string) error {
	if noteService == nil {
		return errNoteServiceMissing
	}

	index, err := noteService.Tags(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}

	if len(index) == 0 {
		cmd.Println("No tags yet")
		return nil
	}

	tags := make([]string, 0, len(index))
	for tag := range index {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	st := outputStyles(cmd)
	t := newTable(st, "Tag", "Notes")
	for _, tag := range tags {
		ids := make([]string, len(index[tag]))
		for i, id := range index[tag] {
			ids[i] = strconv.Itoa(id)
		}
		t.Row(tag, strings.Join(ids, ", "))
	}
	cmd.Println(t.Render())
	return nil
}

func parseNoteID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: note id must be a positive number, got %q", domain.ErrInvalidInput, arg)
	}
	return id, nil
}
