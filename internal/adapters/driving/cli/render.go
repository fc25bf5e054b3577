package cli

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/lotus-cli/internal/adapters/driving/styles"
	"github.com/custodia-labs/lotus-cli/internal/core/domain"
)

// timeLayout formats note timestamps.
const timeLayout = "2006-01-02 15:04"

// interactive is set while the shell runs commands into a buffer on
// behalf of a terminal.
var interactive bool

// outputStyles picks coloured or plain styles for cmd's output.
func outputStyles(cmd *cobra.Command) *styles.Styles {
	if !colorEnabled() {
		return styles.PlainStyles()
	}
	if interactive || isTerminal(cmd.OutOrStdout()) {
		return styles.DefaultStyles()
	}
	return styles.PlainStyles()
}

func colorEnabled() bool {
	if settingsService == nil {
		return true
	}
	settings, err := settingsService.Get()
	if err != nil {
		return true
	}
	return settings.Display.Color
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newTable(st *styles.Styles, headers ...string) *table.Table {
	border := lipgloss.RoundedBorder()
	if st.Plain() {
		border = lipgloss.NormalBorder()
	}

	return table.New().
		Border(border).
		BorderStyle(st.Border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.Header
			}
			return st.Cell
		}).
		Headers(headers...)
}

func renderContacts(cmd *cobra.Command, contacts []domain.Contact) {
	st := outputStyles(cmd)
	t := newTable(st, "Name", "Birthday", "Address", "Phones", "Email")
	for i := range contacts {
		c := &contacts[i]
		t.Row(c.Name, birthdayString(c), c.Address, phonesString(c, "\n"), c.Email)
	}
	cmd.Println(t.Render())
}

func renderContact(cmd *cobra.Command, c *domain.Contact) {
	st := outputStyles(cmd)
	cmd.Printf("%s %s\n\n", st.Title.Render("Contact:"), c.Name)
	cmd.Printf("  Phones:   %s\n", orNotSet(phonesString(c, ", ")))
	cmd.Printf("  Birthday: %s\n", orNotSet(birthdayString(c)))
	cmd.Printf("  Email:    %s\n", orNotSet(c.Email))
	cmd.Printf("  Address:  %s\n", orNotSet(c.Address))
}

func renderNotes(cmd *cobra.Command, notes []domain.Note) {
	st := outputStyles(cmd)
	t := newTable(st, "Id", "Title", "Text", "Tags", "Created", "Modified")
	for i := range notes {
		n := &notes[i]
		t.Row(
			strconv.Itoa(n.ID),
			n.Title,
			n.Text,
			strings.Join(n.Tags, ", "),
			n.CreatedAt.Local().Format(timeLayout),
			n.ModifiedAt.Local().Format(timeLayout),
		)
	}
	cmd.Println(t.Render())
}

func renderNote(cmd *cobra.Command, n *domain.Note) {
	st := outputStyles(cmd)
	cmd.Printf("%s %d\n\n", st.Title.Render("Note:"), n.ID)
	cmd.Printf("  Title:    %s\n", n.Title)
	cmd.Printf("  Tags:     %s\n", orNotSet(strings.Join(n.Tags, ", ")))
	cmd.Printf("  Created:  %s\n", n.CreatedAt.Local().Format(timeLayout))
	cmd.Printf("  Modified: %s\n", n.ModifiedAt.Local().Format(timeLayout))
	if n.Text != "" {
		cmd.Println()
		cmd.Println(n.Text)
	}
}

func renderGreetings(cmd *cobra.Command, greetings []domain.Greeting) {
	st := outputStyles(cmd)
	t := newTable(st, "Name", "Birthday", "Congratulate", "Weekday")
	for _, g := range greetings {
		t.Row(
			g.Name,
			g.Occurrence.String(),
			g.CongratulationDate.String(),
			g.CongratulationDate.Weekday().String(),
		)
	}
	cmd.Println(t.Render())
}

func birthdayString(c *domain.Contact) string {
	if c.Birthday == nil {
		return ""
	}
	return c.Birthday.String()
}

func phonesString(c *domain.Contact, sep string) string {
	numbers := c.PhoneNumbers()
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = n
		if label := c.Phones[n]; label != "" {
			parts[i] += " (" + label + ")"
		}
	}
	return strings.Join(parts, sep)
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
