package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage contacts",
	Long: `Add, show, list and remove contacts, and set their birthday, email and address.

Names are matched case-insensitively.`,
}

var contactAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add an empty contact",
	Long: `Add an empty contact. An existing contact is left as it is unless
--strict is given, in which case adding a taken name fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runContactAdd,
}

var contactShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactShow,
}

var contactRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove a contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactRemove,
}

var contactListCmd = &cobra.Command{
	Use:   "list [field] [desc]",
	Short: "List all contacts",
	Long: `List all contacts as a table.

The sort field is one of name, birthday, email, address, phones or none
(insertion order). A second argument of desc, reverse or true reverses the
order. Without a field the contacts.sort setting applies.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runContactList,
}

var contactBirthdayCmd = &cobra.Command{
	Use:   "birthday [name] [DD.MM.YYYY]",
	Short: "Set or show a contact's birthday",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runContactBirthday,
}

var contactEmailCmd = &cobra.Command{
	Use:   "email [name] [email]",
	Short: "Set or show a contact's email",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runContactEmail,
}

var contactAddressCmd = &cobra.Command{
	Use:   "address [name] [address...]",
	Short: "Set or show a contact's address",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runContactAddress,
}

var contactFindByPhoneCmd = &cobra.Command{
	Use:   "find-by-phone [phone]",
	Short: "Find the contact holding a phone number",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactFindByPhone,
}

var contactFindByEmailCmd = &cobra.Command{
	Use:   "find-by-email [email]",
	Short: "Find the contact with an email address",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactFindByEmail,
}

// Flags for the add command.
var contactAddStrict bool

// Flags for the list command.
var (
	contactSortField string
	contactSortDesc  bool
)

func init() {
	contactAddCmd.Flags().BoolVar(&contactAddStrict, "strict", false, "Fail if the contact already exists")
	contactListCmd.Flags().StringVarP(&contactSortField, "sort", "s", "", "Sort field")
	contactListCmd.Flags().BoolVarP(&contactSortDesc, "desc", "d", false, "Reverse the order")

	contactCmd.AddCommand(contactAddCmd)
	contactCmd.AddCommand(contactShowCmd)
	contactCmd.AddCommand(contactRemoveCmd)
	contactCmd.AddCommand(contactListCmd)
	contactCmd.AddCommand(contactBirthdayCmd)
	contactCmd.AddCommand(contactEmailCmd)
	contactCmd.AddCommand(contactAddressCmd)
	contactCmd.AddCommand(contactFindByPhoneCmd)
	contactCmd.AddCommand(contactFindByEmailCmd)
	rootCmd.AddCommand(contactCmd)
}

func runContactAdd(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errContactServiceMissing
	}

	add := contactService.Add
	if contactAddStrict {
		add = contactService.Create
	}

	contact, err := add(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to add contact: %w", err)
	}

	cmd.Printf("Contact %s added\n", contact.Name)
	return nil
}

func runContactShow(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errContactServiceMissing
	}

	contact, err := contactService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("contact %s: %w", args[0], err)
	}

	renderContact(cmd, contact)
	return nil
}

func runContactRemove(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errContactServiceMissing
	}

	if err := contactService.Remove(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("contact %s: %w", args[0], err)
	}

	cmd.Printf("Contact %s removed\n", domain.NormalizeName(args[0]))
	return nil
}

func runContactList(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errContactServiceMissing
	}

	field, direction := "", ""
	if len(args) > 0 {
		field = args[0]
	}
	if len(args) > 1 {
		direction = args[1]
	}
	if cmd.Flags().Changed("sort") {
		field = contactSortField
	}
	if field == "" && settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			field = string(settings.Contacts.Sort)
		}
	}

	by, err := domain.ParseContactSort(field, direction)
	if err != nil {
		return err
	}
	if contactSortDesc {
		by.Descending = true
	}

	contacts, err := contactService.List(cmd.Context(), by)
	if err != nil {
		return fmt.Errorf("failed to list contacts: %w", err)
	}

	if len(contacts) == 0 {
		cmd.Println("No contacts yet")
		return nil
	}

	renderContacts(cmd, contacts)
	cmd.Printf("Total: %d contacts\n", len(contacts))
	return nil
}

func runContactBirthday(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errContactServiceMissing
	}

	name := args[0]
	if len(args) == 2 {
		if err := contactService.SetBirthday(cmd.Context(), name, args[1]); err != nil {
			return fmt.Errorf("failed to set birthday: %w", err)
		}
		cmd.Printf("Birthday %s to %s added\n", args[1], domain.NormalizeName(name))
		return nil
	}

	contact, err := contactService.Get(cmd.Context(), name)
	if err != nil {
		return fmt.Errorf("contact %s: %w", name, err)
	}
	cmd.Printf("Birthday %s: %s\n", contact.Name, orNotSet(birthdayString(contact)))
	return nil
}

func runContactEmail(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errContactServiceMissing
	}

	name := args[0]
	if len(args) == 2 {
		if err := contactService.SetEmail(cmd.Context(), name, args[1]); err != nil {
			return fmt.Errorf("failed to set email: %w", err)
		}
		cmd.Printf("Email %s to %s added\n", args[1], domain.NormalizeName(name))
		return nil
	}

	contact, err := contactService.Get(cmd.Context(), name)
	if err != nil {
		return fmt.Errorf("contact %s: %w", name, err)
	}
	cmd.Printf("Email %s: %s\n", contact.Name, orNotSet(contact.Email))
	return nil
}

func runContactAddress(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errContactServiceMissing
	}

	name := args[0]
	if len(args) > 1 {
		address := strings.Join(args[1:], " ")
		if err := contactService.SetAddress(cmd.Context(), name, address); err != nil {
			return fmt.Errorf("failed to set address: %w", err)
		}
		cmd.Printf("Address %s to %s added\n", address, domain.NormalizeName(name))
		return nil
	}

	contact, err := contactService.Get(cmd.Context(), name)
	if err != nil {
		return fmt.Errorf("contact %s: %w", name, err)
	}
	cmd.Printf("Address %s: %s\n", contact.Name, orNotSet(contact.Address))
	return nil
}

func runContactFindByPhone(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errContactServiceMissing
	}

	contact, err := contactService.FindByPhone(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("contact with phone %s: %w", args[0], err)
	}

	renderContact(cmd, contact)
	return nil
}

func runContactFindByEmail(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errContactServiceMissing
	}

	contact, err := contactService.FindByEmail(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("contact with email %s: %w", args[0], err)
	}

	renderContact(cmd, contact)
	return nil
}
