package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
)

var phoneCmd = &cobra.Command{
	Use:   "phone [name]",
	Short: "Manage contact phone numbers",
	Long: `Add, change and remove phone numbers, or list a contact's phones.

Numbers use the Ukrainian format: +38 followed by ten digits. Spaces are
ignored, so "+38 050 111 22 33" and "+380501112233" are the same number.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPhoneList,
}

var phoneAddCmd = &cobra.Command{
	Use:   "add [name] [phone]",
	Short: "Add a phone, creating the contact if needed",
	Args:  cobra.ExactArgs(2),
	RunE:  runPhoneAdd,
}

var phoneRemoveCmd = &cobra.Command{
	Use:   "remove [name] [phone]",
	Short: "Remove a phone from a contact",
	Args:  cobra.ExactArgs(2),
	RunE:  runPhoneRemove,
}

var phoneChangeCmd = &cobra.Command{
	Use:   "change [name] [old-phone] [new-phone]",
	Short: "Replace one of a contact's phones",
	Args:  cobra.ExactArgs(3),
	RunE:  runPhoneChange,
}

// phoneLabel is a flag for the add and change commands.
var phoneLabel string

func init() {
	phoneAddCmd.Flags().StringVarP(&phoneLabel, "label", "l", "", "Label for the phone, e.g. work")
	phoneChangeCmd.Flags().StringVarP(&phoneLabel, "label", "l", "", "Label for the new phone")

	phoneCmd.AddCommand(phoneAddCmd)
	phoneCmd.AddCommand(phoneRemoveCmd)
	phoneCmd.AddCommand(phoneChangeCmd)
	rootCmd.AddCommand(phoneCmd)
}

func runPhoneList(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	if contactService == nil {
		return errContactServiceMissing
	}

	contact, err := contactService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("contact %s: %w", args[0], err)
	}

	cmd.Printf("Phones %s: %s\n", contact.Name, orNotSet(phonesString(contact, ", ")))
	return nil
}

func runPhoneAdd(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errContactServiceMissing
	}

	name, phone := args[0], args[1]
	if err := contactService.AddPhone(cmd.Context(), name, phone, phoneLabel); err != nil {
		return fmt.Errorf("failed to add phone: %w", err)
	}

	cmd.Printf("Phone %s to %s added\n", phone, domain.NormalizeName(name))
	return nil
}

func runPhoneRemove(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errContactServiceMissing
	}

	name, phone := args[0], args[1]
	if err := contactService.RemovePhone(cmd.Context(), name, phone); err != nil {
		return fmt.Errorf("failed to remove phone: %w", err)
	}

	cmd.Printf("Phone %s of %s removed\n", phone, domain.NormalizeName(name))
	return nil
}

func runPhoneChange(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errContactServiceMissing
	}

	name, oldPhone, newPhone := args[0], args[1], args[2]
	if err := contactService.ChangePhone(cmd.Context(), name, oldPhone, newPhone, phoneLabel); err != nil {
		return fmt.Errorf("failed to change phone: %w", err)
	}

	cmd.Printf("Contact %s: %s changed to %s\n", domain.NormalizeName(name), oldPhone, newPhone)
	return nil
}
