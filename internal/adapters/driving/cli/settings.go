package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
)

// Setting keys accepted by 'settings set'.
const (
	settingHorizon   = "birthdays.horizon_days"
	settingLeapDay   = "birthdays.leap_day_policy"
	settingSort      = "contacts.sort"
	settingColor     = "display.color"
	settingsKeysHelp = settingHorizon + ", " + settingLeapDay + ", " + settingSort + ", " + settingColor
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the birthdays window, the leap day policy, the
default contact order and coloured output.

Use subcommands to change a single setting or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Change one setting.

Keys:
  birthdays.horizon_days     days covered by 'lotus birthdays' (1-366)
  birthdays.leap_day_policy  march1, feb28 or skip
  contacts.sort              name, birthday, email, address, phones or none
  display.color              true or false`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Birthdays]")
	cmd.Printf("  Horizon: %d days\n", settings.Birthdays.HorizonDays)
	cmd.Printf("  29 February: %s (%s)\n",
		settings.Birthdays.LeapDayPolicy, settings.Birthdays.LeapDayPolicy.Description())
	cmd.Println()

	cmd.Println("[Contacts]")
	cmd.Printf("  Sort: %s\n", settings.Contacts.Sort)
	cmd.Println()

	cmd.Println("[Display]")
	cmd.Printf("  Color: %t\n", settings.Display.Color)

	if dataDir != "" {
		cmd.Println()
		cmd.Printf("Data directory: %s\n", dataDir)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	key, value := strings.ToLower(args[0]), strings.TrimSpace(args[1])
	if err := applySetting(key, value); err != nil {
		return err
	}

	cmd.Printf("%s set to %s\n", key, value)
	return nil
}

func applySetting(key, value string) error {
	switch key {
	case settingHorizon:
		days, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, key)
		}
		return settingsService.SetBirthdayHorizon(days)
	case settingLeapDay:
		return settingsService.SetLeapDayPolicy(domain.LeapDayPolicy(strings.ToLower(value)))
	case settingSort:
		return settingsService.SetContactSort(domain.ContactSortField(strings.ToLower(value)))
	case settingColor:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		return settingsService.SetColor(enabled)
	default:
		return fmt.Errorf("%w: unknown setting %q (known: %s)", domain.ErrInvalidInput, key, settingsKeysHelp)
	}
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Lotus Settings Wizard")
	cmd.Println("=====================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: birthdays window
	cmd.Println("Step 1: Birthdays Window")
	cmd.Println("------------------------")
	cmd.Printf("Days to look ahead [%d]: ", current.Birthdays.HorizonDays)
	if input := readLine(reader); input != "" {
		days, err := strconv.Atoi(input)
		if err != nil {
			return fmt.Errorf("%w: days must be a number", domain.ErrInvalidInput)
		}
		if err := settingsService.SetBirthdayHorizon(days); err != nil {
			return fmt.Errorf("failed to set birthdays window: %w", err)
		}
	}
	cmd.Println()

	// Step 2: leap day policy
	cmd.Println("Step 2: 29 February Birthdays")
	cmd.Println("-----------------------------")
	policies := []domain.LeapDayPolicy{domain.LeapDayMarch1, domain.LeapDayFeb28, domain.LeapDaySkip}
	for i, p := range policies {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Printf("\nEnter choice [%d]: ", indexOf(policies, current.Birthdays.LeapDayPolicy)+1)
	if input := readLine(reader); input != "" {
		idx := parseChoice(input, len(policies), 0)
		if idx == 0 {
			return fmt.Errorf("%w: invalid selection", domain.ErrInvalidInput)
		}
		if err := settingsService.SetLeapDayPolicy(policies[idx-1]); err != nil {
			return fmt.Errorf("failed to set leap day policy: %w", err)
		}
	}
	cmd.Println()

	// Step 3: contact order
	cmd.Println("Step 3: Contact Order")
	cmd.Println("---------------------")
	fields := []domain.ContactSortField{
		domain.SortByName, domain.SortByBirthday, domain.SortByEmail,
		domain.SortByAddress, domain.SortByPhones, domain.SortByInsertion,
	}
	for i, f := range fields {
		cmd.Printf("  %d. %s\n", i+1, f)
	}
	cmd.Printf("\nEnter choice [%d]: ", indexOf(fields, current.Contacts.Sort)+1)
	if input := readLine(reader); input != "" {
		idx := parseChoice(input, len(fields), 0)
		if idx == 0 {
			return fmt.Errorf("%w: invalid selection", domain.ErrInvalidInput)
		}
		if err := settingsService.SetContactSort(fields[idx-1]); err != nil {
			return fmt.Errorf("failed to set contact order: %w", err)
		}
	}
	cmd.Println()

	// Step 4: colour
	cmd.Println("Step 4: Colour Output")
	cmd.Println("---------------------")
	cmd.Printf("Use colours? (y/n) [%s]: ", yesNo(current.Display.Color))
	switch strings.ToLower(readLine(reader)) {
	case "":
	case "y", "yes":
		if err := settingsService.SetColor(true); err != nil {
			return fmt.Errorf("failed to set colour: %w", err)
		}
	case "n", "no":
		if err := settingsService.SetColor(false); err != nil {
			return fmt.Errorf("failed to set colour: %w", err)
		}
	default:
		return fmt.Errorf("%w: answer y or n", domain.ErrInvalidInput)
	}
	cmd.Println()

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	return runSettingsShow(cmd, nil)
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func indexOf[T comparable](items []T, item T) int {
	for i, it := range items {
		if it == item {
			return i
		}
	}
	return 0
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}
