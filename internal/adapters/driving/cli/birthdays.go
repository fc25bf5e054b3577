package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lotus-cli/internal/core/domain"
)

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays [days]",
	Short: "List birthdays to congratulate soon",
	Long: `List contacts whose birthday falls within the next days, starting today.

Birthdays on a Saturday or Sunday are congratulated on the following Monday.
Without an argument the birthdays.horizon_days setting applies (7 by default).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBirthdays,
}

func init() {
	rootCmd.AddCommand(birthdaysCmd)
}

func runBirthdays(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errContactServiceMissing
	}

	days := domain.DefaultBirthdayHorizon
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			days = settings.Birthdays.HorizonDays
		}
	}
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: days must be a number, got %q", domain.ErrInvalidInput, args[0])
		}
		days = n
	}

	greetings, err := contactService.UpcomingBirthdays(cmd.Context(), days)
	if err != nil {
		return fmt.Errorf("failed to list birthdays: %w", err)
	}

	if len(greetings) == 0 {
		cmd.Println("Empty list")
		return nil
	}

	renderGreetings(cmd, greetings)
	return nil
}
