package domain

// DefaultBirthdayHorizon is the number of days the birthdays query covers
// when no horizon is configured.
const DefaultBirthdayHorizon = 7

// Settings holds user preferences loaded from configuration.
type Settings struct {
	Birthdays BirthdaySettings
	Contacts  ContactSettings
	Display   DisplaySettings
}

// BirthdaySettings configures the upcoming birthdays query.
type BirthdaySettings struct {
	// HorizonDays is the default window, in days, starting today.
	HorizonDays int

	// LeapDayPolicy places 29 February birthdays in non-leap years.
	LeapDayPolicy LeapDayPolicy
}

// ContactSettings configures contact listings.
type ContactSettings struct {
	// Sort is the default order of `contact list`.
	Sort ContactSortField
}

// DisplaySettings configures terminal output.
type DisplaySettings struct {
	// Color enables styled tables when stdout is a terminal.
	Color bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	return &Settings{
		Birthdays: BirthdaySettings{
			HorizonDays:   DefaultBirthdayHorizon,
			LeapDayPolicy: DefaultLeapDayPolicy,
		},
		Contacts: ContactSettings{
			Sort: SortByName,
		},
		Display: DisplaySettings{
			Color: true,
		},
	}
}
