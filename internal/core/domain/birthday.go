package domain

import (
	"sort"
	"time"
)

// LeapDayPolicy decides where a 29 February birthday falls in a year
// without that day.
type LeapDayPolicy string

// Available leap day policies.
const (
	// LeapDayMarch1 moves the occurrence to 1 March.
	LeapDayMarch1 LeapDayPolicy = "march1"

	// LeapDayFeb28 moves the occurrence to 28 February.
	LeapDayFeb28 LeapDayPolicy = "feb28"

	// LeapDaySkip drops the occurrence for that year.
	LeapDaySkip LeapDayPolicy = "skip"
)

// DefaultLeapDayPolicy is used when no policy is configured.
const DefaultLeapDayPolicy = LeapDayMarch1

// IsValid returns true if the policy is recognised.
func (p LeapDayPolicy) IsValid() bool {
	switch p {
	case LeapDayMarch1, LeapDayFeb28, LeapDaySkip:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p LeapDayPolicy) String() string {
	return string(p)
}

// Description returns a human-readable description of the policy.
func (p LeapDayPolicy) Description() string {
	switch p {
	case LeapDayMarch1:
		return "1 March in non-leap years"
	case LeapDayFeb28:
		return "28 February in non-leap years"
	case LeapDaySkip:
		return "no greeting in non-leap years"
	default:
		return "Unknown"
	}
}

// Greeting is a contact whose birthday falls inside the requested horizon.
type Greeting struct {
	// Name is the contact key.
	Name string

	// Birthday is the stored birth date.
	Birthday Date

	// Occurrence is the birthday's date inside the horizon.
	Occurrence Date

	// CongratulationDate is Occurrence moved off the weekend.
	CongratulationDate Date
}

// Occurrence returns the birthday's anniversary in the given year.
// ok is false only for 29 February under LeapDaySkip in a non-leap year.
func Occurrence(birthday Date, year int, policy LeapDayPolicy) (Date, bool) {
	if birthday.Month == time.February && birthday.Day == 29 && !isLeap(year) {
		switch policy {
		case LeapDaySkip:
			return Date{}, false
		case LeapDayFeb28:
			return Date{Year: year, Month: time.February, Day: 28}, true
		default:
			return Date{Year: year, Month: time.March, Day: 1}, true
		}
	}
	return Date{Year: year, Month: birthday.Month, Day: birthday.Day}, true
}

// NextOccurrence returns the anniversary of birthday whose offset from today
// lies in [0, horizonDays), trying today's year first and then the next one.
func NextOccurrence(birthday, today Date, horizonDays int, policy LeapDayPolicy) (Date, bool) {
	for _, year := range []int{today.Year, today.Year + 1} {
		occ, ok := Occurrence(birthday, year, policy)
		if !ok {
			continue
		}
		delta := today.DaysUntil(occ)
		if delta >= 0 && delta < horizonDays {
			return occ, true
		}
	}
	return Date{}, false
}

// CongratulationDate moves a Saturday or Sunday to the following Monday.
func CongratulationDate(d Date) Date {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDays(2)
	case time.Sunday:
		return d.AddDays(1)
	default:
		return d
	}
}

// UpcomingBirthdays lists the contacts to congratulate within horizonDays
// of today. Only the calendar date of today is used.
// The result is ordered by congratulation date, then occurrence, then name.
func UpcomingBirthdays(contacts []Contact, horizonDays int, today time.Time, policy LeapDayPolicy) []Greeting {
	if horizonDays <= 0 {
		return nil
	}
	if !policy.IsValid() {
		policy = DefaultLeapDayPolicy
	}

	day := DateOf(today)
	var greetings []Greeting
	for i := range contacts {
		c := &contacts[i]
		if c.Birthday == nil {
			continue
		}
		occ, ok := NextOccurrence(*c.Birthday, day, horizonDays, policy)
		if !ok {
			continue
		}
		greetings = append(greetings, Greeting{
			Name:               c.Name,
			Birthday:           *c.Birthday,
			Occurrence:         occ,
			CongratulationDate: CongratulationDate(occ),
		})
	}

	sort.SliceStable(greetings, func(i, j int) bool {
		a, b := greetings[i], greetings[j]
		if a.CongratulationDate != b.CongratulationDate {
			return a.CongratulationDate.Before(b.CongratulationDate)
		}
		if a.Occurrence != b.Occurrence {
			return a.Occurrence.Before(b.Occurrence)
		}
		return a.Name < b.Name
	})
	return greetings
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
