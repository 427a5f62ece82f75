package dateutil

import (
	"fmt"
	"time"
)

// Layout is the DD.MM.YYYY format used for birthdays and congratulation dates
const Layout = "02.01.2006"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// NextWeekday moves Saturday to the following Monday (+2) and Sunday to
// the following Monday (+1). Weekdays are returned unchanged.
func NextWeekday(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	}
	return date
}

// IsLeapYear reports whether year has a 29th of February
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// AnniversaryIn returns the month/day of date placed in year, at midnight UTC.
// A 29 February date lands on 28 February in non-leap years.
func AnniversaryIn(date time.Time, year int) time.Time {
	month, day := date.Month(), date.Day()
	if month == time.February && day == 29 && !IsLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NextAnniversary returns the first anniversary of date on or after today
func NextAnniversary(date, today time.Time) time.Time {
	today = CivilDate(today)
	anniversary := AnniversaryIn(date, today.Year())
	if anniversary.Before(today) {
		anniversary = AnniversaryIn(date, today.Year()+1)
	}
	return anniversary
}

// CivilDate drops the time of day and location, keeping the calendar date
// as seen in date's own location.
func CivilDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from one date to another.
// Negative when to is before from.
func DaysBetween(from, to time.Time) int {
	return int(CivilDate(to).Sub(CivilDate(from)).Hours() / 24)
}

// ParseDate parses a DD.MM.YYYY string strictly: two-digit day and month,
// four-digit year, and a date that exists in the calendar.
func ParseDate(dateStr string) (time.Time, error) {
	if !matchesLayout(dateStr) {
		return time.Time{}, fmt.Errorf("date %q does not match DD.MM.YYYY", dateStr)
	}
	t, err := time.Parse(Layout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q does not match DD.MM.YYYY: %w", dateStr, err)
	}
	return t, nil
}

func matchesLayout(s string) bool {
	if len(s) != len(Layout) {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch i {
		case 2, 5:
			if s[i] != '.' {
				return false
			}
		default:
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
	}
	return true
}

// FormatDate formats date as DD.MM.YYYY
func FormatDate(date time.Time) string {
	return date.Format(Layout)
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
