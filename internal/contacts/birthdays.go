package contacts

import (
	"fmt"
	"time"

	"github.com/username/address-book-bot/pkg/dateutil"
)

// DefaultWindowDays is how far ahead UpcomingBirthdays looks, today included
const DefaultWindowDays = 7

// maxShiftDays bounds the search for a workday after a birthday
const maxShiftDays = 31

// Congratulation is a contact to greet and the date to do it on (DD.MM.YYYY)
type Congratulation struct {
	Name               string `json:"name"`
	CongratulationDate string `json:"congratulation_date"`
}

// WorkdayCalendar decides which days congratulations may fall on
type WorkdayCalendar interface {
	IsWorkday(date time.Time) (bool, error)
}

// UpcomingBirthdays lists contacts whose birthday falls within the next
// seven days of today, inclusive. Saturday and Sunday birthdays are
// congratulated on the following Monday.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []Congratulation {
	result, _ := b.UpcomingBirthdaysWithin(today, DefaultWindowDays, nil)
	return result
}

// UpcomingBirthdaysWithin is UpcomingBirthdays with a configurable window.
// With a nil calendar weekends shift to Monday; otherwise the congratulation
// moves forward to the first day cal reports as a workday.
func (b *AddressBook) UpcomingBirthdaysWithin(today time.Time, days int, cal WorkdayCalendar) ([]Congratulation, error) {
	today = dateutil.CivilDate(today)
	result := []Congratulation{}

	for _, record := range b.Records() {
		birthday, ok := record.Birthday()
		if !ok {
			continue
		}

		anniversary := dateutil.NextAnniversary(birthday.Date(), today)
		until := dateutil.DaysBetween(today, anniversary)
		if until < 0 || until > days {
			continue
		}

		celebration := dateutil.NextWeekday(anniversary)
		if cal != nil {
			var err error
			celebration, err = nextWorkday(cal, anniversary)
			if err != nil {
				return nil, fmt.Errorf("failed to pick congratulation date for %s: %w", record.Name(), err)
			}
		}

		result = append(result, Congratulation{
			Name:               record.Name().String(),
			CongratulationDate: dateutil.FormatDate(celebration),
		})
	}

	return result, nil
}

func nextWorkday(cal WorkdayCalendar, date time.Time) (time.Time, error) {
	for i := 0; i <= maxShiftDays; i++ {
		isWorkday, err := cal.IsWorkday(date)
		if err != nil {
			return time.Time{}, err
		}
		if isWorkday {
			return date, nil
		}
		date = date.AddDate(0, 0, 1)
	}
	return time.Time{}, fmt.Errorf("no workday within %d days", maxShiftDays)
}
