package calendar

import (
	"errors"
	"time"

	"github.com/username/address-book-bot/pkg/dateutil"
	"go.uber.org/zap"
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
)

// ErrDayNotFound is returned by calendars that have no entry for a date
var ErrDayNotFound = errors.New("day not found in calendar")

// DayInfo represents information about a specific day
type DayInfo struct {
	Date      time.Time
	Type      DayType
	IsWorkday bool
	Note      string
}

// Calendar interface for checking working days
type Calendar interface {
	// IsWorkday checks if the given date is a working day
	IsWorkday(date time.Time) (bool, error)
}

// Weekends treats Monday-Friday as working days and nothing else
type Weekends struct{}

// IsWorkday checks if the given date is Monday-Friday
func (Weekends) IsWorkday(date time.Time) (bool, error) {
	return dateutil.IsWeekday(date), nil
}

// New returns the weekend calendar, or, when holidaysFile is set, the
// file's overrides backed by the weekend rule
func New(holidaysFile string, logger *zap.Logger) (Calendar, error) {
	if holidaysFile == "" {
		return Weekends{}, nil
	}

	fileCal := NewFileCalendar(holidaysFile, logger)
	if err := fileCal.Load(); err != nil {
		return nil, err
	}

	return NewCompositeCalendar(fileCal, Weekends{}, logger), nil
}
