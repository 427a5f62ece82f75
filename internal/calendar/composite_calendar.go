package calendar

import (
	"time"

	"go.uber.org/zap"
)

// CompositeCalendar implements Calendar with fallback strategy
// Primary: FileCalendar (holiday overrides)
// Fallback: Weekends
type CompositeCalendar struct {
	primary  Calendar
	fallback Calendar
	logger   *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary, fallback Calendar, logger *zap.Logger) *CompositeCalendar {
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// IsWorkday asks the primary calendar first and the fallback when the
// primary has no answer
func (cc *CompositeCalendar) IsWorkday(date time.Time) (bool, error) {
	isWorkday, err := cc.primary.IsWorkday(date)
	if err == nil {
		return isWorkday, nil
	}

	cc.logger.Debug("Primary calendar has no answer, using fallback",
		zap.String("date", date.Format("2006-01-02")),
		zap.Error(err))

	return cc.fallback.IsWorkday(date)
}
