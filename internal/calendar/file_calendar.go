package calendar

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// FileCalendar implements Calendar interface using a local text file of
// day overrides, one per line:
//
//	# YYYY-MM-DD type [note]
//	2025-01-01 holiday New Year
//	2025-11-01 workday Transferred working Saturday
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	data     map[string]*DayInfo // key: "YYYY-MM-DD"
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		data:     make(map[string]*DayInfo),
	}
}

// Load loads calendar data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, " ", 3)
		if len(parts) < 2 {
			fc.logger.Warn("Invalid line format", zap.String("line", line))
			continue
		}

		date, err := time.Parse("2006-01-02", parts[0])
		if err != nil {
			fc.logger.Warn("Failed to parse date", zap.String("date", parts[0]), zap.Error(err))
			continue
		}

		var dayType DayType
		isWorkday := false
		switch parts[1] {
		case "workday":
			dayType = DayTypeWorkday
			isWorkday = true
		case "weekend":
			dayType = DayTypeWeekend
		case "holiday":
			dayType = DayTypeHoliday
		default:
			fc.logger.Warn("Unknown day type", zap.String("type", parts[1]))
			continue
		}

		note := ""
		if len(parts) == 3 {
			note = parts[2]
		}

		fc.data[parts[0]] = &DayInfo{
			Date:      date,
			Type:      dayType,
			IsWorkday: isWorkday,
			Note:      note,
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading calendar file: %w", err)
	}

	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("days", len(fc.data)))

	return nil
}

// IsWorkday checks if the given date is a working day
func (fc *FileCalendar) IsWorkday(date time.Time) (bool, error) {
	dayInfo, err := fc.GetDayInfo(date)
	if err != nil {
		return false, err
	}

	return dayInfo.IsWorkday, nil
}

// GetDayInfo returns detailed info for a specific day
func (fc *FileCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	key := date.Format("2006-01-02")

	dayInfo, ok := fc.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDayNotFound, key)
	}

	return dayInfo, nil
}
