package contacts

import (
	"time"

	"github.com/username/address-book-bot/pkg/dateutil"
)

// PhoneLength is the exact number of digits in a phone number
const PhoneLength = 10

// Name is a non-empty contact name, stored verbatim
type Name struct {
	value string
}

// NewName validates and wraps a contact name
func NewName(value string) (Name, error) {
	if value == "" {
		return Name{}, newValidationError("name", value, ErrEmptyName, nil)
	}
	return Name{value: value}, nil
}

// String returns the name as given
func (n Name) String() string {
	return n.value
}

// Phone is a phone number of exactly ten decimal digits.
// Kept as text so leading zeros survive.
type Phone struct {
	value string
}

// NewPhone validates and wraps a phone number
func NewPhone(value string) (Phone, error) {
	if !isPhone(value) {
		return Phone{}, newValidationError("phone", value, ErrInvalidPhone, nil)
	}
	return Phone{value: value}, nil
}

func isPhone(value string) bool {
	if len(value) != PhoneLength {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// String returns the digits
func (p Phone) String() string {
	return p.value
}

// Birthday is a calendar date without a time of day
type Birthday struct {
	date time.Time
}

// NewBirthday parses a DD.MM.YYYY date
func NewBirthday(value string) (Birthday, error) {
	date, err := dateutil.ParseDate(value)
	if err != nil {
		return Birthday{}, newValidationError("birthday", value, ErrInvalidDate, err)
	}
	return Birthday{date: date}, nil
}

// Date returns the birthday at midnight UTC
func (b Birthday) Date() time.Time {
	return b.date
}

// String renders the birthday as DD.MM.YYYY
func (b Birthday) String() string {
	return dateutil.FormatDate(b.date)
}
