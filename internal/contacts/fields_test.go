package contacts

import (
	"errors"
	"strings"
	"testing"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Plain", "John", false},
		{"Kept verbatim", "  john smith ", false},
		{"Unicode", "Олена", false},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewName(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("NewName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrEmptyName) || err.Error() != "empty name" {
					t.Errorf("NewName(%q) error = %v, want empty name", tt.input, err)
				}
				return
			}
			if n.String() != tt.input {
				t.Errorf("NewName(%q).String() = %q", tt.input, n.String())
			}
		})
	}
}

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Ten digits", "1234567890", false},
		{"Leading zeros", "0012345678", false},
		{"All zeros", "0000000000", false},
		{"Nine digits", "123456789", true},
		{"Eleven digits", "12345678901", true},
		{"Letter", "12345a7890", true},
		{"Plus prefix", "+123456789", true},
		{"Spaces", "123 456 78", true},
		{"Dashes", "123-456-78", true},
		{"Non-ASCII digits", "١٢٣٤٥٦٧٨٩٠", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhone(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("NewPhone(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPhone) || err.Error() != "invalid phone" {
					t.Errorf("NewPhone(%q) error = %v, want invalid phone", tt.input, err)
				}
				return
			}
			if p.String() != tt.input {
				t.Errorf("NewPhone(%q).String() = %q", tt.input, p.String())
			}
		})
	}
}

func TestNewPhoneRoundTrip(t *testing.T) {
	for d := 0; d <= 9; d++ {
		s := strings.Repeat(string(rune('0'+d)), PhoneLength)

		p, err := NewPhone(s)
		if err != nil {
			t.Errorf("NewPhone(%q) error = %v", s, err)
			continue
		}
		if p.String() != s {
			t.Errorf("NewPhone(%q).String() = %q", s, p.String())
		}
	}
}

func TestNewBirthday(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid", "04.11.1988", false},
		{"Leap day", "29.02.2000", false},
		{"Impossible date", "30.02.2024", true},
		{"Month 13", "01.13.2000", true},
		{"Slashes", "04/11/1988", true},
		{"Short fields", "4.11.1988", true},
		{"Non-numeric", "aa.bb.cccc", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBirthday(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBirthday(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) || err.Error() != "invalid date" {
					t.Errorf("NewBirthday(%q) error = %v, want invalid date", tt.input, err)
				}
				return
			}
			if b.String() != tt.input {
				t.Errorf("NewBirthday(%q).String() = %q", tt.input, b.String())
			}
			if h, m, s := b.Date().Clock(); h != 0 || m != 0 || s != 0 {
				t.Errorf("NewBirthday(%q).Date() has time of day %v", tt.input, b.Date())
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	_, err := NewBirthday("31.04.2024")

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error %T is not *ValidationError", err)
	}
	if verr.Field != "birthday" || verr.Value != "31.04.2024" {
		t.Errorf("ValidationError = %+v", verr)
	}
	if errors.Is(err, ErrInvalidPhone) {
		t.Error("date error should not match ErrInvalidPhone")
	}
}
