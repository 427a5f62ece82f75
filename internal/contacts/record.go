package contacts

import (
	"fmt"
	"strings"
)

// birthdayMissing is rendered in place of an unset birthday
const birthdayMissing = "N/A"

// Record is one contact: a fixed name, an ordered list of phones and an
// optional birthday. Renaming a contact means deleting and re-adding it.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a contact with no phones and no birthday
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	return &Record{
		name:   n,
		phones: []Phone{},
	}, nil
}

// Name returns the contact name
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the phone list in insertion order
func (r *Record) Phones() []Phone {
	phones := make([]Phone, len(r.phones))
	copy(phones, r.phones)
	return phones
}

// Birthday returns the birthday and whether one is set
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone appends a phone number. Duplicates are kept.
func (r *Record) AddPhone(phone string) error {
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}

	r.phones = append(r.phones, p)
	return nil
}

// AddBirthday sets the birthday, replacing any previous one
func (r *Record) AddBirthday(birthday string) error {
	b, err := NewBirthday(birthday)
	if err != nil {
		return err
	}

	r.birthday = &b
	return nil
}

// RemovePhone removes the first phone equal to phone.
// Returns false if there was none.
func (r *Record) RemovePhone(phone string) bool {
	i := r.indexOf(phone)
	if i < 0 {
		return false
	}

	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return true
}

// EditPhone replaces the first phone equal to oldPhone with newPhone, keeping
// its position. When oldPhone is missing it returns false without looking at
// newPhone; otherwise an invalid newPhone leaves the record unchanged.
func (r *Record) EditPhone(oldPhone, newPhone string) (bool, error) {
	i := r.indexOf(oldPhone)
	if i < 0 {
		return false, nil
	}

	p, err := NewPhone(newPhone)
	if err != nil {
		return false, err
	}

	r.phones[i] = p
	return true, nil
}

// FindPhone returns the first phone equal to phone
func (r *Record) FindPhone(phone string) (Phone, bool) {
	i := r.indexOf(phone)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

func (r *Record) indexOf(phone string) int {
	for i, p := range r.phones {
		if p.value == phone {
			return i
		}
	}
	return -1
}

// String renders the contact as a single display line:
// Contact name: <name>, phones: <p1>; <p2>, birthday: <DD.MM.YYYY|N/A>
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}

	birthday := birthdayMissing
	if r.birthday != nil {
		birthday = r.birthday.String()
	}

	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(phones, "; "), birthday)
}
