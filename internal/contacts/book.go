package contacts

import (
	"slices"
	"sync"
)

// AddressBook maps contact names to records. Records come back in the order
// their names were first added. Safe for concurrent use; the records it
// hands out are not.
type AddressBook struct {
	mu      sync.RWMutex
	records map[string]*Record
	order   []string
}

// NewAddressBook creates an empty address book
func NewAddressBook() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// AddRecord stores record under its name, silently replacing any record
// with the same name. A replaced name keeps its position.
func (b *AddressBook) AddRecord(record *Record) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := record.name.value
	if _, ok := b.records[key]; !ok {
		b.order = append(b.order, key)
	}
	b.records[key] = record
}

// Find returns the record stored under name
func (b *AddressBook) Find(name string) (*Record, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	record, ok := b.records[name]
	return record, ok
}

// Delete removes the record stored under name.
// Returns false if there was none.
func (b *AddressBook) Delete(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.records[name]; !ok {
		return false
	}

	delete(b.records, name)
	if i := slices.Index(b.order, name); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
	return true
}

// Records returns all records in insertion order
func (b *AddressBook) Records() []*Record {
	b.mu.RLock()
	defer b.mu.RUnlock()

	records := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		records = append(records, b.records[name])
	}
	return records
}

// Len returns the number of contacts
func (b *AddressBook) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.records)
}
