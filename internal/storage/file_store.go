package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/username/address-book-bot/internal/contacts"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// bookDocument is the on-disk shape of an address book
type bookDocument struct {
	Contacts []contactDocument `json:"contacts" yaml:"contacts"`
}

type contactDocument struct {
	Name     string   `json:"name" yaml:"name"`
	Phones   []string `json:"phones" yaml:"phones"`
	Birthday string   `json:"birthday,omitempty" yaml:"birthday,omitempty"`
}

// FileStore persists an address book to a single file.
// Files ending in .yaml or .yml are YAML, everything else is JSON.
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore creates a new file store
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

// Path returns the backing file path
func (fs *FileStore) Path() string {
	return fs.path
}

// Load reads the address book. A missing file is an empty book.
func (fs *FileStore) Load() (*contacts.AddressBook, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist yet - will be created on first save
			fs.logger.Debug("Address book file not found, starting empty",
				zap.String("file", fs.path))
			return contacts.NewAddressBook(), nil
		}
		return nil, fmt.Errorf("failed to read address book: %w", err)
	}

	var doc bookDocument
	if fs.isYAML() {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse address book: %w", err)
	}

	book, err := doc.toBook()
	if err != nil {
		return nil, fmt.Errorf("invalid address book %s: %w", fs.path, err)
	}

	fs.logger.Info("Address book loaded",
		zap.String("file", fs.path),
		zap.Int("contacts", book.Len()))

	return book, nil
}

// Save writes the address book, creating parent directories as needed
func (fs *FileStore) Save(book *contacts.AddressBook) error {
	doc := fromBook(book)

	var (
		data []byte
		err  error
	)
	if fs.isYAML() {
		data, err = yaml.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal address book: %w", err)
	}

	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create address book directory: %w", err)
		}
	}

	if err := os.WriteFile(fs.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write address book: %w", err)
	}

	fs.logger.Info("Address book saved",
		zap.String("file", fs.path),
		zap.Int("contacts", len(doc.Contacts)))

	return nil
}

func (fs *FileStore) isYAML() bool {
	switch strings.ToLower(filepath.Ext(fs.path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func fromBook(book *contacts.AddressBook) bookDocument {
	records := book.Records()
	doc := bookDocument{Contacts: make([]contactDocument, 0, len(records))}

	for _, r := range records {
		c := contactDocument{
			Name:   r.Name().String(),
			Phones: make([]string, 0),
		}
		for _, p := range r.Phones() {
			c.Phones = append(c.Phones, p.String())
		}
		if b, ok := r.Birthday(); ok {
			c.Birthday = b.String()
		}
		doc.Contacts = append(doc.Contacts, c)
	}

	return doc
}

// toBook rebuilds records through the validating constructors
func (doc bookDocument) toBook() (*contacts.AddressBook, error) {
	book := contacts.NewAddressBook()

	for i, c := range doc.Contacts {
		r, err := contacts.NewRecord(c.Name)
		if err != nil {
			return nil, fmt.Errorf("contact %d: %w", i, err)
		}
		for _, p := range c.Phones {
			if err := r.AddPhone(p); err != nil {
				return nil, fmt.Errorf("contact %d (%s): %w", i, c.Name, err)
			}
		}
		if c.Birthday != "" {
			if err := r.AddBirthday(c.Birthday); err != nil {
				return nil, fmt.Errorf("contact %d (%s): %w", i, c.Name, err)
			}
		}
		book.AddRecord(r)
	}

	return book, nil
}
