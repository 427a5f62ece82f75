package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/username/address-book-bot/internal/contacts"
	"go.uber.org/zap"
)

func sampleBook(t *testing.T) *contacts.AddressBook {
	t.Helper()
	book := contacts.NewAddressBook()

	john, err := contacts.NewRecord("John")
	if err != nil {
		t.Fatalf("NewRecord() error = %v", err)
	}
	for _, p := range []string{"1234567890", "0012345678"} {
		if err := john.AddPhone(p); err != nil {
			t.Fatalf("AddPhone() error = %v", err)
		}
	}
	if err := john.AddBirthday("04.11.1988"); err != nil {
		t.Fatalf("AddBirthday() error = %v", err)
	}
	book.AddRecord(john)

	jane, err := contacts.NewRecord("Jane")
	if err != nil {
		t.Fatalf("NewRecord() error = %v", err)
	}
	book.AddRecord(jane)

	return book
}

func renderBook(book *contacts.AddressBook) []string {
	var lines []string
	for _, r := range book.Records() {
		lines = append(lines, r.String())
	}
	return lines
}

func TestFileStore_SaveLoad(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"JSON", "book.json"},
		{"YAML", "book.yaml"},
		{"YML", "book.YML"},
		{"No extension is JSON", "book"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", tt.file)
			store := NewFileStore(path, zap.NewNop())
			book := sampleBook(t)

			if err := store.Save(book); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			loaded, err := store.Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			want, got := renderBook(book), renderBook(loaded)
			if strings.Join(got, "\n") != strings.Join(want, "\n") {
				t.Errorf("Load() = %v, want %v", got, want)
			}
		})
	}
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"), zap.NewNop())

	book, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if book.Len() != 0 {
		t.Errorf("Load() returned %d contacts, want 0", book.Len())
	}
}

func TestFileStore_LoadRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{"Empty name", "book.json", `{"contacts":[{"name":"","phones":[]}]}`, contacts.ErrEmptyName},
		{"Bad phone", "book.json", `{"contacts":[{"name":"John","phones":["12"]}]}`, contacts.ErrInvalidPhone},
		{"Bad birthday", "book.yaml", "contacts:\n  - name: John\n    birthday: \"1988-11-04\"\n", contacts.ErrInvalidDate},
		{"Malformed JSON", "book.json", `{"contacts":`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			_, err := NewFileStore(path, zap.NewNop()).Load()
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFileStore_JSONShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")
	store := NewFileStore(path, zap.NewNop())

	if err := store.Save(sampleBook(t)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	for _, want := range []string{`"name": "John"`, `"0012345678"`, `"birthday": "04.11.1988"`, `"phones": []`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("saved JSON missing %s:\n%s", want, data)
		}
	}
	if strings.Count(string(data), `"birthday"`) != 1 {
		t.Errorf("contact without birthday should omit the field:\n%s", data)
	}
}
