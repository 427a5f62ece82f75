package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/address-book-bot/internal/calendar"
	"github.com/username/address-book-bot/internal/contacts"
	"github.com/username/address-book-bot/internal/storage"
	"github.com/username/address-book-bot/pkg/dateutil"
	"go.uber.org/zap"
)

var errContactNotFound = errors.New("contact not found")

// withBook loads the address book, runs fn and, when save is set and fn
// succeeded, writes the book back
func (a *app) withBook(save bool, fn func(book *contacts.AddressBook) error) error {
	store := storage.NewFileStore(a.cfg.Book.File, a.logger)

	book, err := store.Load()
	if err != nil {
		return err
	}

	if err := fn(book); err != nil {
		return err
	}

	if !save {
		return nil
	}
	return store.Save(book)
}

func findContact(book *contacts.AddressBook, name string) (*contacts.Record, error) {
	record, ok := book.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errContactNotFound, name)
	}
	return record, nil
}

func addCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <phone>",
		Short: "Add a contact or another phone to an existing one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, phone := args[0], args[1]

			return a.withBook(true, func(book *contacts.AddressBook) error {
				message := "Contact updated."
				record, ok := book.Find(name)
				if !ok {
					var err error
					record, err = contacts.NewRecord(name)
					if err != nil {
						return err
					}
					message = "Contact added."
				}

				if err := record.AddPhone(phone); err != nil {
					return err
				}
				book.AddRecord(record)

				a.logger.Info("Phone added",
					zap.String("contact", name),
					zap.Bool("new_contact", !ok))
				fmt.Fprintln(cmd.OutOrStdout(), message)
				return nil
			})
		},
	}
}

func changeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "change <name> <old-phone> <new-phone>",
		Short: "Replace one of a contact's phones",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, oldPhone, newPhone := args[0], args[1], args[2]

			return a.withBook(true, func(book *contacts.AddressBook) error {
				record, err := findContact(book, name)
				if err != nil {
					return err
				}

				ok, err := record.EditPhone(oldPhone, newPhone)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("phone %s not found for %s", oldPhone, name)
				}

				fmt.Fprintln(cmd.OutOrStdout(), "Contact updated.")
				return nil
			})
		},
	}
}

func removePhoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-phone <name> <phone>",
		Short: "Remove a phone from a contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, phone := args[0], args[1]

			return a.withBook(true, func(book *contacts.AddressBook) error {
				record, err := findContact(book, name)
				if err != nil {
					return err
				}

				if !record.RemovePhone(phone) {
					return fmt.Errorf("phone %s not found for %s", phone, name)
				}

				fmt.Fprintln(cmd.OutOrStdout(), "Phone removed.")
				return nil
			})
		},
	}
}

func phoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "phone <name>",
		Short: "Show a contact's phones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBook(false, func(book *contacts.AddressBook) error {
				record, err := findContact(book, args[0])
				if err != nil {
					return err
				}

				phones := record.Phones()
				if len(phones) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s has no phones.\n", args[0])
					return nil
				}

				numbers := make([]string, len(phones))
				for i, p := range phones {
					numbers[i] = p.String()
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(numbers, "; "))
				return nil
			})
		},
	}
}

func allCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Show all contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBook(false, func(book *contacts.AddressBook) error {
				printRecords(cmd, book)
				return nil
			})
		},
	}
}

func printRecords(cmd *cobra.Command, book *contacts.AddressBook) {
	records := book.Records()
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No contacts.")
		return
	}
	for _, record := range records {
		fmt.Fprintln(cmd.OutOrStdout(), record)
	}
}

func deleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBook(true, func(book *contacts.AddressBook) error {
				if !book.Delete(args[0]) {
					return fmt.Errorf("%w: %s", errContactNotFound, args[0])
				}

				a.logger.Info("Contact deleted", zap.String("contact", args[0]))
				fmt.Fprintln(cmd.OutOrStdout(), "Contact deleted.")
				return nil
			})
		},
	}
}

func addBirthdayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-birthday <name> <DD.MM.YYYY>",
		Short: "Set a contact's birthday",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBook(true, func(book *contacts.AddressBook) error {
				record, err := findContact(book, args[0])
				if err != nil {
					return err
				}

				if err := record.AddBirthday(args[1]); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), "Birthday added.")
				return nil
			})
		},
	}
}

func showBirthdayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show-birthday <name>",
		Short: "Show a contact's birthday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBook(false, func(book *contacts.AddressBook) error {
				record, err := findContact(book, args[0])
				if err != nil {
					return err
				}

				birthday, ok := record.Birthday()
				if !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s has no birthday set.\n", args[0])
					return nil
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], birthday)
				return nil
			})
		},
	}
}

// todayFlag resolves the --today flag, defaulting to the current date
func todayFlag(value string) (time.Time, error) {
	if value == "" {
		return dateutil.Today(), nil
	}

	today, err := dateutil.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --today: %w", err)
	}
	return today, nil
}

func birthdaysCmd(a *app) *cobra.Command {
	var todayStr string
	var days int

	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "Show whom to congratulate in the coming days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := todayFlag(todayStr)
			if err != nil {
				return err
			}

			window := a.cfg.Birthdays.WindowDays
			if cmd.Flags().Changed("days") {
				window = days
			}
			if window < 0 {
				return fmt.Errorf("--days must not be negative")
			}

			cal, err := calendar.New(a.cfg.Calendar.HolidaysFile, a.logger)
			if err != nil {
				return fmt.Errorf("failed to load calendar: %w", err)
			}

			return a.withBook(false, func(book *contacts.AddressBook) error {
				upcoming, err := book.UpcomingBirthdaysWithin(today, window, cal)
				if err != nil {
					return err
				}

				a.logger.Info("Upcoming birthdays computed",
					zap.String("today", dateutil.FormatDate(today)),
					zap.Int("window_days", window),
					zap.Int("count", len(upcoming)))

				printCongratulations(cmd, upcoming)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&todayStr, "today", "", "Reference date DD.MM.YYYY (default: current date)")
	cmd.Flags().IntVar(&days, "days", contacts.DefaultWindowDays, "Days to look ahead (default: birthdays.window_days)")

	return cmd
}

func printCongratulations(cmd *cobra.Command, upcoming []contacts.Congratulation) {
	if len(upcoming) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No upcoming birthdays.")
		return
	}
	for _, c := range upcoming {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", c.Name, c.CongratulationDate)
	}
}

func demoCmd(a *app) *cobra.Command {
	var todayStr string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print a sample address book without touching the book file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := todayFlag(todayStr)
			if err != nil {
				return err
			}

			book, err := demoBook()
			if err != nil {
				return err
			}

			printRecords(cmd, book)
			fmt.Fprintln(cmd.OutOrStdout(), "Upcoming birthdays:")
			printCongratulations(cmd, book.UpcomingBirthdays(today))
			return nil
		},
	}

	cmd.Flags().StringVar(&todayStr, "today", "", "Reference date DD.MM.YYYY (default: current date)")

	return cmd
}

func demoBook() (*contacts.AddressBook, error) {
	book := contacts.NewAddressBook()

	samples := []struct {
		name, phone, birthday string
	}{
		{"John", "1234567890", "04.11.1988"},
		{"Jane", "0987654321", "05.11.2000"},
	}

	for _, s := range samples {
		record, err := contacts.NewRecord(s.name)
		if err != nil {
			return nil, err
		}
		if err := record.AddPhone(s.phone); err != nil {
			return nil, err
		}
		if err := record.AddBirthday(s.birthday); err != nil {
			return nil, err
		}
		book.AddRecord(record)
	}

	return book, nil
}
