package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. ADDRESS_BOOK_BOOK_FILE
const EnvPrefix = "ADDRESS_BOOK"

// Config represents application configuration
type Config struct {
	Book      BookConfig      `mapstructure:"book"`
	Birthdays BirthdaysConfig `mapstructure:"birthdays"`
	Calendar  CalendarConfig  `mapstructure:"calendar"`
	Log       LogConfig       `mapstructure:"log"`
}

// BookConfig represents address book storage configuration
type BookConfig struct {
	File string `mapstructure:"file"` // .json, or .yaml/.yml for YAML
}

// BirthdaysConfig represents upcoming birthdays report configuration
type BirthdaysConfig struct {
	WindowDays int `mapstructure:"window_days"`
}

// CalendarConfig represents calendar configuration
type CalendarConfig struct {
	HolidaysFile string `mapstructure:"holidays_file"` // Optional day overrides, see calendar.FileCalendar
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("book.file", "addressbook.json")
	v.SetDefault("birthdays.window_days", 7)
	v.SetDefault("calendar.holidays_file", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "warn")
}

// Load loads configuration from file. A missing file leaves the defaults
// in place; environment variables override both.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.address-book-bot")
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func isNotFound(err error) bool {
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return true
	}
	return os.IsNotExist(err)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Book.File == "" {
		return fmt.Errorf("book.file is required")
	}
	if c.Birthdays.WindowDays < 0 || c.Birthdays.WindowDays > 366 {
		return fmt.Errorf("birthdays.window_days must be between 0 and 366")
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level)
	}

	return nil
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Book.File = os.ExpandEnv(c.Book.File)
	c.Calendar.HolidaysFile = os.ExpandEnv(c.Calendar.HolidaysFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
