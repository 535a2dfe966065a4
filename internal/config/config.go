package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Settings is the persisted program configuration. The review session and
// the card store consume it read-only; only the settings command and the
// first-run pathname prompt write it back.
type Settings struct {
	// Pathname locates the deck file. Empty until the user picks one.
	Pathname string `mapstructure:"pathname"`
	// MaxTally is the tally at which a card is retired from the deck.
	MaxTally int `mapstructure:"maxtally" validate:"min=1"`
	// TallyPenalty is subtracted from MaxTally when a card is missed.
	TallyPenalty int `mapstructure:"tallypenalty" validate:"min=0"`
	// DateFormat is the Go reference-time layout for card created dates.
	DateFormat string `mapstructure:"date_format" validate:"required"`
	// Abort, when set, makes review sessions discard results by default.
	Abort bool `mapstructure:"abort"`
	// Delimiter separates fields in the deck file.
	Delimiter string `mapstructure:"delimiter" validate:"len=1,nefield=Substitute"`
	// Substitute replaces delimiter characters found in words/definitions.
	Substitute string `mapstructure:"substitute" validate:"len=1"`
}

// Keys lists the recognized setting names in display order.
func Keys() []string {
	return []string{"pathname", "maxtally", "tallypenalty", "date_format", "abort", "delimiter", "substitute"}
}

func newViper(configFile string) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("$HOME/.config/flashcardz")
		v.AddConfigPath(".")
	}

	v.SetDefault("pathname", "")
	v.SetDefault("maxtally", 10)
	v.SetDefault("tallypenalty", 10)
	v.SetDefault("date_format", "01/02/06")
	v.SetDefault("abort", false)
	v.SetDefault("delimiter", "|")
	v.SetDefault("substitute", ";")

	return v
}

func Load(configFile string) (*Settings, error) {
	v := newViper(configFile)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := Validate(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save validates settings and writes them to the config file, creating the
// default config directory when no explicit file was given.
func Save(configFile string, settings *Settings) error {
	if err := Validate(settings); err != nil {
		return err
	}

	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("os.UserHomeDir() > %w", err)
		}
		dir := filepath.Join(home, ".config", "flashcardz")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
		configFile = filepath.Join(dir, "config.yaml")
	}

	v := newViper(configFile)
	v.Set("pathname", settings.Pathname)
	v.Set("maxtally", settings.MaxTally)
	v.Set("tallypenalty", settings.TallyPenalty)
	v.Set("date_format", settings.DateFormat)
	v.Set("abort", settings.Abort)
	v.Set("delimiter", settings.Delimiter)
	v.Set("substitute", settings.Substitute)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("viper.WriteConfigAs(%s) > %w", configFile, err)
	}
	return nil
}

// Get returns the current value of a setting as display text.
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case "pathname":
		return s.Pathname, nil
	case "maxtally":
		return strconv.Itoa(s.MaxTally), nil
	case "tallypenalty":
		return strconv.Itoa(s.TallyPenalty), nil
	case "date_format":
		return s.DateFormat, nil
	case "abort":
		return strconv.FormatBool(s.Abort), nil
	case "delimiter":
		return s.Delimiter, nil
	case "substitute":
		return s.Substitute, nil
	}
	return "", fmt.Errorf("unknown setting %q", key)
}

// Set parses and assigns a setting from its textual value. The assignment
// is not persisted; call Save for that.
func (s *Settings) Set(key, value string) error {
	switch key {
	case "pathname":
		s.Pathname = value
	case "maxtally":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxtally must be an integer, e.g. 10: %w", err)
		}
		s.MaxTally = n
	case "tallypenalty":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("tallypenalty must be an integer, e.g. 3: %w", err)
		}
		s.TallyPenalty = n
	case "date_format":
		s.DateFormat = value
	case "abort":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("abort must be true or false: %w", err)
		}
		s.Abort = b
	case "delimiter":
		s.Delimiter = value
	case "substitute":
		s.Substitute = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return Validate(s)
}

// DelimiterRune returns the delimiter as a rune for the card store.
func (s *Settings) DelimiterRune() rune {
	return []rune(s.Delimiter)[0]
}

// SubstituteRune returns the substitute character as a rune.
func (s *Settings) SubstituteRune() rune {
	return []rune(s.Substitute)[0]
}

// SuggestPathname proposes a deck file location for first-time users:
// ~/Documents/flashcardz.txt when Documents exists, otherwise the home
// directory.
func SuggestPathname() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "flashcardz.txt"
	}
	documents := filepath.Join(home, "Documents")
	if info, err := os.Stat(documents); err == nil && info.IsDir() {
		return filepath.Join(documents, "flashcardz.txt")
	}
	return filepath.Join(home, "flashcardz.txt")
}
