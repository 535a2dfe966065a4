package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kcarlton55/flashcardz/internal/config"
	"github.com/kcarlton55/flashcardz/internal/deck"
)

func loadSettings() (*config.Settings, error) {
	settings, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return settings, nil
}

// ensurePathname prompts for a deck file location when none is configured
// yet, and persists the choice. An empty answer takes the suggestion.
func ensurePathname(settings *config.Settings) error {
	if settings.Pathname != "" {
		return nil
	}

	suggestion := config.SuggestPathname()
	fmt.Println("\nA file name needs to be established in which a new card deck will be")
	fmt.Println("started.  Please provide a pathname; i.e. a filename prepended with a path.")
	fmt.Printf("\n    file name (%s): ", suggestion)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	pathname := strings.TrimSpace(line)
	if pathname == "" {
		pathname = suggestion
	}

	settings.Pathname = pathname
	if err := config.Save(configFile, settings); err != nil {
		return fmt.Errorf("config.Save() > %w", err)
	}
	fmt.Printf("\nProgram setting pathname set to:\n    %s\n", pathname)
	return nil
}

func newStore(settings *config.Settings) *deck.Store {
	return deck.NewStore(settings.Pathname, settings.DelimiterRune(), settings.SubstituteRune(), settings.DateFormat)
}

// loadDeck reads all cards, failing soft on I/O problems: a missing or
// unreadable file reports the problem and yields an empty deck. A wrong
// file shape is fatal and propagates.
func loadDeck(store *deck.Store) ([]deck.Card, error) {
	cards, err := store.Load()
	if err != nil {
		var formatErr *deck.FormatError
		if errors.As(err, &formatErr) {
			return nil, describeFormatError(formatErr)
		}
		fmt.Printf("Could not read the deck file: %v\n", err)
		return nil, nil
	}
	return cards, nil
}

func describeFormatError(formatErr *deck.FormatError) error {
	return fmt.Errorf(
		"%w\nSomething is wrong with your data file.  At least one line in the file contains\n"+
			"data that would fill only one field, and not multiple fields, i.e. the word and\n"+
			"description fields.  The most likely reason for this is that the file was not\n"+
			"saved in a delimited format suitable for flashcardz.  The file should use the\n"+
			"configured delimiter character to separate its fields", formatErr)
}

// saveDeck reports save failures without aborting; a failed save leaves
// the file in whatever state the write reached.
func saveDeck(store *deck.Store, cards []deck.Card) {
	if err := store.Save(cards); err != nil {
		fmt.Printf("\nUnable to save the deck file.\nPerhaps you have it open with another program?\n  %v\n", err)
	}
}
