package main

import (
	"errors"
	"fmt"

	"github.com/kcarlton55/flashcardz/internal/deck"
	"github.com/spf13/cobra"
)

func newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <word> <definition>",
		Short: "Add a new card to the deck, or replace an existing word's definition",
		Long: `Add a new card to the deck.  If a card with the same word already exists
(ignoring case and whitespace), its definition is replaced and the card moves
to the end of the deck.  Definitions may embed links as [label](url).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			if err := ensurePathname(settings); err != nil {
				return err
			}
			store := newStore(settings)

			cards, err := loadDeck(store)
			if err != nil {
				return err
			}

			word := store.Sanitize(args[0])
			definition := store.Sanitize(args[1])
			updated, err := deck.Upsert(cards, word, definition, store.Today())
			if err != nil {
				if errors.Is(err, deck.ErrEmptyWord) || errors.Is(err, deck.ErrEmptyDefinition) {
					fmt.Println("\nBoth a word and a definition are required.  For example:")
					fmt.Println(`    flashcardz add "pill" "a small round mass of solid medicine to be swallowed whole."`)
					return nil
				}
				return err
			}

			fmt.Printf("\n%s\n\n%s\n\n", word, definition)
			fmt.Println("Number of cards now at: ", len(updated))
			saveDeck(store, updated)
			return nil
		},
	}
}
