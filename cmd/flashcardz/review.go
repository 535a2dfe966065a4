package main

import (
	"errors"

	"github.com/kcarlton55/flashcardz/internal/browser"
	"github.com/kcarlton55/flashcardz/internal/cli"
	"github.com/kcarlton55/flashcardz/internal/deck"
	"github.com/spf13/cobra"
)

func newReviewCommand() *cobra.Command {
	var noShuffle bool
	command := &cobra.Command{
		Use:   "review",
		Short: "Run an interactive review session over the whole deck",
		Long: `Show each card in the deck, shuffled by default.  For every card the word
appears first; press Enter to reveal the definition, then answer whether you
knew it.  Correct answers raise the card's tally; once the tally reaches the
mastery threshold the card is retired.  Quitting mid-session discards all
progress.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			if err := ensurePathname(settings); err != nil {
				return err
			}
			store := newStore(settings)

			session := cli.NewReviewSession(store, settings, browser.NewExecOpener())
			if err := session.Review(cmd.Context(), !noShuffle); err != nil {
				var formatErr *deck.FormatError
				if errors.As(err, &formatErr) {
					return describeFormatError(formatErr)
				}
				return err
			}
			return nil
		},
	}
	command.Flags().BoolVar(&noShuffle, "no-shuffle", false, "present cards in deck order instead of shuffling")
	return command
}
