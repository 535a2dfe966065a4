package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kcarlton55/flashcardz/internal/browser"
	"github.com/kcarlton55/flashcardz/internal/cli"
	"github.com/kcarlton55/flashcardz/internal/links"
	"github.com/spf13/cobra"
)

func newCardsCommand() *cobra.Command {
	var full bool
	var raw bool
	var linkNumber int
	command := &cobra.Command{
		Use:   "cards [number]",
		Short: "List cards, or show one card's definition",
		Long: `Without arguments, list every card's word with its position and tally.
With a card number, show that card's word and definition.  URL markup in
definitions is hidden unless --raw is given; --link opens the n-th link of
the chosen card in a browser.`,
		Args: cobra.MaximumNArgs(1),
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

			if len(args) == 0 {
				cli.ListWords(os.Stdout, cards, settings.DateFormat, full)
				return nil
			}

			number, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("\n%q is not a card number.  For example: flashcardz cards 8\n", args[0])
				return nil
			}
			if number < 0 || number >= len(cards) {
				fmt.Printf("Card number %d doesn't exist.\n", number)
				return nil
			}
			card := cards[number]

			if linkNumber > 0 {
				url, err := links.URLAt(card.Definition, linkNumber)
				if err != nil {
					fmt.Printf("No link number %d in the definition of card %d.\n", linkNumber, number)
					return nil
				}
				return browser.NewExecOpener().Open(url)
			}

			cli.ShowCard(os.Stdout, card, raw)
			return nil
		},
	}
	command.Flags().BoolVar(&full, "full", false, "list every card with its definition and statistics")
	command.Flags().BoolVar(&raw, "raw", false, "show URL markup instead of hiding it")
	command.Flags().IntVar(&linkNumber, "link", 0, "open the n-th [label](url) link of the chosen card")
	return command
}
