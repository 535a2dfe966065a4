package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kcarlton55/flashcardz/internal/deck"
	"github.com/spf13/cobra"
)

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [number]",
		Short: "Delete a card by its position",
		Long: `Delete a card from the deck.  Run "flashcardz cards" to see the number
associated with each card.  When no number is given you will be asked for it.
Deletion asks for confirmation before removing the card.`,
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

			reader := bufio.NewReader(os.Stdin)
			token := ""
			if len(args) == 1 {
				token = args[0]
			} else {
				fmt.Println("Card number to delete?  (Run \"flashcardz cards\" to see what word")
				fmt.Println("corresponds to what number.)")
				fmt.Print("\nNumber: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("error reading input: %w", err)
				}
				token = strings.TrimSpace(line)
			}

			number, err := strconv.Atoi(token)
			if err != nil {
				fmt.Printf("\n%q is not a card number.  For example: flashcardz delete 5\n", token)
				return nil
			}
			if number < 0 || number >= len(cards) {
				fmt.Printf("Card number %d doesn't exist.\n", number)
				return nil
			}

			fmt.Printf("\nCard %d is: %s.\n\n", number, cards[number].Word)
			fmt.Printf("Delete card %d? [Y/n): ", number)
			confirm, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}
			confirm = strings.ToLower(strings.TrimSpace(confirm))
			if confirm == "n" || confirm == "no" {
				fmt.Printf("Card %d not deleted.\n", number)
				return nil
			}

			updated, err := deck.Delete(cards, number)
			if err != nil {
				return err
			}
			fmt.Printf("\nCard %d deleted (%s)\n\n", number, cards[number].Word)
			fmt.Println("Number of cards now at: ", len(updated))
			saveDeck(store, updated)
			return nil
		},
	}
}
