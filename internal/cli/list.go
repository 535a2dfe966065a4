package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/kcarlton55/flashcardz/internal/deck"
	"github.com/kcarlton55/flashcardz/internal/links"
)

var separator = strings.Repeat("-", 21)

// ListWords prints every card as one numbered line with its tally. The
// numbers are the positions used by the delete command.
func ListWords(w io.Writer, cards []deck.Card, dateFormat string, full bool) {
	for i, card := range cards {
		if full {
			fmt.Fprint(w, cardBanner(i, card, dateFormat))
			continue
		}
		fmt.Fprintf(w, "%d. %-30s (tally: %d)\n", i, card.Word, card.Tally)
	}
}

// ShowCard prints a single card's word and definition. URL markup stays
// hidden unless raw rendering was asked for.
func ShowCard(w io.Writer, card deck.Card, raw bool) {
	definition := card.Definition
	if !raw {
		definition = links.Hide(definition)
	}
	fmt.Fprintf(w, "\n%s\n\n%s\n", card.Word, definition)
}

func cardBanner(i int, card deck.Card, dateFormat string) string {
	return fmt.Sprintf("%s %s, viewed: %d, tally: %d %s\n%d. %s\n%s\n",
		separator, card.Created.Format(dateFormat), card.Viewed, card.Tally, separator,
		i, card.Word, links.Hide(card.Definition),
	)
}
