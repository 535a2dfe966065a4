package deck

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmptyWord       = errors.New("word must not be empty")
	ErrEmptyDefinition = errors.New("definition must not be empty")
)

// Upsert appends a new card, or replaces an existing one when the
// normalized words match. A replaced card keeps its created date and
// counters but moves to the end of the deck. The returned slice is a new
// sequence; the input is left alone.
func Upsert(cards []Card, word, definition string, today time.Time) ([]Card, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}
	if definition == "" {
		return nil, ErrEmptyDefinition
	}

	normalized := NormalizeWord(word)
	updated := make([]Card, 0, len(cards)+1)
	replacing := Card{
		Word:       word,
		Definition: definition,
		Created:    today,
	}
	for _, card := range cards {
		if NormalizeWord(card.Word) == normalized {
			replacing.Created = card.Created
			replacing.Viewed = card.Viewed
			replacing.Tally = card.Tally
			continue
		}
		updated = append(updated, card)
	}
	return append(updated, replacing), nil
}

// Delete removes the card at position index and returns the surviving
// sequence. An out-of-range index is an error and the input is unchanged.
func Delete(cards []Card, index int) ([]Card, error) {
	if index < 0 || index >= len(cards) {
		return nil, fmt.Errorf("card number %d doesn't exist", index)
	}
	updated := make([]Card, 0, len(cards)-1)
	updated = append(updated, cards[:index]...)
	return append(updated, cards[index+1:]...), nil
}
