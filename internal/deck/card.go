package deck

import (
	"strings"
	"time"
	"unicode"
)

// Card is a single flashcard in the deck. Viewed counts how many times the
// card has been shown during review sessions. Tally counts consecutive
// correct answers since the last miss.
type Card struct {
	Word       string
	Definition string
	Created    time.Time
	Viewed     int
	Tally      int
}

// NormalizeWord strips all whitespace and lowercases a word. Two cards are
// considered the same card when their normalized words match.
func NormalizeWord(word string) string {
	var b strings.Builder
	for _, r := range word {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// MarkCorrect records a correct answer.
func (c *Card) MarkCorrect() {
	c.Tally++
}

// MarkMissed records a wrong answer. The tally drops by the penalty from
// the mastery threshold, floored at zero.
func (c *Card) MarkMissed(maxTally, tallyPenalty int) {
	tally := maxTally - tallyPenalty
	if tally < 0 {
		tally = 0
	}
	c.Tally = tally
}

// Mastered reports whether the card has reached the mastery threshold and
// should be retired from the deck.
func (c Card) Mastered(maxTally int) bool {
	return c.Tally >= maxTally
}
