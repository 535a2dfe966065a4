package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kcarlton55/flashcardz/internal/deck"
)

func testCards() []deck.Card {
	created := time.Date(2024, 9, 17, 0, 0, 0, 0, time.UTC)
	return []deck.Card{
		{Word: "taza nf", Definition: "cup n, mug n", Created: created, Viewed: 3, Tally: 2},
		{Word: "correr vi", Definition: "run [conjugation](https://example.com/correr)", Created: created, Viewed: 1, Tally: 0},
	}
}

func TestListWords(t *testing.T) {
	output := &bytes.Buffer{}
	ListWords(output, testCards(), "01/02/06", false)

	assert.Contains(t, output.String(), "0. taza nf")
	assert.Contains(t, output.String(), "(tally: 2)")
	assert.Contains(t, output.String(), "1. correr vi")
	// The compact listing never shows definitions.
	assert.NotContains(t, output.String(), "cup n")
}

func TestListWords_Full(t *testing.T) {
	output := &bytes.Buffer{}
	ListWords(output, testCards(), "01/02/06", true)

	assert.Contains(t, output.String(), "09/17/24, viewed: 3, tally: 2")
	assert.Contains(t, output.String(), "cup n, mug n")
	// URL markup stays hidden in the full listing.
	assert.Contains(t, output.String(), "run [conjugation]")
	assert.NotContains(t, output.String(), "https://example.com/correr")
}

func TestShowCard(t *testing.T) {
	card := testCards()[1]

	output := &bytes.Buffer{}
	ShowCard(output, card, false)
	assert.Contains(t, output.String(), "correr vi")
	assert.Contains(t, output.String(), "run [conjugation]")
	assert.NotContains(t, output.String(), "https://example.com/correr")

	output.Reset()
	ShowCard(output, card, true)
	assert.Contains(t, output.String(), "run [conjugation](https://example.com/correr)")
}
