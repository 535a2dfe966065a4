package assets

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDeckMarkdown(t *testing.T) {
	data := DeckTemplate{
		Cards: []DeckCard{
			{Word: "taza nf", Definition: "cup n, mug n", Created: "09/17/24", Viewed: 3, Tally: 2},
			{Word: "correr vi", Definition: "run vi", Created: "01/05/25", Viewed: 0, Tally: 0},
		},
	}

	output := &bytes.Buffer{}
	require.NoError(t, WriteDeckMarkdown(output, data))

	markdown := output.String()
	assert.Contains(t, markdown, "# Flashcard deck")
	assert.Contains(t, markdown, "2 cards.")
	assert.Contains(t, markdown, "## 0. taza nf")
	assert.Contains(t, markdown, "cup n, mug n")
	assert.Contains(t, markdown, "*created 09/17/24, viewed 3 times, tally 2*")
	assert.Contains(t, markdown, "## 1. correr vi")
}

func TestWriteDeckMarkdown_EmptyDeck(t *testing.T) {
	output := &bytes.Buffer{}
	require.NoError(t, WriteDeckMarkdown(output, DeckTemplate{}))
	assert.Contains(t, output.String(), "0 cards.")
}
