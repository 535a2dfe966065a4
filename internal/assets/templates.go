package assets

import (
	_ "embed"
	"fmt"
	"io"
	"text/template"
)

//go:embed templates/deck.md.go.tmpl
var deckTemplate string

// DeckCard is one card prepared for template rendering. Dates arrive
// pre-formatted so the template stays free of layout knowledge.
type DeckCard struct {
	Word       string
	Definition string
	Created    string
	Viewed     int
	Tally      int
}

// DeckTemplate is the data handed to the deck markdown template.
type DeckTemplate struct {
	Cards []DeckCard
}

// WriteDeckMarkdown renders the deck to markdown on w.
func WriteDeckMarkdown(w io.Writer, data DeckTemplate) error {
	tmpl, err := template.New("deck.md.go.tmpl").Parse(deckTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse embedded template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("template.Execute() > %w", err)
	}
	return nil
}
