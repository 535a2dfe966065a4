package main

import (
	"fmt"
	"os"

	"github.com/kcarlton55/flashcardz/internal/assets"
	"github.com/kcarlton55/flashcardz/internal/deck"
	"github.com/kcarlton55/flashcardz/internal/pdf"
	"github.com/spf13/cobra"
)

func newExportCommand() *cobra.Command {
	var output string
	var generatePDF bool
	command := &cobra.Command{
		Use:   "export",
		Short: "Export the deck as a markdown study sheet, optionally as PDF",
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

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("os.Create(%s) > %w", output, err)
			}
			defer func() {
				_ = file.Close()
			}()

			templateData := convertToDeckTemplate(cards, settings.DateFormat)
			if err := assets.WriteDeckMarkdown(file, templateData); err != nil {
				return fmt.Errorf("assets.WriteDeckMarkdown(%s) > %w", output, err)
			}
			fmt.Printf("Deck written to: %s\n", output)

			if generatePDF {
				pdfPath, err := pdf.FromMarkdown(output, "")
				if err != nil {
					return fmt.Errorf("pdf.FromMarkdown(%s) > %w", output, err)
				}
				fmt.Printf("PDF generated at: %s\n", pdfPath)
			}
			return nil
		},
	}
	command.Flags().StringVar(&output, "output", "flashcardz.md", "markdown output path")
	command.Flags().BoolVar(&generatePDF, "pdf", false, "also render the markdown to PDF")
	return command
}

func convertToDeckTemplate(cards []deck.Card, dateFormat string) assets.DeckTemplate {
	templateCards := make([]assets.DeckCard, len(cards))
	for i, card := range cards {
		templateCards[i] = assets.DeckCard{
			Word:       card.Word,
			Definition: card.Definition,
			Created:    card.Created.Format(dateFormat),
			Viewed:     card.Viewed,
			Tally:      card.Tally,
		}
	}
	return assets.DeckTemplate{Cards: templateCards}
}
