package deck

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// header written as the first row of the deck file. A row whose first field
// equals the first header field is skipped on load.
var header = []string{"word", "definition", "date", "viewed", "tally"}

// FormatError reports a deck file whose shape is fundamentally wrong: at
// least one row holds a single field, which means the file was almost
// certainly saved with a different delimiter. Loading must not continue
// with partial data; the caller decides how to halt.
type FormatError struct {
	Path string
	Line int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s line %d: row has a single field; the file does not use the expected delimiter", e.Path, e.Line)
}

// Store reads and writes the deck file. The file is UTF-8 text, one card
// per row, fields separated by a single delimiter character.
type Store struct {
	path       string
	delimiter  rune
	substitute rune
	dateFormat string
	now        func() time.Time
}

func NewStore(path string, delimiter, substitute rune, dateFormat string) *Store {
	return &Store{
		path:       path,
		delimiter:  delimiter,
		substitute: substitute,
		dateFormat: dateFormat,
		now:        time.Now,
	}
}

// Path returns the location of the deck file.
func (s *Store) Path() string {
	return s.path
}

// Sanitize replaces every occurrence of the field delimiter with the
// substitute character so a word or definition can never split a row.
func (s *Store) Sanitize(text string) string {
	return strings.ReplaceAll(text, string(s.delimiter), string(s.substitute))
}

// Today returns the current date rendered in the configured date format.
func (s *Store) Today() time.Time {
	today, err := time.Parse(s.dateFormat, s.now().Format(s.dateFormat))
	if err != nil {
		return s.now()
	}
	return today
}

// Load reads every card row from the deck file in order.
//
// Malformed rows are repaired rather than rejected: a row with two to four
// fields keeps its word and definition and gets today's date with zeroed
// counters, an unparseable date becomes today's date, and non-numeric
// viewed/tally fields become zero. A single-field row returns *FormatError.
func (s *Store) Load() ([]Card, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", s.path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.Comma = s.delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv.Reader.ReadAll(%s) > %w", s.path, err)
	}

	today := s.Today()
	var cards []Card
	for i, record := range records {
		switch {
		case len(record) == 1:
			return nil, &FormatError{Path: s.path, Line: i + 1}
		case len(record) < 5:
			record = append(record[:2:2], today.Format(s.dateFormat), "0", "0")
		case len(record) > 5:
			record = record[:5]
		}
		if record[0] == header[0] {
			continue
		}

		created, err := time.Parse(s.dateFormat, record[2])
		if err != nil {
			created = today
		}
		cards = append(cards, Card{
			Word:       record[0],
			Definition: record[1],
			Created:    created,
			Viewed:     parseCount(record[3]),
			Tally:      parseCount(record[4]),
		})
	}
	return cards, nil
}

// Save writes the header row followed by every card, replacing any stray
// delimiter characters on the way out. There is no temp-file/rename step;
// a failed write leaves the file wherever the write stopped.
func (s *Store) Save(cards []Card) error {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", s.path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	writer := csv.NewWriter(file)
	writer.Comma = s.delimiter
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("csv.Writer.Write(%s) > %w", s.path, err)
	}
	for _, card := range cards {
		record := []string{
			s.Sanitize(card.Word),
			s.Sanitize(card.Definition),
			card.Created.Format(s.dateFormat),
			strconv.Itoa(card.Viewed),
			strconv.Itoa(card.Tally),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("csv.Writer.Write(%s) > %w", s.path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("csv.Writer.Flush(%s) > %w", s.path, err)
	}
	return nil
}

func parseCount(field string) int {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
