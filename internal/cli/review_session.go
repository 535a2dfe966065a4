package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/kcarlton55/flashcardz/internal/browser"
	"github.com/kcarlton55/flashcardz/internal/config"
	"github.com/kcarlton55/flashcardz/internal/deck"
	"github.com/kcarlton55/flashcardz/internal/links"
)

var ruleLine = "    " + strings.Repeat("—", 75)

// ReviewSession walks the whole deck once, card by card. Each card's view
// counter bumps as soon as the card is shown; tallies change only on a
// recorded answer. The updated deck is written back only when the pass
// completes with the abort flag off. Quitting mid-pass saves nothing.
type ReviewSession struct {
	*InteractiveCLI
	store    *deck.Store
	settings *config.Settings
	opener   browser.Opener

	cards    []deck.Card
	order    []int
	position int
	missed   []int
	removal  map[int]bool
	abort    bool
}

func NewReviewSession(store *deck.Store, settings *config.Settings, opener browser.Opener) *ReviewSession {
	return &ReviewSession{
		InteractiveCLI: newInteractiveCLI(),
		store:          store,
		settings:       settings,
		opener:         opener,
		removal:        map[int]bool{},
		abort:          settings.Abort,
	}
}

// Review runs one full pass over the deck. Shuffling is on by default.
func (s *ReviewSession) Review(ctx context.Context, shuffle bool) error {
	s.printIntro()

	line, err := s.readLine("Press the Enter key to start. ")
	if err != nil {
		return err
	}
	if ParseResponse(line).Kind == ResponseQuit {
		return nil
	}
	fmt.Fprintln(s.stdoutWriter, "\nHere we go!")

	cards, err := s.store.Load()
	if err != nil {
		var formatErr *deck.FormatError
		if errors.As(err, &formatErr) {
			return err
		}
		// Missing or unreadable file: report and run with an empty deck.
		fmt.Fprintf(s.stdoutWriter, "\nCould not read the deck file: %v\n", err)
		cards = nil
	}
	s.cards = cards

	s.order = make([]int, len(s.cards))
	for i := range s.order {
		s.order[i] = i
	}
	if shuffle {
		fmt.Fprintln(s.stdoutWriter, "\nShuffling cards >>>>>>>>>>>>>>>")
		rand.Shuffle(len(s.order), func(i, j int) {
			s.order[i], s.order[j] = s.order[j], s.order[i]
		})
	}
	fmt.Fprintln(s.stdoutWriter)

	return s.InteractiveCLI.Run(ctx, s)
}

// Session shows a single card and handles answers for it until one of them
// advances the pass. After the last card it prints the summary and decides
// whether to persist.
func (s *ReviewSession) Session(ctx context.Context) error {
	if s.position >= len(s.order) {
		return s.finish()
	}

	k := s.order[s.position]
	s.position++
	card := &s.cards[k]
	card.Viewed++

	hideURL := true
	paused := false
	for {
		fmt.Fprintf(s.stdoutWriter, "%s tally: %d %s\n", strings.Repeat("-", 25), card.Tally, strings.Repeat("-", 25))
		fmt.Fprintf(s.stdoutWriter, "%d of %d.  %s\n", s.position, len(s.cards), s.bold.Sprint(card.Word))

		// Pause once so the user can think before the definition appears.
		if !paused {
			paused = true
			line, err := s.readLine("")
			if err != nil {
				return err
			}
			if ParseResponse(line).Kind == ResponseQuit {
				return errQuit
			}
		}

		definition := card.Definition
		if hideURL {
			definition = links.Hide(definition)
		}
		fmt.Fprintf(s.stdoutWriter, "%s\n\n", s.italic.Sprint(definition))

		line, err := s.readLine(s.answerPrompt())
		if err != nil {
			return err
		}

		response := ParseResponse(line)
		switch response.Kind {
		case ResponseRevealLink:
			hideURL = true
			url, err := links.URLAt(card.Definition, response.Link)
			if err != nil {
				fmt.Fprintf(s.stdoutWriter, "\nNo link number %d in this definition.\n\n", response.Link)
				continue
			}
			if err := s.opener.Open(url); err != nil {
				fmt.Fprintf(s.stdoutWriter, "\nCould not open the browser: %v\n\n", err)
			}
		case ResponseShowRaw:
			hideURL = false
		case ResponseHelp:
			hideURL = true
			s.printHelp()
		case ResponseQuit:
			return errQuit
		case ResponseToggleAbort:
			hideURL = true
			s.abort = !s.abort
			fmt.Fprintln(s.stdoutWriter, ruleLine)
			if s.abort {
				fmt.Fprintln(s.stdoutWriter, "     Results will NOT be recorded when this run completes")
			} else {
				fmt.Fprintln(s.stdoutWriter, "     Results WILL be recorded when this run completes")
			}
			fmt.Fprintln(s.stdoutWriter, ruleLine)
		case ResponseIncorrect:
			fmt.Fprintln(s.stdoutWriter)
			card.MarkMissed(s.settings.MaxTally, s.settings.TallyPenalty)
			s.missed = append(s.missed, k)
			return nil
		case ResponseCorrect:
			fmt.Fprintln(s.stdoutWriter)
			card.MarkCorrect()
			if card.Mastered(s.settings.MaxTally) {
				s.removal[k] = true
			}
			return nil
		}
	}
}

// finish prints the end-of-pass summary and saves the surviving cards
// unless the abort flag is active.
func (s *ReviewSession) finish() error {
	fmt.Fprintln(s.stdoutWriter, "\n             === The End ===")

	var removedWords []string
	survivors := make([]deck.Card, 0, len(s.cards))
	for i, card := range s.cards {
		if s.removal[i] {
			removedWords = append(removedWords, card.Word)
			continue
		}
		survivors = append(survivors, card)
	}

	if len(removedWords) > 0 {
		fmt.Fprintf(s.stdoutWriter, "\n\n%s\n", strings.Repeat("_", 50))
		if s.abort {
			fmt.Fprintln(s.stdoutWriter, "Congratulations!  Max tally reached on the following:")
		} else {
			fmt.Fprintln(s.stdoutWriter, "Congratulations!  Max tally reached on the following.  Cards removed:")
		}
		fmt.Fprintln(s.stdoutWriter)
		for _, word := range removedWords {
			fmt.Fprintf(s.stdoutWriter, "    %s\n", word)
		}
		if !s.abort {
			fmt.Fprintf(s.stdoutWriter, "\n\nNumber of cards is now %d\n\n", len(survivors))
		}
	}

	fmt.Fprintf(s.stdoutWriter, "\n\n%s\n", strings.Repeat("_", 50))
	switch {
	case len(s.missed) > 0:
		percent := PercentCorrect(len(survivors), len(s.missed))
		if percent >= 80 {
			fmt.Fprintf(s.stdoutWriter, "%d%% answered correctly!\n", percent)
		} else {
			fmt.Fprintf(s.stdoutWriter, "%d%% answered correctly\n", percent)
		}
		fmt.Fprintln(s.stdoutWriter, "These are the words you missed:")
		fmt.Fprintln(s.stdoutWriter)
		for _, k := range s.missed {
			fmt.Fprintf(s.stdoutWriter, "%d. %s\n", positionOf(survivors, s.cards[k].Word), s.cards[k].Word)
		}
	case len(survivors) == 0:
		fmt.Fprintln(s.stdoutWriter, "Card deck is empty.  Please add data.")
	default:
		fmt.Fprintln(s.stdoutWriter, "100% of list answered correctly!")
	}

	if !s.abort {
		if err := s.store.Save(survivors); err != nil {
			fmt.Fprintf(s.stdoutWriter, "\nUnable to save the deck file.\nPerhaps you have it open with another program?\n  %v\n", err)
		}
	}
	return errEnd
}

// PercentCorrect computes the share of the remaining deck answered
// correctly this pass, as a truncated integer percentage.
func PercentCorrect(remaining, missed int) int {
	if remaining == 0 {
		return 0
	}
	return 100 * (remaining - missed) / remaining
}

// positionOf finds a word's position in the post-removal sequence.
func positionOf(cards []deck.Card, word string) int {
	for i, card := range cards {
		if card.Word == word {
			return i
		}
	}
	return len(cards) - 1
}

func (s *ReviewSession) answerPrompt() string {
	if s.abort {
		return "Meaning known? (Y/n/i/q) "
	}
	return "Meaning known? (Y/n/i/a/q) "
}

func (s *ReviewSession) printIntro() {
	w := s.stdoutWriter
	fmt.Fprintln(w, "\nEach word, followed by its definition, will be shown.  After a word is shown,")
	fmt.Fprintln(w, "try to figure out its meaning.  Then press the Enter key to show the word's")
	fmt.Fprintln(w, `definition.  The program will then ask "Meaning known? (Y/n/i/a/q)".`)
	fmt.Fprintln(w, "Respond with one of these answers:")
	fmt.Fprintln(w, ruleLine)
	fmt.Fprintln(w, "     Y or the Enter key = you knew the definition")
	fmt.Fprintln(w, "     n = you did not know the definition")
	fmt.Fprintln(w, "     1, 2, 3, etc. = open the 1st, 2nd, 3rd url link of the definition in a")
	fmt.Fprintln(w, "         browser.  Links are enclosed in brackets, [].  Enter a negative")
	fmt.Fprintln(w, "         number if you wish to see the url appear in the description.")
	if s.abort {
		fmt.Fprintln(w, "     (Note: abort is active.  RESULTS WILL NOT BE SAVED!)")
	} else {
		fmt.Fprintln(w, "     a = abort recording of results when the session completes its run")
	}
	fmt.Fprintln(w, "     q = cancel showing cards")
	fmt.Fprintln(w, ruleLine)
	fmt.Fprintln(w)
}

func (s *ReviewSession) printHelp() {
	w := s.stdoutWriter
	fmt.Fprintln(w)
	fmt.Fprintln(w, `    Entering "i" is inappropriate.  Instead enter 1, 2, 3, etc., depending on`)
	fmt.Fprintln(w, "    which URL link is shown in brackets, [], that you wish to activate; i.e. the")
	fmt.Fprintln(w, "    1st, 2nd, 3rd.")
	fmt.Fprintln(w)
}
