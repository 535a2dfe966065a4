package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
)

var (
	// errEnd signals that a session finished all of its work.
	errEnd = errors.New("end")
	// errQuit signals that the user bailed out; nothing may be saved.
	errQuit = errors.New("quit")
)

// InteractiveCLI contains shared state for interactive sessions
type InteractiveCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

func newInteractiveCLI() *InteractiveCLI {
	return &InteractiveCLI{
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

type Session interface {
	Session(ctx context.Context) error
}

// Run drives a session until it ends, the user quits, or an interrupt
// arrives. Interrupts behave like a quit: whatever the session changed in
// memory is discarded.
func (cli *InteractiveCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) || errors.Is(err, errQuit) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// readLine prints a prompt and reads one line of input, trimmed. An EOF on
// stdin is treated as an empty line so piped input ends sessions cleanly.
func (cli *InteractiveCLI) readLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(cli.stdoutWriter, prompt)
	}
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
