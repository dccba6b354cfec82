package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pkordes/vacation-planner/internal/domain"
)

// InvalidDateMessage is shown when a start date cannot be parsed.
const InvalidDateMessage = "Invalid date format! Please enter the date in YYYY-MM-DD format."

// ErrNoInput is returned when input ends before a question is answered.
var ErrNoInput = errors.New("no more input")

// Prompter asks questions on out and reads one line per answer from in.
// Answers failing validation are reported on out and the question is asked
// again; only end of input or a read error stops it.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	log *slog.Logger
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer, log *slog.Logger) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, log: log}
}

// Printf writes informational text (menus, headings) to the output.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Line asks label and returns the answer without its line ending.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimRight(line, "\r\n"), nil
			}
			return "", fmt.Errorf("prompt.Line %q: %w", strings.TrimSpace(label), ErrNoInput)
		}
		return "", fmt.Errorf("prompt.Line: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Date asks for a YYYY-MM-DD date until one parses.
func (p *Prompter) Date(label string) (time.Time, error) {
	return ask(p, label, func(s string) (time.Time, error) {
		t, err := ParseDate(s)
		if err != nil {
			return t, retry(err, InvalidDateMessage)
		}
		return t, nil
	})
}

// Days asks for a positive number of days until one is given.
func (p *Prompter) Days(label string) (int, error) {
	return ask(p, label, ParseDays)
}

// Budget asks for a non-negative amount until one is given.
func (p *Prompter) Budget(label string) (decimal.Decimal, error) {
	return ask(p, label, ParseBudget)
}

// Choice asks for a single menu choice between 1 and n and returns the
// 0-based index.
func (p *Prompter) Choice(label string, n int) (int, error) {
	return ask(p, label, func(s string) (int, error) { return ParseChoice(s, n) })
}

// Choices asks for a comma-separated list of menu choices between 1 and n and
// returns the 0-based indexes.
func (p *Prompter) Choices(label string, n int) ([]int, error) {
	return ask(p, label, func(s string) ([]int, error) { return ParseChoices(s, n) })
}

// retryError carries the message shown to the user before asking again.
type retryError struct {
	err     error
	message string
}

func (e *retryError) Error() string { return e.err.Error() }
func (e *retryError) Unwrap() error { return e.err }

func retry(err error, message string) error {
	return &retryError{err: err, message: message}
}

// ask repeats label until parse accepts the answer. Validation failures are
// shown to the user; any other error is returned.
func ask[T any](p *Prompter, label string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			var zero T
			return zero, err
		}

		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, domain.ErrValidation) {
			return v, err
		}

		p.log.Debug("rejected input", "prompt", strings.TrimSpace(label), "error", err)
		var re *retryError
		if errors.As(err, &re) {
			fmt.Fprintln(p.out, re.message)
		} else {
			fmt.Fprintf(p.out, "Invalid input: %s\n", strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": "))
		}
	}
}
