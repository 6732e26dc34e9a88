// internal/feedback/parse.go
//
// Parser for feedback lines typed by the user.
//
// Format: whitespace-separated pairs of "<letter> <code>", where
//   0   = letter is absent,
//   p   = letter is at position p (1..5),
//   -p  = letter is in the word but not at position p.
//
// A blank line ends the session (ErrEndOfInput). A line is either parsed
// completely or rejected as a whole, so accumulated facts are never left
// half-updated.

package feedback

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidInput is matched by every *ValidationError.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEndOfInput is returned for a blank line.
	ErrEndOfInput = errors.New("end of input")
)

// ValidationError reports malformed user input.
type ValidationError struct {
	Input  string // offending token or line
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Input == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s (got %q)", e.Reason, e.Input)
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match.
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// ParseLine parses one feedback line into facts.
func ParseLine(line string) ([]Fact, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, ErrEndOfInput
	}
	if len(tokens)%2 != 0 {
		return nil, &ValidationError{
			Input:  strings.TrimSpace(line),
			Reason: "the number of tokens should be even: pairs of letter and code",
		}
	}

	facts := make([]Fact, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		f, err := ParsePair(tokens[i], tokens[i+1])
		if err != nil {
			return nil, err
		}
		facts = append(facts, f)
	}
	return facts, nil
}

// ParsePair parses a single letter and its code.
func ParsePair(letter, code string) (Fact, error) {
	if utf8.RuneCountInString(letter) != 1 {
		return Fact{}, &ValidationError{Input: letter, Reason: "expected a single letter"}
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return Fact{}, &ValidationError{Input: code, Reason: "the code should be an integer"}
	}
	if n < -Length || n > Length {
		return Fact{}, &ValidationError{
			Input:  code,
			Reason: fmt.Sprintf("the code should be in range from %d to %d", -Length, Length),
		}
	}

	r, _ := utf8.DecodeRuneInString(letter)
	switch {
	case n == 0:
		return NewFact(r, 0, Absent)
	case n > 0:
		return NewFact(r, n, Correct)
	default:
		return NewFact(r, -n, Present)
	}
}

// FormatLine renders facts back into the input line format.
func FormatLine(facts []Fact) string {
	parts := make([]string, 0, len(facts))
	for _, f := range facts {
		parts = append(parts, string(f.Letter)+" "+strconv.Itoa(f.Code()))
	}
	return strings.Join(parts, " ")
}
