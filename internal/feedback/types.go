// internal/feedback/types.go
//
// Core value types for letter feedback.
// Defines:
//   - Word: a fixed-length word over the supported alphabet.
//   - Kind: per-letter feedback state (absent/present/correct).
//   - Fact: one classified letter/position outcome from a past guess.

package feedback

import (
	"fmt"
	"strings"
	"unicode"
)

// Length is the number of letters in every word of the game.
const Length = 5

// Alphabet lists the letters a word may consist of: the Russian alphabet without "ё".
const Alphabet = "абвгдежзийклмнопрстуфхшщчцьыъэюя"

// InAlphabet reports whether r is a (lowercase) letter of Alphabet.
func InAlphabet(r rune) bool {
	return strings.ContainsRune(Alphabet, r)
}

// Word is a fixed-length word. Comparable, so it can be used as a map key.
type Word [Length]rune

// ParseWord lowercases and validates s.
// The result must be exactly Length letters from Alphabet.
func ParseWord(s string) (Word, error) {
	var w Word
	rs := []rune(strings.ToLower(strings.TrimSpace(s)))
	if len(rs) != Length {
		return w, &ValidationError{Input: s, Reason: fmt.Sprintf("word must have exactly %d letters", Length)}
	}
	for i, r := range rs {
		if !InAlphabet(r) {
			return w, &ValidationError{Input: s, Reason: fmt.Sprintf("letter %q is not in the alphabet", r)}
		}
		w[i] = r
	}
	return w, nil
}

// MustWord is ParseWord for literals known to be valid. It panics otherwise.
func MustWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// String returns the word as text.
func (w Word) String() string { return string(w[:]) }

// Contains reports whether letter occurs anywhere in w.
func (w Word) Contains(letter rune) bool {
	for _, r := range w {
		if r == letter {
			return true
		}
	}
	return false
}

// Kind is the feedback state for a single guessed letter.
// The three states are exhaustive and mutually exclusive.
type Kind uint8

const (
	Absent  Kind = iota // letter does not occur in the word
	Present             // letter occurs, but not at this position
	Correct             // letter occurs at this position
)

// Kinds lists every feedback state.
var Kinds = [...]Kind{Absent, Present, Correct}

func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText encodes the kind by name (used by the HTTP API).
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Fact is one classified outcome for a letter of a past guess.
//
// Position is 1-based. Absent facts carry no position (0).
// Facts are plain values: equality is structural.
type Fact struct {
	Letter   rune
	Position int
	Kind     Kind
}

// NewFact validates letter and position before building a fact.
func NewFact(letter rune, position int, kind Kind) (Fact, error) {
	letter = unicode.ToLower(letter)
	if !InAlphabet(letter) {
		return Fact{}, &ValidationError{
			Input:  string(letter),
			Reason: `letter must be from the Russian alphabet, excluding "ё"`,
		}
	}
	switch kind {
	case Absent:
		position = 0
	case Present, Correct:
		if position < 1 || position > Length {
			return Fact{}, &ValidationError{
				Input:  fmt.Sprint(position),
				Reason: fmt.Sprintf("position must be between 1 and %d", Length),
			}
		}
	default:
		return Fact{}, &ValidationError{Input: kind.String(), Reason: "unknown feedback kind"}
	}
	return Fact{Letter: letter, Position: position, Kind: kind}, nil
}

// Allows reports whether w is consistent with the fact.
// A Present or Correct fact with a position outside 1..Length allows nothing.
func (f Fact) Allows(w Word) bool {
	if f.Kind != Absent && (f.Position < 1 || f.Position > Length) {
		return false
	}
	switch f.Kind {
	case Absent:
		return !w.Contains(f.Letter)
	case Present:
		return w.Contains(f.Letter) && w[f.Position-1] != f.Letter
	case Correct:
		return w[f.Position-1] == f.Letter
	}
	return false
}

// Code returns the fact in the input line encoding:
// 0 for absent, p for correct at p, -p for present but not at p.
func (f Fact) Code() int {
	switch f.Kind {
	case Present:
		return -f.Position
	case Correct:
		return f.Position
	}
	return 0
}

// String describes the fact in plain text.
func (f Fact) String() string {
	switch f.Kind {
	case Present:
		return fmt.Sprintf("letter %q is in the word, but not at position %d", f.Letter, f.Position)
	case Correct:
		return fmt.Sprintf("letter %q is in the word at position %d", f.Letter, f.Position)
	}
	return fmt.Sprintf("letter %q is not in the word", f.Letter)
}
