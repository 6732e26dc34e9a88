// internal/words/words.go
//
// Provides the word table the solver works on.
//
// Responsibilities:
//   - Load the table from a file (WORDS_FILE) or fall back to the embedded default.
//   - Accept plain lists (one word per line) and CSV tables with a "word" column.
//   - Keep only valid five-letter words over the alphabet, lowercased, deduplicated.
//   - Supply lookups on a List: Universe, IsKnown, Random.
//
// The package-level table is initialized once (sync.Once) by Init; Load/Parse
// build independent lists for tests and tools.

package words

import (
	"bufio"
	"crypto/rand"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// ErrEmpty is returned when no valid word was found.
var ErrEmpty = errors.New("words: word list is empty")

// List is a loaded word table.
type List struct {
	universe candidates.Universe
	skipped  int
}

// Universe returns the table as a candidate universe.
func (l *List) Universe() candidates.Universe { return l.universe }

// Len returns the number of words.
func (l *List) Len() int { return l.universe.Len() }

// Skipped returns how many input lines were not valid words.
func (l *List) Skipped() int { return l.skipped }

// IsKnown reports whether s is in the table.
func (l *List) IsKnown(s string) bool {
	w, err := feedback.ParseWord(s)
	return err == nil && l.universe.Contains(w)
}

// Random returns a cryptographically random word from the table.
func (l *List) Random() string {
	n := l.universe.Len()
	if n == 0 {
		return ""
	}
	i, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return l.universe.At(0).String()
	}
	return l.universe.At(int(i.Int64())).String()
}

// FromStrings builds a list, skipping invalid words.
func FromStrings(list []string) (*List, error) {
	var (
		ws      []feedback.Word
		skipped int
	)
	for _, s := range list {
		w, err := feedback.ParseWord(s)
		if err != nil {
			skipped++
			continue
		}
		ws = append(ws, w)
	}
	if len(ws) == 0 {
		return nil, ErrEmpty
	}
	return &List{universe: candidates.New(ws), skipped: skipped}, nil
}

// Parse reads a word table. If the first line has a comma the input is read as
// CSV and the "word" column is used (the first column when there is no such
// header); otherwise every line is a word.
func Parse(r io.Reader) (*List, error) {
	br := bufio.NewReader(r)
	first, err := br.Peek(4096)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, err
	}
	head, _, _ := strings.Cut(string(first), "\n")
	if strings.Contains(head, ",") {
		return parseCSV(br)
	}

	var out []string
	sc := bufio.NewScanner(br)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return FromStrings(out)
}

func parseCSV(r io.Reader) (*List, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	col := 0
	for i, name := range records[0] {
		if strings.EqualFold(strings.TrimSpace(name), "word") {
			col = i
			records = records[1:]
			break
		}
	}
	out := make([]string, 0, len(records))
	for _, rec := range records {
		if col < len(rec) {
			out = append(out, rec[col])
		}
	}
	return FromStrings(out)
}

// Load reads a word table from path; an empty path selects the embedded table.
func Load(path string) (*List, error) {
	if path == "" {
		list, err := assets.WordList()
		if err != nil {
			return nil, fmt.Errorf("embedded words: %w", err)
		}
		return FromStrings(list)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

var (
	initOnce   sync.Once
	defaultSet *List
	initialErr error
)

// Init loads the package-level table exactly once.
// Later calls return the first result regardless of path.
func Init(path string) error {
	initOnce.Do(func() {
		defaultSet, initialErr = Load(path)
		if initialErr != nil {
			return
		}
		log.Info().
			Str("source", sourceName(path)).
			Int("words", defaultSet.Len()).
			Int("skipped", defaultSet.Skipped()).
			Msg("word table loaded")
	})
	return initialErr
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

// Default returns the table loaded by Init, or nil before Init.
func Default() *List { return defaultSet }

// Stats returns the number of loaded words.
func Stats() int {
	if defaultSet == nil {
		return 0
	}
	return defaultSet.Len()
}
