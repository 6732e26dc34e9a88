// assets/embed.go
//
// Files compiled into the binary:
//   - words.txt:        default table of five-letter words (one per line).
//   - instructions.txt: help text printed by the interactive assistant.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words.txt instructions.txt
var FS embed.FS

// readLines returns the non-empty lines of an embedded file.
// Lines starting with "#" are comments. With lower set, lines are lowercased.
func readLines(name string, lower bool) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimRight(sc.Text(), " \t\r")
		if strings.TrimSpace(s) == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if lower {
			s = strings.ToLower(strings.TrimSpace(s))
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// WordList returns the embedded word table.
func WordList() ([]string, error) {
	return readLines("words.txt", true)
}

// Instructions returns the assistant help text.
func Instructions() (string, error) {
	lines, err := readLines("instructions.txt", false)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}
