// internal/feedback/classify.go
//
// Feedback classification of a guess against a hidden word.

package feedback

// Classify returns the feedback for letter guessed at the zero-based position pos
// when target is the true word.
//
// Classification is positional: each guessed letter is judged on its own, so a
// letter guessed twice is reported as present/correct at both positions as long
// as target contains it at all. Filtering relies on this, since every Kind maps
// to exactly one predicate in Fact.Allows.
func Classify(letter rune, pos int, target Word) Kind {
	if target[pos] == letter {
		return Correct
	}
	if target.Contains(letter) {
		return Present
	}
	return Absent
}

// Simulate returns the facts a player would learn by guessing guess
// when target is the true word, one per letter position.
func Simulate(guess, target Word) []Fact {
	out := make([]Fact, Length)
	for i, r := range guess {
		k := Classify(r, i, target)
		pos := i + 1
		if k == Absent {
			pos = 0
		}
		out[i] = Fact{Letter: r, Position: pos, Kind: k}
	}
	return out
}

// Pattern packs the per-position kinds of guess against target into one number
// (base 3, position 0 least significant). Two targets share a pattern exactly
// when the facts Simulate produces for them are identical.
type Pattern uint8

// NumPatterns is the number of distinct patterns for words of Length letters.
const NumPatterns = 243 // 3^Length

// PatternOf computes the pattern of guess against target.
func PatternOf(guess, target Word) Pattern {
	var p, mul Pattern = 0, 1
	for i, r := range guess {
		p += Pattern(Classify(r, i, target)) * mul
		mul *= 3
	}
	return p
}

// AllCorrect reports whether every fact is Correct.
func AllCorrect(facts []Fact) bool {
	if len(facts) == 0 {
		return false
	}
	for _, f := range facts {
		if f.Kind != Correct {
			return false
		}
	}
	return true
}
