// internal/daily/daily.go
//
// Daily word selection.
// Every calendar day (UTC) maps to one word of the table through
// HMAC-SHA256(salt, "YYYY-MM-DD"), so all players see the same word for a day
// and the schedule cannot be guessed without the salt.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as the dividend
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Word returns the word of the day from u.
// ok is false when u is empty.
func Word(date time.Time, salt string, u candidates.Universe) (w feedback.Word, ok bool) {
	if u.Empty() {
		return w, false
	}
	return u.At(WordIndex(date, salt, u.Len())), true
}
