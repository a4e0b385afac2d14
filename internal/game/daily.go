// internal/game/daily.go
//
// Deterministic daily secret selection: everyone playing the same date and
// salt gets the same word, without publishing the answer order.

package game

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/felix-clark/wordle/internal/solver"
	"github.com/felix-clark/wordle/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// wordIndex returns a deterministic index for a date using
// HMAC(salt, YYYY-MM-DD) mod answersLen.
func wordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// DailySecret picks the answer word for a date.
func DailySecret(lex *words.Lexicon, date time.Time, salt string) solver.Word {
	return lex.Answers()[wordIndex(date, salt, len(lex.Answers()))]
}

// NewDaily constructs the deterministic game for a date.
func NewDaily(lex *words.Lexicon, date time.Time, salt string) *Game {
	g := New(lex, DailySecret(lex, date, salt))
	g.ID = "daily-" + DateKey(date)
	return g
}
