// internal/words/words.go
//
// Word list management for the recommendation engine.
//
// Responsibilities:
//   - Load answer and guess vocabularies from configured files or fall back
//     to embedded defaults.
//   - Normalize and validate at the boundary so the engine only ever sees
//     well-formed words (fixed length, lowercase a-z).
//   - Maintain sets for quick lookups (answers only, answers ∪ guesses).
//   - Supply utilities like RandomAnswer, IsAllowed, IsAnswer, and Stats.
//
// A Lexicon is immutable after construction. The candidate set that shrinks
// over a solve session is owned by the session, never by this package, so
// concurrent sessions can share one Lexicon freely.

package words

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"hash/fnv"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/felix-clark/wordle/assets"
	"github.com/felix-clark/wordle/internal/solver"
)

// DefaultLength is the word length of the standard puzzle variant.
const DefaultLength = 5

// ErrNoAnswers reports an empty answer vocabulary after loading, which is a
// fatal configuration error: the engine must never recommend against an
// empty vocabulary.
var ErrNoAnswers = errors.New("words: answer list is empty")

// Lexicon holds the two vocabularies of a puzzle variant: the answer words
// eligible to be the secret, and the (superset) guess words legal to play.
type Lexicon struct {
	length    int
	answers   []solver.Word
	guesses   []solver.Word
	answerSet map[solver.Word]struct{}
	guessSet  map[solver.Word]struct{}
	sig       string
}

// Load builds a Lexicon for the given word length.
//
// Resolution order:
//  1. Both paths set: answers from answersPath, extra guesses from allowedPath.
//  2. Only allowedPath set: that list serves as both vocabularies.
//  3. Neither set: embedded default lists.
func Load(answersPath, allowedPath string, length int) (*Lexicon, error) {
	var ansList, allowList []solver.Word
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = ReadFile(answersPath, length); err != nil {
			return nil, err
		}
		if allowList, err = ReadFile(allowedPath, length); err != nil {
			return nil, err
		}

	case answersPath == "" && allowedPath != "":
		if allowList, err = ReadFile(allowedPath, length); err != nil {
			return nil, err
		}
		ansList = allowList

	default:
		ans, err := assets.AnswersList()
		if err != nil {
			return nil, fmt.Errorf("embedded answers: %w", err)
		}
		allow, err := assets.AllowedList()
		if err != nil {
			return nil, fmt.Errorf("embedded allowed: %w", err)
		}
		ansList = filterValid(ans, length)
		allowList = filterValid(allow, length)
	}

	return New(ansList, allowList, length)
}

// New builds a Lexicon from explicit lists. Every word must already be
// normalized (length letters, lowercase a-z); a malformed entry is an
// error, not a skip, because callers of New are programmatic sources.
// Answers are always included in the guess vocabulary; duplicates collapse.
func New(answers, allowed []solver.Word, length int) (*Lexicon, error) {
	if length < 1 || length > solver.MaxLen {
		return nil, fmt.Errorf("words: unsupported word length %d", length)
	}
	lex := &Lexicon{
		length:    length,
		answerSet: make(map[solver.Word]struct{}, len(answers)),
		guessSet:  make(map[solver.Word]struct{}, len(answers)+len(allowed)),
	}
	for _, w := range answers {
		if !valid(string(w), length) {
			return nil, fmt.Errorf("words: malformed answer %q", w)
		}
		if _, dup := lex.answerSet[w]; dup {
			continue
		}
		lex.answerSet[w] = struct{}{}
		lex.guessSet[w] = struct{}{}
		lex.answers = append(lex.answers, w)
		lex.guesses = append(lex.guesses, w)
	}
	for _, w := range allowed {
		if !valid(string(w), length) {
			return nil, fmt.Errorf("words: malformed guess word %q", w)
		}
		if _, dup := lex.guessSet[w]; dup {
			continue
		}
		lex.guessSet[w] = struct{}{}
		lex.guesses = append(lex.guesses, w)
	}
	if len(lex.answers) == 0 {
		return nil, ErrNoAnswers
	}
	lex.sig = signature(lex.answers, lex.guesses)
	return lex, nil
}

// ReadFile loads one word per line, lowercasing and trimming. Entries of
// the wrong length or with non a-z characters are rejected at this boundary
// (skipped with a warning) so they never reach the engine.
func ReadFile(path string, length int) ([]solver.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []solver.Word
	skipped := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if !valid(w, length) {
			skipped++
			continue
		}
		out = append(out, solver.Word(w))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if skipped > 0 {
		log.Warn().Str("file", path).Int("skipped", skipped).Msg("rejected malformed word list entries")
	}
	return out, nil
}

// filterValid normalizes embedded lists, which are already lowercase.
func filterValid(list []string, length int) []solver.Word {
	out := make([]solver.Word, 0, len(list))
	for _, w := range list {
		if valid(w, length) {
			out = append(out, solver.Word(w))
		}
	}
	return out
}

// valid reports whether s is exactly length lowercase ASCII letters.
func valid(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// signature fingerprints the vocabularies for opener-cache keying.
func signature(answers, guesses []solver.Word) string {
	h := fnv.New64a()
	for _, w := range answers {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	h.Write([]byte{'|'})
	for _, w := range guesses {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Length returns the fixed word length of this lexicon.
func (l *Lexicon) Length() int { return l.length }

// Answers returns the ordered answer vocabulary. Callers must not modify it.
func (l *Lexicon) Answers() []solver.Word { return l.answers }

// Guesses returns the ordered guess vocabulary (answers first, then
// guess-only words). Callers must not modify it.
func (l *Lexicon) Guesses() []solver.Word { return l.guesses }

// IsAllowed reports whether w is legal to play as a guess.
func (l *Lexicon) IsAllowed(w solver.Word) bool {
	_, ok := l.guessSet[w]
	return ok
}

// IsAnswer reports whether w is in the answer vocabulary.
func (l *Lexicon) IsAnswer(w solver.Word) bool {
	_, ok := l.answerSet[w]
	return ok
}

// RandomAnswer returns a cryptographically random answer word.
func (l *Lexicon) RandomAnswer() solver.Word {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	return l.answers[n.Int64()]
}

// Signature is a stable fingerprint of the loaded vocabularies.
func (l *Lexicon) Signature() string { return l.sig }

// Stats returns counts of loaded words: (answers, guesses).
func (l *Lexicon) Stats() (answersCount, guessesCount int) {
	return len(l.answers), len(l.guesses)
}
