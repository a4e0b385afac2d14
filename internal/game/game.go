// internal/game/game.go
//
// Game engine for play mode: the program holds a secret and evaluates the
// operator's guesses.
// Responsibilities:
//   - Create new games with deterministic dimensions (6 rows by default).
//   - Validate guesses (length, alphabetic, allowed list) against a Lexicon.
//   - Score guesses with solver.Encode, the single source of truth for
//     feedback semantics (including duplicate letters).
//   - Track state transitions: playing → won/lost.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/felix-clark/wordle/internal/solver"
	"github.com/felix-clark/wordle/internal/words"
)

// DefaultRows is the classic six-guess limit.
const DefaultRows = 6

var (
	// ErrFinished reports a guess against a completed game.
	ErrFinished = errors.New("game finished")
	// ErrInvalidGuess reports a guess of the wrong shape.
	ErrInvalidGuess = errors.New("invalid guess")
	// ErrNotInWordList reports a guess outside the lexicon.
	ErrNotInWordList = errors.New("not in word list")
)

// Game holds the state of a single play-mode game.
type Game struct {
	ID       string        // compact random identifier for log correlation
	Secret   solver.Word   // the hidden answer
	Rows     int           // maximum number of guesses
	Guesses  []solver.Word // guesses made so far, in order
	Finished bool
	Won      bool
}

// New constructs a game. If withSecret is empty a random answer is drawn
// from the lexicon.
func New(lex *words.Lexicon, withSecret solver.Word) *Game {
	secret := withSecret
	if secret == "" {
		secret = lex.RandomAnswer()
	}
	return &Game{
		ID:     randomID(),
		Secret: secret,
		Rows:   DefaultRows,
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the feedback pattern and the new state string.
func (g *Game) ApplyGuess(lex *words.Lexicon, guess solver.Word) (solver.Pattern, string, error) {
	if g.Finished {
		return 0, g.State(), ErrFinished
	}
	guess = solver.Word(strings.ToLower(strings.TrimSpace(string(guess))))
	if len(guess) != lex.Length() || !isAlpha(string(guess)) {
		return 0, g.State(), ErrInvalidGuess
	}
	if !lex.IsAllowed(guess) {
		return 0, g.State(), ErrNotInWordList
	}

	p := solver.Encode(guess, g.Secret)
	g.Guesses = append(g.Guesses, guess)

	if p == solver.AllCorrect(lex.Length()) {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return p, g.State(), nil
}

// State reports a coarse string representation of the game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// isAlpha checks that s consists only of lowercase a-z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
