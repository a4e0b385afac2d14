package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felix-clark/wordle/internal/solver"
	"github.com/felix-clark/wordle/internal/words"
)

func testLexicon(t *testing.T) *words.Lexicon {
	t.Helper()
	lex, err := words.New(
		[]solver.Word{"crane", "trace", "react", "slate", "raise"},
		[]solver.Word{"soare"},
		5,
	)
	require.NoError(t, err)
	return lex
}

func TestNewPicksAnswerSecret(t *testing.T) {
	lex := testLexicon(t)
	g := New(lex, "")
	assert.True(t, lex.IsAnswer(g.Secret))
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "playing", g.State())
}

func TestWinTransition(t *testing.T) {
	lex := testLexicon(t)
	g := New(lex, "crane")

	p, state, err := g.ApplyGuess(lex, "slate")
	require.NoError(t, err)
	assert.Equal(t, "playing", state)
	assert.NotEqual(t, solver.AllCorrect(5), p)

	p, state, err = g.ApplyGuess(lex, "CRANE") // input is normalized
	require.NoError(t, err)
	assert.Equal(t, solver.AllCorrect(5), p)
	assert.Equal(t, "won", state)
	assert.True(t, g.Won)

	_, _, err = g.ApplyGuess(lex, "trace")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestLossAfterRowsExhausted(t *testing.T) {
	lex := testLexicon(t)
	g := New(lex, "crane")
	g.Rows = 2

	_, state, err := g.ApplyGuess(lex, "slate")
	require.NoError(t, err)
	assert.Equal(t, "playing", state)

	_, state, err = g.ApplyGuess(lex, "raise")
	require.NoError(t, err)
	assert.Equal(t, "lost", state)
	assert.True(t, g.Finished)
	assert.False(t, g.Won)
}

func TestGuessValidation(t *testing.T) {
	lex := testLexicon(t)
	g := New(lex, "crane")

	_, _, err := g.ApplyGuess(lex, "cran")
	assert.ErrorIs(t, err, ErrInvalidGuess)

	_, _, err = g.ApplyGuess(lex, "cr4ne")
	assert.ErrorIs(t, err, ErrInvalidGuess)

	_, _, err = g.ApplyGuess(lex, "wrong")
	assert.ErrorIs(t, err, ErrNotInWordList)

	// Guess-only words are legal even though they can never be answers.
	_, _, err = g.ApplyGuess(lex, "soare")
	assert.NoError(t, err)
}

func TestDailyIsDeterministic(t *testing.T) {
	lex := testLexicon(t)
	date := time.Date(2024, 3, 14, 9, 26, 53, 0, time.UTC)

	a := DailySecret(lex, date, "salt")
	b := DailySecret(lex, date, "salt")
	assert.Equal(t, a, b)
	assert.True(t, lex.IsAnswer(a))

	// Time of day does not matter, only the UTC date.
	later := time.Date(2024, 3, 14, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, a, DailySecret(lex, later, "salt"))

	g := NewDaily(lex, date, "salt")
	assert.Equal(t, a, g.Secret)
	assert.Equal(t, "daily-2024-03-14", g.ID)
}
