package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var answerPool = []Word{
	"crane", "trace", "react", "erase", "speed", "river", "vexed",
	"slate", "raise", "arise", "ocean", "these", "crate",
}

func TestFilterKeepsOnlyConsistent(t *testing.T) {
	p := Encode("crane", "trace")
	got := Filter(answerPool, "crane", p)
	require.NotEmpty(t, got)
	for _, c := range got {
		assert.Equal(t, p, Encode("crane", c))
	}
}

func TestFilterMonotonicSubset(t *testing.T) {
	p := Encode("slate", "trace")
	got := Filter(answerPool, "slate", p)
	assert.LessOrEqual(t, len(got), len(answerPool))

	index := make(map[Word]struct{}, len(answerPool))
	for _, w := range answerPool {
		index[w] = struct{}{}
	}
	for _, c := range got {
		_, ok := index[c]
		assert.True(t, ok, "filter invented word %q", c)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	// The secret itself always survives, and relative order is unchanged.
	got := Filter(answerPool, "crane", Encode("crane", "erase"))
	assert.Contains(t, got, Word("erase"))
	prev := -1
	for _, c := range got {
		cur := indexOf(answerPool, c)
		require.Greater(t, cur, prev)
		prev = cur
	}
}

func TestFilterEmptyResultIsValid(t *testing.T) {
	// A pattern no pool word can produce yields an empty set, not a panic.
	p, err := ParsePattern("+++++", 5)
	require.NoError(t, err)
	got := Filter([]Word{"crane"}, "crane", p)
	assert.Empty(t, got)
}

func TestFilterFoldEquivalence(t *testing.T) {
	// Incremental filtering turn by turn matches one replay from scratch.
	history := []struct {
		guess  Word
		secret Word
	}{
		{guess: "slate", secret: "react"},
		{guess: "crane", secret: "react"},
	}

	incremental := answerPool
	for _, turn := range history {
		incremental = Filter(incremental, turn.guess, Encode(turn.guess, turn.secret))
	}

	// Re-applying an already observed turn changes nothing (idempotence).
	for _, turn := range history {
		again := Filter(incremental, turn.guess, Encode(turn.guess, turn.secret))
		assert.Equal(t, incremental, again)
	}

	// And the true secret is never filtered out.
	assert.Contains(t, incremental, Word("react"))
}

// The RIVER scenario: a secret with a misplaced v and a correct e at the
// fourth position must produce "--+*-", and filtering with that pattern
// keeps exactly the words matching those constraints.
func TestFilterRiverScenario(t *testing.T) {
	p := Encode("river", "vexed")
	require.Equal(t, "--+*-", p.Literal(5))

	got := Filter(answerPool, "river", p)
	assert.Contains(t, got, Word("vexed"))
	for _, c := range got {
		assert.NotEqual(t, byte('v'), c[2], "v cannot stay at the guessed position")
		assert.Equal(t, byte('e'), c[3], "e is fixed at the fourth position")
		assert.Contains(t, string(c), "v", "v must occur somewhere")
	}
}

func indexOf(list []Word, w Word) int {
	for i, x := range list {
		if x == w {
			return i
		}
	}
	return -1
}
