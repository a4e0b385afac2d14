package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreDegenerateSets(t *testing.T) {
	assert.Zero(t, Score("crane", nil))
	assert.Zero(t, Score("crane", []Word{"crane"}))
	assert.Zero(t, Score("crane", []Word{"slate"}))
}

func TestScoreBounds(t *testing.T) {
	limit := math.Log2(float64(len(answerPool)))
	for _, guess := range answerPool {
		bits := Score(guess, answerPool)
		assert.GreaterOrEqual(t, bits, 0.0)
		assert.LessOrEqual(t, bits, limit+1e-9)
	}
}

func TestScoreUniformPartitionIsExact(t *testing.T) {
	// Each candidate yields a distinct pattern against the guess, so the
	// partition is uniform and the entropy is exactly log2(n).
	candidates := []Word{"crane", "trace", "react"}
	seen := map[Pattern]struct{}{}
	for _, c := range candidates {
		seen[Encode("crane", c)] = struct{}{}
	}
	require.Len(t, seen, len(candidates), "patterns must be distinct for this fixture")

	assert.InDelta(t, math.Log2(3), Score("crane", candidates), 1e-12)
}

func TestScoreEvenSplitIsOneBit(t *testing.T) {
	// A guess splitting two candidates into different patterns reveals
	// exactly one bit.
	candidates := []Word{"aaaaa", "bbbbb"}
	assert.InDelta(t, 1.0, Score("aaaaa", candidates), 1e-12)
}

func TestScoreUninformativeGuessIsZero(t *testing.T) {
	// A guess sharing no letters with any candidate produces the same
	// all-absent pattern for every candidate: zero information.
	candidates := []Word{"aaaaa", "bbbbb"}
	assert.Zero(t, Score("ccccc", candidates))
}

func TestScoreMatchesScratchBuffer(t *testing.T) {
	counts := make([]int, numPatterns(5))
	for _, guess := range answerPool {
		want := Score(guess, answerPool)
		got := scoreCounts(guess, answerPool, counts)
		assert.Equal(t, want, got)
	}
}
