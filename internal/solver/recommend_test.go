package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendErrors(t *testing.T) {
	ctx := context.Background()

	_, err := Recommend(ctx, nil, answerPool, Options{})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)

	_, err = Recommend(ctx, answerPool, nil, Options{})
	assert.ErrorIs(t, err, ErrContradiction)
}

func TestRecommendSingleCandidateShortcut(t *testing.T) {
	// The sole candidate is returned directly, even if it would not win a
	// scoring pass, and with zero bits attached.
	sg, err := Recommend(context.Background(), answerPool, []Word{"ocean"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, Word("ocean"), sg.Word)
	assert.Zero(t, sg.Bits)
}

func TestRecommendWorkerInvariance(t *testing.T) {
	ctx := context.Background()
	base, err := Recommend(ctx, answerPool, answerPool, Options{Workers: 1})
	require.NoError(t, err)
	for _, workers := range []int{2, 3, 4, 16} {
		got, err := Recommend(ctx, answerPool, answerPool, Options{Workers: workers})
		require.NoError(t, err)
		assert.Equal(t, base, got, "workers=%d", workers)
	}
}

func TestRecommendTieBreakPrefersCandidate(t *testing.T) {
	ctx := context.Background()
	candidates := []Word{"bbbbb", "ccccc"}
	// "abbbb" and "bbbbb" both split the two candidates fully (one bit);
	// "zzzzz" reveals nothing.
	vocab := []Word{"abbbb", "bbbbb", "ccccc", "zzzzz"}

	sg, err := Recommend(ctx, vocab, candidates, Options{TieBreak: TieBreakCandidate})
	require.NoError(t, err)
	assert.Equal(t, Word("bbbbb"), sg.Word, "candidate wins the tie")
	assert.InDelta(t, 1.0, sg.Bits, 1e-12)

	sg, err = Recommend(ctx, vocab, candidates, Options{TieBreak: TieBreakLexical})
	require.NoError(t, err)
	assert.Equal(t, Word("abbbb"), sg.Word, "lexical order wins the tie")
}

func TestRecommendPicksMostInformative(t *testing.T) {
	// Against candidates sharing no letters with "zzzzz", any real split
	// beats the zero-bit guess.
	candidates := []Word{"bbbbb", "ccccc", "ddddd"}
	vocab := []Word{"zzzzz", "bbbbb"}
	sg, err := Recommend(context.Background(), vocab, candidates, Options{})
	require.NoError(t, err)
	assert.Equal(t, Word("bbbbb"), sg.Word)
	assert.Greater(t, sg.Bits, 0.0)
}

func TestRecommendCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Recommend(ctx, answerPool, answerPool, Options{Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRankOrdering(t *testing.T) {
	top, err := Rank(context.Background(), answerPool, answerPool, 5, Options{})
	require.NoError(t, err)
	require.Len(t, top, 5)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Bits, top[i].Bits)
	}

	best, err := Recommend(context.Background(), answerPool, answerPool, Options{Workers: 3})
	require.NoError(t, err)
	assert.Equal(t, best, top[0], "Rank and Recommend agree on the winner")
}
