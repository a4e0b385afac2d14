// internal/solver/recommend.go
//
// Guess recommendation: score every word in the guess vocabulary against
// the current candidate set and pick the maximum by expected bits.
//
// Each guess's score is independent of every other guess's, so the scan is
// fanned out across an errgroup worker pool. Workers read only the shared
// immutable inputs and write their own local best; a final max-reduction
// merges them. The comparator is a total order, so the result does not
// depend on worker count or chunking.

package solver

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// TieBreak selects how equally informative guesses are ordered.
type TieBreak int

const (
	// TieBreakCandidate prefers, among equal-bits guesses, one that is
	// itself a remaining candidate (it could end the game outright), then
	// the lexicographically smallest. This is the default.
	TieBreakCandidate TieBreak = iota
	// TieBreakLexical ignores candidate membership and takes the
	// lexicographically smallest of the top-scoring guesses.
	TieBreakLexical
)

// Options tunes a recommendation query. The zero value is usable: one
// worker per CPU and candidate-preferring tie-breaks.
type Options struct {
	// Workers is the scoring parallelism; <= 0 means runtime.NumCPU().
	Workers int
	// TieBreak orders guesses with equal expected bits.
	TieBreak TieBreak
}

// scored is a ScoredGuess plus candidate membership, for tie-breaking.
type scored struct {
	ScoredGuess
	inCandidates bool
}

// Recommend returns the guess from guessVocab with the highest expected
// information gain against candidates.
//
// Special cases: a single remaining candidate is returned directly without
// scoring (its Bits is zero); an empty candidate set yields
// ErrContradiction; an empty vocabulary yields ErrEmptyVocabulary.
//
// The context is checked cooperatively between guesses, so a recommendation
// can be abandoned mid-scan.
func Recommend(ctx context.Context, guessVocab, candidates []Word, opts Options) (ScoredGuess, error) {
	if len(guessVocab) == 0 {
		return ScoredGuess{}, ErrEmptyVocabulary
	}
	switch len(candidates) {
	case 0:
		return ScoredGuess{}, ErrContradiction
	case 1:
		return ScoredGuess{Word: candidates[0]}, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(guessVocab) {
		workers = len(guessVocab)
	}

	inCandidates := make(map[Word]struct{}, len(candidates))
	for _, c := range candidates {
		inCandidates[c] = struct{}{}
	}

	wordLen := len(guessVocab[0])
	locals := make([]scored, workers)
	chunk := (len(guessVocab) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(guessVocab) {
			hi = len(guessVocab)
		}
		if lo >= hi {
			locals[w] = scored{ScoredGuess: ScoredGuess{Bits: -1}}
			continue
		}
		w := w
		g.Go(func() error {
			counts := make([]int, numPatterns(wordLen))
			best := scored{ScoredGuess: ScoredGuess{Bits: -1}}
			for _, guess := range guessVocab[lo:hi] {
				if err := ctx.Err(); err != nil {
					return err
				}
				cur := scored{
					ScoredGuess: ScoredGuess{
						Word: guess,
						Bits: scoreCounts(guess, candidates, counts),
					},
				}
				_, cur.inCandidates = inCandidates[guess]
				if better(cur, best, opts.TieBreak) {
					best = cur
				}
			}
			locals[w] = best
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ScoredGuess{}, err
	}

	best := locals[0]
	for _, l := range locals[1:] {
		if better(l, best, opts.TieBreak) {
			best = l
		}
	}
	return best.ScoredGuess, nil
}

// Rank scores every word in guessVocab against candidates and returns the
// top n in recommendation order. Used for diagnostics and opener tables.
func Rank(ctx context.Context, guessVocab, candidates []Word, n int, opts Options) ([]ScoredGuess, error) {
	if len(guessVocab) == 0 {
		return nil, ErrEmptyVocabulary
	}
	if len(candidates) == 0 {
		return nil, ErrContradiction
	}
	inCandidates := make(map[Word]struct{}, len(candidates))
	for _, c := range candidates {
		inCandidates[c] = struct{}{}
	}
	all := make([]scored, 0, len(guessVocab))
	counts := make([]int, numPatterns(len(guessVocab[0])))
	for _, guess := range guessVocab {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s := scored{ScoredGuess: ScoredGuess{
			Word: guess,
			Bits: scoreCounts(guess, candidates, counts),
		}}
		_, s.inCandidates = inCandidates[guess]
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return better(all[i], all[j], opts.TieBreak) })
	if n > len(all) {
		n = len(all)
	}
	out := make([]ScoredGuess, n)
	for i := range out {
		out[i] = all[i].ScoredGuess
	}
	return out, nil
}

// better is the total order on scored guesses: more bits first, then the
// configured tie-break, then lexicographic order.
func better(a, b scored, tb TieBreak) bool {
	if a.Bits != b.Bits {
		return a.Bits > b.Bits
	}
	if tb == TieBreakCandidate && a.inCandidates != b.inCandidates {
		return a.inCandidates
	}
	return a.Word < b.Word
}
