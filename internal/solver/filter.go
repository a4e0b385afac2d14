// internal/solver/filter.go
//
// Candidate filtering. One observation (guess, pattern) narrows the live
// candidate set to the subset that would have produced that exact pattern.

package solver

// Filter returns the candidates consistent with observing pattern p after
// playing guess, preserving input order. Pure and total: an empty result is
// a valid output and signals contradictory feedback to the caller.
//
// Filtering is referentially transparent: folding Filter over a feedback
// history from the full answer vocabulary yields the same set as applying
// it incrementally turn by turn.
func Filter(candidates []Word, guess Word, p Pattern) []Word {
	out := make([]Word, 0, len(candidates))
	for _, c := range candidates {
		if Consistent(p, guess, c) {
			out = append(out, c)
		}
	}
	return out
}
