// internal/solver/entropy.go
//
// Expected-information scoring. A guess partitions the candidate set by the
// pattern each candidate would produce; the Shannon entropy of that
// partition is the expected number of bits the guess reveals about the
// secret, assuming candidates are uniformly likely.

package solver

import "math"

// Score returns the expected information gain, in bits, of playing guess
// against candidates. Always in [0, log2(len(candidates))]; zero when one
// or zero candidates remain.
func Score(guess Word, candidates []Word) float64 {
	return scoreCounts(guess, candidates, make([]int, numPatterns(len(guess))))
}

// scoreCounts is Score with caller-provided scratch space, so the hot
// recommendation loop can reuse one counts buffer per worker. counts must
// hold at least 3^len(guess) entries; it is zeroed here.
func scoreCounts(guess Word, candidates []Word, counts []int) float64 {
	if len(candidates) <= 1 {
		return 0
	}
	for i := range counts {
		counts[i] = 0
	}
	for _, c := range candidates {
		counts[Encode(guess, c)]++
	}
	total := float64(len(candidates))
	var bits float64
	for _, n := range counts {
		if n == 0 {
			continue
		}
		p := float64(n) / total
		bits -= p * math.Log2(p)
	}
	return bits
}
