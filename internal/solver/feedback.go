// internal/solver/feedback.go
//
// Feedback encoding for the recommendation engine.
// Responsibilities:
//   - Mark: per-letter feedback classification (absent/present/correct).
//   - Pattern: a full feedback line packed base-3 into a uint16 for cheap
//     hashing, comparison, and use as an array index.
//   - Encode: the two-pass scoring algorithm matching the real game's
//     duplicate-letter semantics.
//   - ParsePattern / Literal: the {-,+,*} textual wire format used at the
//     human-facing boundary; round-trips exactly.

package solver

import "fmt"

// Mark is the evaluation result for a single letter of a guess.
type Mark uint8

const (
	// MarkAbsent: the letter has no remaining occurrence in the answer.
	MarkAbsent Mark = iota
	// MarkPresent: the letter occurs in the answer, at a different position.
	MarkPresent
	// MarkCorrect: the letter is in the right position.
	MarkCorrect
)

// Literal symbols for the textual feedback format, one per guess position.
const (
	symAbsent  = '-'
	symPresent = '+'
	symCorrect = '*'
)

// Pattern is a feedback line for a whole guess, packed base-3 with the mark
// for position i stored as digit i. For word length n there are 3^n
// distinct patterns; the all-correct pattern is 3^n - 1.
type Pattern uint16

// AllCorrect returns the pattern marking every one of n positions correct.
func AllCorrect(n int) Pattern {
	return Pattern(numPatterns(n) - 1)
}

// numPatterns returns 3^n, the number of distinct patterns for length n.
func numPatterns(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 3
	}
	return p
}

// Encode scores guess against secret using the two-pass algorithm.
//
// Pass 1 marks exact position matches correct and counts the remaining
// (unconsumed) secret letters. Pass 2 resolves the rest: a letter with
// remaining count becomes present and consumes one count, otherwise it is
// absent. The consumption guarantees that correct+present marks for a
// repeated letter never exceed its occurrence count in the secret.
//
// Encode is pure and deterministic; it is both the scoring primitive and
// the sole filtering predicate (via Consistent).
func Encode(guess, secret Word) Pattern {
	n := len(guess)
	var marks [MaxLen]Mark
	var counts [26]uint8

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			marks[i] = MarkCorrect
		} else {
			counts[secret[i]-'a']++
		}
	}
	for i := 0; i < n; i++ {
		if marks[i] == MarkCorrect {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			marks[i] = MarkPresent
			counts[j]--
		} else {
			marks[i] = MarkAbsent
		}
	}
	return packMarks(marks[:n])
}

// Consistent reports whether candidate could be the secret given that guess
// produced pattern p. This is the only predicate candidate filtering uses.
func Consistent(p Pattern, guess, candidate Word) bool {
	return Encode(guess, candidate) == p
}

// packMarks packs marks into a base-3 Pattern, position 0 as digit 0.
func packMarks(marks []Mark) Pattern {
	var p Pattern
	for i := len(marks) - 1; i >= 0; i-- {
		p = p*3 + Pattern(marks[i])
	}
	return p
}

// Marks unpacks p into per-position marks for a word of length n.
func (p Pattern) Marks(n int) []Mark {
	marks := make([]Mark, n)
	for i := 0; i < n; i++ {
		marks[i] = Mark(p % 3)
		p /= 3
	}
	return marks
}

// Literal renders p in the textual feedback format for word length n:
// '-' absent, '+' present, '*' correct, left to right in guess order.
func (p Pattern) Literal(n int) string {
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		switch Mark(p % 3) {
		case MarkAbsent:
			buf[i] = symAbsent
		case MarkPresent:
			buf[i] = symPresent
		case MarkCorrect:
			buf[i] = symCorrect
		}
		p /= 3
	}
	return string(buf)
}

// ParsePattern parses a feedback literal of expected length n. The alphabet
// is exactly {-,+,*}; anything else, or a length mismatch, is rejected here
// so the engine never sees an invalid pattern.
func ParsePattern(s string, n int) (Pattern, error) {
	if len(s) != n {
		return 0, fmt.Errorf("feedback must be %d symbols, got %d", n, len(s))
	}
	var p Pattern
	for i := n - 1; i >= 0; i-- {
		var m Mark
		switch s[i] {
		case symAbsent:
			m = MarkAbsent
		case symPresent:
			m = MarkPresent
		case symCorrect:
			m = MarkCorrect
		default:
			return 0, fmt.Errorf("invalid feedback symbol %q (want '-', '+' or '*')", s[i])
		}
		p = p*3 + Pattern(m)
	}
	return p, nil
}
