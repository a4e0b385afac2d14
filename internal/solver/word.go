// internal/solver/word.go
//
// Value types for the recommendation engine.
// A Word is an immutable fixed-length sequence of lowercase ASCII letters;
// equality and ordering are plain string comparison. Words are validated at
// the lexicon boundary, so the engine assumes well-formed input throughout.

package solver

// MaxLen is the largest supported word length. Patterns are packed base-3
// into a uint16, so lengths above 10 (3^10 = 59049) would overflow.
const MaxLen = 10

// Word is a single puzzle word: lowercase a-z, fixed length per lexicon.
type Word string

// ScoredGuess pairs a guess with its expected information gain in bits.
type ScoredGuess struct {
	Word Word
	Bits float64
}
