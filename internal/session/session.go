// internal/session/session.go
//
// A solve session owns the live candidate set and the full feedback history
// for one puzzle as an explicit value. Nothing here is process-global:
// restarting a puzzle is constructing a new Session, and concurrent
// sessions over a shared Lexicon are safe because the Lexicon is immutable
// and each Session only mutates itself.

package session

import (
	"context"

	"github.com/felix-clark/wordle/internal/solver"
	"github.com/felix-clark/wordle/internal/words"
)

// Turn is one observed (guess, feedback) pair.
type Turn struct {
	Guess   solver.Word
	Pattern solver.Pattern
}

// Session tracks one puzzle from the full answer vocabulary down to the
// solution. The candidate set shrinks monotonically: Apply never regrows
// it, and a rejected (contradictory) observation leaves it untouched.
type Session struct {
	lex        *words.Lexicon
	candidates []solver.Word
	history    []Turn
	opts       solver.Options
	openers    solver.OpenerCache
}

// New starts a session over the lexicon's full answer vocabulary.
// The opener cache is optional; pass nil to always compute the first
// recommendation from scratch.
func New(lex *words.Lexicon, opts solver.Options, openers solver.OpenerCache) *Session {
	return &Session{
		lex:        lex,
		candidates: lex.Answers(),
		opts:       opts,
		openers:    openers,
	}
}

// Remaining returns the number of live candidate answers.
func (s *Session) Remaining() int { return len(s.candidates) }

// Candidates returns a copy of the live candidate set.
func (s *Session) Candidates() []solver.Word {
	out := make([]solver.Word, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// History returns a copy of the observed turns, in order.
func (s *Session) History() []Turn {
	out := make([]Turn, len(s.history))
	copy(out, s.history)
	return out
}

// Apply records one observation and narrows the candidate set, returning
// the number of candidates left. If the observation would eliminate every
// candidate it is NOT recorded and ErrContradiction is returned, so the
// operator can re-enter the feedback line.
func (s *Session) Apply(guess solver.Word, p solver.Pattern) (int, error) {
	next := solver.Filter(s.candidates, guess, p)
	if len(next) == 0 {
		return 0, solver.ErrContradiction
	}
	s.candidates = next
	s.history = append(s.history, Turn{Guess: guess, Pattern: p})
	return len(next), nil
}

// Recommend returns the most informative next guess from the full guess
// vocabulary against the live candidates. The opening recommendation (no
// turns played yet) is memoized per lexicon signature when a cache is set.
func (s *Session) Recommend(ctx context.Context) (solver.ScoredGuess, error) {
	opening := len(s.history) == 0
	if opening && s.openers != nil {
		if sg, ok := s.openers.Get(s.lex.Signature()); ok {
			return sg, nil
		}
	}
	sg, err := solver.Recommend(ctx, s.lex.Guesses(), s.candidates, s.opts)
	if err != nil {
		return solver.ScoredGuess{}, err
	}
	if opening && s.openers != nil {
		s.openers.Put(s.lex.Signature(), sg)
	}
	return sg, nil
}

// Replay folds the recorded history over vocab from scratch. Replaying over
// the full answer vocabulary reproduces the live candidate set exactly
// (filtering is referentially transparent); replaying over the guess
// vocabulary yields the extended option list shown after a contradiction.
func (s *Session) Replay(vocab []solver.Word) []solver.Word {
	set := vocab
	for _, t := range s.history {
		set = solver.Filter(set, t.Guess, t.Pattern)
	}
	return set
}

// ExtendedOptions re-derives candidates from the whole guess vocabulary.
// Useful when the answer vocabulary has been exhausted: the secret may be a
// legal guess word that was never in the answer list.
func (s *Session) ExtendedOptions() []solver.Word {
	return s.Replay(s.lex.Guesses())
}
