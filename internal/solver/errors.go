// internal/solver/errors.go
//
// Sentinel errors surfaced by the engine. Everything else the engine does is
// total: Encode, Filter, and Score never fail for well-formed inputs drawn
// from a validated lexicon.

package solver

import "errors"

var (
	// ErrContradiction reports that the observed feedback is inconsistent
	// with every remaining candidate answer. This usually means a feedback
	// line was mistyped; callers should let the operator re-enter it or
	// abandon the session.
	ErrContradiction = errors.New("feedback inconsistent with all remaining candidates")

	// ErrEmptyVocabulary reports a recommendation query against an empty
	// guess vocabulary, which is a configuration error.
	ErrEmptyVocabulary = errors.New("empty guess vocabulary")
)
