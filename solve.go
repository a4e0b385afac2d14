// solve.go
//
// The solve REPL. Each turn: print the recommended guess with its expected
// information gain, let the operator override it, read the feedback line
// the real game produced, and narrow the candidates. Ends when one
// candidate remains, the feedback is all-correct, or input runs out.
//
// Feedback lines use one symbol per letter: '-' absent, '+' present in the
// wrong spot, '*' correct.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/felix-clark/wordle/internal/session"
	"github.com/felix-clark/wordle/internal/solver"
	"github.com/felix-clark/wordle/internal/words"
)

// showRemainingBelow: when this few candidates remain, list them.
const showRemainingBelow = 8

func runSolve(cmd *cobra.Command, args []string) error {
	lex, err := loadLexicon(cmd.Context())
	if err != nil {
		return err
	}
	nAns, nGuess := lex.Stats()
	log.Info().Int("answers", nAns).Int("guesses", nGuess).Msg("lexicon loaded")

	opts, err := cfg.SolverOptions()
	if err != nil {
		return err
	}
	sess := session.New(lex, opts, openerCache)
	in := bufio.NewScanner(os.Stdin)

	first := flagFirstGuess
	if first == "" {
		first = cfg.Solver.FirstGuess
	}
	if first != "" {
		guess := solver.Word(strings.ToLower(strings.TrimSpace(first)))
		if !lex.IsAllowed(guess) {
			return fmt.Errorf("first guess %q is not in the word list", first)
		}
		done, err := applyFeedbackFor(sess, lex, in, guess)
		if done || err != nil {
			return err
		}
	}

	for sess.Remaining() > 1 {
		rec, err := sess.Recommend(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Best guess: %s (%.2f bits)\n", rec.Word, rec.Bits)

		guess, ok := promptGuess(in, lex, rec.Word)
		if !ok {
			return nil // operator abandoned
		}
		done, err := applyFeedbackFor(sess, lex, in, guess)
		if done || err != nil {
			return err
		}
	}

	if sess.Remaining() == 1 {
		fmt.Printf("The solution is %s\n", sess.Candidates()[0])
	}
	return nil
}

// promptGuess reads the played guess; blank accepts the recommendation.
// Returns ok=false on EOF.
func promptGuess(in *bufio.Scanner, lex *words.Lexicon, recommended solver.Word) (solver.Word, bool) {
	for {
		fmt.Print("Enter guess (blank for recommended): ")
		if !in.Scan() {
			return "", false
		}
		raw := strings.ToLower(strings.TrimSpace(in.Text()))
		if raw == "" {
			return recommended, true
		}
		guess := solver.Word(raw)
		if !lex.IsAllowed(guess) {
			fmt.Printf("%q is not in the word list\n", raw)
			continue
		}
		return guess, true
	}
}

// applyFeedbackFor reads the feedback line for guess and applies it,
// re-prompting on malformed or contradictory input. Returns done=true when
// the session is finished (solved, abandoned, or out of input).
func applyFeedbackFor(sess *session.Session, lex *words.Lexicon, in *bufio.Scanner, guess solver.Word) (bool, error) {
	contradicted := false
	for {
		fmt.Printf("Feedback for %s (blank to abandon): ", guess)
		if !in.Scan() || strings.TrimSpace(in.Text()) == "" {
			if contradicted {
				return true, solver.ErrContradiction
			}
			return true, nil
		}
		raw := strings.TrimSpace(in.Text())
		p, err := solver.ParsePattern(raw, lex.Length())
		if err != nil {
			fmt.Printf("%v\n", err)
			fmt.Println("Use one symbol per letter: '-' absent, '+' wrong spot, '*' correct.")
			continue
		}
		if p == solver.AllCorrect(lex.Length()) {
			fmt.Printf("Solved: %s\n", guess)
			return true, nil
		}

		remaining, err := sess.Apply(guess, p)
		if errors.Is(err, solver.ErrContradiction) {
			contradicted = true
			fmt.Println("That feedback eliminates every remaining candidate.")
			printExtendedOptions(sess)
			continue
		}
		if err != nil {
			return true, err
		}

		fmt.Printf("%d candidates remain\n", remaining)
		if remaining > 1 && remaining < showRemainingBelow {
			printWords(sess.Candidates())
		}
		return false, nil
	}
}

// printExtendedOptions re-derives candidates from the full guess vocabulary
// after a contradiction: the secret may be a legal guess word that was
// never in the answer list.
func printExtendedOptions(sess *session.Session) {
	ext := sess.ExtendedOptions()
	if len(ext) == 0 {
		fmt.Println("No words in the full vocabulary match the feedback history.")
		return
	}
	fmt.Println("Possible extended options:")
	printWords(ext)
}

func printWords(list []solver.Word) {
	strs := make([]string, len(list))
	for i, w := range list {
		strs[i] = string(w)
	}
	fmt.Println(strings.Join(strs, "\t"))
}
