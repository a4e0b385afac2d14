// bench.go
//
// Bench mode: run the solver to completion against one or every answer
// word and report the guess-count distribution. The opening guess is
// constant for a given lexicon, so it is computed (or pinned with
// --first-guess) once up front.

package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/felix-clark/wordle/internal/solver"
	"github.com/felix-clark/wordle/internal/words"
)

func runBench(cmd *cobra.Command, args []string) error {
	lex, err := loadLexicon(cmd.Context())
	if err != nil {
		return err
	}
	opts, err := cfg.SolverOptions()
	if err != nil {
		return err
	}

	var opener solver.Word
	if flagFirstGuess != "" {
		opener = solver.Word(strings.ToLower(strings.TrimSpace(flagFirstGuess)))
		if !lex.IsAllowed(opener) {
			return fmt.Errorf("first guess %q is not in the word list", flagFirstGuess)
		}
	} else {
		start := time.Now()
		sg, err := solver.Recommend(cmd.Context(), lex.Guesses(), lex.Answers(), opts)
		if err != nil {
			return err
		}
		opener = sg.Word
		log.Info().Str("opener", string(opener)).Float64("bits", sg.Bits).
			Dur("took", time.Since(start)).Msg("opening guess computed")
	}

	secrets := lex.Answers()
	if flagSecret != "" {
		w := solver.Word(strings.ToLower(strings.TrimSpace(flagSecret)))
		if !lex.IsAnswer(w) {
			return fmt.Errorf("secret %q is not in the answer list", flagSecret)
		}
		secrets = []solver.Word{w}
	}
	if flagLimit > 0 && flagLimit < len(secrets) {
		secrets = secrets[:flagLimit]
	}

	hist := make(map[int]int)
	totalTurns := 0
	worst := 0
	start := time.Now()
	for _, secret := range secrets {
		turns, err := simulate(cmd.Context(), lex, opts, opener, secret)
		if err != nil {
			return fmt.Errorf("simulate %s: %w", secret, err)
		}
		hist[turns]++
		totalTurns += turns
		if turns > worst {
			worst = turns
		}
	}

	fmt.Printf("secrets: %d, opener: %s\n", len(secrets), opener)
	var keys []int
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Printf("%d guesses: %d\n", k, hist[k])
	}
	fmt.Printf("average: %.3f, worst: %d, elapsed: %s\n",
		float64(totalTurns)/float64(len(secrets)), worst, time.Since(start).Round(time.Millisecond))
	return nil
}

// simulate plays one puzzle to completion: recommend, self-score against
// the known secret, filter, repeat. The secret is drawn from the answer
// vocabulary, so a contradiction is impossible here.
func simulate(ctx context.Context, lex *words.Lexicon, opts solver.Options, opener, secret solver.Word) (int, error) {
	candidates := lex.Answers()
	guess := opener
	for turns := 1; ; turns++ {
		if guess == secret {
			return turns, nil
		}
		p := solver.Encode(guess, secret)
		candidates = solver.Filter(candidates, guess, p)
		sg, err := solver.Recommend(ctx, lex.Guesses(), candidates, opts)
		if err != nil {
			return 0, err
		}
		guess = sg.Word
	}
}
