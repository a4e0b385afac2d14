// play.go
//
// Play mode: the program hides a word (random, or date-deterministic with
// --daily) and scores the operator's guesses, printing the same feedback
// literal the solve mode consumes. --hint runs the recommender alongside.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/felix-clark/wordle/internal/game"
	"github.com/felix-clark/wordle/internal/session"
	"github.com/felix-clark/wordle/internal/solver"
)

func runPlay(cmd *cobra.Command, args []string) error {
	lex, err := loadLexicon(cmd.Context())
	if err != nil {
		return err
	}
	opts, err := cfg.SolverOptions()
	if err != nil {
		return err
	}

	var g *game.Game
	if flagDaily {
		g = game.NewDaily(lex, time.Now(), cfg.Game.DailySalt)
		fmt.Printf("Daily puzzle for %s\n", game.DateKey(time.Now()))
	} else {
		g = game.New(lex, "")
	}
	g.Rows = cfg.Game.Rows
	log.Debug().Str("game_id", g.ID).Msg("game started")

	var hints *session.Session
	if flagHint {
		hints = session.New(lex, opts, openerCache)
	}

	in := bufio.NewScanner(os.Stdin)
	for !g.Finished {
		if hints != nil {
			rec, err := hints.Recommend(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Hint: %s (%.2f bits)\n", rec.Word, rec.Bits)
		}
		fmt.Printf("Guess %d/%d: ", len(g.Guesses)+1, g.Rows)
		if !in.Scan() {
			fmt.Printf("The word was %s\n", g.Secret)
			return nil
		}
		guess := solver.Word(strings.ToLower(strings.TrimSpace(in.Text())))

		p, state, err := g.ApplyGuess(lex, guess)
		if err != nil {
			fmt.Printf("%v\n", err)
			continue
		}
		fmt.Println(p.Literal(lex.Length()))

		if hints != nil && state == "playing" {
			// The secret is always consistent with its own feedback, so a
			// contradiction cannot happen here.
			if _, err := hints.Apply(guess, p); err != nil {
				return err
			}
		}
	}

	if g.Won {
		fmt.Printf("You won in %d guesses.\n", len(g.Guesses))
	} else {
		fmt.Printf("Out of guesses: the word was %s\n", g.Secret)
	}
	return nil
}
