// commands.go
//
// Command tree and shared CLI state.
// Modes:
//   solve: interactive assistant that recommends the most informative guess
//     each turn and narrows candidates from the feedback you report.
//   play: the program hides a word and scores your guesses.
//   bench: simulates the solver against answer words and reports the
//     guess-count distribution.
//   words: manages the SQLite word store (import, stats).

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/felix-clark/wordle/internal/config"
	"github.com/felix-clark/wordle/internal/solver"
	"github.com/felix-clark/wordle/internal/words"
	"github.com/felix-clark/wordle/internal/wordstore"
)

var (
	cfgPath string
	cfg     *config.Config

	// openerCache survives across sessions within one process so repeated
	// solves (and bench runs) pay for the opening scan only once.
	openerCache = solver.NewMemoryOpenerCache()

	flagFirstGuess string
	flagSecret     string
	flagDaily      bool
	flagHint       bool
	flagLimit      int
	flagKind       string
	flagDB         string

	rootCmd = &cobra.Command{
		Use:          "wordle",
		Short:        "An information-theoretic Wordle solver",
		Long:         "wordle recommends, each turn, the guess that maximizes expected\ninformation gain over the remaining candidate answers.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			var err error
			if cfg, err = config.Load(cfgPath); err != nil {
				return err
			}
			if lvl, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}
			return nil
		},
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Interactively solve a puzzle from feedback you report",
		Args:  cobra.NoArgs,
		RunE:  runSolve, // defined in solve.go
	}

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play a game against the program",
		Args:  cobra.NoArgs,
		RunE:  runPlay, // defined in play.go
	}

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Simulate the solver against answer words",
		Args:  cobra.NoArgs,
		RunE:  runBench, // defined in bench.go
	}

	wordsCmd = &cobra.Command{
		Use:   "words",
		Short: "Manage the word store",
	}

	wordsImportCmd = &cobra.Command{
		Use:   "import <file>",
		Short: "Import a word list file into the SQLite word store",
		Args:  cobra.ExactArgs(1),
		RunE:  runWordsImport, // defined in words_cmd.go
	}

	wordsStatsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Show word store counts",
		Args:  cobra.NoArgs,
		RunE:  runWordsStats, // defined in words_cmd.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")

	solveCmd.Flags().StringVar(&flagFirstGuess, "first-guess", "", "use this opening guess instead of computing one")

	playCmd.Flags().BoolVar(&flagDaily, "daily", false, "play the deterministic word of the day")
	playCmd.Flags().BoolVar(&flagHint, "hint", false, "show the recommender's suggestion each turn")

	benchCmd.Flags().StringVar(&flagSecret, "secret", "", "simulate only this secret word")
	benchCmd.Flags().StringVar(&flagFirstGuess, "first-guess", "", "use this opening guess instead of computing one")
	benchCmd.Flags().IntVar(&flagLimit, "limit", 0, "simulate at most this many secrets (0 = all)")

	wordsImportCmd.Flags().StringVar(&flagKind, "kind", string(wordstore.KindAnswer), "list kind: answer or allowed")
	wordsCmd.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (defaults to words.dbPath)")

	wordsCmd.AddCommand(wordsImportCmd, wordsStatsCmd)
	rootCmd.AddCommand(solveCmd, playCmd, benchCmd, wordsCmd)
}

// loadLexicon builds the Lexicon from the configured source: the SQLite
// store when words.dbPath is set, otherwise text files or embedded
// defaults.
func loadLexicon(ctx context.Context) (*words.Lexicon, error) {
	if cfg.Words.DBPath != "" {
		store, err := wordstore.Open(cfg.Words.DBPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		answers, err := store.Load(ctx, wordstore.KindAnswer)
		if err != nil {
			return nil, err
		}
		allowed, err := store.Load(ctx, wordstore.KindAllowed)
		if err != nil {
			return nil, err
		}
		lex, err := words.New(answers, allowed, cfg.Words.Length)
		if err != nil {
			return nil, fmt.Errorf("word store %s: %w", cfg.Words.DBPath, err)
		}
		return lex, nil
	}
	return words.Load(cfg.Words.AnswersFile, cfg.Words.AllowedFile, cfg.Words.Length)
}

// dbPath resolves the word store path from flag then config.
func dbPath() (string, error) {
	if flagDB != "" {
		return flagDB, nil
	}
	if cfg.Words.DBPath != "" {
		return cfg.Words.DBPath, nil
	}
	return "", fmt.Errorf("no database path: set --db or words.dbPath")
}
