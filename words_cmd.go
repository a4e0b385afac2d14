// words_cmd.go
//
// Word store management: import text word lists into SQLite and inspect
// the stored counts. Imported entries pass the same boundary validation
// as file-loaded lexicons.

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/felix-clark/wordle/internal/words"
	"github.com/felix-clark/wordle/internal/wordstore"
)

func runWordsImport(cmd *cobra.Command, args []string) error {
	kind := wordstore.Kind(flagKind)
	if kind != wordstore.KindAnswer && kind != wordstore.KindAllowed {
		return fmt.Errorf("unknown kind %q (want answer or allowed)", flagKind)
	}
	path, err := dbPath()
	if err != nil {
		return err
	}

	list, err := words.ReadFile(args[0], cfg.Words.Length)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return fmt.Errorf("%s contains no valid %d-letter words", args[0], cfg.Words.Length)
	}

	store, err := wordstore.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	inserted, err := store.Import(cmd.Context(), kind, list)
	if err != nil {
		return err
	}
	fmt.Printf("imported %d new %s words (%d in file)\n", inserted, kind, len(list))
	return nil
}

func runWordsStats(cmd *cobra.Command, args []string) error {
	path, err := dbPath()
	if err != nil {
		return err
	}
	store, err := wordstore.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	answers, allowed, err := store.Counts(cmd.Context())
	if err != nil {
		return err
	}
	log.Debug().Str("db", path).Msg("word store opened")
	fmt.Printf("answers: %d\nallowed: %d\n", answers, allowed)
	return nil
}
