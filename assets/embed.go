// assets/embed.go
//
// Embedded default word lists so the solver runs with no configuration:
//   - answers.txt: canonical answer vocabulary (one word per line).
//   - allowed.txt: extra valid guesses beyond the answers.
// Lines are trimmed and lowercased; blanks and #-comments are skipped.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// AnswersList returns the embedded answer vocabulary.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}

// AllowedList returns the embedded guess-only vocabulary (answers excluded).
func AllowedList() ([]string, error) {
	return readLines("allowed.txt")
}
