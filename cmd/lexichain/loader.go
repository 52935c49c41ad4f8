// Dictionary loading for the CLI: category word files on disk, with an
// embedded default dictionary as fallback. One word per line; blank
// lines and #-comments are skipped. Malformed words are filtered by
// the engine's length policy.
package main

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lexichain/lexichain/engine"
	"github.com/lexichain/lexichain/lexicon"
)

//go:embed default_words.txt
var embeddedWords string

// categoryFiles maps category tags to their conventional file names
// inside the words directory.
var categoryFiles = []struct {
	tag  lexicon.Category
	name string
}{
	{lexicon.General, "general_words.txt"},
	{lexicon.Science, "science_words.txt"},
	{lexicon.Biology, "biology_words.txt"},
	{lexicon.Physics, "physics_words.txt"},
	{lexicon.Education, "education_words.txt"},
}

// loadDictionary feeds the engine from dir's category files, or from
// the embedded default dictionary when dir is empty. Missing category
// files are skipped; a dir yielding no words at all is an error.
func loadDictionary(eng *engine.Engine, dir string) error {
	if dir == "" {
		n, err := eng.Load(splitLines(embeddedWords))
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("embedded dictionary is empty")
		}

		return nil
	}

	total := 0
	for _, cf := range categoryFiles {
		words, err := readWordFile(filepath.Join(dir, cf.name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}

			return err
		}
		n, err := eng.LoadCategory(cf.tag, words)
		if err != nil {
			return err
		}
		total += n
	}
	if total == 0 {
		return fmt.Errorf("no category word files found in %s", dir)
	}

	return nil
}

// readWordFile loads one word per line, skipping blanks and comments.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}

	return out, sc.Err()
}

// splitLines applies the same skipping rules to an embedded list.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		w := strings.TrimSpace(line)
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}

	return out
}
