// Package lexicon provides a small embedded word list standing in for the
// NLTK corpus acquisition the original chatbot tool used
// (nltk.corpus.words) — a live download is out of scope here, so the list
// ships inside the binary via go:embed.
package lexicon

import (
	_ "embed"
	"math/rand"
	"strings"
)

//go:embed words.txt
var wordsFile string

// Lexicon is a fixed, in-memory word list.
type Lexicon struct {
	words []string
}

// Load parses the embedded word list.
func Load() *Lexicon {
	lines := strings.Split(strings.TrimSpace(wordsFile), "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		w := strings.TrimSpace(line)
		if w != "" {
			words = append(words, w)
		}
	}
	return &Lexicon{words: words}
}

// Sample draws n words with replacement, mirroring
// random.choices(words.words(), k=n_words) from the original tool.
func (l *Lexicon) Sample(n int) []string {
	if len(l.words) == 0 || n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = l.words[rand.Intn(len(l.words))]
	}
	return out
}

// Len reports how many distinct words the lexicon holds.
func (l *Lexicon) Len() int {
	return len(l.words)
}
