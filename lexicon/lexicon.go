// Package lexicon holds the dictionary and the word analysis used by the
// letters and conundrum rounds: membership checks, multiset feasibility
// against the drawn letters, and best/rarest word searches.
package lexicon

import (
	"bufio"
	"io"
	"sort"
	"strings"
)

const (
	MinWordLength = 2
	MaxWordLength = 15
)

// A Dictionary is an immutable set of lowercase alphabetic words. It is
// supplied once at startup and never mutated; concurrent reads are safe.
type Dictionary struct {
	words  map[string]bool
	sorted []string
}

// ScanDictionary reads one word per line, lowercases, and keeps only
// alphabetic words of legal length.
func ScanDictionary(r io.Reader) (*Dictionary, error) {
	words := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := Normalize(scanner.Text())
		if len(w) < MinWordLength || len(w) > MaxWordLength || !isAlpha(w) {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewDictionary(words), nil
}

// NewDictionary builds a dictionary from a word list. Words are normalized
// and deduplicated; callers supplying raw files should prefer
// ScanDictionary, which also filters length and alphabet.
func NewDictionary(words []string) *Dictionary {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[Normalize(w)] = true
	}
	sorted := make([]string, 0, len(set))
	for w := range set {
		sorted = append(sorted, w)
	}
	sort.Strings(sorted)
	return &Dictionary{words: set, sorted: sorted}
}

// HasWord is a case- and whitespace-normalized membership test.
func (d *Dictionary) HasWord(word string) bool {
	return d.words[Normalize(word)]
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns every word in lexicographic order. The slice is shared;
// callers must not modify it.
func (d *Dictionary) Words() []string {
	return d.sorted
}

// Normalize lowercases and trims a raw submitted word.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

func isAlpha(w string) bool {
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// CanMake reports whether the word's letter multiset is a sub-multiset of
// the available letters: each letter used no more times than it was drawn.
func CanMake(word string, available []rune) bool {
	counts := map[rune]int{}
	for _, l := range available {
		counts[toLowerRune(l)]++
	}
	for _, l := range Normalize(word) {
		counts[l]--
		if counts[l] < 0 {
			return false
		}
	}
	return true
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
