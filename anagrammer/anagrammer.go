// Package anagrammer scrambles conundrum answers. A scramble must differ
// from the original word; after a bounded number of random attempts the
// generators fall back deterministically rather than loop forever on
// pathological inputs (single letters, repeated-letter words).
package anagrammer

import "math/rand"

// maxAttempts bounds the random permutation retries before falling back.
const maxAttempts = 100

// easyFixedPositions is how many letters the easy scramble leaves in place.
const easyFixedPositions = 3

// Scramble returns a uniformly random permutation of the word's letters
// that differs from the word itself. If no differing permutation shows up
// within the retry bound, it returns the exact reverse of the letters.
func Scramble(r *rand.Rand, word string) string {
	letters := []rune(word)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		r.Shuffle(len(letters), func(i, j int) {
			letters[i], letters[j] = letters[j], letters[i]
		})
		if s := string(letters); s != word {
			return s
		}
	}
	return reverse([]rune(word))
}

// EasyScramble is the kinder scramble: up to three randomly chosen
// positions keep their original letter and only the rest are permuted.
// If the movable letters never produce a differing word within the retry
// bound, it falls back to a full Scramble.
func EasyScramble(r *rand.Rand, word string) string {
	letters := []rune(word)
	n := len(letters)
	keep := map[int]bool{}
	for _, idx := range r.Perm(n) {
		if len(keep) == easyFixedPositions {
			break
		}
		keep[idx] = true
	}
	movable := []int{}
	for i := 0; i < n; i++ {
		if !keep[i] {
			movable = append(movable, i)
		}
	}
	chars := make([]rune, len(movable))
	for i, idx := range movable {
		chars[i] = letters[idx]
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		r.Shuffle(len(chars), func(i, j int) {
			chars[i], chars[j] = chars[j], chars[i]
		})
		candidate := make([]rune, n)
		copy(candidate, letters)
		for i, idx := range movable {
			candidate[idx] = chars[i]
		}
		if s := string(candidate); s != word {
			return s
		}
	}
	return Scramble(r, word)
}

func reverse(letters []rune) string {
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return string(letters)
}
