package lexicon

import (
	"math/rand"

	"github.com/samber/lo"

	"github.com/marigold-games/countdown/tiles"
)

// minRareLength is the shortest word the rarest-word search considers;
// two-letter words are never interesting reveals.
const minRareLength = 3

// A WordCandidate is the result of a dictionary search.
type WordCandidate struct {
	Word   string
	Length int
	Score  int
	// Alternatives counts the other words that tied the search criterion.
	Alternatives int
}

// An Oracle answers word questions against one dictionary and one letter
// distribution. It is read-only and safe for concurrent use; the random
// source is passed per call so tests can fix seeds.
type Oracle struct {
	dict *Dictionary
	dist *tiles.LetterDistribution
}

func NewOracle(dict *Dictionary, dist *tiles.LetterDistribution) *Oracle {
	return &Oracle{dict: dict, dist: dist}
}

func (o *Oracle) Dictionary() *Dictionary {
	return o.dict
}

// FindBestWord returns a longest dictionary word feasible from the
// available letters. Ties at the maximum length are broken uniformly at
// random so no fixed dictionary favorite wins every round.
func (o *Oracle) FindBestWord(r *rand.Rand, available []rune) (WordCandidate, bool) {
	best := 0
	for _, w := range o.dict.sorted {
		if len(w) > best && len(w) <= len(available) && CanMake(w, available) {
			best = len(w)
		}
	}
	if best == 0 {
		return WordCandidate{}, false
	}
	tied := lo.Filter(o.dict.sorted, func(w string, _ int) bool {
		return len(w) == best && CanMake(w, available)
	})
	chosen := tied[r.Intn(len(tied))]
	return WordCandidate{
		Word:         chosen,
		Length:       best,
		Score:        o.dist.WordScore(chosen),
		Alternatives: len(tied) - 1,
	}, true
}

// FindRarestWord returns the feasible word (length ≥ 3, excluding exclude)
// with the highest summed letter value. Ties break to the
// lexicographically smallest word, which the sorted scan yields for free.
func (o *Oracle) FindRarestWord(available []rune, exclude string) (WordCandidate, bool) {
	var best WordCandidate
	found := false
	for _, w := range o.dict.sorted {
		if len(w) < minRareLength || w == exclude || len(w) > len(available) {
			continue
		}
		if !CanMake(w, available) {
			continue
		}
		score := o.dist.WordScore(w)
		if !found || score > best.Score {
			best = WordCandidate{Word: w, Length: len(w), Score: score}
			found = true
		} else if score == best.Score {
			best.Alternatives++
		}
	}
	return best, found
}

// ConundrumWords returns every dictionary word of exactly the given
// length, in lexicographic order.
func (o *Oracle) ConundrumWords(length int) []string {
	return lo.Filter(o.dict.sorted, func(w string, _ int) bool {
		return len(w) == length
	})
}

// EasyConundrumWords restricts ConundrumWords to words spelled entirely
// from plentiful tiles (distribution count of 4 or more), a gentler
// difficulty tier.
func (o *Oracle) EasyConundrumWords(length int) []string {
	return lo.Filter(o.dict.sorted, func(w string, _ int) bool {
		if len(w) != length {
			return false
		}
		for _, l := range w {
			if o.dist.Count(l) < 4 {
				return false
			}
		}
		return true
	})
}
