package tiles

import (
	_ "embed"
	"fmt"
	"math/rand"

	"gopkg.in/yaml.v3"
)

//go:embed data/english.yaml
var englishData []byte

// tileRecord is one row of the embedded distribution table.
type tileRecord struct {
	Letter string `yaml:"letter"`
	Count  int    `yaml:"count"`
	Value  int    `yaml:"value"`
	Vowel  bool   `yaml:"vowel"`
}

type distributionFile struct {
	Letters []tileRecord `yaml:"letters"`
}

// LetterDistribution encodes the tile distribution for the letters round:
// how many copies of each letter the pools hold, each letter's point value
// (used to rank word rarity), and which pool it belongs to.
type LetterDistribution struct {
	// order preserves the table's letter order so bag construction is
	// deterministic for a fixed random seed.
	order     []rune
	counts    map[rune]int
	values    map[rune]int
	vowels    map[rune]bool
	numVowels int
	numOthers int
}

// ParseLetterDistribution reads a YAML distribution table.
func ParseLetterDistribution(data []byte) (*LetterDistribution, error) {
	var df distributionFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parsing letter distribution: %w", err)
	}
	ld := &LetterDistribution{
		counts: make(map[rune]int),
		values: make(map[rune]int),
		vowels: make(map[rune]bool),
	}
	for _, rec := range df.Letters {
		if len([]rune(rec.Letter)) != 1 {
			return nil, fmt.Errorf("bad letter %q in distribution", rec.Letter)
		}
		l := []rune(rec.Letter)[0]
		ld.order = append(ld.order, l)
		ld.counts[l] = rec.Count
		ld.values[l] = rec.Value
		ld.vowels[l] = rec.Vowel
		if rec.Vowel {
			ld.numVowels += rec.Count
		} else {
			ld.numOthers += rec.Count
		}
	}
	return ld, nil
}

// EnglishLetterDistribution returns the standard English distribution.
func EnglishLetterDistribution() *LetterDistribution {
	ld, err := ParseLetterDistribution(englishData)
	if err != nil {
		// The embedded table is part of the build; failing to parse it is
		// a programming error, not a runtime condition.
		panic(err)
	}
	return ld
}

// Count returns how many copies of the given letter the pools start with.
func (ld *LetterDistribution) Count(l rune) int {
	return ld.counts[l]
}

// Score gives the point value of the given letter. Letters outside the
// distribution score 0.
func (ld *LetterDistribution) Score(l rune) int {
	return ld.values[l]
}

// IsVowel reports whether the letter draws from the vowel pool.
func (ld *LetterDistribution) IsVowel(l rune) bool {
	return ld.vowels[l]
}

// WordScore returns the summed letter values of a word.
func (ld *LetterDistribution) WordScore(word string) int {
	score := 0
	for _, l := range word {
		score += ld.Score(l)
	}
	return score
}

// NumVowels returns the total number of vowel tiles.
func (ld *LetterDistribution) NumVowels() int { return ld.numVowels }

// NumConsonants returns the total number of consonant tiles.
func (ld *LetterDistribution) NumConsonants() int { return ld.numOthers }

// MakeVowelBag builds a fresh vowel pool.
func (ld *LetterDistribution) MakeVowelBag(r *rand.Rand) *LetterBag {
	return ld.makeBag(true, r)
}

// MakeConsonantBag builds a fresh consonant pool.
func (ld *LetterDistribution) MakeConsonantBag(r *rand.Rand) *LetterBag {
	return ld.makeBag(false, r)
}

func (ld *LetterDistribution) makeBag(vowels bool, r *rand.Rand) *LetterBag {
	tiles := []rune{}
	for _, l := range ld.order {
		if ld.vowels[l] != vowels {
			continue
		}
		for i := 0; i < ld.counts[l]; i++ {
			tiles = append(tiles, l)
		}
	}
	bag := &LetterBag{tiles: tiles, randomizer: r}
	bag.Shuffle()
	return bag
}
