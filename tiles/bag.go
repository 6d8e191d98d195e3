package tiles

import (
	"fmt"
	"math/rand"
)

// A LetterBag is a draw-without-replacement pool of letter tiles. A session
// holds one vowel bag and one consonant bag; neither regrows except by
// building a fresh bag at reset.
type LetterBag struct {
	tiles      []rune
	randomizer *rand.Rand
}

func (b *LetterBag) SetRandomizer(r *rand.Rand) {
	b.randomizer = r
}

// Draw removes one uniformly random tile from the bag and returns it.
func (b *LetterBag) Draw() (rune, error) {
	if len(b.tiles) == 0 {
		return 0, fmt.Errorf("tried to draw from an empty letter bag")
	}
	idx := b.randomizer.Intn(len(b.tiles))
	drawn := b.tiles[idx]
	b.tiles[idx] = b.tiles[len(b.tiles)-1]
	b.tiles = b.tiles[:len(b.tiles)-1]
	return drawn, nil
}

// Shuffle shuffles the bag.
func (b *LetterBag) Shuffle() {
	b.randomizer.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

func (b *LetterBag) TilesRemaining() int {
	return len(b.tiles)
}
