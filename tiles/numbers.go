package tiles

import "math/rand"

// The two denominations of the numbers round.
var LargeNumbers = []int{25, 50, 75, 100}

// RoundSize is how many number cards a round always selects.
const RoundSize = 6

// MaxLarge caps how many large cards a selection may include.
const MaxLarge = 4

func smallNumbers() []int {
	small := make([]int, 0, 20)
	for i := 1; i <= 10; i++ {
		small = append(small, i, i)
	}
	return small
}

// A NumberDeck holds the two card decks for the numbers round: the four
// large cards and the twenty small cards (1 through 10, twice each).
// Like the letter bags, it only depletes until the session is reset.
type NumberDeck struct {
	large      []int
	small      []int
	randomizer *rand.Rand
}

func NewNumberDeck(r *rand.Rand) *NumberDeck {
	large := make([]int, len(LargeNumbers))
	copy(large, LargeNumbers)
	return &NumberDeck{large: large, small: smallNumbers(), randomizer: r}
}

func (d *NumberDeck) SetRandomizer(r *rand.Rand) {
	d.randomizer = r
}

// Draw selects a round's six numbers: largeCount large cards (clamped to
// [0, 4]) and 6−largeCount small cards, each sampled without replacement.
// Shuffling the whole deck and slicing off the front is equivalent to
// uniform sampling of the subset. Returns the selection and the clamped
// large count.
func (d *NumberDeck) Draw(largeCount int) ([]int, int) {
	if largeCount < 0 {
		largeCount = 0
	}
	if largeCount > MaxLarge {
		largeCount = MaxLarge
	}
	smallCount := RoundSize - largeCount

	d.randomizer.Shuffle(len(d.large), func(i, j int) {
		d.large[i], d.large[j] = d.large[j], d.large[i]
	})
	d.randomizer.Shuffle(len(d.small), func(i, j int) {
		d.small[i], d.small[j] = d.small[j], d.small[i]
	})

	selected := make([]int, 0, RoundSize)
	selected = append(selected, d.large[:largeCount]...)
	selected = append(selected, d.small[:smallCount]...)
	d.large = d.large[largeCount:]
	d.small = d.small[smallCount:]
	return selected, largeCount
}

func (d *NumberDeck) LargeRemaining() int { return len(d.large) }
func (d *NumberDeck) SmallRemaining() int { return len(d.small) }

// Target generates a numbers-round target, uniform in [100, 999].
func Target(r *rand.Rand) int {
	return 100 + r.Intn(900)
}
