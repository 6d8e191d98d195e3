package tiles

import (
	"math/rand"
	"testing"

	"github.com/matryer/is"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestEnglishDistributionTotals(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	is.Equal(ld.NumVowels(), 67)
	is.Equal(ld.NumConsonants(), 74)
	is.Equal(ld.Count('e'), 21)
	is.Equal(ld.Count('z'), 1)
	is.True(ld.IsVowel('a'))
	is.True(!ld.IsVowel('t'))
}

func TestWordScore(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	is.Equal(ld.WordScore("quiz"), 22) // q10 u1 i1 z10
	is.Equal(ld.WordScore("tea"), 3)
	// Letters outside the distribution contribute nothing.
	is.Equal(ld.WordScore("é"), 0)
}

func TestLetterScore(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	is.Equal(ld.Score('q'), 10)
	is.Equal(ld.Score('e'), 1)
	is.Equal(ld.Score('é'), 0)
}

func TestBagDrawDepletes(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	bag := ld.MakeVowelBag(testRand())
	is.Equal(bag.TilesRemaining(), 67)

	seen := make(map[rune]int)
	for bag.TilesRemaining() > 0 {
		l, err := bag.Draw()
		is.NoErr(err)
		seen[l]++
	}
	// Every tile comes out exactly once.
	for _, l := range "aeiou" {
		is.Equal(seen[l], ld.Count(l))
	}
	_, err := bag.Draw()
	is.True(err != nil) // drained bag refuses to draw
}

func TestConsonantBagHasNoVowels(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	bag := ld.MakeConsonantBag(testRand())
	for bag.TilesRemaining() > 0 {
		l, err := bag.Draw()
		is.NoErr(err)
		is.True(!ld.IsVowel(l))
	}
}

func TestBagSetRandomizer(t *testing.T) {
	is := is.New(t)
	a := &LetterBag{tiles: []rune("abcdefgh"), randomizer: rand.New(rand.NewSource(1))}
	b := &LetterBag{tiles: []rune("abcdefgh"), randomizer: rand.New(rand.NewSource(2))}
	// Identical replacement sources make the draw sequences identical.
	a.SetRandomizer(rand.New(rand.NewSource(5)))
	b.SetRandomizer(rand.New(rand.NewSource(5)))
	for a.TilesRemaining() > 0 {
		la, err := a.Draw()
		is.NoErr(err)
		lb, err := b.Draw()
		is.NoErr(err)
		is.Equal(la, lb)
	}
}

func TestDeckSetRandomizer(t *testing.T) {
	is := is.New(t)
	a := NewNumberDeck(rand.New(rand.NewSource(1)))
	b := NewNumberDeck(rand.New(rand.NewSource(2)))
	a.SetRandomizer(rand.New(rand.NewSource(5)))
	b.SetRandomizer(rand.New(rand.NewSource(5)))
	sa, _ := a.Draw(2)
	sb, _ := b.Draw(2)
	is.Equal(sa, sb)
}

func TestNumberDeckDraw(t *testing.T) {
	is := is.New(t)
	deck := NewNumberDeck(testRand())
	selected, largeCount := deck.Draw(2)
	is.Equal(len(selected), 6)
	is.Equal(largeCount, 2)
	is.Equal(deck.LargeRemaining(), 2)
	is.Equal(deck.SmallRemaining(), 16)

	nLarge := 0
	for _, n := range selected {
		if n >= 25 {
			nLarge++
		}
	}
	is.Equal(nLarge, 2)
}

func TestNumberDeckClampsLargeCount(t *testing.T) {
	is := is.New(t)

	deck := NewNumberDeck(testRand())
	selected, largeCount := deck.Draw(9)
	is.Equal(len(selected), 6)
	is.Equal(largeCount, 4)
	is.Equal(deck.LargeRemaining(), 0)

	deck = NewNumberDeck(testRand())
	selected, largeCount = deck.Draw(-3)
	is.Equal(len(selected), 6)
	is.Equal(largeCount, 0)
	is.Equal(deck.LargeRemaining(), 4)
}

func TestTargetRange(t *testing.T) {
	is := is.New(t)
	r := testRand()
	for i := 0; i < 1000; i++ {
		target := Target(r)
		is.True(target >= 100 && target <= 999)
	}
}
