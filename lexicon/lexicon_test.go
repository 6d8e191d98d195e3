package lexicon

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/marigold-games/countdown/tiles"
)

func testDict() *Dictionary {
	return NewDictionary([]string{
		"cat", "cart", "crate", "trace", "react", "ate", "tea", "eat",
		"quiz", "jazz", "ox", "senorita", "notaries",
	})
}

func testOracle() *Oracle {
	return NewOracle(testDict(), tiles.EnglishLetterDistribution())
}

func TestScanDictionaryFilters(t *testing.T) {
	is := is.New(t)
	input := strings.Join([]string{
		"Cat", "a", "it's", "onomatopoeically", "  dog  ", " démodé", "CRATE",
	}, "\n")
	d, err := ScanDictionary(strings.NewReader(input))
	is.NoErr(err)
	is.Equal(d.Len(), 3) // cat, dog, crate survive
	is.True(d.HasWord("cat"))
	is.True(d.HasWord("dog"))
	is.True(d.HasWord("CRATE"))
	is.True(!d.HasWord("a"))                // too short
	is.True(!d.HasWord("onomatopoeically")) // too long
	is.True(!d.HasWord("it's"))             // not alphabetic
}

func TestHasWordNormalizes(t *testing.T) {
	is := is.New(t)
	d := testDict()
	is.True(d.HasWord(" CaT "))
	is.True(!d.HasWord("dog"))
}

func TestCanMake(t *testing.T) {
	is := is.New(t)
	avail := []rune("crateqz")
	is.True(CanMake("crate", avail))
	is.True(CanMake("cat", avail))
	is.True(CanMake("CAT", avail))
	is.True(!CanMake("cattle", avail))
	is.True(!CanMake("jazz", avail)) // only one z available
	is.True(CanMake("", avail))      // empty multiset is a subset of anything
}

func TestCanMakeCountsRepeats(t *testing.T) {
	is := is.New(t)
	is.True(!CanMake("zz", []rune("z")))
	is.True(CanMake("zz", []rune("zz")))
}

func TestFindBestWord(t *testing.T) {
	is := is.New(t)
	o := testOracle()
	r := rand.New(rand.NewSource(1))
	avail := []rune("tracexyz")

	cand, ok := o.FindBestWord(r, avail)
	is.True(ok)
	is.Equal(cand.Length, 5)
	// crate, trace, react all tie at length 5.
	is.Equal(cand.Alternatives, 2)
	is.True(CanMake(cand.Word, avail))
	is.True(len(cand.Word) <= len(avail))
}

func TestFindBestWordNoFeasible(t *testing.T) {
	is := is.New(t)
	o := testOracle()
	_, ok := o.FindBestWord(rand.New(rand.NewSource(1)), []rune("bbbb"))
	is.True(!ok)
}

func TestFindBestWordTieBreakVaries(t *testing.T) {
	is := is.New(t)
	o := testOracle()
	avail := []rune("trace")
	seen := map[string]bool{}
	for seed := int64(0); seed < 50; seed++ {
		cand, ok := o.FindBestWord(rand.New(rand.NewSource(seed)), avail)
		is.True(ok)
		seen[cand.Word] = true
	}
	// With three tied words and fifty seeds, more than one should appear.
	is.True(len(seen) > 1)
}

func TestFindRarestWord(t *testing.T) {
	is := is.New(t)
	o := testOracle()
	avail := []rune("quizcat")

	cand, ok := o.FindRarestWord(avail, "")
	is.True(ok)
	is.Equal(cand.Word, "quiz") // q and z dwarf everything else
	is.Equal(cand.Score, 22)

	cand, ok = o.FindRarestWord(avail, "quiz")
	is.True(ok)
	is.Equal(cand.Word, "cat")
}

func TestFindRarestWordDeterministicTieBreak(t *testing.T) {
	is := is.New(t)
	o := testOracle()
	// ate, eat, tea all score 3 and are feasible; lexicographically
	// smallest wins.
	cand, ok := o.FindRarestWord([]rune("aet"), "")
	is.True(ok)
	is.Equal(cand.Word, "ate")
	is.Equal(cand.Alternatives, 2)
}

func TestConundrumWords(t *testing.T) {
	is := is.New(t)
	o := testOracle()
	words := o.ConundrumWords(8)
	is.Equal(words, []string{"notaries", "senorita"})
	is.Equal(len(o.ConundrumWords(12)), 0)
}

func TestEasyConundrumWords(t *testing.T) {
	is := is.New(t)
	o := testOracle()
	// senorita/notaries use only plentiful tiles; quiz and jazz do not.
	is.Equal(o.EasyConundrumWords(8), []string{"notaries", "senorita"})
	is.Equal(len(o.EasyConundrumWords(4)), 0)
}
