// Package solver searches for the best reachable value in a numbers round.
// It powers the post-round reveal: the expression hitting the target
// exactly, or failing that, the closest value any legal expression reaches.
package solver

import (
	"math"
	"strconv"

	"github.com/rs/zerolog/log"
)

// A Solution is the best expression the search found.
type Solution struct {
	Value      int    `json:"value"`
	Expression string `json:"expression"`
	Distance   int    `json:"distance"`
	Exact      bool   `json:"exact"`
}

type entry struct {
	value int
	expr  string
}

// Solve exhaustively combines the selected numbers pairwise with the four
// operations, keeping arithmetic integer-exact (no uneven division) and
// pruning no-op combinations (×1, ÷1, zero or negative subtraction). Each
// number is used at most once, and not every number need be used. The
// search is deterministic: among equally distant values the first found in
// scan order wins.
func Solve(numbers []int, target int) Solution {
	best := Solution{Distance: math.MaxInt}
	entries := make([]entry, 0, len(numbers))
	for _, n := range numbers {
		entries = append(entries, entry{value: n, expr: strconv.Itoa(n)})
	}
	search(entries, target, &best)
	best.Exact = best.Distance == 0
	log.Debug().Int("target", target).Int("value", best.Value).
		Str("expression", best.Expression).Msg("numbers solve")
	return best
}

// search recursively reduces the entry list by combining pairs. Returns
// true once the target is hit exactly, to cut the remaining search off.
func search(entries []entry, target int, best *Solution) bool {
	for _, e := range entries {
		d := abs(e.value - target)
		if d < best.Distance {
			best.Value = e.value
			best.Expression = e.expr
			best.Distance = d
			if d == 0 {
				return true
			}
		}
	}
	if len(entries) < 2 {
		return false
	}
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			a, b := entries[i], entries[j]
			if a.value < b.value {
				a, b = b, a
			}
			rest := make([]entry, 0, len(entries)-1)
			for k, e := range entries {
				if k != i && k != j {
					rest = append(rest, e)
				}
			}
			for _, c := range combine(a, b) {
				if search(append(rest, c), target, best) {
					return true
				}
			}
		}
	}
	return false
}

// combine yields the useful results of applying each operation to a pair,
// with a.value >= b.value. Commutative duplicates, identity operations,
// and non-positive or fractional results are pruned: anything they reach
// is reachable more cheaply without them.
func combine(a, b entry) []entry {
	out := []entry{
		{value: a.value + b.value, expr: "(" + a.expr + "+" + b.expr + ")"},
	}
	if diff := a.value - b.value; diff > 0 {
		out = append(out, entry{value: diff, expr: "(" + a.expr + "-" + b.expr + ")"})
	}
	if a.value != 1 && b.value != 1 {
		out = append(out, entry{value: a.value * b.value,
			expr: "(" + a.expr + "*" + b.expr + ")"})
	}
	if b.value > 1 && a.value%b.value == 0 {
		out = append(out, entry{value: a.value / b.value,
			expr: "(" + a.expr + "/" + b.expr + ")"})
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
