// Package score implements the per-round scoring rules: letters-round
// lengths with the gap bonus, the numbers-round distance tiers, and the
// winner-take-all conundrum.
package score

import "github.com/samber/lo"

// A LettersEntry is one team's letters-round result record.
type LettersEntry struct {
	Word  string `json:"word"`
	Valid bool   `json:"valid"`
	Base  int    `json:"base_score"`
	Bonus int    `json:"bonus"`
	Total int    `json:"total"`
	// Error carries the rejection reason for words that never reached
	// scoring (empty or unmakeable submissions), with its kind tag.
	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
}

// Letters scores a letters round. words maps team → normalized word (empty
// string for no submission). In strict mode accepted holds the words judged
// valid for this round; a nil accepted set means freeform mode, where every
// submitted word is trusted.
func Letters(words map[string]string, accepted map[string]bool) map[string]*LettersEntry {
	results := make(map[string]*LettersEntry, len(words))
	for team, word := range words {
		valid := word != "" && (accepted == nil || accepted[word])
		base := 0
		if valid {
			base = len(word)
		}
		results[team] = &LettersEntry{Word: word, Valid: valid, Base: base}
	}
	RecomputeLetters(results)
	return results
}

// RecomputeLetters re-derives every bonus and total from the entries' Base
// fields. The top base score earns bonus = max(3, 3×(top − runnerUp)),
// where runnerUp is the highest base strictly below top (0 if none); teams
// tied at top each receive the full bonus. When top is 0 nobody scores.
// Override handling reuses this after editing a single entry's base.
func RecomputeLetters(results map[string]*LettersEntry) {
	bases := lo.Map(lo.Values(results), func(e *LettersEntry, _ int) int {
		return e.Base
	})
	if len(bases) == 0 {
		return
	}
	top := lo.Max(bases)
	if top == 0 {
		for _, e := range results {
			e.Bonus = 0
			e.Total = 0
		}
		return
	}
	runnerUp := 0
	for _, b := range bases {
		if b < top && b > runnerUp {
			runnerUp = b
		}
	}
	bonus := 3 * (top - runnerUp)
	if bonus < 3 {
		bonus = 3
	}
	for _, e := range results {
		e.Bonus = 0
		if e.Base == top {
			e.Bonus = bonus
		}
		e.Total = e.Base + e.Bonus
	}
}

// A NumbersEntry is one team's numbers-round result record.
type NumbersEntry struct {
	Expression string `json:"expression"`
	Valid      bool   `json:"valid"`
	Result     int    `json:"result"`
	Diff       int    `json:"diff"`
	Score      int    `json:"score"`
	Error      string `json:"error,omitempty"`
	ErrorKind  string `json:"error_kind,omitempty"`
}

// NumbersPoints converts distance from the target into points. Tiers are
// inclusive upper bounds, checked in ascending order.
func NumbersPoints(diff int) int {
	switch {
	case diff == 0:
		return 10
	case diff <= 5:
		return 7
	case diff <= 10:
		return 5
	case diff <= 20:
		return 3
	default:
		return 0
	}
}

// Conundrum awards 10 points to the solving team and 0 to everyone else.
// An empty winner means nobody solved it.
func Conundrum(winner string, teams []string) map[string]int {
	results := make(map[string]int, len(teams))
	for _, t := range teams {
		if t == winner {
			results[t] = 10
		} else {
			results[t] = 0
		}
	}
	return results
}
