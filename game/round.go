package game

import (
	"github.com/marigold-games/countdown/lexicon"
	"github.com/marigold-games/countdown/score"
	"github.com/marigold-games/countdown/solver"
)

// RoundType tags the closed round variant.
type RoundType string

const (
	RoundLetters   RoundType = "letters"
	RoundNumbers   RoundType = "numbers"
	RoundConundrum RoundType = "conundrum"
)

// Phase is a round's lifecycle stage. It only moves forward:
// picking → playing → scored.
type Phase string

const (
	PhasePicking Phase = "picking"
	PhasePlaying Phase = "playing"
	PhaseScored  Phase = "scored"
)

func (p Phase) ordinal() int {
	switch p {
	case PhasePicking:
		return 0
	case PhasePlaying:
		return 1
	default:
		return 2
	}
}

// MaxLetters is how many letters a letters round draws.
const MaxLetters = 9

// ConundrumLives is each team's starting lives in lives mode.
const ConundrumLives = 5

// A Round is one round of the game: a tagged variant over the three round
// types. Exactly one of the type-specific fields is non-nil, matching
// Type. Results exist if and only if Phase is scored.
type Round struct {
	Type  RoundType `json:"type"`
	Phase Phase     `json:"phase"`

	Letters   *LettersRound   `json:"letters,omitempty"`
	Numbers   *NumbersRound   `json:"numbers,omitempty"`
	Conundrum *ConundrumRound `json:"conundrum,omitempty"`
}

// LettersRound carries the letters-round state: up to nine drawn letters,
// then per-team results and the dictionary reveal once scored.
type LettersRound struct {
	Drawn   []rune                         `json:"-"`
	Results map[string]*score.LettersEntry `json:"results,omitempty"`
	Reveal  *Reveal                        `json:"reveal,omitempty"`
}

// DrawnLetters returns the drawn letters as a string, for display.
func (lr *LettersRound) DrawnLetters() string {
	return string(lr.Drawn)
}

// A Reveal is the post-round dictionary analysis shown to players: the
// best feasible word and the rarest one.
type Reveal struct {
	Best             *lexicon.WordCandidate `json:"best_word,omitempty"`
	Rarest           *lexicon.WordCandidate `json:"rarest_word,omitempty"`
	AvailableLetters string                 `json:"available_letters"`
}

// NumbersRound carries the numbers-round state.
type NumbersRound struct {
	Selected     []int                          `json:"numbers"`
	Target       int                            `json:"target"`
	LargeCount   int                            `json:"large_count"`
	Results      map[string]*score.NumbersEntry `json:"results,omitempty"`
	BestSolution *solver.Solution               `json:"best_solution,omitempty"`
}

// ConundrumRound carries the conundrum state. Answer is the true word; the
// hosting layer must strip it from anything a non-host view sees (see
// Session.PublicSnapshot).
type ConundrumRound struct {
	Answer    string         `json:"answer,omitempty"`
	Anagram   string         `json:"anagram"`
	LivesMode bool           `json:"lives_mode"`
	Lives     map[string]int `json:"lives,omitempty"`
	SolvedBy  string         `json:"solved_by,omitempty"`
	Results   map[string]int `json:"results,omitempty"`
}

// advance moves the round's phase forward. Regressions are programming
// errors surfaced as round-state errors.
func (r *Round) advance(to Phase) error {
	if to.ordinal() < r.Phase.ordinal() {
		return errorf(RoundState, "cannot move %s round from %s back to %s",
			r.Type, r.Phase, to)
	}
	r.Phase = to
	return nil
}

// requirePhase rejects operations arriving in the wrong lifecycle stage.
func (r *Round) requirePhase(p Phase) error {
	if r.Phase != p {
		return errorf(RoundState, "%s round is %s, not %s", r.Type, r.Phase, p)
	}
	return nil
}
