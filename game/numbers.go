package game

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/marigold-games/countdown/eval"
	"github.com/marigold-games/countdown/score"
	"github.com/marigold-games/countdown/solver"
	"github.com/marigold-games/countdown/tiles"
)

// StartNumbersRound begins a numbers round in the picking phase.
func (s *Session) StartNumbersRound() *Round {
	r := &Round{
		Type:    RoundNumbers,
		Phase:   PhasePicking,
		Numbers: &NumbersRound{},
	}
	s.startRound(r)
	return r
}

// DrawRoundNumbers selects the round's six numbers (largeCount large
// cards, clamped to [0, 4]) and generates the target, moving the round to
// the playing phase.
func (s *Session) DrawRoundNumbers(largeCount int) (*NumbersRound, error) {
	r := s.current
	if r == nil || r.Type != RoundNumbers {
		return nil, errorf(RoundState, "no numbers round active")
	}
	if err := r.requirePhase(PhasePicking); err != nil {
		return nil, err
	}

	selected, clamped := s.deck.Draw(largeCount)
	r.Numbers.Selected = selected
	r.Numbers.LargeCount = clamped
	r.Numbers.Target = tiles.Target(s.randSource)
	if err := r.advance(PhasePlaying); err != nil {
		return nil, err
	}
	log.Debug().Ints("numbers", selected).Int("target", r.Numbers.Target).
		Msg("numbers draw")
	return r.Numbers, nil
}

// SubmitNumbers scores one batch of numbers-round submissions, one raw
// expression per team. Every expression is verified against the round's
// selected numbers; a rejected expression zeroes only that team. Scoring
// computes the best reachable solution, freezes the round, and appends it
// to history.
func (s *Session) SubmitNumbers(submissions map[string]string) (map[string]*score.NumbersEntry, error) {
	r := s.current
	if r == nil || r.Type != RoundNumbers {
		return nil, errorf(RoundState, "no numbers round active")
	}
	if err := r.requirePhase(PhasePlaying); err != nil {
		return nil, err
	}
	target := r.Numbers.Target

	results := make(map[string]*score.NumbersEntry, len(s.teams))
	for _, team := range s.teams {
		raw := strings.TrimSpace(submissions[team])
		if raw == "" {
			results[team] = &score.NumbersEntry{
				Error:     "no answer",
				ErrorKind: string(EmptySubmission),
			}
			continue
		}
		v := eval.Verify(raw, r.Numbers.Selected)
		if !v.Valid {
			results[team] = &score.NumbersEntry{
				Expression: raw,
				Error:      v.Err.Detail,
				ErrorKind:  string(v.Err.Kind),
			}
			continue
		}
		diff := v.Result - target
		if diff < 0 {
			diff = -diff
		}
		results[team] = &score.NumbersEntry{
			Expression: raw,
			Valid:      true,
			Result:     v.Result,
			Diff:       diff,
			Score:      score.NumbersPoints(diff),
		}
	}
	for team, raw := range submissions {
		if !s.hasTeam(team) {
			results[team] = &score.NumbersEntry{
				Expression: strings.TrimSpace(raw),
				Error:      "unknown team",
				ErrorKind:  string(UnknownTeam),
			}
		}
	}

	best := solver.Solve(r.Numbers.Selected, target)
	r.Numbers.BestSolution = &best
	r.Numbers.Results = results
	if err := r.advance(PhaseScored); err != nil {
		return nil, err
	}
	s.finishRound()
	s.recomputeScores()
	log.Info().Int("target", target).Bool("solvable", best.Exact).
		Msg("numbers round scored")
	return results, nil
}
