package game

import (
	"github.com/rs/zerolog/log"

	"github.com/marigold-games/countdown/anagrammer"
	"github.com/marigold-games/countdown/config"
	"github.com/marigold-games/countdown/lexicon"
	"github.com/marigold-games/countdown/score"
)

// StartConundrum picks a conundrum answer of the configured length and
// scrambles it per the difficulty macro. Easy draws from the
// common-letters word pool; easy and medium use the gentler scramble that
// pins a few letters in place. The round starts directly in the playing
// phase: there is nothing to pick.
func (s *Session) StartConundrum() (*Round, error) {
	length := s.cfg.ConundrumLength
	var candidates []string
	if s.cfg.Macro == config.Easy {
		candidates = s.oracle.EasyConundrumWords(length)
	}
	if len(candidates) == 0 {
		candidates = s.oracle.ConundrumWords(length)
	}
	if len(candidates) == 0 {
		return nil, errorf(RoundState, "no %d-letter conundrum candidates", length)
	}
	word := candidates[s.randSource.Intn(len(candidates))]

	var anagram string
	if s.cfg.Macro == config.Hard {
		anagram = anagrammer.Scramble(s.randSource, word)
	} else {
		anagram = anagrammer.EasyScramble(s.randSource, word)
	}

	c := &ConundrumRound{
		Answer:    word,
		Anagram:   anagram,
		LivesMode: s.cfg.ConundrumLives,
	}
	if c.LivesMode {
		c.Lives = make(map[string]int, len(s.teams))
		for _, t := range s.teams {
			c.Lives[t] = ConundrumLives
		}
	}
	r := &Round{Type: RoundConundrum, Phase: PhasePlaying, Conundrum: c}
	s.startRound(r)
	log.Debug().Int("length", length).Bool("lives", c.LivesMode).
		Msg("conundrum started")
	return r, nil
}

// SolveConundrum ends the conundrum with the host declaring the winner
// (empty for nobody), awarding 10 winner-take-all points. The round
// freezes into history.
func (s *Session) SolveConundrum(winner string) (map[string]int, error) {
	r := s.current
	if r == nil || r.Type != RoundConundrum {
		return nil, errorf(RoundState, "no conundrum round active")
	}
	if err := r.requirePhase(PhasePlaying); err != nil {
		return nil, err
	}
	if winner != "" && !s.hasTeam(winner) {
		return nil, errorf(UnknownTeam, "unknown team %q", winner)
	}

	r.Conundrum.SolvedBy = winner
	r.Conundrum.Results = score.Conundrum(winner, s.teams)
	if err := r.advance(PhaseScored); err != nil {
		return nil, err
	}
	s.finishRound()
	s.recomputeScores()
	return r.Conundrum.Results, nil
}

// A BuzzResult reports one lives-mode guess.
type BuzzResult struct {
	Correct bool           `json:"correct"`
	Answer  string         `json:"answer,omitempty"`
	Lives   map[string]int `json:"lives"`
	Results map[string]int `json:"results,omitempty"`
}

// Buzz handles a lives-mode guess. A wrong guess costs the team one life
// (floor 0); a team out of lives may not guess at all and the round state
// is untouched. A correct guess by a team with lives remaining ends the
// round immediately: 10 points, everyone's lives frozen as they stand.
func (s *Session) Buzz(team, guess string) (*BuzzResult, error) {
	r := s.current
	if r == nil || r.Type != RoundConundrum {
		return nil, errorf(RoundState, "no conundrum round active")
	}
	if err := r.requirePhase(PhasePlaying); err != nil {
		return nil, err
	}
	c := r.Conundrum
	if !c.LivesMode {
		return nil, errorf(LivesModeDisabled, "lives mode not enabled")
	}
	if !s.hasTeam(team) {
		return nil, errorf(UnknownTeam, "unknown team %q", team)
	}
	if c.Lives[team] <= 0 {
		return nil, errorf(NoLivesRemaining, "team %q has no lives remaining", team)
	}
	guess = lexicon.Normalize(guess)
	if guess == "" {
		return nil, errorf(EmptySubmission, "no guess submitted")
	}

	if guess != c.Answer {
		c.Lives[team]--
		log.Debug().Str("team", team).Int("lives", c.Lives[team]).
			Msg("wrong conundrum guess")
		return &BuzzResult{Lives: copyLives(c.Lives)}, nil
	}

	c.SolvedBy = team
	c.Results = score.Conundrum(team, s.teams)
	if err := r.advance(PhaseScored); err != nil {
		return nil, err
	}
	s.finishRound()
	s.recomputeScores()
	return &BuzzResult{
		Correct: true,
		Answer:  c.Answer,
		Lives:   copyLives(c.Lives),
		Results: c.Results,
	}, nil
}

func copyLives(lives map[string]int) map[string]int {
	out := make(map[string]int, len(lives))
	for t, n := range lives {
		out[t] = n
	}
	return out
}
