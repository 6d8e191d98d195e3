// Package game drives a single session of the party game: tile draws,
// submission verification, scoring, and round history. All methods mutate
// explicit session state and none perform I/O; the caller is responsible
// for serializing mutating calls on one session (hold a session-scoped
// lock when hosting behind a concurrent server).
package game

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/marigold-games/countdown/config"
	"github.com/marigold-games/countdown/lexicon"
	"github.com/marigold-games/countdown/tiles"
)

func seededRandSource() (int64, *rand.Rand) {
	seed := int64(frand.Uint64n(math.MaxInt64))
	return seed, rand.New(rand.NewSource(seed))
}

// A Session is one game's worth of state: teams, cumulative scores, the
// depleting tile pools, the round in progress, and the history of scored
// rounds. Build one with NewSession and replace it wholesale to reset.
type Session struct {
	teams  []string
	scores map[string]int
	cfg    *config.Config
	oracle *lexicon.Oracle
	dist   *tiles.LetterDistribution

	vowels     *tiles.LetterBag
	consonants *tiles.LetterBag
	deck       *tiles.NumberDeck

	current    *Round
	history    []*Round
	roundIndex int

	randSeed   int64
	randSource *rand.Rand
}

// NewSession starts a fresh game for the given teams.
func NewSession(teams []string, cfg *config.Config, oracle *lexicon.Oracle) (*Session, error) {
	if len(teams) == 0 {
		return nil, errorf(UnknownTeam, "no teams provided")
	}
	seen := map[string]bool{}
	for _, t := range teams {
		if t == "" || seen[t] {
			return nil, errorf(UnknownTeam, "bad team name %q", t)
		}
		seen[t] = true
	}
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Session{
		teams:  append([]string{}, teams...),
		scores: make(map[string]int, len(teams)),
		cfg:    cfg,
		oracle: oracle,
		dist:   tiles.EnglishLetterDistribution(),
	}
	for _, t := range teams {
		s.scores[t] = 0
	}
	s.randSeed, s.randSource = seededRandSource()
	log.Debug().Msgf("Random seed for this session was %v", s.randSeed)
	s.resetPools()
	return s, nil
}

// SeedRandom replaces the session's random source, for deterministic
// tests. The pools are rebuilt so their contents reflect the new seed.
func (s *Session) SeedRandom(seed int64) {
	s.randSeed = seed
	s.randSource = rand.New(rand.NewSource(seed))
	s.resetPools()
}

func (s *Session) resetPools() {
	s.vowels = s.dist.MakeVowelBag(s.randSource)
	s.consonants = s.dist.MakeConsonantBag(s.randSource)
	s.deck = tiles.NewNumberDeck(s.randSource)
}

func (s *Session) Teams() []string {
	return append([]string{}, s.teams...)
}

func (s *Session) hasTeam(team string) bool {
	for _, t := range s.teams {
		if t == team {
			return true
		}
	}
	return false
}

// Scores returns a copy of the cumulative score map.
func (s *Session) Scores() map[string]int {
	out := make(map[string]int, len(s.scores))
	for t, sc := range s.scores {
		out[t] = sc
	}
	return out
}

// CurrentRound returns the round in progress, or nil between rounds.
func (s *Session) CurrentRound() *Round {
	return s.current
}

// History returns the scored rounds in play order. The slice is shared;
// callers treat it as read-only.
func (s *Session) History() []*Round {
	return s.history
}

// Config returns the session's settings.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// startRound replaces the current round. An unscored round in progress is
// abandoned, which the host can do freely; it never reaches history.
func (s *Session) startRound(r *Round) {
	if s.current != nil && s.current.Phase != PhaseScored {
		log.Warn().Str("type", string(s.current.Type)).
			Str("phase", string(s.current.Phase)).Msg("abandoning unscored round")
	}
	s.current = r
}

// finishRound freezes the scored round into history.
func (s *Session) finishRound() {
	s.history = append(s.history, s.current)
}

// NextRound clears the current round and advances the planned round
// sequence. finished reports whether the plan is exhausted; a session
// with no planned sequence never finishes.
func (s *Session) NextRound() (index int, finished bool) {
	seq := s.cfg.RoundSequence
	if s.roundIndex < len(seq) {
		s.roundIndex++
	}
	s.current = nil
	return s.roundIndex, len(seq) > 0 && s.roundIndex >= len(seq)
}

// RoundIndex is the position in the planned round sequence.
func (s *Session) RoundIndex() int {
	return s.roundIndex
}

// recomputeScores re-derives every cumulative score as a fold over the
// round history. Override handling relies on this being the only way
// totals are rebuilt: applying it any number of times yields the same
// scores.
func (s *Session) recomputeScores() {
	scores := make(map[string]int, len(s.teams))
	for _, t := range s.teams {
		scores[t] = 0
	}
	for _, r := range s.history {
		switch r.Type {
		case RoundLetters:
			for t, e := range r.Letters.Results {
				if _, known := scores[t]; known {
					scores[t] += e.Total
				}
			}
		case RoundNumbers:
			for t, e := range r.Numbers.Results {
				if _, known := scores[t]; known {
					scores[t] += e.Score
				}
			}
		case RoundConundrum:
			for t, pts := range r.Conundrum.Results {
				if _, known := scores[t]; known {
					scores[t] += pts
				}
			}
		}
	}
	s.scores = scores
}

// A Snapshot is a view of session state for the hosting layer to
// serialize.
type Snapshot struct {
	Teams        []string       `json:"teams"`
	Scores       map[string]int `json:"scores"`
	CurrentRound *Round         `json:"current_round,omitempty"`
	History      []*Round       `json:"round_history"`
}

// Snapshot returns the full internal state, including any conundrum
// answer. Host views only.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Teams:        s.Teams(),
		Scores:       s.Scores(),
		CurrentRound: s.current,
		History:      s.history,
	}
}

// PublicSnapshot is the player-safe view: the in-progress conundrum's
// answer is stripped. Scored rounds keep their answers, which are public
// once revealed.
func (s *Session) PublicSnapshot() Snapshot {
	snap := s.Snapshot()
	if snap.CurrentRound != nil && snap.CurrentRound.Type == RoundConundrum &&
		snap.CurrentRound.Phase != PhaseScored {
		redacted := *snap.CurrentRound
		c := *redacted.Conundrum
		c.Answer = ""
		redacted.Conundrum = &c
		snap.CurrentRound = &redacted
	}
	return snap
}
