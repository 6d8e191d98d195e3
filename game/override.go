package game

import (
	"github.com/rs/zerolog/log"

	"github.com/marigold-games/countdown/lexicon"
	"github.com/marigold-games/countdown/score"
)

// OverrideWord retroactively marks a team's letters-round word as valid —
// the host vouching for a word the dictionary rejected. The team's base
// score becomes the word's length, the round's bonuses are re-derived over
// the full team set, and every cumulative score is rebuilt from the round
// history. Because the rebuild is a deterministic fold, applying the same
// override repeatedly cannot drift the totals (the second application
// fails on the already-valid word and changes nothing).
//
// The override targets the most recent letters round in history.
func (s *Session) OverrideWord(team string) (map[string]*score.LettersEntry, error) {
	if team == "" {
		return nil, errorf(UnknownTeam, "no team specified")
	}
	var target *LettersRound
	for i := len(s.history) - 1; i >= 0; i-- {
		if s.history[i].Type == RoundLetters {
			target = s.history[i].Letters
			break
		}
	}
	if target == nil || target.Results == nil {
		return nil, errorf(RoundState, "no letters round to override")
	}
	entry, ok := target.Results[team]
	if !ok {
		return nil, errorf(UnknownTeam, "team %q not found in round results", team)
	}
	if entry.Valid {
		return nil, errorf(RoundState, "word already valid")
	}
	if entry.Word == "" {
		return nil, errorf(EmptySubmission, "no word to override")
	}
	// The host can vouch for a word's validity, not for its letters. A
	// word the round's tiles could never spell stays rejected.
	if !lexicon.CanMake(entry.Word, target.Drawn) {
		return nil, errorf(UnmakeableWord,
			"word %q cannot be made from the drawn letters", entry.Word)
	}

	entry.Valid = true
	entry.Base = len(entry.Word)
	entry.Error = ""
	entry.ErrorKind = ""
	score.RecomputeLetters(target.Results)
	s.recomputeScores()
	log.Info().Str("team", team).Str("word", entry.Word).Msg("word override")
	return target.Results, nil
}
