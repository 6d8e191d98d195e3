package game

import (
	"github.com/rs/zerolog/log"

	"github.com/marigold-games/countdown/lexicon"
	"github.com/marigold-games/countdown/score"
)

// LetterKind selects which pool a draw comes from.
type LetterKind string

const (
	Vowel     LetterKind = "vowel"
	Consonant LetterKind = "consonant"
)

// StartLettersRound begins a letters round in the picking phase.
func (s *Session) StartLettersRound() *Round {
	r := &Round{
		Type:    RoundLetters,
		Phase:   PhasePicking,
		Letters: &LettersRound{},
	}
	s.startRound(r)
	return r
}

// DrawLetter draws one tile from the requested pool into the current
// letters round. The ninth letter moves the round to the playing phase.
func (s *Session) DrawLetter(kind LetterKind) (rune, error) {
	r := s.current
	if r == nil || r.Type != RoundLetters {
		return 0, errorf(RoundState, "no letters round active")
	}
	if err := r.requirePhase(PhasePicking); err != nil {
		return 0, err
	}
	if len(r.Letters.Drawn) >= MaxLetters {
		return 0, errorf(RoundState, "already have %d letters", MaxLetters)
	}

	bag := s.consonants
	if kind == Vowel {
		bag = s.vowels
	}
	letter, err := bag.Draw()
	if err != nil {
		return 0, err
	}
	r.Letters.Drawn = append(r.Letters.Drawn, letter)
	if len(r.Letters.Drawn) == MaxLetters {
		if err := r.advance(PhasePlaying); err != nil {
			return 0, err
		}
	}
	log.Debug().Str("letter", string(letter)).Str("kind", string(kind)).
		Int("drawn", len(r.Letters.Drawn)).Msg("letter draw")
	return letter, nil
}

// SubmitLetters scores one batch of letters-round submissions, one raw
// word per team. A failed submission (empty, unmakeable, not a word) only
// zeroes that team; the rest of the batch scores normally. Submissions
// from unknown teams are reported in the results but never scored.
// Scoring freezes the round and appends it to history.
func (s *Session) SubmitLetters(submissions map[string]string) (map[string]*score.LettersEntry, error) {
	r := s.current
	if r == nil || r.Type != RoundLetters {
		return nil, errorf(RoundState, "no letters round active")
	}
	if err := r.requirePhase(PhasePlaying); err != nil {
		return nil, err
	}
	available := r.Letters.Drawn

	// Screen each submission down to the word that will be scored; a
	// screened-out team scores as if it submitted nothing.
	words := make(map[string]string, len(s.teams))
	failures := make(map[string]*Error)
	for _, team := range s.teams {
		raw, ok := submissions[team]
		word := lexicon.Normalize(raw)
		switch {
		case !ok || word == "":
			words[team] = ""
			failures[team] = errorf(EmptySubmission, "no word submitted")
		case !lexicon.CanMake(word, available):
			words[team] = ""
			failures[team] = errorf(UnmakeableWord,
				"cannot be made from available letters")
		default:
			words[team] = word
		}
	}

	// Strict mode: the accepted set for this round is whichever submitted
	// words the dictionary knows. Freeform mode trusts every word.
	var accepted map[string]bool
	if s.cfg.AutoDictionary {
		accepted = map[string]bool{}
		for _, w := range words {
			if w != "" && s.oracle.Dictionary().HasWord(w) {
				accepted[w] = true
			}
		}
	}

	results := score.Letters(words, accepted)
	for team, ferr := range failures {
		results[team].Word = lexicon.Normalize(submissions[team])
		results[team].Error = ferr.Detail
		results[team].ErrorKind = string(ferr.Kind)
	}
	for team, raw := range submissions {
		if !s.hasTeam(team) {
			results[team] = &score.LettersEntry{
				Word:      lexicon.Normalize(raw),
				Error:     "unknown team",
				ErrorKind: string(UnknownTeam),
			}
		}
	}

	r.Letters.Results = results
	r.Letters.Reveal = s.buildReveal(available)
	if err := r.advance(PhaseScored); err != nil {
		return nil, err
	}
	s.finishRound()
	s.recomputeScores()
	log.Info().Int("teams", len(s.teams)).Str("letters", r.Letters.DrawnLetters()).
		Msg("letters round scored")
	return results, nil
}

// buildReveal runs the dictionary searches shown after scoring.
func (s *Session) buildReveal(available []rune) *Reveal {
	reveal := &Reveal{AvailableLetters: string(available)}
	if best, ok := s.oracle.FindBestWord(s.randSource, available); ok {
		reveal.Best = &best
		if rare, ok := s.oracle.FindRarestWord(available, best.Word); ok {
			reveal.Rarest = &rare
		}
	} else if rare, ok := s.oracle.FindRarestWord(available, ""); ok {
		reveal.Rarest = &rare
	}
	return reveal
}

// ValidateWord answers the host's ad hoc dictionary lookups.
func (s *Session) ValidateWord(word string) bool {
	w := lexicon.Normalize(word)
	return w != "" && s.oracle.Dictionary().HasWord(w)
}
