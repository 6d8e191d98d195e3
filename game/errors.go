package game

import "fmt"

// ErrorKind classifies a rejected operation or submission. Kinds are
// stable identifiers suitable for direct serialization. Every failure is
// locally recoverable: it terminates that submission or request only.
type ErrorKind string

const (
	RoundState        ErrorKind = "round_state"
	EmptySubmission   ErrorKind = "empty_submission"
	UnmakeableWord    ErrorKind = "unmakeable_word"
	NoLivesRemaining  ErrorKind = "no_lives_remaining"
	LivesModeDisabled ErrorKind = "lives_mode_disabled"
	UnknownTeam       ErrorKind = "unknown_team"
)

// An Error is a structured, recoverable game error.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

func errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// AsError extracts a structured game error from err, if it is one.
func AsError(err error) (*Error, bool) {
	ge, ok := err.(*Error)
	return ge, ok
}
