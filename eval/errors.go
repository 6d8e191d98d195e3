package eval

import "fmt"

// ErrorKind classifies why an expression was rejected. The kinds are stable
// identifiers suitable for direct serialization by a caller.
type ErrorKind string

const (
	SyntaxError         ErrorKind = "syntax_error"
	DisallowedOperator  ErrorKind = "disallowed_operator"
	OverAllocatedNumber ErrorKind = "over_allocated_number"
	NonIntegerDivision  ErrorKind = "non_integer_division"
	DivisionByZero      ErrorKind = "division_by_zero"
)

// An Error is a structured rejection of a submitted expression. It is a
// terminal classification for that submission; the engine never retries.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

func syntaxErrorf(format string, args ...any) *Error {
	return &Error{Kind: SyntaxError, Detail: fmt.Sprintf(format, args...)}
}

func disallowedf(format string, args ...any) *Error {
	return &Error{Kind: DisallowedOperator, Detail: fmt.Sprintf(format, args...)}
}
