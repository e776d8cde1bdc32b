package rational

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure returned by this package.
type ErrorKind string

const (
	KindInvalidArgumentType        ErrorKind = "invalid_argument_type"
	KindZeroDenominator            ErrorKind = "zero_denominator"
	KindNonIntegerArgument         ErrorKind = "non_integer_argument"
	KindNonPositiveIntegerArgument ErrorKind = "non_positive_integer_argument"
	KindNotANumber                 ErrorKind = "not_a_number"
	KindMalformedRationalString    ErrorKind = "malformed_rational_string"
)

var (
	ErrInvalidArgumentType        = errors.New("argument is not a rational value")
	ErrZeroDenominator            = errors.New("zero denominator")
	ErrNonIntegerArgument         = errors.New("argument is not an integer")
	ErrNonPositiveIntegerArgument = errors.New("argument is not a positive integer")
	ErrNotANumber                 = errors.New("argument is not a number")
	ErrMalformedRationalString    = errors.New("malformed rational string")
)

var sentinels = map[ErrorKind]error{
	KindInvalidArgumentType:        ErrInvalidArgumentType,
	KindZeroDenominator:            ErrZeroDenominator,
	KindNonIntegerArgument:         ErrNonIntegerArgument,
	KindNonPositiveIntegerArgument: ErrNonPositiveIntegerArgument,
	KindNotANumber:                 ErrNotANumber,
	KindMalformedRationalString:    ErrMalformedRationalString,
}

// Error is returned by every failing operation. errors.Is matches it against
// the sentinel of its Kind as well as against the wrapped cause.
type Error struct {
	Op    string
	Kind  ErrorKind
	Input string // Optional: offending input as written
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("rational: %s: %s", e.Op, e.Kind)
	if e.Input != "" {
		base += fmt.Sprintf(" (input=%q)", e.Input)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	return sentinels[e.Kind] == target
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind ErrorKind) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}

func newError(op string, kind ErrorKind, input string, cause error) *Error {
	return &Error{Op: op, Kind: kind, Input: input, Err: cause}
}
