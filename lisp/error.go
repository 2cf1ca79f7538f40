package lisp

import (
	"errors"
	"fmt"
)

// Errno is an error code identifying one of the deterministic failure
// conditions an interpreter stage can report.
type Errno uint

// Possible Errno values
const (
	ErrnoInvalid Errno = iota

	// Lexical/structural errors
	ErrnoUnexpectedEndOfTokenStream
	ErrnoUnexpectedClosingParenthesis
	ErrnoMissingClosingParenthesis
	ErrnoInvalidNumberLiteral

	// Shape errors
	ErrnoNotAnIdentifier
	ErrnoEmptyListExpression
	ErrnoUnexpectedType

	// Binding errors
	ErrnoFunctionNotDefined
	ErrnoVariableNotDefined
	ErrnoFunctionAsVariable

	// Arity/coercion errors
	ErrnoInvalidNumberOfArguments
	ErrnoIndexOutOfBounds

	numErrnos
)

func (n Errno) String() string {
	errnoStrings := [numErrnos]string{
		ErrnoInvalid:                      "invalid",
		ErrnoUnexpectedEndOfTokenStream:   "unexpected-end-of-token-stream",
		ErrnoUnexpectedClosingParenthesis: "unexpected-closing-parenthesis",
		ErrnoMissingClosingParenthesis:    "missing-closing-parenthesis",
		ErrnoInvalidNumberLiteral:         "invalid-number-literal",
		ErrnoNotAnIdentifier:              "not-an-identifier",
		ErrnoEmptyListExpression:          "empty-list-expression",
		ErrnoUnexpectedType:               "unexpected-type",
		ErrnoFunctionNotDefined:           "function-not-defined",
		ErrnoVariableNotDefined:           "variable-not-defined",
		ErrnoFunctionAsVariable:           "function-as-variable",
		ErrnoInvalidNumberOfArguments:     "invalid-number-of-arguments",
		ErrnoIndexOutOfBounds:             "index-out-of-bounds",
	}
	if n >= numErrnos {
		return errnoStrings[ErrnoInvalid]
	}
	return errnoStrings[n]
}

// Error is a structured, recoverable interpreter error.  Name holds the
// offending identifier or literal text when the condition references one and
// Index holds the offending list index for ErrnoIndexOutOfBounds.
type Error struct {
	Errno Errno
	Name  string
	Index int
}

// NewError returns an Error carrying errno.
func NewError(errno Errno) *Error {
	return &Error{Errno: errno}
}

// NameError returns an Error carrying errno that references the identifier
// or literal name.
func NameError(errno Errno, name string) *Error {
	return &Error{Errno: errno, Name: name}
}

// IndexError returns an ErrnoIndexOutOfBounds Error for index i.
func IndexError(i int) *Error {
	return &Error{Errno: ErrnoIndexOutOfBounds, Index: i}
}

func (e *Error) Error() string {
	switch e.Errno {
	case ErrnoUnexpectedEndOfTokenStream:
		return "token stream ended unexpectedly"
	case ErrnoUnexpectedClosingParenthesis:
		return "encountered an unexpected closing parenthesis"
	case ErrnoMissingClosingParenthesis:
		return "missing expected closing parenthesis"
	case ErrnoInvalidNumberLiteral:
		return fmt.Sprintf("invalid number literal `%s`", e.Name)
	case ErrnoNotAnIdentifier:
		return fmt.Sprintf("expression `%s` is not an identifier", e.Name)
	case ErrnoEmptyListExpression:
		return "empty list expression"
	case ErrnoUnexpectedType:
		return "encountered an unexpected type"
	case ErrnoFunctionNotDefined:
		return fmt.Sprintf("function `%s` is not defined", e.Name)
	case ErrnoVariableNotDefined:
		return fmt.Sprintf("variable `%s` is not defined", e.Name)
	case ErrnoFunctionAsVariable:
		return fmt.Sprintf("attempted to use function `%s` as a variable", e.Name)
	case ErrnoInvalidNumberOfArguments:
		return "invalid number of arguments passed"
	case ErrnoIndexOutOfBounds:
		return fmt.Sprintf("index `%d` is out of bounds", e.Index)
	}
	return "invalid error"
}

// GoErrno returns the code carried by err, or ErrnoInvalid when err is not a
// *lisp.Error.
func GoErrno(err error) Errno {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Errno
	}
	return ErrnoInvalid
}

// Terminate is returned through the evaluator's result channel by the exit
// builtin.  It is not an interpreter failure; the outer shell decides
// whether to end the process with the carried status.
type Terminate struct {
	Status int
}

func (t *Terminate) Error() string {
	return fmt.Sprintf("terminated with status %d", t.Status)
}
