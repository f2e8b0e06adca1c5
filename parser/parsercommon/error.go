package parsercommon

import "strings"

// ErrorKind classifies where a failure was raised.
type ErrorKind int

const (
	UnknownError ErrorKind = iota
	LexerError
	ParserError
)

func (k ErrorKind) String() string {
	switch k {
	case LexerError:
		return "lexer"
	case ParserError:
		return "parser"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case LexerError:
		return ErrLexer
	case ParserError:
		return ErrParser
	default:
		return ErrUnknown
	}
}

// Error is the failure value returned by the tokenizer and the parser.
// All fields are fixed at construction.
//
// errors.Is(err, ErrLexer) and errors.Is(err, ErrParser) match by kind, and
// the rule specific cause (ErrExpectedNumber, ErrUnknownCommand, ...) is
// reachable through Unwrap.
type Error struct {
	kind     ErrorKind
	message  string
	location *Location
	cause    error
}

// NewError creates an error without source location. message may be empty.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// NewSourceError creates an error pointing into the source text.
func NewSourceError(kind ErrorKind, message string, location Location) *Error {
	return &Error{kind: kind, message: message, location: &location}
}

// NewLexerError creates a lexer error caused by a sentinel.
func NewLexerError(cause error, message string, location Location) *Error {
	return &Error{kind: LexerError, message: message, location: &location, cause: cause}
}

// NewParserError creates a parser error caused by a sentinel.
func NewParserError(cause error, message string, location Location) *Error {
	return &Error{kind: ParserError, message: message, location: &location, cause: cause}
}

// Kind returns the error kind.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// Message returns the message and whether one was given.
func (e *Error) Message() (string, bool) {
	return e.message, e.message != ""
}

// Location returns the source location and whether the error has one.
func (e *Error) Location() (Location, bool) {
	if e.location == nil {
		return Location{}, false
	}
	return *e.location, true
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.kind.String())
	b.WriteString(" error")

	if e.message != "" {
		b.WriteString(": ")
		b.WriteString(e.message)
	}

	if e.location != nil {
		b.WriteString(" at ")
		b.WriteString(e.location.String())
	}

	return b.String()
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	return target == e.kind.sentinel()
}

func (e *Error) Unwrap() error {
	return e.cause
}
