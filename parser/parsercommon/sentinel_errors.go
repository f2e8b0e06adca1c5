package parsercommon

import "errors"

// Sentinel errors matched by error kind
var (
	ErrUnknown = errors.New("unknown error")
	ErrLexer   = errors.New("lexer error")
	ErrParser  = errors.New("parser error")
)

// Sentinel errors - rule failures carried as the cause of an *Error
var (
	// Lexer related errors
	ErrEndOfInput = errors.New("end of input")

	// Parser related errors
	ErrUnexpectedEOF     = errors.New("unexpected end of tokens")
	ErrExpectedToken     = errors.New("expected token")
	ErrExpectedNumber    = errors.New("expected number")
	ErrExpectedCommand   = errors.New("expected command")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrInvalidPointCount = errors.New("invalid point count")
	ErrExpectedArcs      = errors.New("expected arcs")
)
