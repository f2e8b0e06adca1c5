package tokenizer

import (
	cmn "github.com/shibukawa/svgpath/parser/parsercommon"
)

// TokenType represents the type of a token
type TokenType int

const (
	EOF     TokenType = iota
	COMMAND           // command letter (M, m, L, l, ...)
	NUMBER            // numeric literal
	PUNC              // punctuation (only comma)
	UNKNOWN           // anything else
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case COMMAND:
		return "COMMAND"
	case NUMBER:
		return "NUMBER"
	case PUNC:
		return "PUNC"
	case UNKNOWN:
		return "UNKNOWN"
	default:
		return "INVALID"
	}
}

// PuncType represents the kind of a PUNC token
type PuncType int

const (
	NO_PUNC PuncType = iota
	COMMA            // ,
)

func (p PuncType) String() string {
	switch p {
	case COMMA:
		return "COMMA"
	default:
		return "NONE"
	}
}

// Token represents a token.
//
// Value holds the command letter for COMMAND, the exact source text for
// NUMBER, "," for PUNC and the offending character for UNKNOWN (empty when
// there was none). EOF tokens have an empty Value.
type Token struct {
	Type     TokenType
	Value    string
	Punc     PuncType
	Location cmn.Location
}

// SourceLocation implements parsercommon.Locatable
func (t Token) SourceLocation() cmn.Location {
	return t.Location
}

// Letter returns the command letter of a COMMAND token, 0 otherwise.
func (t Token) Letter() byte {
	if t.Type != COMMAND || t.Value == "" {
		return 0
	}
	return t.Value[0]
}

// String returns the string representation of Token
func (t Token) String() string {
	if t.Type == EOF {
		return t.Type.String()
	}
	return t.Type.String() + ": " + t.Value
}
