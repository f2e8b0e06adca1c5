package parsercommon

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

type testToken struct {
	value string
	loc   Location
}

func (t testToken) SourceLocation() Location {
	return t.loc
}

func TestCharCursorPeek(t *testing.T) {
	c := NewCharCursor("M1")

	ch, err := c.PeekChar()
	assert.NoError(t, err)
	assert.Equal(t, byte('M'), ch)
	assert.Equal(t, 0, c.Offset())

	sub, err := c.PeekSubstring(2)
	assert.NoError(t, err)
	assert.Equal(t, "M1", sub)

	_, err = c.PeekSubstring(3)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrLexer))
	assert.Contains(t, err.Error(), "eof reached")

	c.Advance(2)
	assert.True(t, c.IsAtEnd())

	_, err = c.PeekChar()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrLexer))
	assert.True(t, errors.Is(err, ErrEndOfInput))
	assert.Contains(t, err.Error(), "unexpected end of file")
}

func TestCharCursorMatch(t *testing.T) {
	c := NewCharCursor("-1.5")

	tests := []struct {
		name     string
		match    func() bool
		expected bool
	}{
		{"char at offset", func() bool { return c.MatchChar('-') }, true},
		{"char mismatch", func() bool { return c.MatchChar('1') }, false},
		{"char ahead", func() bool { return c.MatchChar('.', 2) }, true},
		{"char out of bounds", func() bool { return c.MatchChar('5', 4) }, false},
		{"predicate ahead", func() bool { return c.MatchFunc(func(b byte) bool { return b >= '0' && b <= '9' }, 1) }, true},
		{"predicate out of bounds", func() bool { return c.MatchFunc(func(byte) bool { return true }, 10) }, false},
		{"string at offset", func() bool { return c.MatchString("-1") }, true},
		{"string ahead", func() bool { return c.MatchString(".5", 2) }, true},
		{"string too long", func() bool { return c.MatchString(".55", 2) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.match())
			assert.Equal(t, 0, c.Offset())
		})
	}
}

func TestCharCursorMatchAny(t *testing.T) {
	c := NewCharCursor("Zz")

	found, ok := c.MatchAny("z", "Zz", "Z")
	assert.True(t, ok)
	assert.Equal(t, "Zz", found)

	_, ok = c.MatchAny("a", "b")
	assert.False(t, ok)

	c.Advance(5)
	_, ok = c.MatchAny("Z")
	assert.False(t, ok)
	assert.Equal(t, "", c.Rest())
}

func TestTokenCursor(t *testing.T) {
	tokens := []testToken{
		{"M", NewRange(0, 1)},
		{"10", NewRange(2, 4)},
	}
	c := NewTokenCursor(tokens)

	tok, ok := c.Peek()
	assert.True(t, ok)
	assert.Equal(t, "M", tok.value)
	assert.Equal(t, NewRange(0, 1), c.CurrentLocation())

	c.Advance()
	tok, ok = c.Peek()
	assert.True(t, ok)
	assert.Equal(t, "10", tok.value)
	assert.True(t, tok == &tokens[1], "peek must point into the borrowed slice")

	c.Advance()
	assert.True(t, c.IsAtEnd())
	_, ok = c.Peek()
	assert.False(t, ok)
	assert.Equal(t, NewLocation(2), c.CurrentLocation())
}

func TestErrorModel(t *testing.T) {
	plain := NewError(UnknownError, "")
	_, hasMessage := plain.Message()
	_, hasLocation := plain.Location()
	assert.False(t, hasMessage)
	assert.False(t, hasLocation)
	assert.Equal(t, "unknown error", plain.Error())
	assert.True(t, errors.Is(plain, ErrUnknown))

	located := NewSourceError(ParserError, "expected command", NewLocation(7))
	loc, ok := located.Location()
	assert.True(t, ok)
	assert.Equal(t, Location{Start: 7, End: 7}, loc)
	assert.Equal(t, "parser error: expected command at 7", located.Error())

	caused := NewParserError(ErrUnknownCommand, "unknown command token when parsing command", NewRange(6, 7))
	assert.True(t, errors.Is(caused, ErrParser))
	assert.True(t, errors.Is(caused, ErrUnknownCommand))
	assert.False(t, errors.Is(caused, ErrLexer))
	assert.Equal(t, ParserError, caused.Kind())

	var target *Error
	assert.True(t, errors.As(caused, &target))
}

func TestLineColumn(t *testing.T) {
	src := "M 0 0\nL 10 10\nX"

	line, col := LineColumn(src, 0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = LineColumn(src, 14)
	assert.Equal(t, 3, line)
	assert.Equal(t, 1, col)

	line, col = LineColumn(src, 100)
	assert.Equal(t, 3, line)
	assert.Equal(t, 2, col)
}
