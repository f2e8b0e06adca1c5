package parsercommon

// TokenCursor walks a token slice produced elsewhere.
//
// The cursor borrows the slice: Peek hands out pointers into it, so the
// slice must stay alive and unmodified while the cursor is in use.
type TokenCursor[T Locatable] struct {
	tokens []T
	offset int
}

// NewTokenCursor creates a cursor at the first token.
func NewTokenCursor[T Locatable](tokens []T) *TokenCursor[T] {
	return &TokenCursor[T]{tokens: tokens}
}

// Tokens returns the underlying slice.
func (c *TokenCursor[T]) Tokens() []T {
	return c.tokens
}

// Offset returns the index of the current token.
func (c *TokenCursor[T]) Offset() int {
	return c.offset
}

// IsAtEnd reports whether all tokens were consumed.
func (c *TokenCursor[T]) IsAtEnd() bool {
	return c.offset >= len(c.tokens)
}

// Advance moves forward by n tokens (1 when omitted).
func (c *TokenCursor[T]) Advance(n ...int) {
	if len(n) == 0 {
		c.offset++
		return
	}
	c.offset += n[0]
}

// Peek returns the current token without consuming it.
func (c *TokenCursor[T]) Peek() (*T, bool) {
	if c.IsAtEnd() {
		return nil, false
	}
	return &c.tokens[c.offset], true
}

// CurrentLocation returns the current token's location, or a zero-width
// location at the cursor offset once the tokens are exhausted.
func (c *TokenCursor[T]) CurrentLocation() Location {
	if c.IsAtEnd() {
		return NewLocation(c.offset)
	}
	return c.tokens[c.offset].SourceLocation()
}
