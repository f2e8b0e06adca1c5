package parsercommon

// CharCursor scans a source string byte by byte.
// Peek and Match never consume input; only Advance moves the offset.
type CharCursor struct {
	source string
	offset int
}

// NewCharCursor creates a cursor at the beginning of source.
func NewCharCursor(source string) *CharCursor {
	return &CharCursor{source: source}
}

// Source returns the whole source text.
func (c *CharCursor) Source() string {
	return c.source
}

// Offset returns the current byte offset.
func (c *CharCursor) Offset() int {
	return c.offset
}

// IsAtEnd reports whether the whole source was consumed.
func (c *CharCursor) IsAtEnd() bool {
	return c.offset >= len(c.source)
}

// Advance moves the offset forward by n (1 when omitted).
// Bounds are not checked; callers test IsAtEnd first.
func (c *CharCursor) Advance(n ...int) {
	if len(n) == 0 {
		c.offset++
		return
	}
	c.offset += n[0]
}

// PeekChar returns the character at the current offset.
func (c *CharCursor) PeekChar() (byte, error) {
	if c.IsAtEnd() {
		return 0, NewLexerError(ErrEndOfInput, "unexpected end of file", NewLocation(c.offset))
	}
	return c.source[c.offset], nil
}

// PeekSubstring returns the next length bytes.
func (c *CharCursor) PeekSubstring(length int) (string, error) {
	end := c.offset + length
	if end > len(c.source) {
		return "", NewLexerError(ErrEndOfInput, "eof reached", NewRange(c.offset, len(c.source)))
	}
	return c.source[c.offset:end], nil
}

// MatchChar reports whether the character distance bytes ahead equals ch.
func (c *CharCursor) MatchChar(ch byte, distance ...int) bool {
	return c.MatchFunc(func(b byte) bool { return b == ch }, distance...)
}

// MatchFunc reports whether the character distance bytes ahead satisfies pred.
func (c *CharCursor) MatchFunc(pred func(byte) bool, distance ...int) bool {
	d := lookahead(distance)

	peek, err := c.PeekSubstring(d + 1)
	if err != nil {
		return false
	}

	return pred(peek[d])
}

// MatchString reports whether literal starts distance bytes ahead.
func (c *CharCursor) MatchString(literal string, distance ...int) bool {
	d := lookahead(distance)

	peek, err := c.PeekSubstring(d + len(literal))
	if err != nil {
		return false
	}

	return peek[d:] == literal
}

// MatchAny returns the first candidate that starts at the current offset.
func (c *CharCursor) MatchAny(candidates ...string) (string, bool) {
	for _, candidate := range candidates {
		if c.MatchString(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// Slice returns source[start:end] with end clamped to the source length.
func (c *CharCursor) Slice(start, end int) string {
	if end > len(c.source) {
		end = len(c.source)
	}
	return c.source[start:end]
}

// Rest returns the unconsumed part of the source.
func (c *CharCursor) Rest() string {
	if c.IsAtEnd() {
		return ""
	}
	return c.source[c.offset:]
}

func lookahead(distance []int) int {
	if len(distance) == 0 {
		return 0
	}
	return distance[0]
}
