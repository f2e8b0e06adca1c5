package tokenizer

import (
	"iter"
	"unicode/utf8"

	cmn "github.com/shibukawa/svgpath/parser/parsercommon"
)

// TokenIterator uses Go 1.23 iterator pattern
type TokenIterator iter.Seq2[Token, error]

// PathTokenizer is a tokenizer for SVG path data that returns an iterator
type PathTokenizer struct {
	input string
}

// NewPathTokenizer creates a new PathTokenizer
func NewPathTokenizer(input string) *PathTokenizer {
	return &PathTokenizer{input: input}
}

// Tokens returns an iterator of tokens.
// The last token is always EOF. After an error no more tokens are produced.
func (t *PathTokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		tokenizer := &tokenizer{cursor: cmn.NewCharCursor(t.input)}

		for {
			token, err := tokenizer.nextToken()
			if err != nil {
				yield(Token{}, err)
				return
			}

			if !yield(token, nil) {
				return
			}

			if token.Type == EOF {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice.
// On error the partially collected tokens are discarded.
func (t *PathTokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, 64)

	for token, err := range t.Tokens() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}

	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
		tokens = append(tokens, Token{Type: EOF, Location: cmn.NewLocation(len(t.input))})
	}

	return tokens, nil
}

// Tokenize lexes the whole input.
func Tokenize(input string) ([]Token, error) {
	return NewPathTokenizer(input).AllTokens()
}

// Internal tokenizer implementation
type tokenizer struct {
	cursor *cmn.CharCursor
}

// nextToken gets the next token, skipping whitespace
func (t *tokenizer) nextToken() (Token, error) {
	c := t.cursor

	for !c.IsAtEnd() {
		ch, err := c.PeekChar()
		if err != nil {
			return Token{}, err
		}

		switch {
		case isWhitespace(ch):
			c.Advance()
		case isCommand(ch):
			return t.readSingle(COMMAND, NO_PUNC), nil
		case isDigit(ch) || (ch == '-' && c.MatchFunc(isDigit, 1)):
			return t.readNumber()
		case ch == ',':
			return t.readSingle(PUNC, COMMA), nil
		default:
			return t.readUnknown(), nil
		}
	}

	return Token{Type: EOF, Location: cmn.NewLocation(c.Offset())}, nil
}

// readSingle reads a one character token
func (t *tokenizer) readSingle(tokenType TokenType, punc PuncType) Token {
	start := t.cursor.Offset()
	t.cursor.Advance()

	return Token{
		Type:     tokenType,
		Value:    t.cursor.Slice(start, start+1),
		Punc:     punc,
		Location: cmn.NewRange(start, start+1),
	}
}

// readNumber reads numeric literals.
// The cursor is on a digit or on a '-' followed by a digit.
func (t *tokenizer) readNumber() (Token, error) {
	c := t.cursor
	start := c.Offset()

	prev, err := c.PeekChar()
	if err != nil {
		return Token{}, err
	}
	c.Advance()

	hasDot := false
	hasExponent := false

loop:
	for !c.IsAtEnd() {
		ch, err := c.PeekChar()
		if err != nil {
			return Token{}, err
		}

		switch {
		case isDigit(ch):
		case ch == '.' && !hasDot && !hasExponent && c.MatchFunc(isNumberTail, 1):
			hasDot = true
		case (ch == 'e' || ch == 'E') && !hasExponent:
			hasExponent = true
		case ch == '-' && (prev == 'e' || prev == 'E'):
		default:
			break loop
		}

		prev = ch
		c.Advance()
	}

	end := c.Offset()

	return Token{
		Type:     NUMBER,
		Value:    c.Slice(start, end),
		Location: cmn.NewRange(start, end),
	}, nil
}

// readUnknown reads one unrecognized character
func (t *tokenizer) readUnknown() Token {
	start := t.cursor.Offset()
	_, size := utf8.DecodeRuneInString(t.cursor.Rest())
	if size == 0 {
		size = 1
	}
	t.cursor.Advance(size)

	return Token{
		Type:     UNKNOWN,
		Value:    t.cursor.Slice(start, start+size),
		Location: cmn.NewRange(start, start+size),
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isCommand(c byte) bool {
	switch c {
	case 'A', 'a', 'C', 'c', 'H', 'h', 'L', 'l', 'M', 'm',
		'Q', 'q', 'S', 's', 'T', 't', 'V', 'v', 'Z', 'z':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isNumberTail reports whether c may follow a decimal point
func isNumberTail(c byte) bool {
	return isDigit(c) || c == 'e' || c == 'E' || c == '-'
}
