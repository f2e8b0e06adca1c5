package svgpath

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/alecthomas/assert/v2"
	tstrconv "github.com/tdewolff/parse/v2/strconv"

	"github.com/shibukawa/svgpath/parser"
	cmn "github.com/shibukawa/svgpath/parser/parsercommon"
	"github.com/shibukawa/svgpath/testhelper"
	"github.com/shibukawa/svgpath/tokenizer"
)

func TestParsePath_Empty(t *testing.T) {
	path, err := ParsePath("")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(path))
}

func TestParsePath_Triangle(t *testing.T) {
	path, err := ParsePath("M 100 100 L 300 100 L 200 300 z")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(path))

	subpath := path[0]
	assert.Equal(t, 4, len(subpath))

	move, ok := subpath[0].(parser.MoveTo)
	assert.True(t, ok)
	assert.Equal(t, 100.0, move.Points[0].X.Value)
	assert.Equal(t, 100.0, move.Points[0].Y.Value)

	line, ok := subpath[2].(parser.LineTo)
	assert.True(t, ok)
	assert.Equal(t, 200.0, line.Points[0].X.Value)
	assert.Equal(t, 300.0, line.Points[0].Y.Value)

	assert.Equal(t, parser.ClosePathCommand, subpath[3].Type())
	assert.Equal(t, parser.Absolute, subpath[3].Position())
}

func TestParsePath_TwoArcs(t *testing.T) {
	path, err := ParsePath("A 5,5 0 1,1 10,10 5,5 0 1,1 20,20")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(path))
	assert.Equal(t, 1, len(path[0]))

	arc, ok := path[0][0].(parser.EllipticalArc)
	assert.True(t, ok)
	assert.Equal(t, 2, len(arc.Arcs))
	assert.Equal(t, 20.0, arc.Arcs[1].End.X.Value)
	assert.Equal(t, 1.0, arc.Arcs[1].Flags.Y.Value)
}

func TestParsePath_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		span  string
	}{
		{name: "incomplete curve", input: "C 0,0 0,0", span: "C 0,0 0,0"},
		{name: "unknown character", input: "M 1 1 X", span: "X"},
		{name: "arc without operands", input: "M 0 0 a z", span: "a"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path, err := ParsePath(test.input)
			assert.Zero(t, path)
			assert.True(t, errors.Is(err, cmn.ErrParser))

			var perr *cmn.Error
			assert.True(t, errors.As(err, &perr))
			assert.Equal(t, cmn.ParserError, perr.Kind())

			location, ok := perr.Location()
			assert.True(t, ok)
			assert.Equal(t, testhelper.Span(t, test.input, test.span), location)
		})
	}
}

func TestLexPath_CommaPoint(t *testing.T) {
	tokens, err := LexPath("1,2")
	assert.NoError(t, err)

	expected := []tokenizer.Token{
		{Type: tokenizer.NUMBER, Value: "1", Location: cmn.NewRange(0, 1)},
		{Type: tokenizer.PUNC, Value: ",", Punc: tokenizer.COMMA, Location: cmn.NewRange(1, 2)},
		{Type: tokenizer.NUMBER, Value: "2", Location: cmn.NewRange(2, 3)},
		{Type: tokenizer.EOF, Location: cmn.NewLocation(3)},
	}

	assert.Equal(t, expected, tokens)
}

func TestLexPath_NumberTextRelexes(t *testing.T) {
	tokens, err := LexPath("M-1.25e2 3.5 L 10-20 1E-3 0")
	assert.NoError(t, err)

	for _, token := range tokens {
		if token.Type != tokenizer.NUMBER {
			continue
		}

		relexed, err := LexPath(token.Value)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(relexed))
		assert.Equal(t, token.Value, relexed[0].Value)

		want, _ := tstrconv.ParseFloat([]byte(token.Value))
		got, _ := tstrconv.ParseFloat([]byte(relexed[0].Value))
		assert.Equal(t, want, got)
	}
}

func TestLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := ParsePath("M 0 0\nL 1 X")
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "parse failed")
	assert.Contains(t, buf.String(), "line=2")
	assert.Contains(t, buf.String(), "column=5")

	buf.Reset()
	_, err = ParsePath("M 0 0 z")
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "parsed path data")
	assert.Contains(t, buf.String(), "commands=2")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
