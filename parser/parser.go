package parser

import (
	"github.com/tdewolff/parse/v2/strconv"

	cmn "github.com/shibukawa/svgpath/parser/parsercommon"
	"github.com/shibukawa/svgpath/tokenizer"
)

// TokenCursor is the cursor type the parser reads from.
type TokenCursor = cmn.TokenCursor[tokenizer.Token]

// ParseString tokenizes source and parses the resulting tokens.
func ParseString(source string) (Path, error) {
	tokens, err := tokenizer.Tokenize(source)
	if err != nil {
		return nil, err
	}

	return Parse(tokens)
}

// Parse parses a token slice produced by the tokenizer.
// The returned path does not reference tokens.
func Parse(tokens []tokenizer.Token) (Path, error) {
	return ParseCursor(cmn.NewTokenCursor(tokens))
}

// ParseCursor parses subpaths starting at the cursor's current token.
// Any error aborts the whole parse; no partial path is returned.
func ParseCursor(cursor *TokenCursor) (Path, error) {
	p := &pathParser{cursor: cursor}

	path, err := p.parseSubpaths()
	if err != nil {
		return nil, err
	}

	return path, nil
}

type pathParser struct {
	cursor *TokenCursor
}

func (p *pathParser) fail(cause error, message string) error {
	return cmn.NewParserError(cause, message, p.cursor.CurrentLocation())
}

func (p *pathParser) failAt(cause error, message string, location cmn.Location) error {
	return cmn.NewParserError(cause, message, location)
}

// span extends start to the end of the last consumed token
func (p *pathParser) span(start cmn.Location) cmn.Location {
	offset := p.cursor.Offset()
	if offset == 0 || offset > len(p.cursor.Tokens()) {
		return start
	}
	return start.Merge(p.cursor.Tokens()[offset-1].Location)
}

// atBoundary reports whether the list being parsed ends at the current token
func atBoundary(token *tokenizer.Token) bool {
	return token.Type == tokenizer.COMMAND || token.Type == tokenizer.PUNC || token.Type == tokenizer.EOF
}

func (p *pathParser) decodeNumber(token *tokenizer.Token) (Number, error) {
	value, n := strconv.ParseFloat([]byte(token.Value))
	if n == 0 {
		return Number{}, p.failAt(cmn.ErrExpectedNumber, "invalid number literal", token.Location)
	}

	return Number{Value: value, Source: token.Value}, nil
}

func (p *pathParser) parsePoint() (Point, error) {
	if p.cursor.IsAtEnd() {
		return Point{}, p.fail(cmn.ErrUnexpectedEOF, "unexpected eof")
	}

	xToken, _ := p.cursor.Peek()
	if xToken.Type != tokenizer.NUMBER {
		return Point{}, p.fail(cmn.ErrExpectedNumber, "expected number when parsing point")
	}

	x, err := p.decodeNumber(xToken)
	if err != nil {
		return Point{}, err
	}

	p.cursor.Advance()

	next, ok := p.cursor.Peek()
	if !ok {
		return Point{}, p.fail(cmn.ErrExpectedToken, "expected token when parsing point")
	}

	if next.Type != tokenizer.NUMBER {
		if next.Type != tokenizer.PUNC {
			return Point{}, p.fail(cmn.ErrExpectedNumber, "expected number or comma delimiter when parsing point")
		}

		p.cursor.Advance()

		next, ok = p.cursor.Peek()
		if !ok {
			return Point{}, p.fail(cmn.ErrExpectedToken, "expected token when parsing point")
		}

		if next.Type != tokenizer.NUMBER {
			return Point{}, p.fail(cmn.ErrExpectedNumber, "expected number when parsing point")
		}
	}

	y, err := p.decodeNumber(next)
	if err != nil {
		return Point{}, err
	}

	p.cursor.Advance()

	return Point{X: x, Y: y}, nil
}

func (p *pathParser) parsePoints() ([]Point, error) {
	if p.cursor.IsAtEnd() {
		return nil, p.fail(cmn.ErrUnexpectedEOF, "unexpected eof")
	}

	points := make([]Point, 0, 4)

	for !p.cursor.IsAtEnd() {
		token, _ := p.cursor.Peek()
		if atBoundary(token) {
			break
		}

		point, err := p.parsePoint()
		if err != nil {
			return nil, err
		}

		points = append(points, point)
	}

	return points, nil
}

func (p *pathParser) parseNumber() (Number, error) {
	if p.cursor.IsAtEnd() {
		return Number{}, p.fail(cmn.ErrUnexpectedEOF, "unexpected eof")
	}

	token, _ := p.cursor.Peek()
	if token.Type != tokenizer.NUMBER {
		return Number{}, p.fail(cmn.ErrExpectedNumber, "expected number when parsing number")
	}

	number, err := p.decodeNumber(token)
	if err != nil {
		return Number{}, err
	}

	p.cursor.Advance()

	return number, nil
}

func (p *pathParser) parseNumbers() ([]Number, error) {
	if p.cursor.IsAtEnd() {
		return nil, p.fail(cmn.ErrUnexpectedEOF, "unexpected eof")
	}

	numbers := make([]Number, 0, 4)

	for !p.cursor.IsAtEnd() {
		token, _ := p.cursor.Peek()
		if atBoundary(token) {
			break
		}

		if token.Type != tokenizer.NUMBER {
			return nil, p.fail(cmn.ErrExpectedNumber, "expected number when parsing numbers")
		}

		number, err := p.decodeNumber(token)
		if err != nil {
			return nil, err
		}

		p.cursor.Advance()
		numbers = append(numbers, number)
	}

	return numbers, nil
}

// positionOf resolves Absolute/Relative from the letter case
func positionOf(letter byte) Position {
	if letter >= 'a' && letter <= 'z' {
		return Relative
	}
	return Absolute
}

// parsePointsCommand consumes the command letter and its point operands.
// multiple > 1 requires the point count to be a multiple of it.
func (p *pathParser) parsePointsCommand(command *tokenizer.Token, name string, multiple int) (baseCommand, []Point, error) {
	base := baseCommand{position: positionOf(command.Letter())}
	start := command.Location

	p.cursor.Advance()

	points, err := p.parsePoints()
	if err != nil {
		return base, nil, err
	}

	base.location = p.span(start)

	if multiple > 1 && len(points)%multiple != 0 {
		return base, nil, p.failAt(cmn.ErrInvalidPointCount, multipleMessage(multiple, name), base.location)
	}

	return base, points, nil
}

func multipleMessage(multiple int, name string) string {
	if multiple == 3 {
		return "expected points in multiples of 3 when parsing " + name + " command"
	}
	return "expected points in multiples of 2 when parsing " + name + " command"
}

func (p *pathParser) parseNumbersCommand(command *tokenizer.Token) (baseCommand, []Number, error) {
	base := baseCommand{position: positionOf(command.Letter())}
	start := command.Location

	p.cursor.Advance()

	numbers, err := p.parseNumbers()
	if err != nil {
		return base, nil, err
	}

	base.location = p.span(start)

	return base, numbers, nil
}

func (p *pathParser) parseEllipticalArc() (Arc, error) {
	if p.cursor.IsAtEnd() {
		return Arc{}, p.fail(cmn.ErrUnexpectedEOF, "unexpected eof")
	}

	radius, err := p.parsePoint()
	if err != nil {
		return Arc{}, err
	}

	rotation, err := p.parseNumber()
	if err != nil {
		return Arc{}, err
	}

	flags, err := p.parsePoint()
	if err != nil {
		return Arc{}, err
	}

	end, err := p.parsePoint()
	if err != nil {
		return Arc{}, err
	}

	return Arc{Radius: radius, XAxisRotation: rotation, Flags: flags, End: end}, nil
}

func (p *pathParser) parseCommandEllipticalArc(command *tokenizer.Token) (Command, error) {
	base := baseCommand{position: positionOf(command.Letter())}
	start := command.Location

	p.cursor.Advance()

	var arcs []Arc

	for !p.cursor.IsAtEnd() {
		token, _ := p.cursor.Peek()
		if atBoundary(token) {
			break
		}

		arc, err := p.parseEllipticalArc()
		if err != nil {
			return nil, err
		}

		arcs = append(arcs, arc)
	}

	base.location = p.span(start)

	if len(arcs) == 0 {
		return nil, p.failAt(cmn.ErrExpectedArcs, "expected arcs when parsing elliptical arc command", base.location)
	}

	return EllipticalArc{baseCommand: base, Arcs: arcs}, nil
}

// parseCommandClosePath always reports Absolute: the letter case of z/Z is not
// taken into account.
func (p *pathParser) parseCommandClosePath(command *tokenizer.Token) (Command, error) {
	base := baseCommand{position: Absolute, location: command.Location}

	p.cursor.Advance()

	return ClosePath{baseCommand: base}, nil
}

// parseCommand returns (nil, nil) at EOF.
func (p *pathParser) parseCommand() (Command, error) {
	if p.cursor.IsAtEnd() {
		return nil, p.fail(cmn.ErrUnexpectedEOF, "unexpected eof")
	}

	token, _ := p.cursor.Peek()

	if token.Type == tokenizer.EOF {
		return nil, nil
	}

	if token.Type != tokenizer.COMMAND {
		return nil, p.fail(cmn.ErrExpectedCommand, "expected command when parsing command")
	}

	switch token.Letter() {
	case 'M', 'm':
		base, points, err := p.parsePointsCommand(token, "move to", 1)
		if err != nil {
			return nil, err
		}
		return MoveTo{baseCommand: base, Points: points}, nil

	case 'L', 'l':
		base, points, err := p.parsePointsCommand(token, "line to", 1)
		if err != nil {
			return nil, err
		}
		return LineTo{baseCommand: base, Points: points}, nil

	case 'H', 'h':
		base, numbers, err := p.parseNumbersCommand(token)
		if err != nil {
			return nil, err
		}
		return HorizontalLineTo{baseCommand: base, Numbers: numbers}, nil

	case 'V', 'v':
		base, numbers, err := p.parseNumbersCommand(token)
		if err != nil {
			return nil, err
		}
		return VerticalLineTo{baseCommand: base, Numbers: numbers}, nil

	case 'C', 'c':
		base, points, err := p.parsePointsCommand(token, "curve to", 3)
		if err != nil {
			return nil, err
		}
		return CurveTo{baseCommand: base, Points: points}, nil

	case 'S', 's':
		base, points, err := p.parsePointsCommand(token, "smooth curve to", 2)
		if err != nil {
			return nil, err
		}
		return SmoothCurveTo{baseCommand: base, Points: points}, nil

	case 'Q', 'q':
		base, points, err := p.parsePointsCommand(token, "quadratic bezier curve to", 2)
		if err != nil {
			return nil, err
		}
		return QuadraticBezierCurveTo{baseCommand: base, Points: points}, nil

	case 'T', 't':
		base, points, err := p.parsePointsCommand(token, "smooth quadratic bezier curve to", 2)
		if err != nil {
			return nil, err
		}
		return SmoothQuadraticBezierCurveTo{baseCommand: base, Points: points}, nil

	case 'A', 'a':
		return p.parseCommandEllipticalArc(token)

	case 'Z', 'z':
		return p.parseCommandClosePath(token)

	default:
		return nil, p.fail(cmn.ErrUnknownCommand, "unknown command token when parsing command")
	}
}

// parseSubpath returns (nil, nil) when no command is left.
func (p *pathParser) parseSubpath() (Subpath, error) {
	if p.cursor.IsAtEnd() {
		return nil, p.fail(cmn.ErrUnexpectedEOF, "unexpected eof")
	}

	var commands Subpath

	for !p.cursor.IsAtEnd() {
		command, err := p.parseCommand()
		if err != nil {
			return nil, err
		}

		if command == nil {
			break
		}

		commands = append(commands, command)

		if command.Type() == ClosePathCommand {
			break
		}
	}

	if len(commands) == 0 {
		return nil, nil
	}

	return commands, nil
}

func (p *pathParser) parseSubpaths() (Path, error) {
	if p.cursor.IsAtEnd() {
		return nil, p.fail(cmn.ErrUnexpectedEOF, "unexpected eof")
	}

	path := Path{}

	for !p.cursor.IsAtEnd() {
		subpath, err := p.parseSubpath()
		if err != nil {
			return nil, err
		}

		if subpath == nil {
			break
		}

		path = append(path, subpath)
	}

	return path, nil
}
