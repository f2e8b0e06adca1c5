package parser

import (
	"github.com/shopspring/decimal"
	cmn "github.com/shibukawa/svgpath/parser/parsercommon"
)

// Number is a decoded numeric operand together with the exact text it was lexed from.
type Number struct {
	Value  float64
	Source string
}

// Decimal returns the exact decimal value written in the source text.
func (n Number) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(n.Source)
}

func (n Number) String() string {
	return n.Source
}

// Point is an (x, y) operand pair.
type Point struct {
	X Number
	Y Number
}

// Arc is one elliptical arc operand group.
type Arc struct {
	Radius        Point
	XAxisRotation Number
	Flags         Point // large-arc-flag, sweep-flag
	End           Point
}

// Position tells whether a command's coordinates are absolute or relative.
type Position int

const (
	Absolute Position = iota
	Relative
)

func (p Position) String() string {
	if p == Relative {
		return "Relative"
	}
	return "Absolute"
}

// CommandType identifies a command variant
type CommandType int

const (
	MoveToCommand CommandType = iota + 1
	LineToCommand
	HorizontalLineToCommand
	VerticalLineToCommand
	ClosePathCommand
	CurveToCommand
	SmoothCurveToCommand
	QuadraticBezierCurveToCommand
	SmoothQuadraticBezierCurveToCommand
	EllipticalArcCommand
)

func (t CommandType) String() string {
	switch t {
	case MoveToCommand:
		return "MoveTo"
	case LineToCommand:
		return "LineTo"
	case HorizontalLineToCommand:
		return "HorizontalLineTo"
	case VerticalLineToCommand:
		return "VerticalLineTo"
	case ClosePathCommand:
		return "ClosePath"
	case CurveToCommand:
		return "CurveTo"
	case SmoothCurveToCommand:
		return "SmoothCurveTo"
	case QuadraticBezierCurveToCommand:
		return "QuadraticBezierCurveTo"
	case SmoothQuadraticBezierCurveToCommand:
		return "SmoothQuadraticBezierCurveTo"
	case EllipticalArcCommand:
		return "EllipticalArc"
	default:
		return "UnknownCommand"
	}
}

// Letter returns the command letter for the given position.
func (t CommandType) Letter(position Position) byte {
	var upper byte

	switch t {
	case MoveToCommand:
		upper = 'M'
	case LineToCommand:
		upper = 'L'
	case HorizontalLineToCommand:
		upper = 'H'
	case VerticalLineToCommand:
		upper = 'V'
	case ClosePathCommand:
		upper = 'Z'
	case CurveToCommand:
		upper = 'C'
	case SmoothCurveToCommand:
		upper = 'S'
	case QuadraticBezierCurveToCommand:
		upper = 'Q'
	case SmoothQuadraticBezierCurveToCommand:
		upper = 'T'
	case EllipticalArcCommand:
		upper = 'A'
	default:
		return 0
	}

	if position == Relative {
		return upper + ('a' - 'A')
	}
	return upper
}

// Command is one drawing command. The set of implementations is closed.
type Command interface {
	cmn.Locatable
	Type() CommandType
	Position() Position
	isCommand()
}

type baseCommand struct {
	position Position
	location cmn.Location
}

func (b baseCommand) Position() Position {
	return b.position
}

func (b baseCommand) SourceLocation() cmn.Location {
	return b.location
}

func (baseCommand) isCommand() {}

// MoveTo starts a new subpath at the first point; later points are implicit line-tos.
type MoveTo struct {
	baseCommand
	Points []Point
}

func (MoveTo) Type() CommandType { return MoveToCommand }

// LineTo draws straight lines through Points.
type LineTo struct {
	baseCommand
	Points []Point
}

func (LineTo) Type() CommandType { return LineToCommand }

// HorizontalLineTo draws horizontal lines to each x in Numbers.
type HorizontalLineTo struct {
	baseCommand
	Numbers []Number
}

func (HorizontalLineTo) Type() CommandType { return HorizontalLineToCommand }

// VerticalLineTo draws vertical lines to each y in Numbers.
type VerticalLineTo struct {
	baseCommand
	Numbers []Number
}

func (VerticalLineTo) Type() CommandType { return VerticalLineToCommand }

// CurveTo draws cubic Béziers; Points come in (control1, control2, end) triples.
type CurveTo struct {
	baseCommand
	Points []Point
}

func (CurveTo) Type() CommandType { return CurveToCommand }

// SmoothCurveTo draws cubic Béziers with a reflected first control; Points come in pairs.
type SmoothCurveTo struct {
	baseCommand
	Points []Point
}

func (SmoothCurveTo) Type() CommandType { return SmoothCurveToCommand }

// QuadraticBezierCurveTo draws quadratic Béziers; Points come in (control, end) pairs.
type QuadraticBezierCurveTo struct {
	baseCommand
	Points []Point
}

func (QuadraticBezierCurveTo) Type() CommandType { return QuadraticBezierCurveToCommand }

// SmoothQuadraticBezierCurveTo draws quadratic Béziers with a reflected control.
// Points must come in pairs.
type SmoothQuadraticBezierCurveTo struct {
	baseCommand
	Points []Point
}

func (SmoothQuadraticBezierCurveTo) Type() CommandType { return SmoothQuadraticBezierCurveToCommand }

// EllipticalArc draws one or more elliptical arcs.
type EllipticalArc struct {
	baseCommand
	Arcs []Arc
}

func (EllipticalArc) Type() CommandType { return EllipticalArcCommand }

// ClosePath closes the current subpath.
type ClosePath struct {
	baseCommand
}

func (ClosePath) Type() CommandType { return ClosePathCommand }

// Subpath is a non-empty run of commands, ending after ClosePath when present.
type Subpath []Command

// Path is the parse result: zero or more subpaths.
type Path []Subpath

// Commands returns all commands of the path in order.
func (p Path) Commands() []Command {
	var commands []Command
	for _, subpath := range p {
		commands = append(commands, subpath...)
	}
	return commands
}

// PointsOf returns the point operands of commands that carry points, nil otherwise.
func PointsOf(c Command) []Point {
	switch c := c.(type) {
	case MoveTo:
		return c.Points
	case LineTo:
		return c.Points
	case CurveTo:
		return c.Points
	case SmoothCurveTo:
		return c.Points
	case QuadraticBezierCurveTo:
		return c.Points
	case SmoothQuadraticBezierCurveTo:
		return c.Points
	}
	return nil
}
