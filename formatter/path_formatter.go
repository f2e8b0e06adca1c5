package formatter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shibukawa/svgpath/parser"
)

// ErrInvalidSeparator is returned for separators other than " " and ",".
var ErrInvalidSeparator = errors.New("invalid separator")

// KeepOriginal as precision writes every number with its source text.
const KeepOriginal = -1

// Options controls how paths are written.
type Options struct {
	// Precision rounds numbers to this many fractional digits.
	// KeepOriginal writes the lexed text unchanged.
	Precision int
	// Compact drops every space the tokenizer does not need.
	Compact bool
	// Separator joins the two coordinates of a point.
	Separator string
}

// DefaultOptions keeps the original number text and separates with spaces.
func DefaultOptions() Options {
	return Options{
		Precision: KeepOriginal,
		Separator: " ",
	}
}

// PathFormatter writes parsed paths back to path data text
type PathFormatter struct {
	options Options
}

// NewPathFormatter creates a new path formatter
func NewPathFormatter(options Options) (*PathFormatter, error) {
	if options.Separator == "" {
		options.Separator = " "
	}

	if options.Separator != " " && options.Separator != "," {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeparator, options.Separator)
	}

	if options.Precision < KeepOriginal {
		options.Precision = KeepOriginal
	}

	return &PathFormatter{options: options}, nil
}

// FormatString parses source and formats the result.
func (f *PathFormatter) FormatString(source string) (string, error) {
	path, err := parser.ParseString(source)
	if err != nil {
		return "", fmt.Errorf("failed to parse path data: %w", err)
	}

	return f.Format(path), nil
}

// Format writes path as path data. ClosePath is always written as "Z".
func (f *PathFormatter) Format(path parser.Path) string {
	w := &pathWriter{formatter: f}

	for _, subpath := range path {
		for _, command := range subpath {
			w.command(command)
		}
	}

	return w.sb.String()
}

// pathWriter tracks the last written byte so compact output only inserts
// a space where two numbers would otherwise merge.
type pathWriter struct {
	formatter *PathFormatter
	sb        strings.Builder
	afterNum  bool
}

func (w *pathWriter) command(command parser.Command) {
	if w.sb.Len() > 0 && !w.formatter.options.Compact {
		w.sb.WriteByte(' ')
	}

	w.sb.WriteByte(command.Type().Letter(command.Position()))
	w.afterNum = false

	switch c := command.(type) {
	case parser.HorizontalLineTo:
		w.numbers(c.Numbers)
	case parser.VerticalLineTo:
		w.numbers(c.Numbers)
	case parser.EllipticalArc:
		for _, arc := range c.Arcs {
			w.point(arc.Radius)
			w.number(arc.XAxisRotation, " ")
			w.point(arc.Flags)
			w.point(arc.End)
		}
	case parser.ClosePath:
	default:
		for _, point := range parser.PointsOf(command) {
			w.point(point)
		}
	}
}

func (w *pathWriter) numbers(numbers []parser.Number) {
	for _, number := range numbers {
		w.number(number, " ")
	}
}

func (w *pathWriter) point(point parser.Point) {
	w.number(point.X, " ")
	w.number(point.Y, w.formatter.options.Separator)
}

// number writes text preceded by sep when not in compact mode
func (w *pathWriter) number(number parser.Number, sep string) {
	text := w.formatter.FormatNumber(number)

	switch {
	case !w.formatter.options.Compact:
		if w.afterNum {
			w.sb.WriteString(sep)
		} else {
			w.sb.WriteByte(' ')
		}
	case w.afterNum && !strings.HasPrefix(text, "-"):
		w.sb.WriteByte(' ')
	case w.afterNum && !endsWithDigit(w.sb.String()):
		w.sb.WriteByte(' ')
	}

	w.sb.WriteString(text)
	w.afterNum = true
}

// FormatNumber renders one operand according to the precision option.
func (f *PathFormatter) FormatNumber(number parser.Number) string {
	if f.options.Precision == KeepOriginal {
		if number.Source != "" {
			return number.Source
		}
		return strconv.FormatFloat(number.Value, 'f', -1, 64)
	}

	d, err := number.Decimal()
	if err != nil {
		d = decimal.NewFromFloat(number.Value)
	}

	rounded := d.Round(int32(f.options.Precision))
	if rounded.IsZero() {
		return "0"
	}

	return rounded.String()
}

func endsWithDigit(s string) bool {
	if s == "" {
		return false
	}
	last := s[len(s)-1]
	return last >= '0' && last <= '9'
}
