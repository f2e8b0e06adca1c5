package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/shibukawa/svgpath/parser"
	cmn "github.com/shibukawa/svgpath/parser/parsercommon"
	"github.com/shibukawa/svgpath/tokenizer"
)

// OutputFormat selects how lex and parse results are printed
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

type tokenView struct {
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

func tokenViews(tokens []tokenizer.Token) []tokenView {
	views := make([]tokenView, 0, len(tokens))
	for _, token := range tokens {
		views = append(views, tokenView{
			Type:  token.Type.String(),
			Value: token.Value,
			Start: token.Location.Start,
			End:   token.Location.End,
		})
	}
	return views
}

type pointView [2]float64

type arcView struct {
	Radius        pointView `json:"radius" yaml:"radius"`
	XAxisRotation float64   `json:"x_axis_rotation" yaml:"x_axis_rotation"`
	LargeArc      float64   `json:"large_arc" yaml:"large_arc"`
	Sweep         float64   `json:"sweep" yaml:"sweep"`
	End           pointView `json:"end" yaml:"end"`
}

type commandView struct {
	Type     string      `json:"type" yaml:"type"`
	Position string      `json:"position" yaml:"position"`
	Start    int         `json:"start" yaml:"start"`
	End      int         `json:"end" yaml:"end"`
	Points   []pointView `json:"points,omitempty" yaml:"points,omitempty"`
	Numbers  []float64   `json:"numbers,omitempty" yaml:"numbers,omitempty"`
	Arcs     []arcView   `json:"arcs,omitempty" yaml:"arcs,omitempty"`
}

func point(p parser.Point) pointView {
	return pointView{p.X.Value, p.Y.Value}
}

func pathView(path parser.Path) [][]commandView {
	subpaths := make([][]commandView, 0, len(path))

	for _, subpath := range path {
		commands := make([]commandView, 0, len(subpath))

		for _, command := range subpath {
			loc := command.SourceLocation()
			view := commandView{
				Type:     command.Type().String(),
				Position: command.Position().String(),
				Start:    loc.Start,
				End:      loc.End,
			}

			switch c := command.(type) {
			case parser.HorizontalLineTo:
				for _, n := range c.Numbers {
					view.Numbers = append(view.Numbers, n.Value)
				}
			case parser.VerticalLineTo:
				for _, n := range c.Numbers {
					view.Numbers = append(view.Numbers, n.Value)
				}
			case parser.EllipticalArc:
				for _, a := range c.Arcs {
					view.Arcs = append(view.Arcs, arcView{
						Radius:        point(a.Radius),
						XAxisRotation: a.XAxisRotation.Value,
						LargeArc:      a.Flags.X.Value,
						Sweep:         a.Flags.Y.Value,
						End:           point(a.End),
					})
				}
			default:
				for _, p := range parser.PointsOf(command) {
					view.Points = append(view.Points, point(p))
				}
			}

			commands = append(commands, view)
		}

		subpaths = append(subpaths, commands)
	}

	return subpaths
}

func writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(value)
}

func writeYAML(w io.Writer, value any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	_, err = w.Write(data)

	return err
}

func writeTokenTable(w io.Writer, views []tokenView) error {
	caser := cases.Title(language.English)
	table := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(table, "TYPE\tVALUE\tLOCATION")

	for _, view := range views {
		fmt.Fprintf(table, "%s\t%s\t%s\n", caser.String(view.Type), view.Value, cmn.NewRange(view.Start, view.End))
	}

	return table.Flush()
}

// describeError adds the line and column of a located error
func describeError(source string, err error) error {
	var perr *cmn.Error
	if !errors.As(err, &perr) {
		return err
	}

	loc, ok := perr.Location()
	if !ok {
		return err
	}

	line, column := cmn.LineColumn(source, loc.Start)

	return fmt.Errorf("%d:%d: %w", line, column, err)
}
