// Package lint checks parsed paths against built-in and user supplied rules.
package lint

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/shibukawa/svgpath/parser"
	cmn "github.com/shibukawa/svgpath/parser/parsercommon"
)

// Built-in rule names
const (
	RuleInitialMove = "require-initial-move"
	RuleEmptyMotion = "empty-motion"
	RuleMaxCommands = "max-commands"
)

// Issue is one rule violation.
type Issue struct {
	Rule    string
	Message string
	// Command is the index into path.Commands(), -1 for the whole path.
	Command  int
	Location cmn.Location
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s at %s", i.Rule, i.Message, i.Location)
}

// Options selects the checks to run.
type Options struct {
	RequireInitialMove bool
	// RejectEmptyMotion reports commands that take operands but have none, like a bare "M".
	RejectEmptyMotion bool
	// MaxCommands limits the number of commands, 0 for no limit.
	MaxCommands int
	Rules       []Rule
}

// Linter runs the configured checks. It is safe for concurrent use.
type Linter struct {
	options Options
	rules   []*compiledRule
}

// NewLinter compiles the expression rules in options.
func NewLinter(options Options) (*Linter, error) {
	rules, err := compileRules(options.Rules)
	if err != nil {
		return nil, err
	}

	return &Linter{options: options, rules: rules}, nil
}

// Check returns the issues found in path, in command order.
// An error means a rule could not be evaluated.
func (l *Linter) Check(path parser.Path) ([]Issue, error) {
	var issues []Issue

	commands := path.Commands()

	if l.options.RequireInitialMove && len(commands) > 0 && commands[0].Type() != parser.MoveToCommand {
		issues = append(issues, Issue{
			Rule:     RuleInitialMove,
			Message:  fmt.Sprintf("path starts with %s instead of MoveTo", commands[0].Type()),
			Command:  0,
			Location: commands[0].SourceLocation(),
		})
	}

	if l.options.MaxCommands > 0 && len(commands) > l.options.MaxCommands {
		issues = append(issues, Issue{
			Rule:     RuleMaxCommands,
			Message:  fmt.Sprintf("path has %d commands, limit is %d", len(commands), l.options.MaxCommands),
			Command:  l.options.MaxCommands,
			Location: commands[l.options.MaxCommands].SourceLocation(),
		})
	}

	index := 0

	for subpathIndex, subpath := range path {
		for _, command := range subpath {
			if l.options.RejectEmptyMotion && command.Type() != parser.ClosePathCommand && OperandCount(command) == 0 {
				issues = append(issues, Issue{
					Rule:     RuleEmptyMotion,
					Message:  fmt.Sprintf("%s has no operands", command.Type()),
					Command:  index,
					Location: command.SourceLocation(),
				})
			}

			for _, rule := range l.rules {
				issue, err := rule.check(command, index, subpathIndex, path, len(commands))
				if err != nil {
					return nil, err
				}

				if issue != nil {
					issues = append(issues, *issue)
				}
			}

			index++
		}
	}

	slices.SortStableFunc(issues, func(a, b Issue) int {
		return cmp.Compare(a.Command, b.Command)
	})

	return issues, nil
}

// OperandCount returns the number of points, numbers or arcs a command carries.
func OperandCount(command parser.Command) int {
	switch c := command.(type) {
	case parser.HorizontalLineTo:
		return len(c.Numbers)
	case parser.VerticalLineTo:
		return len(c.Numbers)
	case parser.EllipticalArc:
		return len(c.Arcs)
	case parser.ClosePath:
		return 0
	default:
		return len(parser.PointsOf(command))
	}
}
