package lint

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/shibukawa/svgpath/parser"
)

// Sentinel errors
var (
	ErrInvalidRule    = errors.New("invalid lint rule")
	ErrRuleEvaluation = errors.New("lint rule evaluation failed")
	ErrRuleResultType = errors.New("lint rule must evaluate to bool")
)

// Rule is a CEL expression that must hold for every command.
//
// The expression sees these variables:
//
//	command  map: type, letter, relative, operands, points ([[x, y]...]),
//	         numbers ([n...]), arcs ([[rx, ry, rotation, large, sweep, x, y]...])
//	index    position of the command in the whole path
//	subpath  index of the subpath holding the command
//	path     map: commands, subpaths
//
// A false result reports Message for that command.
type Rule struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
	Message    string `yaml:"message"`
}

type compiledRule struct {
	rule    Rule
	program cel.Program
}

func newRuleEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.HomogeneousAggregateLiterals(),
		cel.EagerlyValidateDeclarations(true),
		cel.Variable("command", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("index", cel.IntType),
		cel.Variable("subpath", cel.IntType),
		cel.Variable("path", cel.MapType(cel.StringType, cel.IntType)),
	)
}

func compileRules(rules []Rule) ([]*compiledRule, error) {
	if len(rules) == 0 {
		return nil, nil
	}

	env, err := newRuleEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create rule environment: %w", err)
	}

	compiled := make([]*compiledRule, 0, len(rules))

	for _, rule := range rules {
		if rule.Name == "" {
			return nil, fmt.Errorf("%w: rule name is empty", ErrInvalidRule)
		}

		ast, issues := env.Compile(rule.Expression)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRule, rule.Name, issues.Err())
		}

		if !ast.OutputType().IsExactType(cel.BoolType) && !ast.OutputType().IsExactType(cel.DynType) {
			return nil, fmt.Errorf("%w: %s: result type is %s", ErrRuleResultType, rule.Name, ast.OutputType())
		}

		program, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRule, rule.Name, err)
		}

		compiled = append(compiled, &compiledRule{rule: rule, program: program})
	}

	return compiled, nil
}

func (r *compiledRule) check(command parser.Command, index, subpath int, path parser.Path, total int) (*Issue, error) {
	activation := map[string]any{
		"command": commandVariables(command),
		"index":   index,
		"subpath": subpath,
		"path": map[string]any{
			"commands": total,
			"subpaths": len(path),
		},
	}

	result, _, err := r.program.Eval(activation)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRuleEvaluation, r.rule.Name, err)
	}

	ok, isBool := result.Value().(bool)
	if !isBool {
		return nil, fmt.Errorf("%w: %s returned %v", ErrRuleResultType, r.rule.Name, result.Value())
	}

	if ok {
		return nil, nil
	}

	message := r.rule.Message
	if message == "" {
		message = fmt.Sprintf("%s does not satisfy %s", command.Type(), r.rule.Expression)
	}

	return &Issue{
		Rule:     r.rule.Name,
		Message:  message,
		Command:  index,
		Location: command.SourceLocation(),
	}, nil
}

func commandVariables(command parser.Command) map[string]any {
	points := []any{}
	for _, p := range parser.PointsOf(command) {
		points = append(points, []any{p.X.Value, p.Y.Value})
	}

	numbers := []any{}
	arcs := []any{}

	switch c := command.(type) {
	case parser.HorizontalLineTo:
		for _, n := range c.Numbers {
			numbers = append(numbers, n.Value)
		}
	case parser.VerticalLineTo:
		for _, n := range c.Numbers {
			numbers = append(numbers, n.Value)
		}
	case parser.EllipticalArc:
		for _, a := range c.Arcs {
			arcs = append(arcs, []any{
				a.Radius.X.Value, a.Radius.Y.Value, a.XAxisRotation.Value,
				a.Flags.X.Value, a.Flags.Y.Value, a.End.X.Value, a.End.Y.Value,
			})
		}
	}

	return map[string]any{
		"type":     command.Type().String(),
		"letter":   string(command.Type().Letter(command.Position())),
		"relative": command.Position() == parser.Relative,
		"operands": OperandCount(command),
		"points":   points,
		"numbers":  numbers,
		"arcs":     arcs,
	}
}
