package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/shibukawa/svgpath"
	"github.com/shibukawa/svgpath/lint"
	cmn "github.com/shibukawa/svgpath/parser/parsercommon"
	"github.com/shibukawa/svgpath/pathsource"
)

var ErrCheckFailed = errors.New("check failed")

// CheckCmd represents the check command
type CheckCmd struct {
	Files []string `arg:"" name:"file" help:"SVG, Markdown or text files holding path data" type:"existingfile"`
}

// Run executes the check command
func (cmd *CheckCmd) Run(ctx *Context) error {
	config, err := svgpath.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	linter, err := lint.NewLinter(config.LintOptions())
	if err != nil {
		return err
	}

	failures := 0

	for _, file := range cmd.Files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		fragments, err := pathsource.Extract(file, content, config.SourceOptions())
		if err != nil {
			color.New(color.FgRed).Fprintf(ctx.Stderr, "%v\n", err)
			failures++

			continue
		}

		for _, fragment := range fragments {
			failures += checkFragment(ctx, linter, file, fragment)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%w: %d problem(s)", ErrCheckFailed, failures)
	}

	return nil
}

// checkFragment reports the problems of one fragment and returns their count
func checkFragment(ctx *Context, linter *lint.Linter, file string, fragment pathsource.Fragment) int {
	report := func(loc cmn.Location, message string) {
		line, column := fragmentLineColumn(fragment, loc)
		color.New(color.FgRed).Fprintf(ctx.Stderr, "%s:%s:%d:%d: %s\n", file, fragment.Label(), line, column, message)
	}

	path, err := svgpath.ParsePath(fragment.Data)
	if err != nil {
		var perr *cmn.Error
		if errors.As(err, &perr) {
			loc, _ := perr.Location()
			report(loc, perr.Error())
		} else {
			report(cmn.Location{}, err.Error())
		}

		return 1
	}

	issues, err := linter.Check(path)
	if err != nil {
		report(cmn.Location{}, err.Error())
		return 1
	}

	for _, issue := range issues {
		report(issue.Location, issue.Rule+": "+issue.Message)
	}

	if len(issues) == 0 && !ctx.Quiet {
		color.New(color.FgGreen).Fprintf(ctx.Stdout, "OK %s:%s (%d commands)\n", file, fragment.Label(), len(path.Commands()))
	}

	return len(issues)
}

// fragmentLineColumn maps a location inside fragment data to the document
func fragmentLineColumn(fragment pathsource.Fragment, loc cmn.Location) (int, int) {
	line, column := cmn.LineColumn(fragment.Data, loc.Start)
	if fragment.Line > 0 {
		line += fragment.Line - 1
	}

	return line, column
}
