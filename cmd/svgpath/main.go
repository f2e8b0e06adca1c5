package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/shibukawa/svgpath"
)

// version is overwritten at build time with -ldflags "-X main.version=..."
var version = "v0.1.0"

var (
	ErrNoInput     = errors.New("no path data given")
	ErrNotMarkdown = errors.New("not a markdown file")
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CLI represents the command-line interface
type CLI struct {
	Config  string     `help:"Configuration file path" default:"svgpath.yaml"`
	Verbose bool       `help:"Enable verbose output" short:"v"`
	Quiet   bool       `help:"Suppress output" short:"q"`
	Lex     LexCmd     `cmd:"" help:"Print the tokens of path data"`
	Parse   ParseCmd   `cmd:"" help:"Print the parsed structure of path data"`
	Format  FormatCmd  `cmd:"" help:"Rewrite path data in a normalized form"`
	Check   CheckCmd   `cmd:"" help:"Parse and lint path data found in SVG, Markdown or text files"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintf(ctx.Stdout, "svgpath %s\n", version)
	return err
}

// readPathData returns arg itself, or stdin when arg is empty or "-"
func readPathData(ctx *Context, arg string) (string, error) {
	if arg != "" && arg != "-" {
		return arg, nil
	}

	if ctx.Stdin == nil {
		return "", ErrNoInput
	}

	data, err := io.ReadAll(ctx.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	return strings.TrimRight(string(data), "\r\n"), nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI

	exitCode := -1

	parser, err := kong.New(&cli,
		kong.Name("svgpath"),
		kong.Description("Lex, parse, format and check SVG path data."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	kctx, err := parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}

	if err != nil {
		color.New(color.FgRed).Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	appCtx := &Context{
		Config:  cli.Config,
		Verbose: cli.Verbose,
		Quiet:   cli.Quiet,
		Stdin:   stdin,
		Stdout:  stdout,
		Stderr:  stderr,
	}

	if cli.Verbose {
		svgpath.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer svgpath.SetLogger(nil)
	}

	if err := kctx.Run(appCtx); err != nil {
		if !cli.Quiet || !errors.Is(err, ErrCheckFailed) {
			color.New(color.FgRed).Fprintf(stderr, "Error: %v\n", err)
		}

		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
