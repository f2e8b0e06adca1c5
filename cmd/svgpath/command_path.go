package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/shibukawa/svgpath"
	"github.com/shibukawa/svgpath/formatter"
)

// LexCmd represents the lex command
type LexCmd struct {
	Path   string `arg:"" optional:"" help:"Path data (default: stdin)"`
	Format string `short:"f" enum:"table,json,yaml" default:"table" help:"Output format (table, json, yaml)"`
}

// Run executes the lex command
func (cmd *LexCmd) Run(ctx *Context) error {
	source, err := readPathData(ctx, cmd.Path)
	if err != nil {
		return err
	}

	tokens, err := svgpath.LexPath(source)
	if err != nil {
		return describeError(source, err)
	}

	views := tokenViews(tokens)

	switch OutputFormat(cmd.Format) {
	case FormatJSON:
		return writeJSON(ctx.Stdout, views)
	case FormatYAML:
		return writeYAML(ctx.Stdout, views)
	default:
		return writeTokenTable(ctx.Stdout, views)
	}
}

// ParseCmd represents the parse command
type ParseCmd struct {
	Path   string `arg:"" optional:"" help:"Path data (default: stdin)"`
	Format string `short:"f" enum:"json,yaml" default:"json" help:"Output format (json, yaml)"`
}

// Run executes the parse command
func (cmd *ParseCmd) Run(ctx *Context) error {
	source, err := readPathData(ctx, cmd.Path)
	if err != nil {
		return err
	}

	path, err := svgpath.ParsePath(source)
	if err != nil {
		return describeError(source, err)
	}

	view := pathView(path)

	if OutputFormat(cmd.Format) == FormatYAML {
		return writeYAML(ctx.Stdout, view)
	}

	return writeJSON(ctx.Stdout, view)
}

// FormatCmd represents the format command
type FormatCmd struct {
	Path      string `arg:"" optional:"" help:"Path data (default: stdin)"`
	Precision *int   `short:"p" help:"Round numbers to this many fractional digits (-1 keeps the source text)"`
	Compact   bool   `short:"c" help:"Drop every space that is not needed"`
	Separator string `short:"s" help:"Separator between point coordinates (',' or ' ')"`
	Markdown  string `short:"m" type:"existingfile" help:"Format the path data code blocks of a Markdown file instead"`
	Write     bool   `short:"w" help:"Write the formatted Markdown back to the file instead of stdout"`
}

// Run executes the format command
func (cmd *FormatCmd) Run(ctx *Context) error {
	config, err := svgpath.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	options := config.FormatterOptions()

	if cmd.Precision != nil {
		options.Precision = *cmd.Precision
	}

	if cmd.Compact {
		options.Compact = true
	}

	if cmd.Separator != "" {
		options.Separator = cmd.Separator
	}

	pathFormatter, err := formatter.NewPathFormatter(options)
	if err != nil {
		return err
	}

	if cmd.Markdown != "" {
		return cmd.formatMarkdown(ctx, formatter.NewMarkdownFormatter(pathFormatter, config.Source.MarkdownLanguages...))
	}

	source, err := readPathData(ctx, cmd.Path)
	if err != nil {
		return err
	}

	path, err := svgpath.ParsePath(source)
	if err != nil {
		return describeError(source, err)
	}

	_, err = fmt.Fprintln(ctx.Stdout, pathFormatter.Format(path))

	return err
}

func (cmd *FormatCmd) formatMarkdown(ctx *Context, markdownFormatter *formatter.MarkdownFormatter) error {
	if !formatter.IsMarkdownFile(cmd.Markdown) {
		return fmt.Errorf("%w: %s", ErrNotMarkdown, cmd.Markdown)
	}

	file, err := os.Open(cmd.Markdown)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", cmd.Markdown, err)
	}
	defer file.Close()

	var formatted bytes.Buffer

	err = markdownFormatter.FormatFromReader(file, &formatted)
	if err != nil {
		return fmt.Errorf("failed to format %s: %w", cmd.Markdown, err)
	}

	formatted.WriteString("\n")

	if !cmd.Write {
		_, err = ctx.Stdout.Write(formatted.Bytes())
		return err
	}

	err = os.WriteFile(cmd.Markdown, formatted.Bytes(), 0o644)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", cmd.Markdown, err)
	}

	if !ctx.Quiet {
		fmt.Fprintf(ctx.Stderr, "Formatted: %s\n", cmd.Markdown)
	}

	return nil
}
