// Package svgpath lexes and parses the path data of SVG <path d="..."> attributes.
//
// LexPath turns the text into tokens, ParsePath turns it into subpaths of
// typed commands. Both fail fast and report a *parsercommon.Error with the
// kind, message and byte range of the problem.
package svgpath

import (
	"errors"

	"github.com/shibukawa/svgpath/parser"
	cmn "github.com/shibukawa/svgpath/parser/parsercommon"
	"github.com/shibukawa/svgpath/tokenizer"
)

// LexPath tokenizes path data. The last token is always EOF.
func LexPath(source string) ([]tokenizer.Token, error) {
	tokens, err := tokenizer.Tokenize(source)
	if err != nil {
		logFailure("lex", source, err)
		return nil, err
	}

	Logger().Debug("lexed path data", "bytes", len(source), "tokens", len(tokens))

	return tokens, nil
}

// ParsePath lexes and parses path data. Empty input gives an empty path.
func ParsePath(source string) (parser.Path, error) {
	tokens, err := LexPath(source)
	if err != nil {
		return nil, err
	}

	path, err := parser.Parse(tokens)
	if err != nil {
		logFailure("parse", source, err)
		return nil, err
	}

	Logger().Debug("parsed path data", "subpaths", len(path), "commands", len(path.Commands()))

	return path, nil
}

func logFailure(stage, source string, err error) {
	logger := Logger()

	var perr *cmn.Error
	if errors.As(err, &perr) {
		if loc, ok := perr.Location(); ok {
			line, column := cmn.LineColumn(source, loc.Start)
			logger.Debug(stage+" failed", "kind", perr.Kind(), "line", line, "column", column, "error", err)

			return
		}
	}

	logger.Debug(stage+" failed", "error", err)
}
