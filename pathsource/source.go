// Package pathsource finds path data strings inside documents.
package pathsource

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors
var (
	ErrNotSVG     = errors.New("document root is not an svg element")
	ErrInvalidSVG = errors.New("invalid svg document")
)

// Origin tells what kind of document a fragment came from.
type Origin string

const (
	OriginText     Origin = "text"
	OriginSVG      Origin = "svg"
	OriginMarkdown Origin = "markdown"
)

// Fragment is one path data string found in a document.
type Fragment struct {
	Origin Origin
	// Element is the SVG tag or the Markdown fence language.
	Element string
	// ID is the element's id attribute, when present.
	ID string
	// Line is the 1-based line the data starts on, 0 when unknown.
	Line int
	Data string
}

// Label names the fragment for diagnostics.
func (f Fragment) Label() string {
	switch {
	case f.ID != "":
		return fmt.Sprintf("%s#%s", f.Element, f.ID)
	case f.Line > 0:
		return fmt.Sprintf("%s:%d", f.Element, f.Line)
	case f.Element != "":
		return f.Element
	default:
		return string(f.Origin)
	}
}

// Options controls extraction.
type Options struct {
	// NormalizeWidth folds full-width characters before the data is returned.
	NormalizeWidth bool
	// MarkdownLanguages lists fence info strings holding path data.
	MarkdownLanguages []string
}

// Extract picks the extractor from the file extension.
// Files that are neither SVG nor Markdown are a single fragment of path data.
func Extract(filename string, content []byte, options Options) ([]Fragment, error) {
	var (
		fragments []Fragment
		err       error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".svg":
		fragments, err = FromSVG(content)
	case ".md", ".markdown":
		fragments, err = FromMarkdown(content, options.MarkdownLanguages...)
	default:
		data := strings.TrimSpace(string(content))
		if data != "" {
			fragments = []Fragment{{Origin: OriginText, Line: 1, Data: data}}
		}
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	if options.NormalizeWidth {
		for i := range fragments {
			fragments[i].Data = NormalizeWidth(fragments[i].Data)
		}
	}

	return fragments, nil
}
