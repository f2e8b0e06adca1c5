package pathsource

import (
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	cmn "github.com/shibukawa/svgpath/parser/parsercommon"
)

// DefaultMarkdownLanguages are the fence info strings holding path data.
var DefaultMarkdownLanguages = []string{"svg-path", "path"}

// FromMarkdown collects fenced code blocks whose language is one of
// languages, plus the path elements of fenced svg blocks.
func FromMarkdown(content []byte, languages ...string) ([]Fragment, error) {
	if len(languages) == 0 {
		languages = DefaultMarkdownLanguages
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(content))

	var fragments []Fragment

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		codeBlock, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		lang := codeBlockLanguage(codeBlock, content)
		body, offset := codeBlockContent(codeBlock, content)
		line, _ := cmn.LineColumn(string(content), offset)

		switch {
		case slices.Contains(languages, lang):
			if strings.TrimSpace(body) == "" {
				return ast.WalkSkipChildren, nil
			}

			fragments = append(fragments, Fragment{
				Origin:  OriginMarkdown,
				Element: lang,
				Line:    line,
				Data:    strings.TrimSpace(body),
			})

		case lang == "svg":
			embedded, err := FromSVGString(body)
			if err != nil {
				return ast.WalkStop, err
			}

			for _, fragment := range embedded {
				fragment.Origin = OriginMarkdown
				fragment.Line = line
				fragments = append(fragments, fragment)
			}
		}

		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}

	return fragments, nil
}

// codeBlockLanguage returns the first word of the fence info string
func codeBlockLanguage(codeBlock *ast.FencedCodeBlock, content []byte) string {
	if codeBlock.Info == nil {
		return ""
	}

	segment := codeBlock.Info.Segment
	fields := strings.Fields(string(content[segment.Start:segment.Stop]))

	if len(fields) == 0 {
		return ""
	}

	return strings.ToLower(fields[0])
}

// codeBlockContent returns the block body and the offset of its first line
func codeBlockContent(codeBlock *ast.FencedCodeBlock, content []byte) (string, int) {
	var result strings.Builder

	lines := codeBlock.Lines()
	if lines == nil || lines.Len() == 0 {
		return "", 0
	}

	for i := range lines.Len() {
		line := lines.At(i)
		result.Write(content[line.Start:line.Stop])
	}

	return result.String(), lines.At(0).Start
}
