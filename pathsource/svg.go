package pathsource

import (
	"fmt"

	"github.com/beevik/etree"
)

// elements whose d attribute holds path data
var pathElements = map[string]bool{
	"path":          true,
	"glyph":         true,
	"missing-glyph": true,
}

// FromSVG returns the d attributes of path, glyph and missing-glyph
// elements in document order. Namespace prefixes are ignored.
func FromSVG(content []byte) ([]Fragment, error) {
	doc := etree.NewDocument()

	if err := doc.ReadFromBytes(content); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSVG, err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "svg" {
		return nil, ErrNotSVG
	}

	return collect(root, nil), nil
}

// collect walks elem depth first so fragments keep document order
func collect(elem *etree.Element, fragments []Fragment) []Fragment {
	for _, child := range elem.ChildElements() {
		if pathElements[child.Tag] && child.SelectAttr("d") != nil {
			fragments = append(fragments, fragmentOf(child))
		}

		fragments = collect(child, fragments)
	}

	return fragments
}

// FromSVGString is FromSVG for string input.
func FromSVGString(content string) ([]Fragment, error) {
	return FromSVG([]byte(content))
}

func fragmentOf(elem *etree.Element) Fragment {
	return Fragment{
		Origin:  OriginSVG,
		Element: elem.Tag,
		ID:      elem.SelectAttrValue("id", ""),
		Data:    elem.SelectAttrValue("d", ""),
	}
}
