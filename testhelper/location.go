package testhelper

import (
	"strings"
	"testing"

	cmn "github.com/shibukawa/svgpath/parser/parsercommon"
)

// Span returns the location of the first occurrence of text in source.
func Span(t *testing.T, source, text string) cmn.Location {
	t.Helper()

	start := strings.Index(source, text)
	if start < 0 {
		t.Fatalf("%q does not occur in %q", text, source)
	}

	return cmn.NewRange(start, start+len(text))
}
