package testhelper

import (
	"strings"
	"testing"
)

// TrimIndent turns an indented raw string literal into test input.
// The first line is dropped, the indentation of the second line is removed
// from every line and remaining leading tabs become four spaces.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) < 2 {
		return ""
	}

	lines = lines[1:]
	indent := lines[0][:len(lines[0])-len(strings.TrimLeft(lines[0], " \t"))]

	for i, line := range lines {
		line = strings.TrimPrefix(line, indent)
		body := strings.TrimLeft(line, "\t")
		lines[i] = strings.Repeat("    ", len(line)-len(body)) + body
	}

	return strings.Join(lines, "\n")
}
