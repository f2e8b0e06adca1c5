package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	// keep tests away from any svgpath.yaml in the package directory
	if !containsFlag(args, "--config") {
		args = append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, args...)
	}

	var stdout, stderr bytes.Buffer

	code := run(args, strings.NewReader(stdin), &stdout, &stderr)

	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func containsFlag(args []string, flag string) bool {
	for _, arg := range args {
		if arg == flag || strings.HasPrefix(arg, flag+"=") {
			return true
		}
	}

	return false
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestVersionCmd(t *testing.T) {
	res := runCLI(t, "", "version")
	require.Equal(t, 0, res.code)
	require.Equal(t, "svgpath "+version+"\n", res.stdout)
}

func TestLexCmd(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		res := runCLI(t, "", "lex", "M1,2")
		require.Equal(t, 0, res.code, res.stderr)

		lines := strings.Split(strings.TrimRight(res.stdout, "\n"), "\n")
		require.Len(t, lines, 6)
		require.Contains(t, lines[0], "TYPE")
		require.Contains(t, lines[1], "Command")
		require.Contains(t, lines[1], "0-1")
		require.Contains(t, lines[2], "Number")
		require.Contains(t, lines[3], "Punc")
		require.Contains(t, lines[4], "Number")
		require.Contains(t, lines[5], "Eof")
	})

	t.Run("json", func(t *testing.T) {
		res := runCLI(t, "", "lex", "--format", "json", "1,2")
		require.Equal(t, 0, res.code, res.stderr)

		var tokens []tokenView
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &tokens))
		require.Equal(t, []tokenView{
			{Type: "NUMBER", Value: "1", Start: 0, End: 1},
			{Type: "PUNC", Value: ",", Start: 1, End: 2},
			{Type: "NUMBER", Value: "2", Start: 2, End: 3},
			{Type: "EOF", Start: 3, End: 3},
		}, tokens)
	})

	t.Run("yaml from stdin", func(t *testing.T) {
		res := runCLI(t, "m-1.5e2\n", "lex", "-f", "yaml")
		require.Equal(t, 0, res.code, res.stderr)

		var tokens []tokenView
		require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &tokens))
		require.Len(t, tokens, 3)
		require.Equal(t, "m", tokens[0].Value)
		require.Equal(t, "-1.5e2", tokens[1].Value)
		require.Equal(t, "EOF", tokens[2].Type)
	})

	t.Run("empty input", func(t *testing.T) {
		res := runCLI(t, "", "lex", "-f", "json", "-")
		require.Equal(t, 0, res.code, res.stderr)
		require.Contains(t, res.stdout, `"type": "EOF"`)
	})
}

func TestParseCmd(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		res := runCLI(t, "", "parse", "M 100 100 L 300 100 L 200 300 z")
		require.Equal(t, 0, res.code, res.stderr)

		var path [][]commandView
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &path))
		require.Len(t, path, 1)
		require.Len(t, path[0], 4)
		require.Equal(t, "MoveTo", path[0][0].Type)
		require.Equal(t, "Absolute", path[0][0].Position)
		require.Equal(t, []pointView{{100, 100}}, path[0][0].Points)
		require.Equal(t, 10, path[0][1].Start)
		require.Equal(t, 19, path[0][1].End)
		require.Equal(t, "ClosePath", path[0][3].Type)
		require.Empty(t, path[0][3].Points)
	})

	t.Run("yaml arcs and numbers", func(t *testing.T) {
		res := runCLI(t, "", "parse", "-f", "yaml", "h 5 a 5,5 0 1,0 10,10")
		require.Equal(t, 0, res.code, res.stderr)

		var path [][]commandView
		require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &path))
		require.Len(t, path, 1)
		require.Equal(t, "Relative", path[0][0].Position)
		require.Equal(t, []float64{5}, path[0][0].Numbers)
		require.Len(t, path[0][1].Arcs, 1)
		require.Equal(t, pointView{10, 10}, path[0][1].Arcs[0].End)
		require.Equal(t, 1.0, path[0][1].Arcs[0].LargeArc)
		require.Equal(t, 0.0, path[0][1].Arcs[0].Sweep)
	})

	t.Run("error has line and column", func(t *testing.T) {
		res := runCLI(t, "M 0 0\nC 1 1\n", "parse")
		require.Equal(t, 1, res.code)
		require.Empty(t, res.stdout)
		require.Contains(t, res.stderr, "Error: 2:1:")
		require.Contains(t, res.stderr, "expected points in multiples of 3 when parsing curve to command")
	})
}

func TestFormatCmd(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		res := runCLI(t, "", "format", "M 100 100 L 300 100 L 200 300 z")
		require.Equal(t, 0, res.code, res.stderr)
		require.Equal(t, "M 100 100 L 300 100 L 200 300 Z\n", res.stdout)
	})

	t.Run("flags", func(t *testing.T) {
		res := runCLI(t, "", "format", "--precision=1", "--compact", "M 10.04 -20 L 30 40 z")
		require.Equal(t, 0, res.code, res.stderr)
		require.Equal(t, "M10-20L30 40Z\n", res.stdout)
	})

	t.Run("config file", func(t *testing.T) {
		config := writeFile(t, t.TempDir(), "svgpath.yaml", "format:\n  separator: \",\"\n  precision: 2\n")

		res := runCLI(t, "", "--config", config, "format", "M 1.234 2 3 4.5678")
		require.Equal(t, 0, res.code, res.stderr)
		require.Equal(t, "M 1.23,2 3,4.57\n", res.stdout)
	})

	t.Run("flag overrides config", func(t *testing.T) {
		config := writeFile(t, t.TempDir(), "svgpath.yaml", "format:\n  separator: \",\"\n")

		res := runCLI(t, "", "--config", config, "format", "-s", " ", "M 1 2")
		require.Equal(t, 0, res.code, res.stderr)
		require.Equal(t, "M 1 2\n", res.stdout)
	})

	t.Run("invalid separator", func(t *testing.T) {
		res := runCLI(t, "", "format", "-s", ";", "M 1 2")
		require.Equal(t, 1, res.code)
		require.Contains(t, res.stderr, "separator")
	})

	t.Run("markdown", func(t *testing.T) {
		dir := t.TempDir()
		doc := writeFile(t, dir, "shapes.md", "# Shapes\n\n```svg-path\nM1,2L3-4z\n```\n\n```path\nM 1 X\n```\n")

		res := runCLI(t, "", "format", "--markdown", doc)
		require.Equal(t, 0, res.code, res.stderr)
		require.Equal(t, "# Shapes\n\n```svg-path\nM 1 2 L 3 -4 Z\n```\n\n```path\nM 1 X\n```\n", res.stdout)

		res = runCLI(t, "", "format", "-m", doc, "-w", "-c")
		require.Equal(t, 0, res.code, res.stderr)
		require.Empty(t, res.stdout)

		written, err := os.ReadFile(doc)
		require.NoError(t, err)
		require.Contains(t, string(written), "M1 2L3-4Z\n")
	})

	t.Run("markdown flag needs a markdown file", func(t *testing.T) {
		doc := writeFile(t, t.TempDir(), "shape.txt", "M 1 2")

		res := runCLI(t, "", "format", "-m", doc)
		require.Equal(t, 1, res.code)
		require.Contains(t, res.stderr, "not a markdown file")
	})

	t.Run("invalid config", func(t *testing.T) {
		config := writeFile(t, t.TempDir(), "svgpath.yaml", "format:\n  precision: 99\n")

		res := runCLI(t, "", "--config", config, "format", "M 1 2")
		require.Equal(t, 1, res.code)
		require.Contains(t, res.stderr, "format.precision")
	})
}

func TestCheckCmd(t *testing.T) {
	dir := t.TempDir()

	svgFile := writeFile(t, dir, "icon.svg", `<svg xmlns="http://www.w3.org/2000/svg">
  <path id="ok" d="M 0 0 L 10 10 z"/>
  <g>
    <path id="bad" d="M 0 0 C 1 1"/>
  </g>
</svg>
`)

	mdFile := writeFile(t, dir, "notes.md", "# Shapes\n\n```svg-path\nM 0 0\nL 1 X\n```\n")
	goodText := writeFile(t, dir, "good.txt", "M 1 1 L 2 2\n")
	lintText := writeFile(t, dir, "lint.txt", "L 1 1 M 2 2\n")

	t.Run("passing file", func(t *testing.T) {
		res := runCLI(t, "", "check", goodText)
		require.Equal(t, 0, res.code, res.stderr)
		require.Contains(t, res.stdout, "OK ")
		require.Contains(t, res.stdout, "(2 commands)")
	})

	t.Run("quiet hides OK lines", func(t *testing.T) {
		res := runCLI(t, "", "--quiet", "check", goodText)
		require.Equal(t, 0, res.code, res.stderr)
		require.Empty(t, res.stdout)
	})

	t.Run("svg", func(t *testing.T) {
		res := runCLI(t, "", "check", svgFile)
		require.Equal(t, 1, res.code)
		require.Contains(t, res.stdout, "path#ok")
		require.Contains(t, res.stderr, "path#bad:1:7:")
		require.Contains(t, res.stderr, "check failed: 1 problem(s)")
	})

	t.Run("markdown lines are document lines", func(t *testing.T) {
		res := runCLI(t, "", "check", mdFile)
		require.Equal(t, 1, res.code)
		require.Contains(t, res.stderr, ":5:5:")
	})

	t.Run("quiet failure prints only problems", func(t *testing.T) {
		res := runCLI(t, "", "-q", "check", mdFile)
		require.Equal(t, 1, res.code)
		require.NotContains(t, res.stderr, "Error:")
	})

	t.Run("lint rules from config", func(t *testing.T) {
		config := writeFile(t, t.TempDir(), "svgpath.yaml", `lint:
  require_initial_move: true
  rules:
    - name: small
      expression: "command.type != 'MoveTo' || command.points[0][0] < 2.0"
      message: "move target too far"
`)

		res := runCLI(t, "", "--config", config, "check", lintText, goodText)
		require.Equal(t, 1, res.code)
		require.Contains(t, res.stderr, "require-initial-move: path starts with LineTo instead of MoveTo")
		require.Contains(t, res.stderr, "small: move target too far")
		require.Contains(t, res.stderr, "check failed: 2 problem(s)")
		require.Contains(t, res.stdout, "good.txt")
	})

	t.Run("missing file", func(t *testing.T) {
		res := runCLI(t, "", "check", filepath.Join(dir, "nope.svg"))
		require.NotEqual(t, 0, res.code)
	})
}
