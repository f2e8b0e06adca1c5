package formatter

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/shibukawa/svgpath/pathsource"
)

// MarkdownFormatter formats path data code blocks within Markdown files
type MarkdownFormatter struct {
	pathFormatter *PathFormatter
	blockStartRe  *regexp.Regexp
	blockEndRe    *regexp.Regexp
}

// NewMarkdownFormatter creates a new Markdown formatter.
// An empty languages list falls back to pathsource.DefaultMarkdownLanguages.
func NewMarkdownFormatter(pathFormatter *PathFormatter, languages ...string) *MarkdownFormatter {
	if len(languages) == 0 {
		languages = pathsource.DefaultMarkdownLanguages
	}

	quoted := make([]string, len(languages))
	for i, lang := range languages {
		quoted[i] = regexp.QuoteMeta(lang)
	}

	return &MarkdownFormatter{
		pathFormatter: pathFormatter,
		blockStartRe:  regexp.MustCompile(`^(\s*)\x60{3}(?:` + strings.Join(quoted, "|") + `)\s*$`),
		blockEndRe:    regexp.MustCompile(`^(\s*)\x60{3}\s*$`),
	}
}

// Format formats path data code blocks within a Markdown document.
// Blocks that fail to parse are copied unchanged.
func (f *MarkdownFormatter) Format(markdown string) (string, error) {
	var result strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(markdown))

	var inPathBlock bool
	var blockContent strings.Builder
	var blockIndent string

	for scanner.Scan() {
		line := scanner.Text()

		if !inPathBlock {
			if match := f.blockStartRe.FindStringSubmatch(line); match != nil {
				inPathBlock = true
				blockIndent = match[1]
				blockContent.Reset()
			}

			result.WriteString(line)
			result.WriteString("\n")
			continue
		}

		if f.blockEndRe.MatchString(line) {
			inPathBlock = false
			f.writeBlock(&result, blockContent.String(), blockIndent)
			result.WriteString(line)
			result.WriteString("\n")
			continue
		}

		blockContent.WriteString(strings.TrimPrefix(line, blockIndent))
		blockContent.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error reading markdown: %w", err)
	}

	// unterminated block: keep what was collected
	if inPathBlock {
		result.WriteString(blockContent.String())
	}

	return strings.TrimRight(result.String(), "\n"), nil
}

func (f *MarkdownFormatter) writeBlock(result *strings.Builder, content, indent string) {
	if strings.TrimSpace(content) == "" {
		result.WriteString(content)
		return
	}

	formatted, err := f.pathFormatter.FormatString(content)
	if err != nil {
		for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
			result.WriteString(indent)
			result.WriteString(line)
			result.WriteString("\n")
		}
		return
	}

	result.WriteString(indent)
	result.WriteString(formatted)
	result.WriteString("\n")
}

// FormatFromReader formats path data code blocks from a reader and writes to a writer
func (f *MarkdownFormatter) FormatFromReader(reader io.Reader, writer io.Writer) error {
	input, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	formatted, err := f.Format(string(input))
	if err != nil {
		return fmt.Errorf("failed to format markdown: %w", err)
	}

	_, err = writer.Write([]byte(formatted))

	return err
}

// IsMarkdownFile checks if a file is a Markdown file
func IsMarkdownFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".md" || ext == ".markdown"
}
