package svgpath

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/shibukawa/svgpath/formatter"
	"github.com/shibukawa/svgpath/lint"
	"github.com/shibukawa/svgpath/pathsource"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// DefaultConfigFile is the configuration file looked up by the CLI.
const DefaultConfigFile = "svgpath.yaml"

// maxPrecision bounds format.precision
const maxPrecision = 15

// Config represents the svgpath configuration
type Config struct {
	Format FormatConfig `yaml:"format"`
	Lint   LintConfig   `yaml:"lint"`
	Source SourceConfig `yaml:"source"`
}

// FormatConfig controls path data output
type FormatConfig struct {
	// Precision is the number of fractional digits, -1 keeps the source text
	Precision *int   `yaml:"precision"`
	Compact   bool   `yaml:"compact"`
	Separator string `yaml:"separator"`
}

// LintConfig selects the checks run by the check command
type LintConfig struct {
	RequireInitialMove bool        `yaml:"require_initial_move"`
	RejectEmptyMotion  bool        `yaml:"reject_empty_motion"`
	MaxCommands        int         `yaml:"max_commands"`
	Rules              []lint.Rule `yaml:"rules"`
}

// SourceConfig controls how path data is read from documents
type SourceConfig struct {
	NormalizeWidth    bool     `yaml:"normalize_width"`
	MarkdownLanguages []string `yaml:"markdown_languages"`
}

// LoadConfig loads configuration from the specified file.
// A missing file yields the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		Logger().Debug("config file not found, using defaults", "path", configPath)

		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML configuration. Unknown fields are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var config Config

	err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	// Expand environment variables before rules are compiled
	expandConfigEnvVars(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	Logger().Debug("config loaded", "rules", len(config.Lint.Rules), "precision", *config.Format.Precision)

	return &config, nil
}

// validateConfig validates the configuration for common errors and inconsistencies
func validateConfig(config *Config) error {
	precision := *config.Format.Precision
	if precision < formatter.KeepOriginal || precision > maxPrecision {
		return fmt.Errorf("%w: format.precision must be between -1 and %d, got %d", ErrConfigValidation, maxPrecision, precision)
	}

	if config.Format.Separator != " " && config.Format.Separator != "," {
		return fmt.Errorf("%w: format.separator '%s' is invalid: must be ' ' or ','", ErrConfigValidation, config.Format.Separator)
	}

	if config.Lint.MaxCommands < 0 {
		return fmt.Errorf("%w: lint.max_commands must be non-negative, got %d", ErrConfigValidation, config.Lint.MaxCommands)
	}

	seen := make(map[string]bool, len(config.Lint.Rules))

	for i, rule := range config.Lint.Rules {
		if rule.Name == "" {
			return fmt.Errorf("%w: lint.rules[%d]: name is required", ErrConfigValidation, i)
		}

		if rule.Expression == "" {
			return fmt.Errorf("%w: lint rule '%s': expression is required", ErrConfigValidation, rule.Name)
		}

		if seen[rule.Name] {
			return fmt.Errorf("%w: lint rule '%s' is defined more than once", ErrConfigValidation, rule.Name)
		}

		seen[rule.Name] = true
	}

	if _, err := lint.NewLinter(config.LintOptions()); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}

	for _, lang := range config.Source.MarkdownLanguages {
		if lang == "" {
			return fmt.Errorf("%w: source.markdown_languages must not contain empty names", ErrConfigValidation)
		}
	}

	return nil
}

func intPtr(i int) *int {
	return &i
}

func getDefaultConfig() *Config {
	return &Config{
		Format: FormatConfig{
			Precision: intPtr(formatter.KeepOriginal),
			Separator: " ",
		},
		Source: SourceConfig{
			MarkdownLanguages: append([]string(nil), pathsource.DefaultMarkdownLanguages...),
		},
	}
}

// applyDefaults fills in values the file left out
func applyDefaults(config *Config) {
	defaults := getDefaultConfig()

	if config.Format.Precision == nil {
		config.Format.Precision = defaults.Format.Precision
	}

	if config.Format.Separator == "" {
		config.Format.Separator = defaults.Format.Separator
	}

	if len(config.Source.MarkdownLanguages) == 0 {
		config.Source.MarkdownLanguages = defaults.Source.MarkdownLanguages
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedEnvVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareEnvVar   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return bareEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in string fields.
// Rule expressions are left alone since CEL strings may contain '$'.
func expandConfigEnvVars(config *Config) {
	config.Format.Separator = expandEnvVars(config.Format.Separator)

	for i, rule := range config.Lint.Rules {
		config.Lint.Rules[i].Message = expandEnvVars(rule.Message)
	}

	for i, lang := range config.Source.MarkdownLanguages {
		config.Source.MarkdownLanguages[i] = expandEnvVars(lang)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// FormatterOptions converts the format section for formatter.NewPathFormatter.
func (c *Config) FormatterOptions() formatter.Options {
	precision := formatter.KeepOriginal
	if c.Format.Precision != nil {
		precision = *c.Format.Precision
	}

	return formatter.Options{
		Precision: precision,
		Compact:   c.Format.Compact,
		Separator: c.Format.Separator,
	}
}

// LintOptions converts the lint section for lint.NewLinter.
func (c *Config) LintOptions() lint.Options {
	return lint.Options{
		RequireInitialMove: c.Lint.RequireInitialMove,
		RejectEmptyMotion:  c.Lint.RejectEmptyMotion,
		MaxCommands:        c.Lint.MaxCommands,
		Rules:              c.Lint.Rules,
	}
}

// SourceOptions converts the source section for pathsource.Extract.
func (c *Config) SourceOptions() pathsource.Options {
	return pathsource.Options{
		NormalizeWidth:    c.Source.NormalizeWidth,
		MarkdownLanguages: c.Source.MarkdownLanguages,
	}
}
