package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/harrison/sgrep/internal/logger"
	"github.com/harrison/sgrep/internal/search"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// FileName is the per-directory configuration file
const FileName = ".sgrep.yaml"

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents sgrep configuration options. Values come from defaults,
// then the configuration file, then command-line flags.
type Config struct {
	// Recursive descends into nested directories
	Recursive bool `yaml:"recursive"`

	// Location prefixes matches with path:line:
	Location bool `yaml:"location"`

	// FollowLinks resolves symbolic links instead of skipping them
	FollowLinks bool `yaml:"follow_links"`

	// Insensitive enables case-insensitive literal search
	Insensitive bool `yaml:"insensitive"`

	// Warnings shows warning diagnostics
	Warnings bool `yaml:"warnings"`

	// Relative prints paths relative to the working directory
	Relative bool `yaml:"relative"`

	// Regex interprets the pattern as a regular expression
	Regex bool `yaml:"regex"`

	// Color selects colored output (auto, always, never)
	Color string `yaml:"color"`

	// LogLevel sets the tracing verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Color:    ColorNever,
		LogLevel: "warn",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Decoding over the defaults keeps every key the file leaves out
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .sgrep.yaml in the specified directory
// If the file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, FileName))
}

// LoadDefault looks for .sgrep.yaml in workDir, then in the user's home
// directory. The first file found wins; with neither present the defaults
// are returned.
func LoadDefault(workDir string) (*Config, error) {
	dirs := []string{workDir}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home)
	}

	for _, dir := range dirs {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return LoadConfigFromDir(dir)
		}
	}
	return DefaultConfig(), nil
}

// Flags carries command-line overrides. A nil field was not given on the
// command line and leaves the configured value untouched.
type Flags struct {
	Recursive   *bool
	Location    *bool
	FollowLinks *bool
	Insensitive *bool
	Warnings    *bool
	Relative    *bool
	Regex       *bool
	Color       *bool
	LogLevel    *string
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(f Flags) {
	mergeBool(&c.Recursive, f.Recursive)
	mergeBool(&c.Location, f.Location)
	mergeBool(&c.FollowLinks, f.FollowLinks)
	mergeBool(&c.Insensitive, f.Insensitive)
	mergeBool(&c.Warnings, f.Warnings)
	mergeBool(&c.Relative, f.Relative)
	mergeBool(&c.Regex, f.Regex)
	if f.Color != nil {
		if *f.Color {
			c.Color = ColorAlways
		} else {
			c.Color = ColorNever
		}
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
}

func mergeBool(dst *bool, flag *bool) {
	if flag != nil {
		*dst = *flag
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// Build resolves the configuration into immutable search options.
// A pattern that is not a valid regular expression is a fatal error and no
// options are returned. workDir is kept as given (made absolute) and also
// canonicalized, so paths render relative to it whether or not they were
// reached through followed links.
func (c *Config) Build(pattern, workDir string) (search.Options, error) {
	if err := c.Validate(); err != nil {
		return search.Options{}, err
	}

	wd, err := filepath.Abs(workDir)
	if err != nil {
		return search.Options{}, fmt.Errorf("resolve working directory: %w", err)
	}
	canonical := wd
	if resolved, err := filepath.EvalSymlinks(wd); err == nil {
		canonical = resolved
	}

	opts := search.Options{
		Recursive:         c.Recursive,
		ShowLocation:      c.Location,
		FollowLinks:       c.FollowLinks,
		ShowWarnings:      c.Warnings,
		RelativePaths:     c.Relative,
		WorkingDir:        canonical,
		LogicalWorkingDir: wd,
	}

	if c.Regex {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return search.Options{}, fmt.Errorf("invalid regular expression %q: %w", pattern, err)
		}
		opts.Pattern = search.RegexPattern(re)
	} else {
		opts.Pattern = search.LiteralPattern(pattern)
		opts.CaseInsensitive = c.Insensitive
	}

	return opts, nil
}

// UseColor decides whether output to f is colorized.
func (c *Config) UseColor(f *os.File) bool {
	switch c.Color {
	case ColorAlways:
		return os.Getenv("NO_COLOR") == ""
	case ColorAuto:
		if os.Getenv("NO_COLOR") != "" || f == nil {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	default:
		return false
	}
}
