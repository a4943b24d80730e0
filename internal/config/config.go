package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the evaluator section of sysf.yaml.
type Config struct {
	// MaxDepth bounds the nesting of evaluation calls. Zero disables the
	// guard; omitted means DefaultMaxDepth.
	MaxDepth *int `yaml:"max_depth,omitempty"`

	// Application is either "scoped" (default) or "caller".
	//
	// In scoped mode every call evaluates its body in a fresh frame built from
	// the closure's captured frame, and the parameter disappears when the call
	// returns. Caller mode binds the parameter into the frame of the call site
	// and leaves it there, as older sessions did.
	Application string `yaml:"application,omitempty"`

	Log LogConfig `yaml:"log,omitempty"`
}

// LogConfig controls the session logger.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error, none.
	Level string `yaml:"level,omitempty"`
	// File appends log output to a file instead of stderr.
	File string `yaml:"file,omitempty"`
	// Color enables ANSI colours; ignored when the output is not a terminal.
	Color bool `yaml:"color,omitempty"`
}

var logLevels = []string{"trace", "debug", "info", "warn", "error", "none"}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig reads and validates a config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses config data. path is only used in error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig walks from dir towards the filesystem root and returns the first
// config file found, or "" when there is none.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	if c.MaxDepth != nil && *c.MaxDepth < 0 {
		return fmt.Errorf("%s: max_depth must not be negative, got %d", path, *c.MaxDepth)
	}

	switch c.Application {
	case "", ApplicationScoped, ApplicationCaller:
	default:
		return fmt.Errorf("%s: application must be %q or %q, got %q",
			path, ApplicationScoped, ApplicationCaller, c.Application)
	}

	if c.Log.Level != "" && !isLogLevel(c.Log.Level) {
		return fmt.Errorf("%s: log.level must be one of %s, got %q",
			path, strings.Join(logLevels, ", "), c.Log.Level)
	}
	return nil
}

// setDefaults fills in default values for omitted fields.
func (c *Config) setDefaults() {
	if c.MaxDepth == nil {
		depth := DefaultMaxDepth
		c.MaxDepth = &depth
	}
	if c.Application == "" {
		c.Application = ApplicationScoped
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Depth returns the effective depth limit; zero means unlimited.
func (c *Config) Depth() int {
	if c == nil || c.MaxDepth == nil {
		return DefaultMaxDepth
	}
	return *c.MaxDepth
}

// ScopedApplication reports whether calls get their own frame.
func (c *Config) ScopedApplication() bool {
	return c == nil || c.Application != ApplicationCaller
}

func isLogLevel(level string) bool {
	for _, l := range logLevels {
		if strings.EqualFold(l, level) {
			return true
		}
	}
	return false
}
