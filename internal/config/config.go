package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Payload formats understood by the loader
const (
	FormatArray    = "array"    // bare JSON array of groups
	FormatEnvelope = "envelope" // {"result": 1, "data": [...]}
)

// Config represents the application configuration
type Config struct {
	Source    string     `toml:"source" yaml:"source"`         // file path or http(s) URL of the groups payload
	Format    string     `toml:"format" yaml:"format"`         // FormatArray or FormatEnvelope
	LoadDelay Duration   `toml:"load_delay" yaml:"load_delay"` // wait before the single load
	LogFile   string     `toml:"log_file" yaml:"log_file"`
	Debug     bool       `toml:"debug" yaml:"debug"`
	UI        UISettings `toml:"ui" yaml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelpFooter bool `toml:"show_help_footer" yaml:"show_help_footer"`
}

// Duration is a time.Duration written as "1s", "250ms" in config files
type Duration time.Duration

// UnmarshalText parses a Go duration string
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText renders the duration in Go syntax
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Source:    "groups.json",
		Format:    FormatArray,
		LoadDelay: Duration(time.Second),
		LogFile:   "groupgrip.log",
		UI: UISettings{
			ShowHelpFooter: true,
		},
	}
}

// LoadFromPath loads configuration from a TOML or YAML file on top of the defaults
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late at load time
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return fmt.Errorf("source must not be empty")
	}
	switch c.Format {
	case FormatArray, FormatEnvelope:
	default:
		return fmt.Errorf("unknown payload format %q (want %s or %s)", c.Format, FormatArray, FormatEnvelope)
	}
	if c.LoadDelay < 0 {
		return fmt.Errorf("load delay must not be negative")
	}
	return nil
}
