package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	cdsllog "github.com/Sw1zzi/cdsl-visual-tester/pkg/core/log"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "CDSL_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
	Pipeline PipelineConfig `toml:"pipeline" yaml:"pipeline"`
	Output   OutputConfig   `toml:"output" yaml:"output"`

	// path of the file the configuration was read from, empty for defaults
	source string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	// Locale of display names and labels (en, ru)
	Locale string `toml:"locale" yaml:"locale"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// PipelineConfig holds settings of the lexer/parser/interpreter pipeline
type PipelineConfig struct {
	MaxInputLength  int         `toml:"max_input_length" yaml:"max_input_length"`
	WarnUnknownTask bool        `toml:"warn_unknown_task" yaml:"warn_unknown_task"`
	Cache           CacheConfig `toml:"cache" yaml:"cache"`
}

// CacheConfig holds the result cache settings
type CacheConfig struct {
	Enabled  bool     `toml:"enabled" yaml:"enabled"`
	MaxItems int      `toml:"max_items" yaml:"max_items"`
	TTL      Duration `toml:"ttl" yaml:"ttl"`
}

// OutputConfig holds CLI output settings
type OutputConfig struct {
	// Format of interpret output (yaml, json, text)
	Format string `toml:"format" yaml:"format"`
	Color  bool   `toml:"color" yaml:"color"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

var (
	outputFormats = []string{"yaml", "json", "text"}
	logFormats    = []string{"text", "json"}
	locales       = []string{"en", "ru"}
)

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		General: GeneralConfig{Locale: "en"},
		Logging: LoggingConfig{Level: "warn", Format: "text"},
		Pipeline: PipelineConfig{
			MaxInputLength:  64 * 1024,
			WarnUnknownTask: true,
			Cache: CacheConfig{
				Enabled:  true,
				MaxItems: 64,
				TTL:      Duration{10 * time.Minute},
			},
		},
		Output: OutputConfig{Format: "yaml", Color: true},
	}
}

// Load loads configuration from a TOML or YAML file. Keys missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q: %s", ext, path)
	}

	cfg.applyDefaults()
	cfg.source = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from CDSL_CONFIG or the default
// locations, falling back to Default when no file exists
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	paths := []string{"./cdsl.toml"}
	if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", "cdsl", "config.toml"))
	}
	return paths
}

// Source returns the file the configuration was loaded from, or "" for
// built-in defaults
func (c *Config) Source() string {
	return c.source
}

// applyDefaults restores defaults for values set to empty in the file
func (c *Config) applyDefaults() {
	def := Default()

	if c.General.Locale == "" {
		c.General.Locale = def.General.Locale
	}
	c.General.Locale = strings.ToLower(c.General.Locale)

	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = def.Logging.Format
	}
	c.Logging.Format = strings.ToLower(c.Logging.Format)

	if c.Pipeline.MaxInputLength == 0 {
		c.Pipeline.MaxInputLength = def.Pipeline.MaxInputLength
	}
	if c.Pipeline.Cache.MaxItems == 0 {
		c.Pipeline.Cache.MaxItems = def.Pipeline.Cache.MaxItems
	}

	if c.Output.Format == "" {
		c.Output.Format = def.Output.Format
	}
	c.Output.Format = strings.ToLower(c.Output.Format)
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if !contains(locales, c.General.Locale) {
		return fmt.Errorf("general.locale %q: want one of %s", c.General.Locale, strings.Join(locales, ", "))
	}
	if _, err := cdsllog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if !contains(logFormats, c.Logging.Format) {
		return fmt.Errorf("logging.format %q: want one of %s", c.Logging.Format, strings.Join(logFormats, ", "))
	}
	if c.Pipeline.MaxInputLength < 0 {
		return fmt.Errorf("pipeline.max_input_length must not be negative, got %d", c.Pipeline.MaxInputLength)
	}
	if c.Pipeline.Cache.MaxItems < 0 {
		return fmt.Errorf("pipeline.cache.max_items must not be negative, got %d", c.Pipeline.Cache.MaxItems)
	}
	if c.Pipeline.Cache.TTL.Duration < 0 {
		return fmt.Errorf("pipeline.cache.ttl must not be negative, got %s", c.Pipeline.Cache.TTL.Duration)
	}
	if !contains(outputFormats, c.Output.Format) {
		return fmt.Errorf("output.format %q: want one of %s", c.Output.Format, strings.Join(outputFormats, ", "))
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
