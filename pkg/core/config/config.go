// ============================================================================
// pwdgen - Passwort-Generator
// ============================================================================
//
// Package:     config
// Description: Parameter table and application settings (TOML/YAML)
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	pwerrors "github.com/msto63/pwdgen/pkg/core/errors"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "PWDGEN_CONFIG"

// ComplexityTiers is the number of defined complexity tiers
const ComplexityTiers = 5

// Config holds the complete application configuration
type Config struct {
	Parameters ParametersConfig `toml:"parameters" yaml:"parameters"`
	Clipboard  ClipboardConfig  `toml:"clipboard" yaml:"clipboard"`
	Log        LogConfig        `toml:"log" yaml:"log"`

	// Source is the file the configuration was read from, empty for defaults
	Source string `toml:"-" yaml:"-"`
}

// ParametersConfig is the parameter table driving the window sliders
type ParametersConfig struct {
	Length     Bounds `toml:"length" yaml:"length"`
	Number     Bounds `toml:"number" yaml:"number"`
	Complexity Bounds `toml:"complexity" yaml:"complexity"`
}

// Bounds holds MIN, MAX and DEFAULT of one parameter
type Bounds struct {
	Min     int `toml:"min" yaml:"min" validate:"gte=1"`
	Max     int `toml:"max" yaml:"max" validate:"gtefield=Min"`
	Default int `toml:"default" yaml:"default" validate:"gtefield=Min,ltefield=Max"`
}

// ClipboardConfig selects the clipboard backend
type ClipboardConfig struct {
	Backend string `toml:"backend" yaml:"backend" validate:"oneof=system osc52 auto"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" yaml:"format" validate:"oneof=json text"`
	File   string `toml:"file" yaml:"file"`
}

// Default returns the built-in configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pwerrors.Newf(pwerrors.CodeConfigError, "config file not found: %s", path)
		}
		return nil, pwerrors.WrapWithCode(err, pwerrors.CodeConfigError, "failed to read config")
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, pwerrors.WrapWithCode(err, pwerrors.CodeConfigError, "failed to parse config")
		}
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, pwerrors.WrapWithCode(err, pwerrors.CodeConfigError, "failed to parse config")
		}
	}

	cfg.Source = path
	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from PWDGEN_CONFIG or the default
// locations. A .env file in the working directory is read first. Without
// any config file the built-in defaults are returned.
func LoadFromEnv() (*Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	path := os.Getenv(EnvConfigPath)
	if path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// Resolve loads the file given on the command line, or falls back to
// LoadFromEnv when path is empty
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	return LoadFromEnv()
}

// DefaultPaths lists the locations probed for a config file
func DefaultPaths() []string {
	paths := []string{
		"./pwdgen.toml",
		"./pwdgen.yaml",
	}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(dir, "pwdgen", "config.toml"),
			filepath.Join(dir, "pwdgen", "config.yaml"),
		)
	}
	return paths
}

// DefaultLogFile returns the log file used while the window is open
func DefaultLogFile() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "pwdgen", "pwdgen.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "pwdgen", "pwdgen.log")
}

// Validate checks the configuration and returns an INVALID_CONFIG error
// naming every offending field
func (c *Config) Validate() error {
	var problems []string

	if err := newValidator().Struct(c); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return pwerrors.WrapWithCode(err, pwerrors.CodeInvalidConfig, "invalid config")
		}
		for _, fe := range verrs {
			problems = append(problems, describeFieldError(fe))
		}
	}

	// The slider must only offer defined tiers.
	if c.Parameters.Complexity.Min > ComplexityTiers {
		problems = append(problems, fmt.Sprintf("parameters.complexity.min must be <= %d", ComplexityTiers))
	}
	if c.Parameters.Complexity.Max > ComplexityTiers {
		problems = append(problems, fmt.Sprintf("parameters.complexity.max must be <= %d", ComplexityTiers))
	}

	if len(problems) == 0 {
		return nil
	}
	return pwerrors.Newf(pwerrors.CodeInvalidConfig, "invalid config: %s", strings.Join(problems, "; ")).
		WithDetail("fields", len(problems))
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// Parameters
	applyBounds(&c.Parameters.Length, Bounds{Min: 4, Max: 64, Default: 8})
	applyBounds(&c.Parameters.Number, Bounds{Min: 1, Max: 50, Default: 1})
	applyBounds(&c.Parameters.Complexity, Bounds{Min: 1, Max: 5, Default: 1})

	// Clipboard
	if c.Clipboard.Backend == "" {
		c.Clipboard.Backend = "system"
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.Log.File == "" {
		c.Log.File = DefaultLogFile()
	}
}

func applyBounds(b *Bounds, def Bounds) {
	if b.Min == 0 {
		b.Min = def.Min
	}
	if b.Max == 0 {
		b.Max = def.Max
	}
	if b.Default == 0 {
		b.Default = def.Default
		// Keep the fallback inside a partially configured range.
		if b.Default < b.Min {
			b.Default = b.Min
		}
		if b.Default > b.Max {
			b.Default = b.Max
		}
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.Log.File = os.ExpandEnv(c.Log.File)
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

func describeFieldError(fe validator.FieldError) string {
	// Namespace is "Config.parameters.length.max"; drop the root.
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must be >= %s", field, strings.ToLower(fe.Param()))
	case "ltefield":
		return fmt.Sprintf("%s must be <= %s", field, strings.ToLower(fe.Param()))
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
