// Package config loads themestudio settings from a YAML file overlaid with
// THEMESTUDIO_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/themestudio/internal/plugin/manager"
	"github.com/jmylchreest/themestudio/internal/preset"
	"github.com/jmylchreest/themestudio/internal/theme"
)

// Environment variables overlaid by ApplyEnv. The plugin lists reuse the
// plugin manager's variables.
const (
	EnvStorePath         = "THEMESTUDIO_STORE_PATH"
	EnvTemplateDir       = "THEMESTUDIO_TEMPLATE_DIR"
	EnvCacheSize         = "THEMESTUDIO_CACHE_SIZE"
	EnvUnknownComponents = "THEMESTUDIO_UNKNOWN_COMPONENTS"
	EnvLogLevel          = "THEMESTUDIO_LOG_LEVEL"
)

// DefaultCacheSize is the default number of built themes kept.
const DefaultCacheSize = 10

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ExternalPlugin registers an out-of-process theme plugin.
type ExternalPlugin struct {
	Name     string         `yaml:"name" validate:"required"`
	Path     string         `yaml:"path" validate:"required"`
	Priority int            `yaml:"priority,omitempty" validate:"gte=0"`
	Timeout  time.Duration  `yaml:"timeout,omitempty" validate:"gte=0"`
	Options  map[string]any `yaml:"options,omitempty"`
}

// Plugins configures the plugin pipeline.
type Plugins struct {
	Enabled  []string                  `yaml:"enabled,omitempty"`
	Disabled []string                  `yaml:"disabled,omitempty"`
	Options  map[string]map[string]any `yaml:"options,omitempty"`
	External []ExternalPlugin          `yaml:"external,omitempty" validate:"dive"`
}

// Config is the full settings file.
type Config struct {
	// StorePath is the brand store directory. Empty means the default.
	StorePath string `yaml:"store_path,omitempty"`
	// TemplateDir holds export template overrides. Empty means the default.
	TemplateDir       string  `yaml:"template_dir,omitempty"`
	CacheSize         int     `yaml:"cache_size" validate:"gte=1,lte=1000"`
	UnknownComponents string  `yaml:"unknown_components" validate:"oneof=ignore warn error"`
	LogLevel          string  `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error off"`
	Plugins           Plugins `yaml:"plugins,omitempty"`
}

// ParseError reports a config file that could not be read or decoded.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports an invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Message)
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		CacheSize:         DefaultCacheSize,
		UnknownComponents: preset.PolicyWarn.String(),
	}
}

// DefaultPath is $XDG_CONFIG_HOME/themestudio/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = ".config"
	}
	return filepath.Join(dir, "themestudio", "config.yaml")
}

// Load reads path over the defaults, applies the environment and validates
// the result. With an empty path the default location is used and a missing
// file is not an error.
func Load(path string) (*Config, error) {
	optional := path == ""
	if optional {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(data, cfg); err != nil {
			return nil, &ParseError{Path: path, Line: extractLine(err), Err: err}
		}
	case optional && errors.Is(err, os.ErrNotExist):
	default:
		return nil, &ParseError{Path: path, Err: err}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode rejects unknown keys. An empty document leaves cfg unchanged.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0
	}
	return line
}

// ApplyEnv overlays environment settings read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvStorePath); ok && v != "" {
		c.StorePath = v
	}
	if v, ok := lookup(EnvTemplateDir); ok && v != "" {
		c.TemplateDir = v
	}
	if v, ok := lookup(EnvCacheSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ValidationError{Field: EnvCacheSize, Message: fmt.Sprintf("not a number: %q", v)}
		}
		c.CacheSize = n
	}
	if v, ok := lookup(EnvUnknownComponents); ok && v != "" {
		c.UnknownComponents = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(manager.EnvDisabledPlugins); ok && v != "" {
		c.Plugins.Disabled = splitList(v)
	}
	if v, ok := lookup(manager.EnvEnabledPlugins); ok && v != "" {
		c.Plugins.Enabled = splitList(v)
	}
	return nil
}

// Validate checks field constraints and that external plugin names are
// unique.
func (c *Config) Validate() error {
	if err := theme.Validator().Struct(c); err != nil {
		var fieldErr *theme.ValidationError
		if errors.As(theme.AsValidationError(err), &fieldErr) {
			return &ValidationError{Field: fieldErr.Field, Message: fieldErr.Message}
		}
		return &ValidationError{Field: "config", Message: err.Error()}
	}

	seen := make(map[string]bool, len(c.Plugins.External))
	for i, ext := range c.Plugins.External {
		if seen[ext.Name] {
			return &ValidationError{
				Field:   fmt.Sprintf("plugins.external[%d].name", i),
				Message: fmt.Sprintf("duplicate plugin %q", ext.Name),
			}
		}
		seen[ext.Name] = true
	}
	return nil
}

// Policy returns the unknown-component policy.
func (c *Config) Policy() preset.UnknownComponentPolicy {
	p, _ := preset.ParsePolicy(c.UnknownComponents)
	return p
}

// ManagerConfig returns the plugin enable/disable lists.
func (c *Config) ManagerConfig() manager.Config {
	return manager.Config{
		EnabledPlugins:  c.Plugins.Enabled,
		DisabledPlugins: c.Plugins.Disabled,
	}
}

// PluginOptions returns the configured options for the named plugin, from
// plugins.options or an external plugin entry. Nil when there are none.
func (c *Config) PluginOptions(name string) map[string]any {
	if opts, ok := c.Plugins.Options[name]; ok {
		return opts
	}
	for _, ext := range c.Plugins.External {
		if ext.Name == name {
			return ext.Options
		}
	}
	return nil
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
