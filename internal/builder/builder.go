// Package builder assembles a final theme from colour tokens, an optional
// design preset, caller overrides and plugins.
package builder

import (
	"maps"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/themestudio/internal/plugin/manager"
	"github.com/jmylchreest/themestudio/internal/preset"
	"github.com/jmylchreest/themestudio/internal/theme"
)

// Defaults for the base theme handed to style generators.
const (
	DefaultPrimary   = theme.DefaultPrimary
	DefaultSecondary = "#dc004e"

	// CSSVarPrefix prefixes generated CSS variables.
	CSSVarPrefix = "mui"
)

// TextColors are the text colours of a colour token set.
type TextColors struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
}

// ColorTokens are the raw colours a theme is built from. Only primary and
// secondary feed the base theme; the rest travel with the configuration.
type ColorTokens struct {
	Primary    string            `json:"primary,omitempty" yaml:"primary,omitempty"`
	Secondary  string            `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Success    string            `json:"success,omitempty" yaml:"success,omitempty"`
	Warning    string            `json:"warning,omitempty" yaml:"warning,omitempty"`
	Error      string            `json:"error,omitempty" yaml:"error,omitempty"`
	Info       string            `json:"info,omitempty" yaml:"info,omitempty"`
	Background *theme.Background `json:"background,omitempty" yaml:"background,omitempty"`
	Text       *TextColors       `json:"text,omitempty" yaml:"text,omitempty"`
}

// Merge returns t with every field set in patch replacing its own.
func (t ColorTokens) Merge(patch ColorTokens) ColorTokens {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&t.Primary, patch.Primary)
	set(&t.Secondary, patch.Secondary)
	set(&t.Success, patch.Success)
	set(&t.Warning, patch.Warning)
	set(&t.Error, patch.Error)
	set(&t.Info, patch.Info)
	if patch.Background != nil {
		bg := *patch.Background
		t.Background = &bg
	}
	if patch.Text != nil {
		text := *patch.Text
		t.Text = &text
	}
	return t
}

// Config is a snapshot of a Builder's configuration.
type Config struct {
	ColorTokens   ColorTokens
	BaseTheme     theme.Options
	PluginOptions map[string]any
}

func (c Config) clone() Config {
	out := Config{
		ColorTokens: ColorTokens{}.Merge(c.ColorTokens),
		BaseTheme:   c.BaseTheme.Clone(),
	}
	if c.PluginOptions != nil {
		out.PluginOptions = maps.Clone(c.PluginOptions)
	}
	return out
}

// Builder orchestrates a theme build. Build may be called any number of
// times; each call starts from the current configuration.
type Builder struct {
	config       Config
	plugins      *manager.Manager
	pluginConfig manager.Config
	preset       *preset.Builder
	logger       hclog.Logger
}

// New returns a Builder with no tokens, preset or plugins.
func New() *Builder {
	logger := hclog.NewNullLogger()
	return &Builder{
		plugins: manager.New(logger),
		logger:  logger,
	}
}

// WithLogger sets the logger for the builder and its plugin manager.
// Plugins registered earlier are carried over.
func (b *Builder) WithLogger(logger hclog.Logger) *Builder {
	if logger == nil {
		return b
	}
	b.logger = logger
	b.plugins = b.rebuildManager(logger)
	return b
}

// WithPluginConfig sets which registered plugins take part in builds.
func (b *Builder) WithPluginConfig(cfg manager.Config) *Builder {
	b.pluginConfig = cfg
	b.plugins.UpdateConfig(cfg)
	return b
}

// WithColorTokens shallow-merges tokens over the current colour tokens.
func (b *Builder) WithColorTokens(tokens ColorTokens) *Builder {
	b.config.ColorTokens = b.config.ColorTokens.Merge(tokens)
	return b
}

// WithCustomPreset attaches the preset whose output seeds the theme.
func (b *Builder) WithCustomPreset(p *preset.Builder) *Builder {
	b.preset = p
	return b
}

// UsePlugin registers p and records options for it. A second plugin with
// the same name is not registered, but its options replace the first's.
func (b *Builder) UsePlugin(p manager.ThemePlugin, options any) *Builder {
	b.plugins.Register(p)
	if b.config.PluginOptions == nil {
		b.config.PluginOptions = make(map[string]any)
	}
	b.config.PluginOptions[p.Name()] = options
	return b
}

// WithBaseTheme deep-merges overrides into the caller's base theme. These
// overrides are applied after the preset, so they win over it.
func (b *Builder) WithBaseTheme(overrides theme.Options) *Builder {
	b.config.BaseTheme = theme.MergeOptions(b.config.BaseTheme, overrides)
	return b
}

// Build runs the pipeline: base theme from the primary and secondary tokens,
// preset output, base theme overrides, plugins, then the flat default palette
// and CSS variable settings. It never fails; problems are logged and
// recorded as plugin or preset events.
func (b *Builder) Build() *theme.Theme {
	base := theme.NewBase(
		orDefault(b.config.ColorTokens.Primary, DefaultPrimary),
		orDefault(b.config.ColorTokens.Secondary, DefaultSecondary),
	)

	var opts theme.Options
	if b.preset != nil {
		opts = theme.MergeOptions(opts, b.preset.Build(base))
		if err := b.preset.Err(); err != nil {
			b.logger.Warn("preset reported configuration errors", "preset", b.preset.Metadata().Name, "error", err)
		}
	}

	opts = theme.MergeOptions(opts, b.config.BaseTheme)
	opts = b.plugins.Apply(opts, b.config.PluginOptions)

	// The light scheme doubles as the default palette.
	if light := opts.SchemePalette(theme.SchemeLight); light != nil {
		opts.Palette = light.Clone()
	}
	opts.CSSVariables = &theme.CSSVariables{
		ColorSchemeSelector: theme.SelectorClass,
		CSSVarPrefix:        CSSVarPrefix,
	}

	return theme.New(opts)
}

// Config returns a copy of the current configuration.
func (b *Builder) Config() Config {
	return b.config.clone()
}

// Preset returns the attached preset, or nil.
func (b *Builder) Preset() *preset.Builder {
	return b.preset
}

// Plugins returns the registered plugins in registration order.
func (b *Builder) Plugins() []manager.ThemePlugin {
	return b.plugins.List()
}

// PluginEvents returns what the plugin manager recorded so far.
func (b *Builder) PluginEvents() []manager.Event {
	return b.plugins.Events()
}

// Clone returns an independent builder with a copy of the configuration, a
// clone of the preset and the same plugins registered.
func (b *Builder) Clone() *Builder {
	out := &Builder{
		config:       b.config.clone(),
		pluginConfig: b.pluginConfig,
		logger:       b.logger,
	}
	out.plugins = b.rebuildManager(b.logger)
	if b.preset != nil {
		out.preset = b.preset.Clone()
	}
	return out
}

// rebuildManager returns a fresh manager holding b's plugins.
func (b *Builder) rebuildManager(logger hclog.Logger) *manager.Manager {
	return manager.NewBuilder().
		WithLogger(logger).
		WithConfig(b.pluginConfig).
		WithPlugins(b.plugins.List()...).
		Build()
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
