// Package studio turns stored brand configurations into built themes. It
// owns the preset and theme caches and the plugin setup every brand build
// shares.
package studio

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/themestudio/internal/builder"
	"github.com/jmylchreest/themestudio/internal/plugin/builtin"
	"github.com/jmylchreest/themestudio/internal/plugin/manager"
	"github.com/jmylchreest/themestudio/internal/preset"
	"github.com/jmylchreest/themestudio/internal/preset/designs"
	"github.com/jmylchreest/themestudio/internal/theme"
)

// PluginSpec is a plugin and the options it is registered with.
type PluginSpec struct {
	Plugin  manager.ThemePlugin
	Options any
}

// DefaultPlugins returns the plugins every brand build uses unless replaced
// with WithPlugins.
func DefaultPlugins() []PluginSpec {
	return []PluginSpec{
		{Plugin: builtin.NewAnimation(), Options: map[string]any{"duration": 250}},
		{Plugin: builtin.NewAccessibility(), Options: map[string]any{
			"focusVisible":  true,
			"minTargetSize": 44,
		}},
	}
}

// Stats describes cache occupancy.
type Stats struct {
	ThemeCacheSize  int      `json:"themeCacheSize"`
	PresetCacheSize int      `json:"presetCacheSize"`
	ThemeCacheKeys  []string `json:"themeCacheKeys"`
}

// Studio builds themes for brands and caches the results.
type Studio struct {
	presets      *PresetCache
	themes       *ThemeCache
	plugins      []PluginSpec
	pluginConfig manager.Config
	policy       preset.UnknownComponentPolicy
	logger       hclog.Logger
}

// Option configures a Studio.
type Option func(*Studio)

// WithLogger sets the logger handed to presets, builders and plugins.
func WithLogger(l hclog.Logger) Option {
	return func(s *Studio) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCacheSize bounds the built-theme cache.
func WithCacheSize(n int) Option {
	return func(s *Studio) { s.themes = NewThemeCache(n) }
}

// WithPolicy sets how presets treat rules for unknown components.
func WithPolicy(p preset.UnknownComponentPolicy) Option {
	return func(s *Studio) { s.policy = p }
}

// WithPlugins replaces the default plugin set.
func WithPlugins(specs ...PluginSpec) Option {
	return func(s *Studio) { s.plugins = specs }
}

// WithPluginConfig selects which plugins take part in builds.
func WithPluginConfig(cfg manager.Config) Option {
	return func(s *Studio) { s.pluginConfig = cfg }
}

// New returns a Studio with empty caches and the default plugins.
func New(opts ...Option) *Studio {
	s := &Studio{
		themes:  NewThemeCache(DefaultThemeCacheSize),
		plugins: DefaultPlugins(),
		logger:  hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("studio")
	s.presets = NewPresetCache(func(ds theme.DesignStyle) *preset.Builder {
		return designs.ForStyle(ds).WithPolicy(s.policy).WithLogger(s.logger)
	})
	return s
}

// CacheKey identifies a build of b. Any edit to a brand must move its
// UpdatedAt forward, or stale themes are served.
func CacheKey(b *theme.BrandConfig) string {
	return fmt.Sprintf("%s:%s:%s", b.ID, b.Style(), b.Metadata.UpdatedAt.UTC().Format(time.RFC3339Nano))
}

// PresetFor returns the cached preset for ds.
func (s *Studio) PresetFor(ds theme.DesignStyle) *preset.Builder {
	return s.presets.Get(ds)
}

// BrandToColorTokens returns the main colour of each semantic scale of b.
func BrandToColorTokens(b *theme.BrandConfig) builder.ColorTokens {
	p := b.Tokens.Palette
	return builder.ColorTokens{
		Primary:   p.Primary.Main,
		Secondary: p.Secondary.Main,
		Error:     p.Error.Main,
		Warning:   p.Warning.Main,
		Info:      p.Info.Main,
		Success:   p.Success.Main,
	}
}

// NewBuilder returns a builder configured for b but not yet built.
func (s *Studio) NewBuilder(b *theme.BrandConfig) *builder.Builder {
	p := s.PresetFor(b.Style())

	bld := builder.New().
		WithLogger(s.logger).
		WithPluginConfig(s.pluginConfig).
		WithColorTokens(BrandToColorTokens(b)).
		WithCustomPreset(p)
	for _, spec := range s.plugins {
		bld.UsePlugin(spec.Plugin, spec.Options)
	}

	return bld.WithBaseTheme(brandOptions(b, p.Base()))
}

// BuildTheme returns the theme for b, from the cache when b has not changed
// since it was last built.
func (s *Studio) BuildTheme(b *theme.BrandConfig) *theme.Theme {
	key := CacheKey(b)
	if t, ok := s.themes.Get(key); ok {
		s.logger.Trace("theme cache hit", "key", key)
		return t
	}

	t := s.NewBuilder(b).Build()
	s.themes.Put(key, t)
	s.logger.Debug("built theme", "brand", b.ID, "style", b.Style(), "cached", s.themes.Len())
	return t
}

// ClearCaches drops all cached presets and themes.
func (s *Studio) ClearCaches() {
	s.themes.Clear()
	s.presets.Clear()
}

// Stats reports cache occupancy.
func (s *Studio) Stats() Stats {
	return Stats{
		ThemeCacheSize:  s.themes.Len(),
		PresetCacheSize: s.presets.Len(),
		ThemeCacheKeys:  s.themes.Keys(),
	}
}

// brandOptions is the base theme override for b: both colour schemes start
// from the preset's and take the brand's six semantic scales, then the
// brand's typography, shape, spacing and component overrides.
func brandOptions(b *theme.BrandConfig, presetBase theme.Options) theme.Options {
	semantic := b.Tokens.Palette.SemanticStyle()
	schemes := make(map[string]theme.ColorScheme, 2)
	for _, name := range []string{theme.SchemeLight, theme.SchemeDark} {
		schemes[name] = theme.ColorScheme{
			Palette: theme.Merge(presetBase.SchemePalette(name), semantic),
		}
	}

	typo := b.Tokens.Typography
	return theme.Options{
		ColorSchemes: schemes,
		Typography: theme.Style{
			"fontFamily":        typo.FontFamily,
			"fontSize":          typo.FontSize,
			"fontWeightLight":   typo.FontWeightLight,
			"fontWeightRegular": typo.FontWeightRegular,
			"fontWeightMedium":  typo.FontWeightMedium,
			"fontWeightBold":    typo.FontWeightBold,
		},
		Shape:      theme.Style{"borderRadius": b.Tokens.Shape.BorderRadius},
		Spacing:    theme.IntPtr(b.Tokens.Spacing),
		Components: b.Tokens.Components.Components(),
	}
}
