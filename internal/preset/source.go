package preset

import "github.com/jmylchreest/themestudio/internal/theme"

// RuleOptions is the free-form option bag handed to a style generator.
type RuleOptions map[string]any

// StyleFunc computes a style from the theme being built.
type StyleFunc func(t *theme.Theme, opts RuleOptions) theme.Style

// StyleSource is either a fixed style or one computed from the theme.
type StyleSource struct {
	static theme.Style
	fn     StyleFunc
}

// Static returns a source that always yields s.
func Static(s theme.Style) StyleSource {
	return StyleSource{static: s}
}

// Computed returns a source that calls fn on every resolution.
func Computed(fn StyleFunc) StyleSource {
	return StyleSource{fn: fn}
}

// ThemeFunc adapts a generator that ignores rule options.
func ThemeFunc(fn func(t *theme.Theme) theme.Style) StyleSource {
	return Computed(func(t *theme.Theme, _ RuleOptions) theme.Style { return fn(t) })
}

// IsZero reports whether the source yields nothing.
func (s StyleSource) IsZero() bool {
	return s.fn == nil && s.static == nil
}

// Resolve evaluates the source. The result is never shared with the source.
func (s StyleSource) Resolve(t *theme.Theme, opts RuleOptions) theme.Style {
	if s.fn != nil {
		return s.fn(t, opts)
	}
	return s.static.Clone()
}
