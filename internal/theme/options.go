package theme

import (
	"maps"
)

// Colour scheme names.
const (
	SchemeLight = "light"
	SchemeDark  = "dark"
)

// ColorScheme holds a palette for one colour mode.
type ColorScheme struct {
	Palette Style `json:"palette,omitempty" yaml:"palette,omitempty"`
}

// CSSVariables configures CSS-variable output of the final theme.
type CSSVariables struct {
	ColorSchemeSelector string `json:"colorSchemeSelector"`
	CSSVarPrefix        string `json:"cssVarPrefix"`
}

// ComponentOptions is the override entry for one component.
type ComponentOptions struct {
	DefaultProps   Style            `json:"defaultProps,omitempty" yaml:"defaultProps,omitempty"`
	StyleOverrides map[string]Style `json:"styleOverrides,omitempty" yaml:"styleOverrides,omitempty"`
}

// Components maps a component to its overrides.
type Components map[Component]ComponentOptions

// Root returns the root style override of c, or nil.
func (cs Components) Root(c Component) Style {
	return cs[c].StyleOverrides["root"]
}

// SetRoot replaces the root style override of c, creating the entry if needed.
func (cs Components) SetRoot(c Component, root Style) {
	entry := cs[c]
	overrides := make(map[string]Style, len(entry.StyleOverrides)+1)
	maps.Copy(overrides, entry.StyleOverrides)
	overrides["root"] = root
	entry.StyleOverrides = overrides
	cs[c] = entry
}

// Clone deep-copies the component map.
func (cs Components) Clone() Components {
	if cs == nil {
		return nil
	}
	out := make(Components, len(cs))
	for name, entry := range cs {
		out[name] = entry.clone()
	}
	return out
}

func (o ComponentOptions) clone() ComponentOptions {
	out := ComponentOptions{DefaultProps: o.DefaultProps.Clone()}
	if o.StyleOverrides != nil {
		out.StyleOverrides = make(map[string]Style, len(o.StyleOverrides))
		for slot, s := range o.StyleOverrides {
			out.StyleOverrides[slot] = s.Clone()
		}
	}
	return out
}

// Options is the accumulating theme configuration. Its JSON shape matches
// the component library's theme options.
type Options struct {
	Palette      Style                  `json:"palette,omitempty"`
	ColorSchemes map[string]ColorScheme `json:"colorSchemes,omitempty"`
	Typography   Style                  `json:"typography,omitempty"`
	Shape        Style                  `json:"shape,omitempty"`
	Spacing      *int                   `json:"spacing,omitempty"`
	Components   Components             `json:"components,omitempty"`
	Transitions  Style                  `json:"transitions,omitempty"`
	Breakpoints  Style                  `json:"breakpoints,omitempty"`
	CSSVariables *CSSVariables          `json:"cssVariables,omitempty"`
}

// Clone deep-copies o.
func (o Options) Clone() Options {
	out := Options{
		Palette:     o.Palette.Clone(),
		Typography:  o.Typography.Clone(),
		Shape:       o.Shape.Clone(),
		Components:  o.Components.Clone(),
		Transitions: o.Transitions.Clone(),
		Breakpoints: o.Breakpoints.Clone(),
	}
	if o.ColorSchemes != nil {
		out.ColorSchemes = make(map[string]ColorScheme, len(o.ColorSchemes))
		for name, cs := range o.ColorSchemes {
			out.ColorSchemes[name] = ColorScheme{Palette: cs.Palette.Clone()}
		}
	}
	if o.Spacing != nil {
		v := *o.Spacing
		out.Spacing = &v
	}
	if o.CSSVariables != nil {
		v := *o.CSSVariables
		out.CSSVariables = &v
	}
	return out
}

// SchemePalette returns the palette of the named colour scheme, or nil.
func (o Options) SchemePalette(name string) Style {
	return o.ColorSchemes[name].Palette
}

// MergeOptions deep-merges over onto base and returns the result. Maps are
// combined key-wise; scalars, slices and pointer fields set in over win.
func MergeOptions(base, over Options) Options {
	out := base.Clone()

	out.Palette = DeepMerge(out.Palette, over.Palette)
	out.Typography = DeepMerge(out.Typography, over.Typography)
	out.Shape = DeepMerge(out.Shape, over.Shape)
	out.Transitions = DeepMerge(out.Transitions, over.Transitions)
	out.Breakpoints = DeepMerge(out.Breakpoints, over.Breakpoints)

	if len(over.ColorSchemes) > 0 {
		if out.ColorSchemes == nil {
			out.ColorSchemes = make(map[string]ColorScheme, len(over.ColorSchemes))
		}
		for name, cs := range over.ColorSchemes {
			out.ColorSchemes[name] = ColorScheme{
				Palette: DeepMerge(out.ColorSchemes[name].Palette, cs.Palette),
			}
		}
	}

	if len(over.Components) > 0 {
		if out.Components == nil {
			out.Components = make(Components, len(over.Components))
		}
		for name, entry := range over.Components {
			out.Components[name] = mergeComponent(out.Components[name], entry)
		}
	}

	if over.Spacing != nil {
		v := *over.Spacing
		out.Spacing = &v
	}
	if over.CSSVariables != nil {
		v := *over.CSSVariables
		out.CSSVariables = &v
	}

	return out
}

func mergeComponent(base, over ComponentOptions) ComponentOptions {
	out := ComponentOptions{
		DefaultProps: DeepMerge(base.DefaultProps, over.DefaultProps),
	}
	if len(base.StyleOverrides) == 0 && len(over.StyleOverrides) == 0 {
		return out
	}
	out.StyleOverrides = make(map[string]Style, len(base.StyleOverrides)+len(over.StyleOverrides))
	for slot, s := range base.StyleOverrides {
		out.StyleOverrides[slot] = s.Clone()
	}
	for slot, s := range over.StyleOverrides {
		out.StyleOverrides[slot] = DeepMerge(out.StyleOverrides[slot], s)
	}
	return out
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
