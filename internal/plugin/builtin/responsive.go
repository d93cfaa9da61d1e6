package builtin

import (
	"github.com/jmylchreest/themestudio/internal/theme"
)

// Breakpoints are viewport widths in px. Nil fields are left to the
// theme or the library defaults.
type Breakpoints struct {
	XS *int `mapstructure:"xs" json:"xs,omitempty" yaml:"xs,omitempty"`
	SM *int `mapstructure:"sm" json:"sm,omitempty" yaml:"sm,omitempty"`
	MD *int `mapstructure:"md" json:"md,omitempty" yaml:"md,omitempty"`
	LG *int `mapstructure:"lg" json:"lg,omitempty" yaml:"lg,omitempty"`
	XL *int `mapstructure:"xl" json:"xl,omitempty" yaml:"xl,omitempty"`
}

func (b Breakpoints) style() theme.Style {
	out := theme.Style{}
	for key, v := range map[string]*int{"xs": b.XS, "sm": b.SM, "md": b.MD, "lg": b.LG, "xl": b.XL} {
		if v != nil {
			out[key] = *v
		}
	}
	return out
}

// ResponsiveOptions configures the responsive plugin.
type ResponsiveOptions struct {
	// Breakpoints, when set, are merged over the theme's and the defaults.
	Breakpoints *Breakpoints `mapstructure:"breakpoints" json:"breakpoints,omitempty" yaml:"breakpoints,omitempty"`
	// FluidTypography switches headings and body text to clamp() sizes.
	FluidTypography bool `mapstructure:"fluidTypography" json:"fluidTypography" yaml:"fluidTypography"`
}

// defaultBreakpoints are the component library's stock values.
var defaultBreakpoints = theme.Style{"xs": 0, "sm": 600, "md": 900, "lg": 1200, "xl": 1536}

// Responsive adjusts breakpoints and typography scaling.
type Responsive struct {
	info
}

// NewResponsive returns the responsive plugin.
func NewResponsive() *Responsive {
	return &Responsive{info{name: "responsive", version: "1.0.0", priority: 15}}
}

// Apply implements manager.ThemePlugin.
func (p *Responsive) Apply(opts theme.Options, raw any) (theme.Options, error) {
	o, err := decodeOptions(raw, ResponsiveOptions{})
	if err != nil {
		return opts, err
	}

	if o.Breakpoints != nil {
		var existing theme.Style
		if v, ok := opts.Breakpoints.Get("values"); ok {
			existing, _ = v.(theme.Style)
			if existing == nil {
				m, _ := v.(map[string]any)
				existing = m
			}
		}
		values := theme.Merge(defaultBreakpoints, existing, o.Breakpoints.style())
		opts.Breakpoints = theme.Merge(opts.Breakpoints, theme.Style{"values": values})
	}

	if o.FluidTypography {
		// Variants are replaced, not merged.
		opts.Typography = theme.Merge(opts.Typography, theme.Style{
			"fontSize":     16,
			"htmlFontSize": 16,
			"h1":           theme.Style{"fontSize": "clamp(2rem, 5vw, 3.5rem)"},
			"h2":           theme.Style{"fontSize": "clamp(1.75rem, 4vw, 3rem)"},
			"h3":           theme.Style{"fontSize": "clamp(1.5rem, 3vw, 2.5rem)"},
			"body1":        theme.Style{"fontSize": "clamp(0.875rem, 1vw, 1rem)"},
		})
	}

	return opts, nil
}
