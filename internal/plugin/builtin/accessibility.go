package builtin

import (
	"github.com/jmylchreest/themestudio/internal/colour"
	"github.com/jmylchreest/themestudio/internal/theme"
)

const reducedMotionQuery = "@media (prefers-reduced-motion: reduce)"

// interactiveComponents always receive the minimum target size.
var interactiveComponents = []theme.Component{
	theme.MuiButton,
	theme.MuiIconButton,
	theme.MuiCheckbox,
	theme.MuiRadio,
	theme.MuiSwitch,
}

// semanticScales are the palette entries rewritten by high-contrast mode.
var semanticScales = []string{"primary", "secondary", "error", "warning", "info", "success"}

// AccessibilityOptions configures the accessibility plugin.
type AccessibilityOptions struct {
	FocusVisible  bool `mapstructure:"focusVisible" json:"focusVisible" yaml:"focusVisible"`
	ReducedMotion bool `mapstructure:"reducedMotion" json:"reducedMotion" yaml:"reducedMotion"`
	// MinTargetSize is the minimum width and height, in px, of interactive
	// components.
	MinTargetSize int `mapstructure:"minTargetSize" json:"minTargetSize" yaml:"minTargetSize"`
	// HighContrast picks, per palette scale, whichever of black or white
	// contrasts more with the main colour as its contrast text.
	HighContrast bool `mapstructure:"highContrast" json:"highContrast" yaml:"highContrast"`
}

// DefaultAccessibilityOptions returns the options used when none are given.
func DefaultAccessibilityOptions() AccessibilityOptions {
	return AccessibilityOptions{
		FocusVisible:  true,
		MinTargetSize: 44,
	}
}

// Accessibility adds focus rings, minimum target sizes and reduced-motion
// handling to component overrides.
type Accessibility struct {
	info
}

// NewAccessibility returns the accessibility plugin.
func NewAccessibility() *Accessibility {
	return &Accessibility{info{name: "accessibility", version: "1.0.0", priority: 5}}
}

// Apply implements manager.ThemePlugin.
func (p *Accessibility) Apply(opts theme.Options, raw any) (theme.Options, error) {
	o, err := decodeOptions(raw, DefaultAccessibilityOptions())
	if err != nil {
		return opts, err
	}
	opts.Components = opts.Components.Clone()
	if opts.Components == nil {
		opts.Components = make(theme.Components, len(interactiveComponents))
	}

	// Focus rings only go on components that already have overrides.
	if o.FocusVisible {
		focus := theme.Style{
			"&:focus-visible": theme.Style{
				"outline":       "3px solid",
				"outlineColor":  outlineColor(opts),
				"outlineOffset": "2px",
			},
		}
		for name := range opts.Components {
			setRootProps(opts.Components, name, focus.Clone())
		}
	}

	for _, name := range interactiveComponents {
		setRootProps(opts.Components, name, theme.Style{
			"minWidth":  o.MinTargetSize,
			"minHeight": o.MinTargetSize,
		})
	}

	if o.ReducedMotion {
		for name := range opts.Components {
			setRootProps(opts.Components, name, theme.Style{
				reducedMotionQuery: theme.Style{
					"animation":  "none !important",
					"transition": "none !important",
				},
			})
		}
	}

	if o.HighContrast {
		opts.Palette = highContrast(opts.Palette)
		if opts.ColorSchemes != nil {
			schemes := make(map[string]theme.ColorScheme, len(opts.ColorSchemes))
			for name, scheme := range opts.ColorSchemes {
				schemes[name] = theme.ColorScheme{Palette: highContrast(scheme.Palette)}
			}
			opts.ColorSchemes = schemes
		}
	}

	return opts, nil
}

// outlineColor reads the primary colour from the flat palette, then from the
// light scheme, then falls back to the library default.
func outlineColor(opts theme.Options) string {
	if c := opts.Palette.String("primary", "main"); c != "" {
		return c
	}
	if c := opts.SchemePalette(theme.SchemeLight).String("primary", "main"); c != "" {
		return c
	}
	return theme.DefaultPrimary
}

func highContrast(palette theme.Style) theme.Style {
	if palette == nil {
		return nil
	}
	out := palette.Clone()
	for _, name := range semanticScales {
		main := out.String(name, "main")
		if !colour.IsHex(main) {
			continue
		}
		// Clone turns every nested map into a Style.
		out[name].(theme.Style)["contrastText"] = strongestText(main)
	}
	return out
}

func strongestText(bg string) string {
	const black, white = "#000000", "#ffffff"
	if colour.ContrastRatio(black, bg) > colour.ContrastRatio(white, bg) {
		return black
	}
	return white
}
