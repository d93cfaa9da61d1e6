package theme

import (
	"fmt"
	"strings"
)

// Default palette values used when options leave a scale unset.
const (
	DefaultPrimary   = "#1976d2"
	DefaultSecondary = "#9c27b0"
	DefaultError     = "#d32f2f"
	DefaultWarning   = "#ed6c02"
	DefaultInfo      = "#0288d1"
	DefaultSuccess   = "#2e7d32"

	// DefaultContrastText is the fallback text colour on any scale.
	DefaultContrastText = "#ffffff"

	// SelectorClass is the colour-scheme selector that toggles modes with a
	// class on the root element.
	SelectorClass = "class"
)

// Background holds the resolved background colours.
type Background struct {
	Default string `json:"default"`
	Paper   string `json:"paper"`
}

// Palette is the resolved palette read by style generators.
type Palette struct {
	Mode       string     `json:"mode"`
	Primary    ColorScale `json:"primary"`
	Secondary  ColorScale `json:"secondary"`
	Error      ColorScale `json:"error"`
	Warning    ColorScale `json:"warning"`
	Info       ColorScale `json:"info"`
	Success    ColorScale `json:"success"`
	Background Background `json:"background"`
}

// Theme is an instantiated theme: the final options plus resolved values
// style generators can read without walking maps.
type Theme struct {
	Options      Options
	Palette      Palette
	BorderRadius float64
	SpacingUnit  int

	selector string
}

// New resolves opts into a Theme. Missing values fall back to the library
// defaults; opts is copied and not retained.
func New(opts Options) *Theme {
	o := opts.Clone()

	palette := o.Palette
	if len(palette) == 0 {
		palette = o.SchemePalette(SchemeLight)
	}

	mode := palette.String("mode")
	if mode == "" {
		mode = SchemeLight
	}

	t := &Theme{
		Options: o,
		Palette: Palette{
			Mode:      mode,
			Primary:   scaleFrom(palette, "primary", DefaultPrimary),
			Secondary: scaleFrom(palette, "secondary", DefaultSecondary),
			Error:     scaleFrom(palette, "error", DefaultError),
			Warning:   scaleFrom(palette, "warning", DefaultWarning),
			Info:      scaleFrom(palette, "info", DefaultInfo),
			Success:   scaleFrom(palette, "success", DefaultSuccess),
			Background: Background{
				Default: orDefault(palette.String("background", "default"), backgroundFor(mode)),
				Paper:   orDefault(palette.String("background", "paper"), backgroundFor(mode)),
			},
		},
		BorderRadius: 4,
		SpacingUnit:  8,
	}

	if v, ok := o.Shape.Get("borderRadius"); ok {
		if f, ok := toFloat(v); ok {
			t.BorderRadius = f
		}
	}
	if o.Spacing != nil {
		t.SpacingUnit = *o.Spacing
	}
	if o.CSSVariables != nil {
		t.selector = o.CSSVariables.ColorSchemeSelector
	}

	return t
}

// NewBase returns the minimal theme used while building presets: primary and
// secondary only, with class-based colour-scheme selection so mode-specific
// styles survive into the output.
func NewBase(primary, secondary string) *Theme {
	return New(Options{
		Palette: Style{
			"primary":   Style{"main": primary},
			"secondary": Style{"main": secondary},
		},
		CSSVariables: &CSSVariables{ColorSchemeSelector: SelectorClass, CSSVarPrefix: "mui"},
	})
}

// ApplyStyles scopes style to a colour mode.
//
// With a class or data-attribute selector the style is nested under a
// selector that only matches when that mode is active. Without one, the
// style is returned when mode matches the palette mode and dropped otherwise.
func (t *Theme) ApplyStyles(mode string, style Style) Style {
	switch {
	case t.selector == SelectorClass:
		return Style{fmt.Sprintf("*:where(.%s) &", mode): style}
	case t.selector == "data":
		return Style{fmt.Sprintf("*:where([data-%s]) &", mode): style}
	case strings.Contains(t.selector, "%s"):
		return Style{fmt.Sprintf("*:where(%s) &", fmt.Sprintf(t.selector, mode)): style}
	case t.Palette.Mode == mode:
		return style
	default:
		return Style{}
	}
}

// Spacing multiplies the spacing unit, returning a px string.
func (t *Theme) Spacing(n float64) string {
	return fmt.Sprintf("%gpx", n*float64(t.SpacingUnit))
}

func scaleFrom(palette Style, name, fallback string) ColorScale {
	v, ok := palette.Get(name)
	if !ok {
		return ColorScale{Main: fallback}.Resolved()
	}
	m, ok := asMap(v)
	if !ok {
		return ColorScale{Main: fallback}.Resolved()
	}
	s := Style(m)
	scale := ColorScale{
		Main:         orDefault(s.String("main"), fallback),
		Light:        s.String("light"),
		Dark:         s.String("dark"),
		ContrastText: s.String("contrastText"),
	}
	return scale.Resolved()
}

func backgroundFor(mode string) string {
	if mode == SchemeDark {
		return "#121212"
	}
	return "#ffffff"
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}
