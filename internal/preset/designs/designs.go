// Package designs holds the rule sets for each design style.
package designs

import (
	"github.com/jmylchreest/themestudio/internal/preset"
	"github.com/jmylchreest/themestudio/internal/theme"
)

type style = theme.Style

// Info describes a design style for listings.
type Info struct {
	Style       theme.DesignStyle `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	HasColors   bool              `json:"hasStyleColors"`
}

// ForStyle returns a fresh preset builder for ds. Flat design, the empty
// style and unknown styles all map to minimal.
func ForStyle(ds theme.DesignStyle) *preset.Builder {
	switch ds {
	case theme.StyleGlassmorphism:
		return Glassmorphism()
	case theme.StyleNeumorphism:
		return Neumorphism()
	case theme.StyleBrutalism:
		return Brutalism()
	case theme.StyleCyberpunk:
		return Cyberpunk()
	case theme.StyleGradientMesh:
		return GradientMesh()
	case theme.StyleMaterialDesign3:
		return MaterialDesign3()
	case theme.StyleRetro:
		return Retro()
	default:
		return Minimal()
	}
}

// Catalog lists every design style with its preset metadata.
func Catalog() []Info {
	styles := theme.AllDesignStyles()
	out := make([]Info, 0, len(styles))
	for _, ds := range styles {
		md := ForStyle(ds).Metadata()
		name := md.Name
		if ds == theme.StyleFlatDesign {
			name = ds.DisplayName()
		}
		out = append(out, Info{
			Style:       ds,
			Name:        name,
			Description: md.Description,
			HasColors:   theme.HasStyleColors(ds),
		})
	}
	return out
}

type backgrounds struct {
	lightDefault, lightPaper string
	darkDefault, darkPaper   string
}

// baseOptions builds the shared base: the light background on the flat
// palette, both colour schemes, corner radius and optional typography.
func baseOptions(bg backgrounds, radius int, typography style) theme.Options {
	return theme.Options{
		Palette: style{
			"background": style{"default": bg.lightDefault, "paper": bg.lightPaper},
		},
		ColorSchemes: map[string]theme.ColorScheme{
			theme.SchemeLight: {Palette: style{
				"background": style{"default": bg.lightDefault, "paper": bg.lightPaper},
			}},
			theme.SchemeDark: {Palette: style{
				"background": style{"default": bg.darkDefault, "paper": bg.darkPaper},
			}},
		},
		Shape:      style{"borderRadius": radius},
		Typography: typography,
	}
}

func dark(t *theme.Theme, s style) style {
	return t.ApplyStyles(theme.SchemeDark, s)
}

func light(t *theme.Theme, s style) style {
	return t.ApplyStyles(theme.SchemeLight, s)
}

// with spreads extra over s.
func with(s style, extra ...style) style {
	return theme.Merge(append([]style{s}, extra...)...)
}
