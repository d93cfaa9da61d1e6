package designs

import (
	"github.com/jmylchreest/themestudio/internal/preset"
	"github.com/jmylchreest/themestudio/internal/theme"
)

const (
	md3Elevation     = "0 1px 3px rgba(0, 0, 0, 0.12), 0 1px 2px rgba(0, 0, 0, 0.1)"
	md3ElevationDark = "0 1px 3px rgba(0, 0, 0, 0.5), 0 1px 2px rgba(0, 0, 0, 0.4)"
	md3Accent        = "#6750a4"
	md3AccentDark    = "#a18ccc"
)

// MaterialDesign3 is Material You: tinted surfaces, pill buttons and tonal
// elevation.
func MaterialDesign3() *preset.Builder {
	base := baseOptions(backgrounds{
		lightDefault: "#fef7ff",
		lightPaper:   "#ffffff",
		darkDefault:  "#1c1b1f",
		darkPaper:    "#28282c",
	}, 16, style{
		"fontFamily":       theme.DefaultFontFamily,
		"fontWeightMedium": 500,
		"fontWeightBold":   700,
	})

	elevated := func(t *theme.Theme) style {
		return with(style{
			"borderRadius": 16,
			"boxShadow":    md3Elevation,
		}, dark(t, style{"boxShadow": md3ElevationDark}))
	}

	return preset.New(base).
		SetMetadata("Material Design 3", "Modern Material You with dynamic elevation").
		ApplySurfaceStyle(preset.ThemeFunc(func(t *theme.Theme) style {
			return with(elevated(t), style{"border": "none"})
		})).
		ApplyActionStyle(preset.ThemeFunc(func(t *theme.Theme) style {
			return with(style{
				"borderRadius":  20,
				"textTransform": "none",
				"fontWeight":    500,
				"fontSize":      "0.875rem",
				"boxShadow":     "none",
				"&:hover":       style{"boxShadow": md3Elevation},
			}, dark(t, style{
				"&:hover": style{"boxShadow": md3ElevationDark},
			}))
		})).
		ApplyToComponent(theme.MuiOutlinedInput, preset.ThemeFunc(func(t *theme.Theme) style {
			return style{
				"root": style{
					"borderRadius": 4,
					"transition":   "all 0.2s ease",
				},
				"notchedOutline": with(style{
					"border":     "1px solid rgba(0, 0, 0, 0.12)",
					"transition": "all 0.2s ease",
				}, dark(t, style{"borderColor": "rgba(255, 255, 255, 0.12)"})),
				"&:hover .MuiOutlinedInput-notchedOutline": with(style{
					"borderColor": "rgba(0, 0, 0, 0.2)",
				}, dark(t, style{"borderColor": "rgba(255, 255, 255, 0.2)"})),
				"&.Mui-focused .MuiOutlinedInput-notchedOutline": with(style{
					"borderColor": md3Accent,
					"borderWidth": 2,
					"boxShadow":   "none",
				}, dark(t, style{"borderColor": md3AccentDark})),
			}
		})).
		ApplyToComponent(theme.MuiFilledInput, preset.ThemeFunc(func(t *theme.Theme) style {
			return style{
				"root": style{
					"borderRadius": "4px 4px 0 0",
					"transition":   "all 0.2s ease",
					"&::before": with(style{
						"borderBottom": "1px solid rgba(0, 0, 0, 0.12)",
					}, dark(t, style{"borderBottom": "1px solid rgba(255, 255, 255, 0.12)"})),
					"&:hover:not(.Mui-disabled)::before": with(style{
						"borderBottom": "1px solid rgba(0, 0, 0, 0.2)",
					}, dark(t, style{"borderBottom": "1px solid rgba(255, 255, 255, 0.2)"})),
					"&.Mui-focused::after": with(style{
						"borderBottom": "2px solid " + md3Accent,
					}, dark(t, style{"borderBottom": "2px solid " + md3AccentDark})),
				},
			}
		})).
		ApplyToComponent(theme.MuiCard, preset.ThemeFunc(elevated)).
		ApplyToComponent(theme.MuiFab, preset.Static(style{
			"borderRadius": 16,
			"boxShadow":    "0 3px 5px rgba(0, 0, 0, 0.2)",
		})).
		ApplyToComponent(theme.MuiTabs, preset.Static(style{
			"& .MuiTabs-indicator": style{
				"height":       3,
				"borderRadius": "3px 3px 0 0",
			},
		})).
		ApplyToComponent(theme.MuiTab, preset.Static(style{
			"textTransform":  "none",
			"fontWeight":     500,
			"fontSize":       "0.875rem",
			"minHeight":      48,
			"borderRadius":   "12px 12px 0 0",
			"&.Mui-selected": style{"fontWeight": 700},
		}))
}
