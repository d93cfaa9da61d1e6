package designs

import (
	"github.com/jmylchreest/themestudio/internal/preset"
	"github.com/jmylchreest/themestudio/internal/theme"
)

// Glassmorphism is frosted, translucent surfaces with a vibrant blur.
func Glassmorphism() *preset.Builder {
	base := baseOptions(backgrounds{
		lightDefault: "rgba(250, 250, 252, 0.72)",
		lightPaper:   "rgba(255, 255, 255, 0.72)",
		darkDefault:  "rgba(28, 28, 30, 0.72)",
		darkPaper:    "rgba(44, 44, 46, 0.72)",
	}, 12, nil)

	hoverTint := func(t *theme.Theme) style {
		return with(style{
			"&:hover": style{"backgroundColor": "rgba(0, 0, 0, 0.04)"},
		}, dark(t, style{
			"&:hover": style{"backgroundColor": "rgba(255, 255, 255, 0.05)"},
		}))
	}

	return preset.New(base).
		SetMetadata("Glassmorphism", "Apple-inspired frosted glass with vibrant blur").
		ApplySurfaceStyle(preset.ThemeFunc(func(t *theme.Theme) style {
			return with(style{
				"backdropFilter":       "saturate(180%) blur(8px)",
				"WebkitBackdropFilter": "saturate(180%) blur(8px)",
				"border":               "1px solid rgba(255, 255, 255, 0.18)",
				"boxShadow":            "0 8px 32px rgba(0, 0, 0, 0.08)",
			}, dark(t, style{
				"border":    "1px solid rgba(255, 255, 255, 0.1)",
				"boxShadow": "0 8px 32px rgba(0, 0, 0, 0.3)",
			}))
		})).
		ApplyActionStyle(preset.Static(style{
			"borderRadius":         10,
			"textTransform":        "none",
			"fontWeight":           500,
			"backdropFilter":       "blur(10px)",
			"WebkitBackdropFilter": "blur(10px)",
			"transition":           "all 0.2s ease",
		})).
		ApplyToComponent(theme.MuiOutlinedInput, preset.ThemeFunc(func(t *theme.Theme) style {
			return style{
				"root": style{
					"backdropFilter":       "blur(10px)",
					"WebkitBackdropFilter": "blur(10px)",
					"borderRadius":         10,
					"transition":           "all 0.2s ease",
				},
				"notchedOutline": with(style{
					"border":       "1px solid rgba(0, 0, 0, 0.06)",
					"borderRadius": 10,
					"transition":   "all 0.2s ease",
				}, dark(t, style{"borderColor": "rgba(255, 255, 255, 0.1)"})),
				"&:hover .MuiOutlinedInput-notchedOutline": with(style{
					"borderColor": "rgba(0, 0, 0, 0.1)",
				}, dark(t, style{"borderColor": "rgba(255, 255, 255, 0.15)"})),
				"&.Mui-focused .MuiOutlinedInput-notchedOutline": with(style{
					"borderColor": "currentColor",
					"boxShadow":   "0 0 0 4px rgba(0, 122, 255, 0.1)",
				}, dark(t, style{
					"borderColor": "currentColor",
					"boxShadow":   "0 0 0 4px rgba(10, 132, 255, 0.3)",
				})),
			}
		})).
		ApplyToComponent(theme.MuiFilledInput, preset.ThemeFunc(func(t *theme.Theme) style {
			return style{
				"root": style{
					"backdropFilter":       "blur(10px)",
					"WebkitBackdropFilter": "blur(10px)",
					"borderRadius":         10,
					"transition":           "all 0.2s ease",
					"&::before": with(style{
						"borderBottom": "1px solid rgba(0, 0, 0, 0.06)",
					}, dark(t, style{"borderBottom": "1px solid rgba(255, 255, 255, 0.1)"})),
					"&:hover:not(.Mui-disabled)::before": with(style{
						"borderBottom": "1px solid rgba(0, 0, 0, 0.1)",
					}, dark(t, style{"borderBottom": "1px solid rgba(255, 255, 255, 0.15)"})),
					"&.Mui-focused::after": with(style{
						"boxShadow": "0 0 0 4px rgba(0, 122, 255, 0.1)",
					}, dark(t, style{"boxShadow": "0 0 0 4px rgba(10, 132, 255, 0.3)"})),
				},
			}
		})).
		ApplySelectionStyle(preset.ThemeFunc(func(t *theme.Theme) style {
			return with(style{"transition": "all 0.2s ease"}, hoverTint(t))
		})).
		ApplyToComponent(theme.MuiCard, preset.ThemeFunc(func(t *theme.Theme) style {
			return with(style{
				"backdropFilter":       "saturate(180%) blur(20px)",
				"WebkitBackdropFilter": "saturate(180%) blur(20px)",
				"border":               "1px solid rgba(255, 255, 255, 0.18)",
			}, dark(t, style{"border": "1px solid rgba(255, 255, 255, 0.1)"}))
		})).
		ApplyToComponent(theme.MuiPaper, preset.Static(style{
			"backdropFilter":       "saturate(180%) blur(20px)",
			"WebkitBackdropFilter": "saturate(180%) blur(20px)",
		})).
		ApplyToComponent(theme.MuiBackdrop, preset.Static(style{
			"backgroundColor": "rgba(0, 0, 0, 0.3)",
			"backdropFilter":  "none",
		})).
		ApplyToComponent(theme.MuiModal, preset.Static(style{
			"backdropFilter": "none",
			"border":         "none",
			"boxShadow":      "none",
		})).
		ApplyToComponent(theme.MuiPopover, preset.Static(style{
			"backdropFilter": "none",
			"border":         "none",
			"boxShadow":      "none",
		})).
		ApplyToComponent(theme.MuiTabs, preset.Static(style{
			"& .MuiTabs-indicator": style{
				"height":         2,
				"borderRadius":   2,
				"backdropFilter": "blur(10px)",
			},
		})).
		ApplyToComponent(theme.MuiTab, preset.ThemeFunc(func(t *theme.Theme) style {
			return with(style{
				"textTransform":  "none",
				"fontWeight":     500,
				"borderRadius":   10,
				"transition":     "all 0.2s ease",
				"&.Mui-selected": style{"fontWeight": 600},
			}, hoverTint(t))
		}))
}
