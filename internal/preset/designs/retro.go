package designs

import (
	"github.com/jmylchreest/themestudio/internal/preset"
	"github.com/jmylchreest/themestudio/internal/theme"
)

// Retro is warm paper tones, typewriter type and offset shadows.
func Retro() *preset.Builder {
	base := baseOptions(backgrounds{
		lightDefault: "#f4e8d8",
		lightPaper:   "#fff8e7",
		darkDefault:  "#2a2520",
		darkPaper:    "#3a3330",
	}, 4, style{
		"fontFamily":        `"Courier Prime", "Courier New", monospace`,
		"fontWeightRegular": 400,
		"fontWeightMedium":  500,
		"fontWeightBold":    700,
	})

	card := func(t *theme.Theme) style {
		return with(style{
			"border":    "3px solid #d4a574",
			"boxShadow": "6px 6px 0 #c49563",
		}, dark(t, style{
			"border":    "3px solid #7a6555",
			"boxShadow": "6px 6px 0 #5a4a40",
		}))
	}

	offset := func(shadow string) style {
		return style{
			"&:hover":  style{"transform": "translate(-2px, -2px)", "boxShadow": "6px 6px 0 " + shadow},
			"&:active": style{"transform": "translate(2px, 2px)", "boxShadow": "2px 2px 0 " + shadow},
		}
	}

	return preset.New(base).
		SetMetadata("Retro", "Warm vintage aesthetics with soft shadows").
		ApplySurfaceStyle(preset.ThemeFunc(func(t *theme.Theme) style {
			return with(card(t), style{"borderRadius": 4})
		})).
		ApplyActionStyle(preset.ThemeFunc(func(t *theme.Theme) style {
			return with(style{
				"border":        "3px solid #c49563",
				"boxShadow":     "4px 4px 0 #a57743",
				"borderRadius":  2,
				"textTransform": "uppercase",
				"fontWeight":    700,
				"fontSize":      "0.875rem",
				"letterSpacing": "0.5px",
				"color":         "#5a3e2b",
				"transition":    "all 0.15s ease",
			}, offset("#a57743"), dark(t, with(style{
				"border":    "3px solid #7a6555",
				"boxShadow": "4px 4px 0 #4a3a30",
				"color":     "#e8d4ba",
			}, offset("#4a3a30"))))
		})).
		ApplyToComponent(theme.MuiOutlinedInput, preset.ThemeFunc(func(t *theme.Theme) style {
			return style{
				"root": style{
					"borderRadius": 2,
					"fontFamily":   "inherit",
					"transition":   "all 0.2s ease",
				},
				"notchedOutline": with(style{
					"border":     "2px solid #d4a574",
					"transition": "all 0.2s ease",
				}, dark(t, style{"borderColor": "#7a6555"})),
				"&:hover .MuiOutlinedInput-notchedOutline": with(style{
					"borderColor": "#b88653",
				}, dark(t, style{"borderColor": "#8a7565"})),
				"&.Mui-focused .MuiOutlinedInput-notchedOutline": with(style{
					"borderColor": "#a57743",
					"boxShadow":   "0 0 0 3px rgba(164, 119, 67, 0.2)",
				}, dark(t, style{
					"borderColor": "#9a8575",
					"boxShadow":   "0 0 0 3px rgba(154, 133, 117, 0.3)",
				})),
			}
		})).
		ApplyToComponent(theme.MuiCard, preset.ThemeFunc(card)).
		ApplyToComponent(theme.MuiBackdrop, preset.Static(style{
			"backgroundColor": "rgba(90, 62, 43, 0.4)",
		}))
}
