package designs

import (
	"github.com/jmylchreest/themestudio/internal/preset"
	"github.com/jmylchreest/themestudio/internal/theme"
)

// Brutalism is thick borders, hard offset shadows and heavy type.
func Brutalism() *preset.Builder {
	base := baseOptions(backgrounds{
		lightDefault: "#fafafa",
		lightPaper:   "#ffffff",
		darkDefault:  "#0a0a0a",
		darkPaper:    "#1a1a1a",
	}, 2, style{
		"fontFamily":       `"Space Grotesk", "Archivo Black", "Arial Black", sans-serif`,
		"fontWeightBold":   900,
		"fontWeightMedium": 700,
	})

	slab := func(t *theme.Theme) style {
		return with(style{
			"border":       "4px solid #000",
			"boxShadow":    "8px 8px 0 #000",
			"borderRadius": 0,
		}, dark(t, style{
			"border":    "4px solid #fff",
			"boxShadow": "8px 8px 0 #fff",
		}))
	}

	return preset.New(base).
		SetMetadata("Brutalism", "Bold, unapologetic design with maximum contrast").
		ApplySurfaceStyle(preset.ThemeFunc(slab)).
		ApplyActionStyle(preset.ThemeFunc(func(t *theme.Theme) style {
			return with(style{
				"borderRadius":  0,
				"border":        "3px solid #000",
				"boxShadow":     "6px 6px 0 #000",
				"textTransform": "uppercase",
				"fontWeight":    900,
				"fontSize":      "0.95rem",
				"letterSpacing": "0.5px",
				"transition":    "all 0.1s ease",
				"&:hover":       style{"transform": "translate(-3px, -3px)", "boxShadow": "9px 9px 0 #000"},
				"&:active":      style{"transform": "translate(3px, 3px)", "boxShadow": "3px 3px 0 #000"},
			}, dark(t, style{
				"border":    "3px solid #fff",
				"boxShadow": "6px 6px 0 #fff",
				"&:hover":   style{"transform": "translate(-3px, -3px)", "boxShadow": "9px 9px 0 #fff"},
				"&:active":  style{"transform": "translate(3px, 3px)", "boxShadow": "3px 3px 0 #fff"},
			}))
		})).
		ApplyToComponent(theme.MuiOutlinedInput, preset.ThemeFunc(func(t *theme.Theme) style {
			return style{
				"notchedOutline": with(style{
					"border":       "3px solid #000",
					"borderRadius": 0,
					"transition":   "all 0.1s ease",
				}, dark(t, style{"borderColor": "#fff"})),
				"root": style{
					"fontWeight":   700,
					"borderRadius": 0,
					"&:hover .MuiOutlinedInput-notchedOutline": with(style{
						"transform": "translate(-1px, -1px)",
						"boxShadow": "2px 2px 0 #000",
					}, dark(t, style{"boxShadow": "2px 2px 0 #fff"})),
					"&.Mui-focused .MuiOutlinedInput-notchedOutline": with(style{
						"border":        "3px solid #000",
						"outline":       "4px solid #000",
						"outlineOffset": 2,
					}, dark(t, style{
						"borderColor": "#fff",
						"outline":     "4px solid #fff",
					})),
				},
			}
		})).
		ApplyToComponent(theme.MuiSelect, preset.ThemeFunc(func(t *theme.Theme) style {
			return style{
				"icon": with(style{
					"color":      "#000",
					"fontWeight": 900,
				}, dark(t, style{"color": "#fff"})),
			}
		})).
		ApplyToComponent(theme.MuiInputLabel, preset.ThemeFunc(func(t *theme.Theme) style {
			return style{
				"root": with(style{
					"fontWeight":    700,
					"color":         "#000",
					"&.Mui-focused": style{"fontWeight": 900, "color": "#000"},
				}, dark(t, style{
					"color":         "#fff",
					"&.Mui-focused": style{"color": "#fff"},
				})),
			}
		})).
		ApplyToComponent(theme.MuiCard, preset.ThemeFunc(slab)).
		ApplyToComponent(theme.MuiBackdrop, preset.Static(style{
			"backgroundColor": "rgba(0, 0, 0, 0.5)",
		})).
		ApplyToComponent(theme.MuiTabs, preset.ThemeFunc(func(t *theme.Theme) style {
			return with(style{
				"borderBottom": "4px solid #000",
				"& .MuiTabs-indicator": with(style{
					"height":          6,
					"backgroundColor": "#000",
				}, dark(t, style{"backgroundColor": "#fff"})),
			}, dark(t, style{"borderBottom": "4px solid #fff"}))
		})).
		ApplyToComponent(theme.MuiTab, preset.ThemeFunc(func(t *theme.Theme) style {
			return with(style{
				"textTransform": "uppercase",
				"fontWeight":    900,
				"fontSize":      "1rem",
				"letterSpacing": "0.1em",
				"border":        "3px solid transparent",
				"transition":    "none",
				"&:hover": style{
					"border":    "3px solid #000",
					"transform": "translate(-1px, -1px)",
					"boxShadow": "2px 2px 0 #000",
				},
				"&.Mui-selected": style{
					"border":     "3px solid #000",
					"fontWeight": 900,
				},
			}, dark(t, style{
				"&:hover":        style{"border": "3px solid #fff", "boxShadow": "2px 2px 0 #fff"},
				"&.Mui-selected": style{"border": "3px solid #fff"},
			}))
		}))
}
