package designs

import (
	"github.com/jmylchreest/themestudio/internal/preset"
	"github.com/jmylchreest/themestudio/internal/theme"
)

// Minimal is hairline borders, light shadows and generous whitespace. It is
// also used for flat design and unset styles.
func Minimal() *preset.Builder {
	base := baseOptions(backgrounds{
		lightDefault: "#fafafa",
		lightPaper:   "#ffffff",
		darkDefault:  "#121212",
		darkPaper:    "#1e1e1e",
	}, 8, style{
		"fontFamily":        `"Inter", -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif`,
		"fontWeightLight":   300,
		"fontWeightRegular": 400,
		"fontWeightMedium":  500,
		"fontWeightBold":    600,
	})

	return preset.New(base).
		SetMetadata("Minimal", "Clean, elegant Scandinavian design").
		ApplySurfaceStyle(preset.ThemeFunc(func(t *theme.Theme) style {
			return with(style{
				"border":       "1px solid rgba(0, 0, 0, 0.08)",
				"boxShadow":    "0 1px 3px rgba(0, 0, 0, 0.04)",
				"borderRadius": 8,
			}, dark(t, style{
				"border":    "1px solid rgba(255, 255, 255, 0.12)",
				"boxShadow": "0 1px 3px rgba(0, 0, 0, 0.3)",
			}))
		})).
		ApplyActionStyle(preset.ThemeFunc(func(t *theme.Theme) style {
			return with(style{
				"borderRadius":  6,
				"textTransform": "none",
				"fontWeight":    500,
				"boxShadow":     "none",
				"border":        "1.5px solid rgba(0, 0, 0, 0.12)",
				"transition":    "all 0.2s ease",
				"&:hover": style{
					"boxShadow":   "0 2px 8px rgba(0, 0, 0, 0.08)",
					"transform":   "translateY(-1px)",
					"borderColor": "rgba(0, 0, 0, 0.2)",
				},
				"&:active": style{"transform": "translateY(0)"},
			}, dark(t, style{
				"border": "1.5px solid rgba(255, 255, 255, 0.2)",
				"&:hover": style{
					"boxShadow":   "0 2px 8px rgba(0, 0, 0, 0.4)",
					"transform":   "translateY(-1px)",
					"borderColor": "rgba(255, 255, 255, 0.3)",
				},
				"&:active": style{"transform": "translateY(0)"},
			}))
		})).
		ApplyToComponent(theme.MuiOutlinedInput, preset.ThemeFunc(func(t *theme.Theme) style {
			return style{
				"root": style{
					"borderRadius": 6,
					"transition":   "all 0.2s ease",
				},
				"notchedOutline": with(style{
					"border":     "1.5px solid rgba(0, 0, 0, 0.12)",
					"transition": "all 0.2s ease",
				}, dark(t, style{"borderColor": "rgba(255, 255, 255, 0.2)"})),
				"&:hover .MuiOutlinedInput-notchedOutline": with(style{
					"borderColor": "rgba(0, 0, 0, 0.2)",
				}, dark(t, style{"borderColor": "rgba(255, 255, 255, 0.3)"})),
				"&.Mui-focused .MuiOutlinedInput-notchedOutline": with(style{
					"borderColor": "currentColor",
					"boxShadow":   "0 0 0 3px rgba(0, 0, 0, 0.05)",
				}, dark(t, style{"boxShadow": "0 0 0 3px rgba(255, 255, 255, 0.1)"})),
			}
		}))
}
