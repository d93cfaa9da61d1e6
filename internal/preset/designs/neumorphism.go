package designs

import (
	"github.com/jmylchreest/themestudio/internal/preset"
	"github.com/jmylchreest/themestudio/internal/theme"
)

const (
	neuBase     = "#e8ecf1"
	neuDarkBase = "#2a2d35"

	neuInset          = "inset 4px 4px 8px rgba(163, 177, 198, 0.4), inset -4px -4px 8px rgba(255, 255, 255, 0.5)"
	neuInsetDark      = "inset 4px 4px 8px rgba(0, 0, 0, 0.4), inset -4px -4px 8px rgba(58, 61, 71, 0.2)"
	neuInsetFocus     = "inset 6px 6px 12px rgba(163, 177, 198, 0.5), inset -6px -6px 12px rgba(255, 255, 255, 0.6)"
	neuInsetFocusDark = "inset 6px 6px 12px rgba(0, 0, 0, 0.5), inset -6px -6px 12px rgba(58, 61, 71, 0.3)"
)

// Neumorphism is soft, extruded surfaces lit from the top left.
func Neumorphism() *preset.Builder {
	base := baseOptions(backgrounds{
		lightDefault: neuBase,
		lightPaper:   neuBase,
		darkDefault:  neuDarkBase,
		darkPaper:    neuDarkBase,
	}, 16, nil)

	return preset.New(base).
		SetMetadata("Neumorphism", "Soft, extruded surfaces with elegant shadows").
		ApplySurfaceStyle(preset.ThemeFunc(func(t *theme.Theme) style {
			return with(style{
				"borderRadius": 16,
				"boxShadow":    "9px 9px 16px rgba(163, 177, 198, 0.6), -9px -9px 16px rgba(255, 255, 255, 0.5)",
				"border":       "1px solid rgba(255, 255, 255, 0.8)",
			}, dark(t, style{
				"boxShadow": "9px 9px 16px rgba(0, 0, 0, 0.5), -9px -9px 16px rgba(58, 61, 71, 0.3)",
				"border":    "1px solid rgba(255, 255, 255, 0.05)",
			}))
		})).
		ApplyActionStyle(preset.ThemeFunc(func(t *theme.Theme) style {
			return with(style{
				"borderRadius":  12,
				"textTransform": "none",
				"fontWeight":    600,
				"boxShadow":     "6px 6px 12px rgba(163, 177, 198, 0.6), -6px -6px 12px rgba(255, 255, 255, 0.5)",
				"border":        "1px solid rgba(255, 255, 255, 0.6)",
				"transition":    "all 0.3s cubic-bezier(0.4, 0, 0.2, 1)",
				"&:hover": style{
					"boxShadow": "8px 8px 16px rgba(163, 177, 198, 0.7), -8px -8px 16px rgba(255, 255, 255, 0.6)",
					"transform": "translateY(-2px)",
				},
				"&:active": style{
					"boxShadow": "inset 4px 4px 8px rgba(163, 177, 198, 0.5), inset -4px -4px 8px rgba(255, 255, 255, 0.5)",
					"transform": "translateY(0)",
				},
			}, dark(t, style{
				"boxShadow": "6px 6px 12px rgba(0, 0, 0, 0.5), -6px -6px 12px rgba(58, 61, 71, 0.3)",
				"border":    "1px solid rgba(255, 255, 255, 0.05)",
				"&:hover": style{
					"boxShadow": "8px 8px 16px rgba(0, 0, 0, 0.6), -8px -8px 16px rgba(58, 61, 71, 0.4)",
					"transform": "translateY(-2px)",
				},
				"&:active": style{
					"boxShadow": "inset 4px 4px 8px rgba(0, 0, 0, 0.5), inset -4px -4px 8px rgba(58, 61, 71, 0.2)",
					"transform": "translateY(0)",
				},
			}))
		})).
		ApplyToComponent(theme.MuiOutlinedInput, preset.ThemeFunc(func(t *theme.Theme) style {
			return style{
				"root": style{
					"borderRadius": 12,
					"transition":   "box-shadow 0.3s ease",
				},
				"notchedOutline": style{"border": "none"},
				"input": with(style{
					"boxShadow":    neuInset,
					"borderRadius": 12,
				}, dark(t, style{"boxShadow": neuInsetDark})),
				"&.Mui-focused": style{
					".MuiOutlinedInput-input": with(style{
						"boxShadow": neuInsetFocus,
					}, dark(t, style{"boxShadow": neuInsetFocusDark})),
				},
			}
		})).
		ApplyToComponent(theme.MuiFilledInput, preset.ThemeFunc(func(t *theme.Theme) style {
			return style{
				"root": with(style{
					"borderRadius":        12,
					"boxShadow":           neuInset,
					"transition":          "box-shadow 0.3s ease",
					"&::before, &::after": style{"display": "none"},
					"&.Mui-focused":       style{"boxShadow": neuInsetFocus},
				}, dark(t, style{
					"boxShadow":     neuInsetDark,
					"&.Mui-focused": style{"boxShadow": neuInsetFocusDark},
				})),
			}
		})).
		ApplyToComponent(theme.MuiTabs, preset.ThemeFunc(func(t *theme.Theme) style {
			return style{
				"& .MuiTabs-indicator": with(style{
					"height":       3,
					"borderRadius": 3,
					"boxShadow":    "2px 2px 4px rgba(0, 0, 0, 0.2), -2px -2px 4px rgba(255, 255, 255, 0.7)",
				}, dark(t, style{
					"boxShadow": "2px 2px 4px rgba(0, 0, 0, 0.5), -2px -2px 4px rgba(58, 61, 71, 0.3)",
				})),
			}
		})).
		ApplyToComponent(theme.MuiTab, preset.ThemeFunc(func(t *theme.Theme) style {
			return style{
				"textTransform": "none",
				"fontWeight":    500,
				"borderRadius":  16,
				"margin":        "0 4px",
				"&.Mui-selected": with(style{
					"boxShadow": "inset 2px 2px 4px rgba(0, 0, 0, 0.15), inset -2px -2px 4px rgba(255, 255, 255, 0.7)",
				}, dark(t, style{
					"boxShadow": "inset 2px 2px 4px rgba(0, 0, 0, 0.4), inset -2px -2px 4px rgba(58, 61, 71, 0.2)",
				})),
			}
		}))
}
