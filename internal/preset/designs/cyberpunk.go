package designs

import (
	"fmt"

	"github.com/jmylchreest/themestudio/internal/preset"
	"github.com/jmylchreest/themestudio/internal/theme"
)

// mix renders a CSS color-mix of c at pct percent over transparent.
func mix(c string, pct int) string {
	return fmt.Sprintf("color-mix(in srgb, %s %d%%, transparent)", c, pct)
}

// Cyberpunk is a neon-noir look driven by the primary and secondary colours.
// Its unscoped styles are the dark look; the light scheme is the override.
func Cyberpunk() *preset.Builder {
	base := baseOptions(backgrounds{
		lightDefault: "#f5f5f5",
		lightPaper:   "#ffffff",
		darkDefault:  "#050505",
		darkPaper:    "#0a0a0f",
	}, 0, style{
		"fontFamily":       `"Rajdhani", "Orbitron", "Roboto Mono", monospace`,
		"fontWeightMedium": 600,
		"fontWeightBold":   700,
	})
	base.Palette = style{
		"background": style{"default": "#050505", "paper": "#0a0a0f"},
	}
	base.ColorSchemes[theme.SchemeLight].Palette["text"] = style{"primary": "#1a1a1a", "secondary": "#4a4a4a"}
	base.ColorSchemes[theme.SchemeDark].Palette["text"] = style{"primary": "#e0e0e0", "secondary": "#a0a0a0"}

	return preset.New(base).
		SetMetadata("Cyberpunk", "Cyberpunk 2077 neon-noir aesthetic").
		ApplySurfaceStyle(preset.ThemeFunc(func(t *theme.Theme) style {
			p := t.Palette.Primary.Main
			return with(style{
				"background":   "linear-gradient(135deg, #0a0a0f 0%, #0f0f14 100%)",
				"border":       "1px solid " + mix(p, 40),
				"boxShadow":    fmt.Sprintf("0 0 20px %s, 0 4px 20px rgba(0, 0, 0, 0.8)", mix(p, 15)),
				"borderRadius": 0,
			}, light(t, style{
				"background": "linear-gradient(135deg, #ffffff 0%, #f5f5f5 100%)",
				"border":     "1px solid " + mix(p, 25),
				"boxShadow":  fmt.Sprintf("0 0 15px %s, 0 4px 20px rgba(0, 0, 0, 0.15)", mix(p, 10)),
			}))
		})).
		ApplyActionStyle(preset.ThemeFunc(func(t *theme.Theme) style {
			p, s := t.Palette.Primary.Main, t.Palette.Secondary.Main
			hover := func(glow int) style {
				return style{
					"background":  fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", mix(s, 20), mix(p, 20)),
					"borderColor": s,
					"boxShadow":   fmt.Sprintf("0 0 %dpx %s, inset 0 0 15px %s", glow, mix(s, glow+20), mix(s, 20)),
					"transform":   "translateY(-1px)",
					"color":       s,
				}
			}
			return with(style{
				"background":    fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", mix(p, 10), mix(p, 5)),
				"border":        "2px solid " + mix(p, 70),
				"borderRadius":  0,
				"textTransform": "uppercase",
				"fontWeight":    700,
				"letterSpacing": "2px",
				"boxShadow":     fmt.Sprintf("0 0 25px %s, inset 0 0 10px %s", mix(p, 40), mix(p, 10)),
				"transition":    "all 0.2s ease",
				"color":         p,
				"&:hover":       hover(40),
			}, dark(t, style{
				"color":      p,
				"background": fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", mix(p, 15), mix(p, 10)),
				"border":     "2px solid " + mix(p, 80),
				"boxShadow":  fmt.Sprintf("0 0 30px %s, inset 0 0 10px %s", mix(p, 50), mix(p, 10)),
				"&:hover":    hover(50),
			}))
		})).
		ApplyToComponent(theme.MuiOutlinedInput, preset.ThemeFunc(func(t *theme.Theme) style {
			p, s := t.Palette.Primary.Main, t.Palette.Secondary.Main
			return style{
				"root": style{
					"borderRadius": 0,
					"transition":   "all 0.2s ease",
				},
				"notchedOutline": with(style{
					"border":     "2px solid " + mix(p, 50),
					"boxShadow":  "0 0 20px " + mix(p, 20),
					"transition": "all 0.2s ease",
				}, dark(t, style{
					"borderColor": mix(p, 60),
					"boxShadow":   "0 0 20px " + mix(p, 25),
				})),
				"input": with(style{
					"color":      p,
					"fontWeight": 500,
				}, dark(t, style{"color": p})),
				"&:hover .MuiOutlinedInput-notchedOutline": with(style{
					"borderColor": mix(s, 80),
					"boxShadow":   "0 0 30px " + mix(s, 35),
				}, dark(t, style{
					"borderColor": mix(s, 70),
					"boxShadow":   "0 0 30px " + mix(s, 40),
				})),
				"&.Mui-focused .MuiOutlinedInput-notchedOutline": with(style{
					"borderColor": p,
					"boxShadow":   fmt.Sprintf("0 0 40px %s, inset 0 0 15px %s", mix(p, 60), mix(p, 10)),
				}, dark(t, style{
					"borderColor": p,
					"boxShadow":   fmt.Sprintf("0 0 40px %s, inset 0 0 15px %s", mix(p, 70), mix(p, 15)),
				})),
			}
		})).
		ApplyToComponent(theme.MuiBackdrop, preset.ThemeFunc(func(t *theme.Theme) style {
			return with(style{
				"backgroundColor": "rgba(5, 5, 5, 0.6)",
			}, light(t, style{"backgroundColor": "rgba(245, 245, 245, 0.6)"}))
		}))
}
