package designs

import (
	"github.com/jmylchreest/themestudio/internal/preset"
	"github.com/jmylchreest/themestudio/internal/theme"
)

// GradientMesh is frosted cards over vivid gradient backgrounds.
func GradientMesh() *preset.Builder {
	base := baseOptions(backgrounds{
		lightDefault: "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
		lightPaper:   "#ffffff",
		darkDefault:  "linear-gradient(135deg, #1a1a3e 0%, #2d1b3d 100%)",
		darkPaper:    "#1e1e1e",
	}, 16, nil)

	return preset.New(base).
		SetMetadata("Gradient Mesh", "Vibrant mesh gradients").
		ApplySurfaceStyle(preset.ThemeFunc(func(t *theme.Theme) style {
			return with(style{
				"backdropFilter": "blur(10px)",
				"border":         "1px solid rgba(255, 255, 255, 0.3)",
				"boxShadow":      "0 8px 32px rgba(0, 0, 0, 0.1)",
				"borderRadius":   16,
			}, dark(t, style{
				"border":    "1px solid rgba(255, 255, 255, 0.1)",
				"boxShadow": "0 8px 32px rgba(0, 0, 0, 0.4)",
			}))
		})).
		ApplyActionStyle(preset.ThemeFunc(func(t *theme.Theme) style {
			return with(style{
				"background":    "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
				"border":        "none",
				"borderRadius":  12,
				"color":         "#fff",
				"textTransform": "none",
				"fontWeight":    600,
				"boxShadow":     "0 4px 15px rgba(102, 126, 234, 0.4)",
				"transition":    "all 0.3s ease",
				"&:hover": style{
					"background": "linear-gradient(135deg, #764ba2 0%, #667eea 100%)",
					"boxShadow":  "0 6px 20px rgba(102, 126, 234, 0.6)",
					"transform":  "translateY(-2px)",
				},
			}, dark(t, style{
				"background": "linear-gradient(135deg, #4a5568 0%, #553c9a 100%)",
				"boxShadow":  "0 4px 15px rgba(0, 0, 0, 0.5)",
				"&:hover": style{
					"background": "linear-gradient(135deg, #553c9a 0%, #4a5568 100%)",
					"boxShadow":  "0 6px 20px rgba(0, 0, 0, 0.6)",
					"transform":  "translateY(-2px)",
				},
			}))
		})).
		ApplyToComponent(theme.MuiOutlinedInput, preset.ThemeFunc(func(t *theme.Theme) style {
			return style{
				"root": style{
					"backdropFilter": "blur(8px)",
					"borderRadius":   12,
					"transition":     "all 0.3s ease",
				},
				"notchedOutline": with(style{
					"border":     "1.5px solid rgba(255, 255, 255, 0.4)",
					"transition": "all 0.3s ease",
				}, dark(t, style{"borderColor": "rgba(255, 255, 255, 0.15)"})),
				"&:hover .MuiOutlinedInput-notchedOutline": with(style{
					"borderColor": "rgba(102, 126, 234, 0.3)",
				}, dark(t, style{"borderColor": "rgba(102, 126, 234, 0.4)"})),
				"&.Mui-focused .MuiOutlinedInput-notchedOutline": style{
					"borderColor": "rgba(102, 126, 234, 0.6)",
					"boxShadow":   "0 0 0 4px rgba(102, 126, 234, 0.1)",
				},
			}
		})).
		ApplyToComponent(theme.MuiCard, preset.ThemeFunc(func(t *theme.Theme) style {
			return with(style{
				"backdropFilter": "blur(10px)",
				"border":         "1px solid rgba(255, 255, 255, 0.3)",
			}, dark(t, style{"border": "1px solid rgba(255, 255, 255, 0.1)"}))
		}))
}
