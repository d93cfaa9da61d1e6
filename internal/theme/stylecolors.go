package theme

// styleColors holds the suggested semantic scales for styles that have an
// opinion about colour. Neutral is never suggested.
var styleColors = map[DesignStyle]BrandPalette{
	StyleCyberpunk: {
		Primary:   ColorScale{Main: "#00ffff", Light: "#6dffff", Dark: "#00b2b3", ContrastText: "#000000"},
		Secondary: ColorScale{Main: "#ff00ff", Light: "#ff5cff", Dark: "#c400c4", ContrastText: "#000000"},
		Error:     ColorScale{Main: "#ff0055", Light: "#ff5c85", Dark: "#c4003f", ContrastText: "#ffffff"},
		Warning:   ColorScale{Main: "#ffaa00", Light: "#ffcd4d", Dark: "#c47f00", ContrastText: "#000000"},
		Info:      ColorScale{Main: "#00d4ff", Light: "#5ce3ff", Dark: "#009fc4", ContrastText: "#000000"},
		Success:   ColorScale{Main: "#00ff88", Light: "#5cffb3", Dark: "#00c462", ContrastText: "#000000"},
	},
	StyleRetro: {
		Primary:   ColorScale{Main: "#d4a574", Light: "#e6c9a8", Dark: "#a07d4e", ContrastText: "#1a1a1a"},
		Secondary: ColorScale{Main: "#8b6f47", Light: "#b39975", Dark: "#5d4a2f", ContrastText: "#fff"},
		Error:     ColorScale{Main: "#c44536", Light: "#d97567", Dark: "#8e3025", ContrastText: "#fff"},
		Warning:   ColorScale{Main: "#d4a237", Light: "#e6c36b", Dark: "#a07827", ContrastText: "#1a1a1a"},
		Info:      ColorScale{Main: "#6b9fa8", Light: "#9dc4cc", Dark: "#4a7178", ContrastText: "#fff"},
		Success:   ColorScale{Main: "#7a9f6f", Light: "#a7c49f", Dark: "#557149", ContrastText: "#fff"},
	},
	StyleGradientMesh: {
		Primary:   ColorScale{Main: "#6366f1", Light: "#a5b4fc", Dark: "#4338ca", ContrastText: "#fff"},
		Secondary: ColorScale{Main: "#ec4899", Light: "#f9a8d4", Dark: "#be185d", ContrastText: "#fff"},
		Error:     ColorScale{Main: "#ef4444", Light: "#fca5a5", Dark: "#b91c1c", ContrastText: "#fff"},
		Warning:   ColorScale{Main: "#f59e0b", Light: "#fcd34d", Dark: "#b45309", ContrastText: "#000"},
		Info:      ColorScale{Main: "#3b82f6", Light: "#93c5fd", Dark: "#1e40af", ContrastText: "#fff"},
		Success:   ColorScale{Main: "#10b981", Light: "#6ee7b7", Dark: "#047857", ContrastText: "#fff"},
	},
	StyleMaterialDesign3: {
		Primary:   ColorScale{Main: "#6750a4", Light: "#d0bcff", Dark: "#381e72", ContrastText: "#fff"},
		Secondary: ColorScale{Main: "#625b71", Light: "#e8def8", Dark: "#332d41", ContrastText: "#fff"},
		Error:     ColorScale{Main: "#b3261e", Light: "#f2b8b5", Dark: "#8c1d18", ContrastText: "#fff"},
		Warning:   ColorScale{Main: "#7d5260", Light: "#ffd8e4", Dark: "#5d3f4a", ContrastText: "#fff"},
		Info:      ColorScale{Main: "#006a6a", Light: "#a7d8d8", Dark: "#00504f", ContrastText: "#fff"},
		Success:   ColorScale{Main: "#386a20", Light: "#c4ead0", Dark: "#28501a", ContrastText: "#fff"},
	},
	StyleGlassmorphism: {
		Primary:   ColorScale{Main: "#3b82f6", Light: "#60a5fa", Dark: "#2563eb", ContrastText: "#fff"},
		Secondary: ColorScale{Main: "#8b5cf6", Light: "#a78bfa", Dark: "#7c3aed", ContrastText: "#fff"},
		Error:     ColorScale{Main: "#ef4444", Light: "#f87171", Dark: "#dc2626", ContrastText: "#fff"},
		Warning:   ColorScale{Main: "#f59e0b", Light: "#fbbf24", Dark: "#d97706", ContrastText: "#000"},
		Info:      ColorScale{Main: "#06b6d4", Light: "#22d3ee", Dark: "#0891b2", ContrastText: "#fff"},
		Success:   ColorScale{Main: "#10b981", Light: "#34d399", Dark: "#059669", ContrastText: "#fff"},
	},
	StyleNeumorphism: {
		Primary:   ColorScale{Main: "#5c7cfa", Light: "#91a7ff", Dark: "#4263eb", ContrastText: "#fff"},
		Secondary: ColorScale{Main: "#748ffc", Light: "#91a7ff", Dark: "#5c7cfa", ContrastText: "#fff"},
		Error:     ColorScale{Main: "#fa5252", Light: "#ff8787", Dark: "#e03131", ContrastText: "#fff"},
		Warning:   ColorScale{Main: "#fd7e14", Light: "#ffa94d", Dark: "#e8590c", ContrastText: "#fff"},
		Info:      ColorScale{Main: "#339af0", Light: "#74c0fc", Dark: "#1c7ed6", ContrastText: "#fff"},
		Success:   ColorScale{Main: "#51cf66", Light: "#8ce99a", Dark: "#37b24d", ContrastText: "#fff"},
	},
	StyleBrutalism: {
		Primary:   ColorScale{Main: "#000000", Light: "#333333", Dark: "#000000", ContrastText: "#fff"},
		Secondary: ColorScale{Main: "#ff0000", Light: "#ff4444", Dark: "#cc0000", ContrastText: "#fff"},
		Error:     ColorScale{Main: "#ff0000", Light: "#ff4444", Dark: "#cc0000", ContrastText: "#fff"},
		Warning:   ColorScale{Main: "#ffff00", Light: "#ffff66", Dark: "#cccc00", ContrastText: "#000"},
		Info:      ColorScale{Main: "#0000ff", Light: "#4444ff", Dark: "#0000cc", ContrastText: "#fff"},
		Success:   ColorScale{Main: "#00ff00", Light: "#44ff44", Dark: "#00cc00", ContrastText: "#000"},
	},
}

// RecommendedPalette returns the suggested palette for style. Minimal and
// flat design have none; ok is false for them.
func RecommendedPalette(style DesignStyle) (BrandPalette, bool) {
	p, ok := styleColors[style.OrDefault()]
	return p, ok
}

// HasStyleColors reports whether style suggests its own palette.
func HasStyleColors(style DesignStyle) bool {
	_, ok := styleColors[style.OrDefault()]
	return ok
}

// ApplyRecommended overwrites the six semantic scales of p with the style's
// suggestion, keeping neutral. p is returned unchanged when there is none.
func ApplyRecommended(p BrandPalette, style DesignStyle) BrandPalette {
	rec, ok := RecommendedPalette(style)
	if !ok {
		return p
	}
	rec.Neutral = p.Neutral
	return rec
}

// DisplayName is the human-readable style name.
func (ds DesignStyle) DisplayName() string {
	switch ds {
	case StyleGlassmorphism:
		return "Glassmorphism"
	case StyleNeumorphism:
		return "Neumorphism"
	case StyleBrutalism:
		return "Brutalism"
	case StyleMinimal:
		return "Minimal"
	case StyleFlatDesign:
		return "Flat Design"
	case StyleCyberpunk:
		return "Cyberpunk"
	case StyleGradientMesh:
		return "Gradient Mesh"
	case StyleMaterialDesign3:
		return "Material Design 3"
	case StyleRetro:
		return "Retro"
	default:
		return "Custom"
	}
}
