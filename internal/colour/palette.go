package colour

// Scale is a fully resolved colour scale.
type Scale struct {
	Main         string `json:"main"`
	Light        string `json:"light"`
	Dark         string `json:"dark"`
	ContrastText string `json:"contrastText"`
}

// SemanticPalette is the seven-scale palette produced by GeneratePalette.
type SemanticPalette struct {
	Primary   Scale `json:"primary"`
	Secondary Scale `json:"secondary"`
	Error     Scale `json:"error"`
	Warning   Scale `json:"warning"`
	Info      Scale `json:"info"`
	Success   Scale `json:"success"`
	Neutral   Scale `json:"neutral"`
}

// Scales returns the palette's scales keyed by their semantic name.
func (p SemanticPalette) Scales() map[string]Scale {
	return map[string]Scale{
		"primary":   p.Primary,
		"secondary": p.Secondary,
		"error":     p.Error,
		"warning":   p.Warning,
		"info":      p.Info,
		"success":   p.Success,
		"neutral":   p.Neutral,
	}
}

// Pinned semantic scales. GeneratePalette never derives error, success or
// neutral from the harmony; they stay on these brand-safe values.
var (
	PinnedError   = Scale{Main: "#d32f2f", Light: "#ef5350", Dark: "#c62828", ContrastText: "#ffffff"}
	PinnedSuccess = Scale{Main: "#2e7d32", Light: "#4caf50", Dark: "#1b5e20", ContrastText: "#ffffff"}
	PinnedNeutral = Scale{Main: "#64748b", Light: "#94a3b8", Dark: "#475569", ContrastText: "#ffffff"}

	fallbackWarning = Scale{Main: "#ed6c02", Light: "#ff9800", Dark: "#e65100", ContrastText: "#ffffff"}
	fallbackInfo    = Scale{Main: "#0288d1", Light: "#03a9f4", Dark: "#01579b", ContrastText: "#ffffff"}
)

// variantOffset is the lightness shift used for light/dark variants.
const variantOffset = 15

// GeneratePalette derives a full semantic palette from one base colour.
//
// The base is first pushed to a vibrant range (saturation at least 60,
// lightness between 45 and 55). Primary and secondary come from the first
// two harmony colours, warning from the third and info from the fourth when
// the harmony yields them.
func GeneratePalette(base string, harmony HarmonyType) SemanticPalette {
	hsl := HexToHSL(base)
	vibrant := HSLToHex(
		float64(hsl.H),
		float64(max(hsl.S, 60)),
		float64(max(min(hsl.L, 55), 45)),
	)

	colors := Harmony(vibrant, harmony, paletteSpread)
	at := func(i int) (string, bool) {
		if i < len(colors) {
			return colors[i], true
		}
		return "", false
	}

	primary := colors[0]
	secondary, ok := at(1)
	if !ok {
		secondary = primary
	}

	p := SemanticPalette{
		Primary:   derivedScale(primary),
		Secondary: derivedScale(secondary),
		Error:     PinnedError,
		Warning:   fallbackWarning,
		Info:      fallbackInfo,
		Success:   PinnedSuccess,
		Neutral:   PinnedNeutral,
	}

	if c, ok := at(2); ok {
		p.Warning = Scale{
			Main:         AdjustLightness(c, 10),
			Light:        AdjustLightness(c, 25),
			Dark:         AdjustLightness(c, -5),
			ContrastText: "#ffffff",
		}
	}
	if c, ok := at(3); ok {
		p.Info = Scale{
			Main:         c,
			Light:        AdjustLightness(c, variantOffset),
			Dark:         AdjustLightness(c, -variantOffset),
			ContrastText: "#ffffff",
		}
	}

	return p
}

func derivedScale(main string) Scale {
	return Scale{
		Main:         main,
		Light:        AdjustLightness(main, variantOffset),
		Dark:         AdjustLightness(main, -variantOffset),
		ContrastText: ContrastColor(main),
	}
}
