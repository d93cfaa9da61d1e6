package colour

import (
	"math"
)

// HSL is a colour in integer HSL space.
// H is in [0,360), S and L are percentages in [0,100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// Hex converts the HSL value back to "#rrggbb".
func (c HSL) Hex() string {
	return HSLToHex(float64(c.H), float64(c.S), float64(c.L))
}

// HexToHSL converts a hex colour to rounded HSL.
// Malformed input is treated as black.
func HexToHSL(hex string) HSL {
	h, s, l := rgbToHSL(mustRGB(hex))
	return HSL{
		H: wrapHue(int(math.Round(h))),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HSLToHex converts hue (degrees), saturation and lightness (percent) to hex.
// Fractional inputs are accepted; channels are rounded to the nearest byte.
func HSLToHex(h, s, l float64) string {
	return HSLToRGB(h, s/100, l/100).Hex()
}

// AdjustLightness shifts lightness by amount percentage points, clamped to [0,100].
func AdjustLightness(hex string, amount int) string {
	c := HexToHSL(hex)
	c.L = clampPercent(c.L + amount)
	return c.Hex()
}

// AdjustSaturation shifts saturation by amount percentage points, clamped to [0,100].
func AdjustSaturation(hex string, amount int) string {
	c := HexToHSL(hex)
	c.S = clampPercent(c.S + amount)
	return c.Hex()
}

// ContrastColor returns black text for light colours and white text otherwise.
// The cut-off is HSL lightness above 50.
func ContrastColor(hex string) string {
	if HexToHSL(hex).L > 50 {
		return "#000000"
	}
	return "#ffffff"
}

// rgbToHSL converts RGB to HSL colour space.
// Returns hue (0-360), saturation (0-1), lightness (0-1).
func rgbToHSL(rgb RGB) (h, s, l float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l = (maxVal + minVal) / 2.0

	if delta == 0 {
		return 0, 0, l
	}

	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return h, s, l
}

// HSLToRGB converts HSL to RGB colour space.
// h is hue (0-360), s is saturation (0-1), l is lightness (0-1).
func HSLToRGB(h, s, l float64) RGB {
	if s == 0 {
		v := toByte(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: toByte(hueToRGB(p, q, h+120)),
		G: toByte(hueToRGB(p, q, h)),
		B: toByte(hueToRGB(p, q, h-120)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	// Normalize t to 0-360 range.
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

func toByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func wrapHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}

func clampPercent(v int) int {
	return max(0, min(100, v))
}
