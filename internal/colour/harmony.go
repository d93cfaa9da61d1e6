package colour

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// HarmonyType names a colour-wheel relationship used to derive a palette.
type HarmonyType string

// Supported harmony types.
const (
	HarmonyAnalogous          HarmonyType = "analogous"
	HarmonyMonochromatic      HarmonyType = "monochromatic"
	HarmonyTriad              HarmonyType = "triad"
	HarmonyComplementary      HarmonyType = "complementary"
	HarmonySplitComplementary HarmonyType = "split-complementary"
	HarmonySquare             HarmonyType = "square"
	HarmonyCompound           HarmonyType = "compound"
	HarmonyShades             HarmonyType = "shades"
	HarmonyCustom             HarmonyType = "custom"
)

// DefaultCustomAngles are the hue offsets used by HarmonyCustom when the
// caller does not supply its own.
var DefaultCustomAngles = []int{30, 60, 120}

// paletteSpread is the number of colours requested from the count-based
// harmonies (monochromatic and shades) when building a palette.
const paletteSpread = 7

// AllHarmonies returns every supported harmony type in display order.
func AllHarmonies() []HarmonyType {
	return []HarmonyType{
		HarmonyAnalogous,
		HarmonyMonochromatic,
		HarmonyTriad,
		HarmonyComplementary,
		HarmonySplitComplementary,
		HarmonySquare,
		HarmonyCompound,
		HarmonyShades,
		HarmonyCustom,
	}
}

// ParseHarmony resolves a harmony name, case-insensitively.
// "triadic", "tetradic" and "split" are accepted as aliases.
func ParseHarmony(s string) (HarmonyType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "triadic":
		return HarmonyTriad, nil
	case "tetradic":
		return HarmonySquare, nil
	case "split":
		return HarmonySplitComplementary, nil
	}
	for _, h := range AllHarmonies() {
		if string(h) == name {
			return h, nil
		}
	}
	return "", fmt.Errorf("unknown harmony %q", s)
}

// String implements fmt.Stringer.
func (h HarmonyType) String() string {
	return string(h)
}

// Set implements pflag.Value.
func (h *HarmonyType) Set(s string) error {
	parsed, err := ParseHarmony(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// Type implements pflag.Value.
func (h *HarmonyType) Type() string {
	return "harmony"
}

// rotate returns hex rotated around the hue wheel by each offset, keeping
// saturation and lightness.
func rotate(hex string, offsets ...int) []string {
	base := HexToHSL(hex)
	out := make([]string, len(offsets))
	for i, off := range offsets {
		out[i] = HSL{H: wrapHue(base.H + off), S: base.S, L: base.L}.Hex()
	}
	return out
}

// Complementary returns the colour opposite hex on the wheel.
func Complementary(hex string) string {
	return rotate(hex, 180)[0]
}

// Analogous returns the neighbours at +30 and -30 degrees.
func Analogous(hex string) []string {
	return rotate(hex, 30, -30)
}

// Triadic returns the colours at +120 and +240 degrees.
func Triadic(hex string) []string {
	return rotate(hex, 120, 240)
}

// Tetradic returns the colours at +90, +180 and +270 degrees.
func Tetradic(hex string) []string {
	return rotate(hex, 90, 180, 270)
}

// Square is an alias of Tetradic.
func Square(hex string) []string {
	return Tetradic(hex)
}

// Compound returns the adjacent colour, the complement, and the adjacent's complement.
func Compound(hex string) []string {
	return rotate(hex, 30, 180, 210)
}

// SplitComplementary returns the two colours either side of the complement.
func SplitComplementary(hex string) []string {
	return rotate(hex, 150, 210)
}

// Custom rotates hex by each of the given angles.
func Custom(hex string, angles []int) []string {
	return rotate(hex, angles...)
}

// Monochromatic keeps hue and saturation and spreads lightness evenly from 20 to 80.
// count is raised to 2 when smaller.
func Monochromatic(hex string, count int) []string {
	count = max(count, 2)
	base := HexToHSL(hex)
	out := make([]string, count)
	for i := range count {
		l := 20 + float64(i)*60/float64(count-1)
		out[i] = HSLToHex(float64(base.H), float64(base.S), l)
	}
	return out
}

// Shades keeps hue and walks saturation from 20 to 100 and lightness from 30 to 70.
// count is raised to 2 when smaller.
func Shades(hex string, count int) []string {
	count = max(count, 2)
	base := HexToHSL(hex)
	out := make([]string, count)
	for i := range count {
		s := 20 + float64(i)*80/float64(count-1)
		l := 30 + float64(i)*40/float64(count-1)
		out[i] = HSLToHex(float64(base.H), s, l)
	}
	return out
}

// Harmony returns the colour set for the given harmony type. For the
// rotation-based types the base colour is the first element; monochromatic
// and shades return count generated colours instead.
func Harmony(hex string, harmony HarmonyType, count int) []string {
	switch harmony {
	case HarmonyAnalogous:
		return append([]string{hex}, Analogous(hex)...)
	case HarmonyMonochromatic:
		return Monochromatic(hex, count)
	case HarmonyTriad:
		return append([]string{hex}, Triadic(hex)...)
	case HarmonyComplementary:
		return []string{hex, Complementary(hex)}
	case HarmonySplitComplementary:
		return append([]string{hex}, SplitComplementary(hex)...)
	case HarmonySquare:
		return append([]string{hex}, Square(hex)...)
	case HarmonyCompound:
		return append([]string{hex}, Compound(hex)...)
	case HarmonyShades:
		return Shades(hex, count)
	case HarmonyCustom:
		return append([]string{hex}, Custom(hex, DefaultCustomAngles)...)
	default:
		return []string{hex}
	}
}

// RandomVibrant returns a random saturated mid-lightness colour.
// A nil source uses the package-level generator.
func RandomVibrant(r *rand.Rand) string {
	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}
	h := intN(360)
	s := 60 + intN(40)
	l := 45 + intN(20)
	return HSLToHex(float64(h), float64(s), float64(l))
}
