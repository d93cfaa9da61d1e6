package colour

import (
	"image/color"
	"math"
	"sort"
)

// WCAG contrast thresholds for normal-size text.
const (
	ContrastAA  = 4.5
	ContrastAAA = 7.0
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	rf := gammaCorrect(float64(r>>8) / 255.0)
	gf := gammaCorrect(float64(g>>8) / 255.0)
	bf := gammaCorrect(float64(b>>8) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// RelativeLuminance is Luminance for a hex string. Malformed input is black.
func RelativeLuminance(hex string) float64 {
	return Luminance(mustRGB(hex))
}

// gammaCorrect linearises an sRGB channel.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the WCAG contrast ratio between two hex colours.
// Returns a value between 1 and 21, where 21 is black on white.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(fg, bg string) float64 {
	l1 := RelativeLuminance(fg)
	l2 := RelativeLuminance(bg)

	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// MeetsAA reports whether fg on bg reaches 4.5:1.
func MeetsAA(fg, bg string) bool {
	return ContrastRatio(fg, bg) >= ContrastAA
}

// MeetsAAA reports whether fg on bg reaches 7:1.
func MeetsAAA(fg, bg string) bool {
	return ContrastRatio(fg, bg) >= ContrastAAA
}

// ContrastCheck is the contrast result for one scale's text on its main colour.
type ContrastCheck struct {
	Name       string  `json:"name"`
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	AA         bool    `json:"aa"`
	AAA        bool    `json:"aaa"`
}

// Check builds a ContrastCheck for fg on bg.
func Check(name, fg, bg string) ContrastCheck {
	ratio := ContrastRatio(fg, bg)
	return ContrastCheck{
		Name:       name,
		Foreground: fg,
		Background: bg,
		Ratio:      ratio,
		AA:         ratio >= ContrastAA,
		AAA:        ratio >= ContrastAAA,
	}
}

// ContrastReport checks every scale's contrast text against its main colour,
// sorted by scale name.
func ContrastReport(p SemanticPalette) []ContrastCheck {
	scales := p.Scales()
	names := make([]string, 0, len(scales))
	for name := range scales {
		names = append(names, name)
	}
	sort.Strings(names)

	report := make([]ContrastCheck, 0, len(names))
	for _, name := range names {
		s := scales[name]
		report = append(report, Check(name, s.ContrastText, s.Main))
	}
	return report
}
