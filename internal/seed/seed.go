// Package seed finds a starting colour for a new brand palette, either from
// an image such as a logo or from a text prompt answered by Gemini.
package seed

import (
	"github.com/jmylchreest/themestudio/internal/colour"
)

// DefaultHarmony is used when a source does not suggest one.
const DefaultHarmony = colour.HarmonyComplementary

// Seed is a base colour and the harmony to grow a palette from it.
type Seed struct {
	BaseColor string             `json:"baseColor" yaml:"baseColor"`
	Harmony   colour.HarmonyType `json:"harmony" yaml:"harmony"`
	Name      string             `json:"name,omitempty" yaml:"name,omitempty"`
	Source    string             `json:"source,omitempty" yaml:"source,omitempty"`
}

// Palette generates the semantic palette for s.
func (s Seed) Palette() colour.SemanticPalette {
	h := s.Harmony
	if h == "" {
		h = DefaultHarmony
	}
	return colour.GeneratePalette(s.BaseColor, h)
}
