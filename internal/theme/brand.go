package theme

import (
	"fmt"
	"time"

	"github.com/jmylchreest/themestudio/internal/colour"
)

// DesignStyle is a named aesthetic preset.
type DesignStyle string

// Supported design styles.
const (
	StyleMaterialDesign3 DesignStyle = "material-design-3"
	StyleNeumorphism     DesignStyle = "neumorphism"
	StyleGlassmorphism   DesignStyle = "glassmorphism"
	StyleBrutalism       DesignStyle = "brutalism"
	StyleFlatDesign      DesignStyle = "flat-design"
	StyleMinimal         DesignStyle = "minimal"
	StyleGradientMesh    DesignStyle = "gradient-mesh"
	StyleRetro           DesignStyle = "retro"
	StyleCyberpunk       DesignStyle = "cyberpunk"
)

// AllDesignStyles returns every design style in display order.
func AllDesignStyles() []DesignStyle {
	return []DesignStyle{
		StyleMaterialDesign3,
		StyleNeumorphism,
		StyleGlassmorphism,
		StyleBrutalism,
		StyleFlatDesign,
		StyleMinimal,
		StyleGradientMesh,
		StyleRetro,
		StyleCyberpunk,
	}
}

// ParseDesignStyle validates s. The empty string resolves to minimal.
func ParseDesignStyle(s string) (DesignStyle, error) {
	if s == "" {
		return StyleMinimal, nil
	}
	for _, ds := range AllDesignStyles() {
		if string(ds) == s {
			return ds, nil
		}
	}
	return "", fmt.Errorf("unknown design style %q", s)
}

// OrDefault returns minimal for the zero value.
func (ds DesignStyle) OrDefault() DesignStyle {
	if ds == "" {
		return StyleMinimal
	}
	return ds
}

// ColorScale is a colour with optional variants. Readers should go through
// Resolved so missing variants fall back consistently.
type ColorScale struct {
	Main         string `json:"main" yaml:"main" validate:"required,csscolor"`
	Light        string `json:"light,omitempty" yaml:"light,omitempty" validate:"omitempty,csscolor"`
	Dark         string `json:"dark,omitempty" yaml:"dark,omitempty" validate:"omitempty,csscolor"`
	ContrastText string `json:"contrastText,omitempty" yaml:"contrastText,omitempty" validate:"omitempty,csscolor"`
}

// Resolved fills light and dark from main and contrast text from white.
func (c ColorScale) Resolved() ColorScale {
	return ColorScale{
		Main:         c.Main,
		Light:        orDefault(c.Light, c.Main),
		Dark:         orDefault(c.Dark, c.Main),
		ContrastText: orDefault(c.ContrastText, DefaultContrastText),
	}
}

// Style returns the resolved scale as a palette entry.
func (c ColorScale) Style() Style {
	r := c.Resolved()
	return Style{
		"main":         r.Main,
		"light":        r.Light,
		"dark":         r.Dark,
		"contrastText": r.ContrastText,
	}
}

// ScaleFrom converts a generated colour scale.
func ScaleFrom(s colour.Scale) ColorScale {
	return ColorScale(s)
}

// BrandPalette holds the seven semantic scales of a brand.
type BrandPalette struct {
	Primary   ColorScale `json:"primary" yaml:"primary"`
	Secondary ColorScale `json:"secondary" yaml:"secondary"`
	Error     ColorScale `json:"error" yaml:"error"`
	Warning   ColorScale `json:"warning" yaml:"warning"`
	Info      ColorScale `json:"info" yaml:"info"`
	Success   ColorScale `json:"success" yaml:"success"`
	Neutral   ColorScale `json:"neutral" yaml:"neutral"`
}

// PaletteFrom converts a generated semantic palette.
func PaletteFrom(p colour.SemanticPalette) BrandPalette {
	return BrandPalette{
		Primary:   ScaleFrom(p.Primary),
		Secondary: ScaleFrom(p.Secondary),
		Error:     ScaleFrom(p.Error),
		Warning:   ScaleFrom(p.Warning),
		Info:      ScaleFrom(p.Info),
		Success:   ScaleFrom(p.Success),
		Neutral:   ScaleFrom(p.Neutral),
	}
}

// SemanticStyle returns the six scales that drive component colour, resolved,
// as palette entries. Neutral is not part of the component palette.
func (p BrandPalette) SemanticStyle() Style {
	return Style{
		"primary":   p.Primary.Style(),
		"secondary": p.Secondary.Style(),
		"error":     p.Error.Style(),
		"warning":   p.Warning.Style(),
		"info":      p.Info.Style(),
		"success":   p.Success.Style(),
	}
}

// TypographyStyle overrides one typography variant.
type TypographyStyle struct {
	FontSize      any `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	FontWeight    int `json:"fontWeight,omitempty" yaml:"fontWeight,omitempty"`
	LineHeight    any `json:"lineHeight,omitempty" yaml:"lineHeight,omitempty"`
	LetterSpacing any `json:"letterSpacing,omitempty" yaml:"letterSpacing,omitempty"`
}

// Typography is the brand type scale.
type Typography struct {
	FontFamily        string           `json:"fontFamily" yaml:"fontFamily" validate:"required"`
	FontFamilyCode    string           `json:"fontFamilyCode,omitempty" yaml:"fontFamilyCode,omitempty"`
	FontSize          int              `json:"fontSize" yaml:"fontSize" validate:"gt=0"`
	FontWeightLight   int              `json:"fontWeightLight" yaml:"fontWeightLight" validate:"gte=0,lte=1000"`
	FontWeightRegular int              `json:"fontWeightRegular" yaml:"fontWeightRegular" validate:"gte=0,lte=1000"`
	FontWeightMedium  int              `json:"fontWeightMedium" yaml:"fontWeightMedium" validate:"gte=0,lte=1000"`
	FontWeightBold    int              `json:"fontWeightBold" yaml:"fontWeightBold" validate:"gte=0,lte=1000"`
	H1                *TypographyStyle `json:"h1,omitempty" yaml:"h1,omitempty"`
	H2                *TypographyStyle `json:"h2,omitempty" yaml:"h2,omitempty"`
	H3                *TypographyStyle `json:"h3,omitempty" yaml:"h3,omitempty"`
	H4                *TypographyStyle `json:"h4,omitempty" yaml:"h4,omitempty"`
	H5                *TypographyStyle `json:"h5,omitempty" yaml:"h5,omitempty"`
	H6                *TypographyStyle `json:"h6,omitempty" yaml:"h6,omitempty"`
	Body1             *TypographyStyle `json:"body1,omitempty" yaml:"body1,omitempty"`
	Body2             *TypographyStyle `json:"body2,omitempty" yaml:"body2,omitempty"`
	Button            *TypographyStyle `json:"button,omitempty" yaml:"button,omitempty"`
	Caption           *TypographyStyle `json:"caption,omitempty" yaml:"caption,omitempty"`
}

// Shape holds corner rounding.
type Shape struct {
	BorderRadius int `json:"borderRadius" yaml:"borderRadius" validate:"gte=0"`
}

// Shadows is the brand elevation shadow scale.
type Shadows struct {
	SM string `json:"sm" yaml:"sm"`
	MD string `json:"md" yaml:"md"`
	LG string `json:"lg" yaml:"lg"`
	XL string `json:"xl" yaml:"xl"`
}

// LightSource positions the light for elevation effects.
type LightSource struct {
	Angle    float64 `json:"angle" yaml:"angle"`
	Distance float64 `json:"distance" yaml:"distance"`
}

// ElevationConfig tunes elevation-based styles.
type ElevationConfig struct {
	Style       string       `json:"style" yaml:"style" validate:"oneof=material neumorphic flat layered"`
	Intensity   int          `json:"intensity" yaml:"intensity" validate:"gte=0,lte=100"`
	LightSource *LightSource `json:"lightSource,omitempty" yaml:"lightSource,omitempty"`
}

// Toggle is an on/off effect with an amount.
type Toggle struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Amount  float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
}

// BackdropEffect configures backdrop blur.
type BackdropEffect struct {
	Enabled    bool    `json:"enabled" yaml:"enabled"`
	Blur       float64 `json:"blur" yaml:"blur"`
	Saturation float64 `json:"saturation" yaml:"saturation"`
}

// GradientEffect configures gradients.
type GradientEffect struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Style   string `json:"style" yaml:"style" validate:"omitempty,oneof=subtle vibrant mesh"`
}

// GlowEffect configures glow.
type GlowEffect struct {
	Enabled   bool `json:"enabled" yaml:"enabled"`
	Intensity int  `json:"intensity" yaml:"intensity" validate:"gte=0,lte=100"`
}

// EffectsConfig tunes visual effects.
type EffectsConfig struct {
	Blur      *Toggle         `json:"blur,omitempty" yaml:"blur,omitempty"`
	Backdrop  *BackdropEffect `json:"backdrop,omitempty" yaml:"backdrop,omitempty"`
	Gradients *GradientEffect `json:"gradients,omitempty" yaml:"gradients,omitempty"`
	Glow      *GlowEffect     `json:"glow,omitempty" yaml:"glow,omitempty"`
}

// SurfaceConfig tunes background treatment.
type SurfaceConfig struct {
	Style    string   `json:"style" yaml:"style" validate:"oneof=solid gradient glass textured"`
	Opacity  *float64 `json:"opacity,omitempty" yaml:"opacity,omitempty" validate:"omitempty,gte=0,lte=1"`
	Pattern  string   `json:"pattern,omitempty" yaml:"pattern,omitempty" validate:"omitempty,oneof=none dots grid noise"`
	Contrast string   `json:"contrast" yaml:"contrast" validate:"oneof=low medium high"`
}

// BrandTokens is the full style vocabulary of one brand.
type BrandTokens struct {
	Palette    BrandPalette       `json:"palette" yaml:"palette"`
	Typography Typography         `json:"typography" yaml:"typography"`
	Shape      Shape              `json:"shape" yaml:"shape"`
	Spacing    int                `json:"spacing" yaml:"spacing" validate:"gt=0"`
	Shadows    Shadows            `json:"shadows" yaml:"shadows"`
	Elevation  *ElevationConfig   `json:"elevation,omitempty" yaml:"elevation,omitempty"`
	Effects    *EffectsConfig     `json:"effects,omitempty" yaml:"effects,omitempty"`
	Surfaces   *SurfaceConfig     `json:"surfaces,omitempty" yaml:"surfaces,omitempty"`
	Components ComponentOverrides `json:"components,omitzero" yaml:"components,omitempty"`
}

// Metadata tracks brand lifecycle. UpdatedAt must change on every edit; it
// keys the built-theme cache.
type Metadata struct {
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
	Version   string    `json:"version" yaml:"version" validate:"required,brandversion"`
}

// BrandConfig is one independently configurable theme.
type BrandConfig struct {
	ID          string      `json:"id" yaml:"id" validate:"required"`
	Name        string      `json:"name" yaml:"name" validate:"required"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Tokens      BrandTokens `json:"tokens" yaml:"tokens"`
	DesignStyle DesignStyle `json:"designStyle,omitempty" yaml:"designStyle,omitempty" validate:"omitempty,designstyle"`
	Metadata    Metadata    `json:"metadata" yaml:"metadata"`
}

// Style returns the brand's design style, defaulting to minimal.
func (b *BrandConfig) Style() DesignStyle {
	return b.DesignStyle.OrDefault()
}

// Clone deep-copies the brand.
func (b *BrandConfig) Clone() *BrandConfig {
	out := *b
	out.Tokens = b.Tokens.Clone()
	return &out
}

// Clone deep-copies the tokens.
func (t BrandTokens) Clone() BrandTokens {
	out := t
	out.Typography = t.Typography.Clone()
	if t.Elevation != nil {
		e := *t.Elevation
		if e.LightSource != nil {
			ls := *e.LightSource
			e.LightSource = &ls
		}
		out.Elevation = &e
	}
	if t.Effects != nil {
		e := cloneEffects(*t.Effects)
		out.Effects = &e
	}
	if t.Surfaces != nil {
		s := *t.Surfaces
		if s.Opacity != nil {
			o := *s.Opacity
			s.Opacity = &o
		}
		out.Surfaces = &s
	}
	out.Components = t.Components.Clone()
	return out
}

// Clone copies the per-variant styles.
func (t Typography) Clone() Typography {
	cp := func(s *TypographyStyle) *TypographyStyle {
		if s == nil {
			return nil
		}
		v := *s
		return &v
	}
	t.H1, t.H2, t.H3 = cp(t.H1), cp(t.H2), cp(t.H3)
	t.H4, t.H5, t.H6 = cp(t.H4), cp(t.H5), cp(t.H6)
	t.Body1, t.Body2 = cp(t.Body1), cp(t.Body2)
	t.Button, t.Caption = cp(t.Button), cp(t.Caption)
	return t
}

func cloneEffects(e EffectsConfig) EffectsConfig {
	if e.Blur != nil {
		v := *e.Blur
		e.Blur = &v
	}
	if e.Backdrop != nil {
		v := *e.Backdrop
		e.Backdrop = &v
	}
	if e.Gradients != nil {
		v := *e.Gradients
		e.Gradients = &v
	}
	if e.Glow != nil {
		v := *e.Glow
		e.Glow = &v
	}
	return e
}
