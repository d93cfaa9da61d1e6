package theme

import (
	"fmt"
	"math"
	"time"
)

// Brand defaults.
const (
	DefaultBrandID      = "default-brand"
	DefaultBrandName    = "Default Brand"
	DefaultBrandVersion = "1.0.0"

	DefaultFontFamily     = `"Roboto", "Helvetica", "Arial", sans-serif`
	DefaultFontFamilyCode = `"Roboto Mono", monospace`
)

// DefaultPalette is the Material palette every new brand starts from.
func DefaultPalette() BrandPalette {
	return BrandPalette{
		Primary:   ColorScale{Main: "#1976d2", Light: "#42a5f5", Dark: "#1565c0", ContrastText: "#fff"},
		Secondary: ColorScale{Main: "#9c27b0", Light: "#ba68c8", Dark: "#7b1fa2", ContrastText: "#fff"},
		Error:     ColorScale{Main: "#d32f2f", Light: "#ef5350", Dark: "#c62828", ContrastText: "#fff"},
		Warning:   ColorScale{Main: "#ed6c02", Light: "#ff9800", Dark: "#e65100", ContrastText: "#fff"},
		Info:      ColorScale{Main: "#0288d1", Light: "#03a9f4", Dark: "#01579b", ContrastText: "#fff"},
		Success:   ColorScale{Main: "#2e7d32", Light: "#4caf50", Dark: "#1b5e20", ContrastText: "#fff"},
		Neutral:   ColorScale{Main: "#64748b", Light: "#94a3b8", Dark: "#475569", ContrastText: "#fff"},
	}
}

// DefaultTypography is the Material type scale.
func DefaultTypography() Typography {
	v := func(size string, weight int, lineHeight float64, spacing string) *TypographyStyle {
		return &TypographyStyle{FontSize: size, FontWeight: weight, LineHeight: lineHeight, LetterSpacing: spacing}
	}
	return Typography{
		FontFamily:        DefaultFontFamily,
		FontFamilyCode:    DefaultFontFamilyCode,
		FontSize:          14,
		FontWeightLight:   300,
		FontWeightRegular: 400,
		FontWeightMedium:  500,
		FontWeightBold:    700,
		H1:                v("6rem", 300, 1.167, "-0.01562em"),
		H2:                v("3.75rem", 300, 1.2, "-0.00833em"),
		H3:                v("3rem", 400, 1.167, "0em"),
		H4:                v("2.125rem", 400, 1.235, "0.00735em"),
		H5:                v("1.5rem", 400, 1.334, "0em"),
		H6:                v("1.25rem", 500, 1.6, "0.0075em"),
		Body1:             v("1rem", 400, 1.5, "0.00938em"),
		Body2:             v("0.875rem", 400, 1.43, "0.01071em"),
		Button:            v("0.875rem", 500, 1.75, "0.02857em"),
		Caption:           v("0.75rem", 400, 1.66, "0.03333em"),
	}
}

// DefaultShadows is the default elevation scale.
func DefaultShadows() Shadows {
	return Shadows{
		SM: "0px 2px 4px rgba(0,0,0,0.1)",
		MD: "0px 4px 8px rgba(0,0,0,0.12)",
		LG: "0px 8px 16px rgba(0,0,0,0.14)",
		XL: "0px 16px 32px rgba(0,0,0,0.16)",
	}
}

// DefaultTokens returns a fresh copy of the default token set.
func DefaultTokens() BrandTokens {
	return BrandTokens{
		Palette:    DefaultPalette(),
		Typography: DefaultTypography(),
		Shape:      Shape{BorderRadius: 4},
		Spacing:    8,
		Shadows:    DefaultShadows(),
	}
}

// DefaultBrand returns the brand the store is seeded with.
func DefaultBrand(now time.Time) *BrandConfig {
	return &BrandConfig{
		ID:          DefaultBrandID,
		Name:        DefaultBrandName,
		Description: "A default Material Design theme",
		Tokens:      DefaultTokens(),
		DesignStyle: StyleMinimal,
		Metadata: Metadata{
			CreatedAt: now,
			UpdatedAt: now,
			Version:   DefaultBrandVersion,
		},
	}
}

// NewBrand returns a brand with default tokens. An empty style means minimal.
func NewBrand(name string, style DesignStyle, now time.Time) *BrandConfig {
	return &BrandConfig{
		ID:          fmt.Sprintf("brand-%d", now.UnixMilli()),
		Name:        name,
		Tokens:      DefaultTokens(),
		DesignStyle: style.OrDefault(),
		Metadata: Metadata{
			CreatedAt: now,
			UpdatedAt: now,
			Version:   DefaultBrandVersion,
		},
	}
}

// SpacingScaleType selects how spacing steps grow.
type SpacingScaleType string

// Spacing scale types.
const (
	SpacingLinear      SpacingScaleType = "linear"
	SpacingExponential SpacingScaleType = "exponential"
)

// SpacingTokens describes the spacing scale.
type SpacingTokens struct {
	BaseUnit  int              `json:"baseUnit"`
	ScaleType SpacingScaleType `json:"scaleType"`
	Steps     []int            `json:"steps"`
}

// DefaultSpacingTokens returns the default spacing scale.
func DefaultSpacingTokens() SpacingTokens {
	return SpacingTokens{
		BaseUnit:  8,
		ScaleType: SpacingLinear,
		Steps:     []int{0, 4, 8, 12, 16, 20, 24, 32, 40, 48, 56, 64},
	}
}

// SpacingScale returns count steps: base*i for linear, base^i for exponential.
func SpacingScale(base int, scale SpacingScaleType, count int) []int {
	out := make([]int, 0, max(count, 0))
	for i := range count {
		if scale == SpacingExponential {
			out = append(out, int(math.Pow(float64(base), float64(i))))
			continue
		}
		out = append(out, base*i)
	}
	return out
}

// TypographyTokens is the font vocabulary offered in the editor.
type TypographyTokens struct {
	Families map[string]string `json:"fontFamilies"`
	Sizes    map[string]int    `json:"fontSizes"`
	Weights  map[string]int    `json:"fontWeights"`
}

// DefaultTypographyTokens returns the default typography vocabulary.
func DefaultTypographyTokens() TypographyTokens {
	return TypographyTokens{
		Families: map[string]string{
			"heading": DefaultFontFamily,
			"body":    DefaultFontFamily,
			"mono":    `"Roboto Mono", "Courier New", monospace`,
		},
		Sizes: map[string]int{
			"xs": 12, "sm": 14, "md": 16, "lg": 18, "xl": 20,
		},
		Weights: map[string]int{
			"light": 300, "regular": 400, "medium": 500, "semibold": 600, "bold": 700,
		},
	}
}
