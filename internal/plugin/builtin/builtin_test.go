package builtin

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/themestudio/internal/plugin/manager"
	"github.com/jmylchreest/themestudio/internal/theme"
)

func TestPriorities(t *testing.T) {
	m := manager.New(nil)
	for _, p := range All() {
		m.Register(p)
	}

	var got []string
	for _, p := range m.Sorted() {
		got = append(got, p.Name())
	}
	want := []string{"accessibility", "animation", "responsive"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestAnimationAll(t *testing.T) {
	in := theme.Options{Transitions: theme.Style{
		"duration": theme.Style{"short": 150},
	}}

	got, err := NewAnimation().Apply(in, nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	want := theme.Style{
		"duration": theme.Style{"short": 150, "standard": 300},
		"easing":   theme.Style{"easeInOut": "cubic-bezier(0.4, 0, 0.2, 1)"},
	}
	if diff := cmp.Diff(want, got.Transitions); diff != "" {
		t.Errorf("Transitions mismatch (-want +got):\n%s", diff)
	}
	if got.Components != nil {
		t.Errorf("Components = %v, want untouched", got.Components)
	}
}

func TestAnimationComponentList(t *testing.T) {
	in := theme.Options{Components: theme.Components{}}
	in.Components.SetRoot(theme.MuiButton, theme.Style{"color": "red"})

	got, err := NewAnimation().Apply(in, map[string]any{
		"duration":   250,
		"components": []any{"MuiButton", "MuiCard"},
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	const transition = "all 250ms cubic-bezier(0.4, 0, 0.2, 1)"
	if diff := cmp.Diff(theme.Style{"color": "red", "transition": transition}, got.Components.Root(theme.MuiButton)); diff != "" {
		t.Errorf("MuiButton root mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(theme.Style{"transition": transition}, got.Components.Root(theme.MuiCard)); diff != "" {
		t.Errorf("MuiCard root mismatch (-want +got):\n%s", diff)
	}
	if got.Transitions != nil {
		t.Errorf("Transitions = %v, want untouched", got.Transitions)
	}
}

func TestAnimationOptionForms(t *testing.T) {
	tests := []struct {
		name       string
		raw        any
		wantGlobal bool
	}{
		{"nil", nil, true},
		{"string all", map[string]any{"components": "all"}, true},
		{"typed default", DefaultAnimationOptions(), true},
		{"typed list", &AnimationOptions{Duration: 100, Components: []string{"MuiChip"}}, false},
		{"comma string", map[string]any{"components": "MuiChip,MuiTab"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewAnimation().Apply(theme.Options{}, tt.raw)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if global := got.Transitions != nil; global != tt.wantGlobal {
				t.Errorf("global transitions set = %v, want %v", global, tt.wantGlobal)
			}
			if !tt.wantGlobal && got.Components.Root(theme.MuiChip)["transition"] == nil {
				t.Error("MuiChip transition not set")
			}
		})
	}
}

func TestAnimationBadOptions(t *testing.T) {
	in := theme.Options{Shape: theme.Style{"borderRadius": 4}}
	got, err := NewAnimation().Apply(in, map[string]any{"duration": "slow"})
	if err == nil {
		t.Fatal("Apply() error = nil, want decode error")
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("options changed on error (-want +got):\n%s", diff)
	}
}

func TestAccessibilityDefaults(t *testing.T) {
	in := theme.Options{Components: theme.Components{}}
	in.Components.SetRoot(theme.MuiCard, theme.Style{"padding": 8})

	got, err := NewAccessibility().Apply(in, nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	focus := theme.Style{
		"outline":       "3px solid",
		"outlineColor":  theme.DefaultPrimary,
		"outlineOffset": "2px",
	}
	wantCard := theme.Style{"padding": 8, "&:focus-visible": focus}
	if diff := cmp.Diff(wantCard, got.Components.Root(theme.MuiCard)); diff != "" {
		t.Errorf("MuiCard root mismatch (-want +got):\n%s", diff)
	}

	// Interactive components created by the plugin get no focus ring.
	wantButton := theme.Style{"minWidth": 44, "minHeight": 44}
	for _, c := range interactiveComponents {
		if diff := cmp.Diff(wantButton, got.Components.Root(c)); diff != "" {
			t.Errorf("%s root mismatch (-want +got):\n%s", c, diff)
		}
	}
}

func TestAccessibilityOutlineColor(t *testing.T) {
	tests := []struct {
		name string
		opts theme.Options
		want string
	}{
		{"flat palette", theme.Options{Palette: theme.Style{"primary": theme.Style{"main": "#111111"}}}, "#111111"},
		{"light scheme", theme.Options{ColorSchemes: map[string]theme.ColorScheme{
			theme.SchemeLight: {Palette: theme.Style{"primary": theme.Style{"main": "#222222"}}},
		}}, "#222222"},
		{"fallback", theme.Options{}, theme.DefaultPrimary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outlineColor(tt.opts); got != tt.want {
				t.Errorf("outlineColor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAccessibilityReducedMotion(t *testing.T) {
	got, err := NewAccessibility().Apply(theme.Options{}, map[string]any{
		"focusVisible":  false,
		"reducedMotion": true,
		"minTargetSize": 48,
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	want := theme.Style{
		"minWidth":  48,
		"minHeight": 48,
		reducedMotionQuery: theme.Style{
			"animation":  "none !important",
			"transition": "none !important",
		},
	}
	if diff := cmp.Diff(want, got.Components.Root(theme.MuiSwitch)); diff != "" {
		t.Errorf("MuiSwitch root mismatch (-want +got):\n%s", diff)
	}
}

func TestAccessibilityHighContrast(t *testing.T) {
	in := theme.Options{ColorSchemes: map[string]theme.ColorScheme{
		theme.SchemeLight: {Palette: theme.Style{
			"primary":   theme.Style{"main": "#ffeb3b", "contrastText": "#ffffff"},
			"secondary": theme.Style{"main": "#0d47a1"},
		}},
	}}

	got, err := NewAccessibility().Apply(in, AccessibilityOptions{HighContrast: true})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	light := got.SchemePalette(theme.SchemeLight)
	if c := light.String("primary", "contrastText"); c != "#000000" {
		t.Errorf("primary contrastText = %q, want #000000", c)
	}
	if c := light.String("secondary", "contrastText"); c != "#ffffff" {
		t.Errorf("secondary contrastText = %q, want #ffffff", c)
	}
	if c := in.SchemePalette(theme.SchemeLight).String("primary", "contrastText"); c != "#ffffff" {
		t.Errorf("input palette mutated: contrastText = %q", c)
	}
}

func TestResponsiveBreakpoints(t *testing.T) {
	in := theme.Options{Breakpoints: theme.Style{
		"values": theme.Style{"lg": 1280},
		"unit":   "px",
	}}

	got, err := NewResponsive().Apply(in, map[string]any{
		"breakpoints": map[string]any{"sm": 640},
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	want := theme.Style{
		"unit":   "px",
		"values": theme.Style{"xs": 0, "sm": 640, "md": 900, "lg": 1280, "xl": 1536},
	}
	if diff := cmp.Diff(want, got.Breakpoints); diff != "" {
		t.Errorf("Breakpoints mismatch (-want +got):\n%s", diff)
	}
}

func TestResponsiveNoOptions(t *testing.T) {
	in := theme.Options{Typography: theme.Style{"fontSize": 14}}
	got, err := NewResponsive().Apply(in, nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("options changed (-want +got):\n%s", diff)
	}
}

func TestResponsiveFluidTypography(t *testing.T) {
	in := theme.Options{Typography: theme.Style{
		"fontFamily": "Inter",
		"h1":         theme.Style{"fontWeight": 700},
	}}

	got, err := NewResponsive().Apply(in, ResponsiveOptions{FluidTypography: true})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	want := theme.Style{
		"fontFamily":   "Inter",
		"fontSize":     16,
		"htmlFontSize": 16,
		"h1":           theme.Style{"fontSize": "clamp(2rem, 5vw, 3.5rem)"},
		"h2":           theme.Style{"fontSize": "clamp(1.75rem, 4vw, 3rem)"},
		"h3":           theme.Style{"fontSize": "clamp(1.5rem, 3vw, 2.5rem)"},
		"body1":        theme.Style{"fontSize": "clamp(0.875rem, 1vw, 1rem)"},
	}
	if diff := cmp.Diff(want, got.Typography); diff != "" {
		t.Errorf("Typography mismatch (-want +got):\n%s", diff)
	}
}
