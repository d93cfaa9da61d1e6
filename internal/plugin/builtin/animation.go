package builtin

import (
	"fmt"
	"slices"

	"github.com/jmylchreest/themestudio/internal/theme"
)

// AllComponents selects the global transition settings rather than
// per-component overrides.
const AllComponents = "all"

// AnimationOptions configures the animation plugin.
type AnimationOptions struct {
	// Duration in milliseconds.
	Duration int `mapstructure:"duration" json:"duration" yaml:"duration"`
	// Easing is any CSS timing function.
	Easing string `mapstructure:"easing" json:"easing" yaml:"easing"`
	// Components is nil or ["all"] for the global settings, otherwise a list
	// of component names. An empty non-nil list changes nothing.
	Components []string `mapstructure:"components" json:"components" yaml:"components"`
}

// DefaultAnimationOptions returns the options used when none are given.
func DefaultAnimationOptions() AnimationOptions {
	return AnimationOptions{
		Duration: 300,
		Easing:   "cubic-bezier(0.4, 0, 0.2, 1)",
	}
}

// Animation sets transition timing, either globally or on a component list.
type Animation struct {
	info
}

// NewAnimation returns the animation plugin.
func NewAnimation() *Animation {
	return &Animation{info{name: "animation", version: "1.0.0", priority: 10}}
}

// Apply implements manager.ThemePlugin.
func (p *Animation) Apply(opts theme.Options, raw any) (theme.Options, error) {
	o, err := decodeOptions(raw, DefaultAnimationOptions())
	if err != nil {
		return opts, err
	}

	if o.Components == nil || slices.Contains(o.Components, AllComponents) {
		opts.Transitions = theme.DeepMerge(opts.Transitions, theme.Style{
			"duration": theme.Style{"standard": o.Duration},
			"easing":   theme.Style{"easeInOut": o.Easing},
		})
		return opts, nil
	}

	transition := fmt.Sprintf("all %dms %s", o.Duration, o.Easing)
	opts.Components = opts.Components.Clone()
	if opts.Components == nil {
		opts.Components = make(theme.Components, len(o.Components))
	}
	for _, name := range o.Components {
		setRootProps(opts.Components, theme.Component(name), theme.Style{"transition": transition})
	}
	return opts, nil
}
