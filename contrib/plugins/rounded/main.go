// rounded - themestudio theme plugin that softens corners
//
// DEMONSTRATION GO-PLUGIN: the host starts this process once and calls it
// over go-plugin RPC for every build, so it suits plugins that run often.
//
// It sets the theme's shape.borderRadius and gives buttons, cards and text
// fields a matching radius. Pill buttons can be requested separately.
//
// Build:
//   go build -o rounded .
//
// Configure (~/.config/themestudio/config.yaml):
//   plugins:
//     external:
//       - name: rounded
//         path: /path/to/rounded
//         options:
//           radius: 12
//           pillButtons: true
//
// License: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/themestudio/pkg/plugin"
)

const defaultRadius = 12

// options are the settings read from plugin_options.
type options struct {
	Radius      *float64 `json:"radius"`
	PillButtons bool     `json:"pillButtons"`
}

// RoundedPlugin rewrites corner radii.
type RoundedPlugin struct{}

// Transform implements plugin.ThemePlugin.
func (p *RoundedPlugin) Transform(_ context.Context, req plugin.ThemeRequest) (plugin.ThemeResponse, error) {
	opts := options{}
	if len(req.PluginOptions) > 0 {
		if err := json.Unmarshal(req.PluginOptions, &opts); err != nil {
			return plugin.ThemeResponse{}, fmt.Errorf("invalid plugin options: %w", err)
		}
	}
	radius := float64(defaultRadius)
	if opts.Radius != nil {
		if *opts.Radius < 0 {
			return plugin.ThemeResponse{}, fmt.Errorf("radius must not be negative, got %v", *opts.Radius)
		}
		radius = *opts.Radius
	}

	var theme map[string]any
	if err := json.Unmarshal(req.Options, &theme); err != nil {
		return plugin.ThemeResponse{}, fmt.Errorf("invalid theme options: %w", err)
	}
	if theme == nil {
		theme = map[string]any{}
	}

	child(theme, "shape")["borderRadius"] = radius

	components := child(theme, "components")
	for _, name := range []string{"MuiCard", "MuiPaper", "MuiOutlinedInput"} {
		root(components, name)["borderRadius"] = radius
	}
	button := root(components, "MuiButton")
	if opts.PillButtons {
		button["borderRadius"] = 9999
	} else {
		button["borderRadius"] = radius
	}

	data, err := json.Marshal(theme)
	if err != nil {
		return plugin.ThemeResponse{}, err
	}
	return plugin.ThemeResponse{Options: data}, nil
}

// GetMetadata implements plugin.ThemePlugin.
func (p *RoundedPlugin) GetMetadata() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:        "rounded",
		Version:     "0.1.0",
		Description: "Consistent corner radius across shape and components",
		Priority:    50,
	}
}

// child returns m[key] as a map, creating it when missing or not a map.
func child(m map[string]any, key string) map[string]any {
	if c, ok := m[key].(map[string]any); ok {
		return c
	}
	c := map[string]any{}
	m[key] = c
	return c
}

// root returns the root style override of a component.
func root(components map[string]any, name string) map[string]any {
	return child(child(child(components, name), "styleOverrides"), "root")
}

func main() {
	plugin.Serve(&RoundedPlugin{})
}
