// elevation - themestudio theme plugin that flattens or raises surfaces
//
// This is the json-stdio example: the host runs the executable once per
// build, writes one request to stdin and reads one response from stdout.
// Any language that can read and write JSON can implement this protocol.
//
// Build:
//   go build -o elevation .
//
// Usage:
//   # Get plugin info
//   ./elevation --plugin-info
//
//   # Transform a theme
//   echo '{"options":{},"plugin_options":{"level":0}}' | ./elevation
//
// License: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/themestudio/pkg/plugin"
)

// maxLevel is the highest elevation the component library renders.
const maxLevel = 24

type options struct {
	Level       *int `json:"level"`
	FlatButtons bool `json:"flatButtons"`
}

// ElevationPlugin sets default elevations on surface components.
type ElevationPlugin struct{}

// Transform implements plugin.ThemePlugin.
func (p *ElevationPlugin) Transform(_ context.Context, req plugin.ThemeRequest) (plugin.ThemeResponse, error) {
	var opts options
	if len(req.PluginOptions) > 0 {
		if err := json.Unmarshal(req.PluginOptions, &opts); err != nil {
			return plugin.ThemeResponse{}, fmt.Errorf("invalid plugin options: %w", err)
		}
	}
	level := 1
	if opts.Level != nil {
		level = *opts.Level
	}
	if level < 0 || level > maxLevel {
		return plugin.ThemeResponse{}, fmt.Errorf("level must be between 0 and %d, got %d", maxLevel, level)
	}

	var theme map[string]any
	if err := json.Unmarshal(req.Options, &theme); err != nil {
		return plugin.ThemeResponse{}, fmt.Errorf("invalid theme options: %w", err)
	}
	if theme == nil {
		theme = map[string]any{}
	}

	components := child(theme, "components")
	for _, name := range []string{"MuiPaper", "MuiCard", "MuiAppBar"} {
		child(child(components, name), "defaultProps")["elevation"] = level
	}
	if opts.FlatButtons || level == 0 {
		child(child(components, "MuiButton"), "defaultProps")["disableElevation"] = true
	}

	data, err := json.Marshal(theme)
	if err != nil {
		return plugin.ThemeResponse{}, err
	}
	return plugin.ThemeResponse{Options: data}, nil
}

// GetMetadata implements plugin.ThemePlugin.
func (p *ElevationPlugin) GetMetadata() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:        "elevation",
		Version:     "0.1.0",
		Description: "Default elevation for surfaces and buttons",
		Priority:    60,
	}
}

func child(m map[string]any, key string) map[string]any {
	if c, ok := m[key].(map[string]any); ok {
		return c
	}
	c := map[string]any{}
	m[key] = c
	return c
}

func main() {
	plugin.ServeStdio(&ElevationPlugin{})
}
