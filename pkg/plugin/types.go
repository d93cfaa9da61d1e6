package plugin

import "encoding/json"

// PluginInfo contains metadata about a plugin.
type PluginInfo struct {
	Name            string   `json:"name"`
	Version         string   `json:"version"`
	ProtocolVersion string   `json:"protocol_version"`
	Description     string   `json:"description,omitempty"`
	PluginProtocol  string   `json:"plugin_protocol"` // "json-stdio" or "go-plugin"
	Priority        int      `json:"priority,omitempty"`
	Dependencies    []string `json:"dependencies,omitempty"`
}

// ThemeRequest carries the theme configuration to transform.
//
// Options is the JSON form of the component library's theme options.
// PluginOptions is whatever the host configured for this plugin, as JSON,
// and is empty when nothing was configured.
type ThemeRequest struct {
	Options       json.RawMessage `json:"options"`
	PluginOptions json.RawMessage `json:"plugin_options,omitempty"`
}

// ThemeResponse carries the transformed theme options back to the host.
type ThemeResponse struct {
	Options json.RawMessage `json:"options"`
}
