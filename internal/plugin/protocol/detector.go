package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmylchreest/themestudio/pkg/plugin"
)

// DetectorResult contains information about a detected plugin protocol.
type DetectorResult struct {
	// Type indicates which protocol the plugin uses.
	Type plugin.PluginType

	// SupportsGoPlugin indicates if the plugin binary has go-plugin support.
	SupportsGoPlugin bool

	// PluginInfo contains metadata from --plugin-info.
	PluginInfo plugin.PluginInfo
}

// Detect parses a plugin's --plugin-info output, resolves its transport and
// checks that its protocol version is compatible with the host.
func Detect(infoJSON []byte) (*DetectorResult, error) {
	var info plugin.PluginInfo
	if err := json.Unmarshal(infoJSON, &info); err != nil {
		return nil, fmt.Errorf("failed to parse plugin info: %w", err)
	}
	if info.Name == "" {
		return nil, errors.New("plugin info has no name")
	}

	result := &DetectorResult{PluginInfo: info}

	switch plugin.PluginType(info.PluginProtocol) {
	case plugin.PluginTypeGoPlugin:
		result.Type = plugin.PluginTypeGoPlugin
		result.SupportsGoPlugin = true
	case plugin.PluginTypeJSON, "":
		// Empty defaults to json-stdio.
		result.Type = plugin.PluginTypeJSON
	default:
		return nil, fmt.Errorf("unknown plugin_protocol: %s", info.PluginProtocol)
	}

	if info.ProtocolVersion == "" {
		return nil, fmt.Errorf("%w: plugin %s does not report a protocol_version",
			plugin.ErrIncompatibleProtocol, info.Name)
	}
	if _, err := IsCompatible(info.ProtocolVersion); err != nil {
		return nil, fmt.Errorf("plugin %s: %w", info.Name, err)
	}

	return result, nil
}
