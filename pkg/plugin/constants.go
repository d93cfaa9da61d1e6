// Package plugin is the public API for external themestudio theme plugins.
//
// A plugin is an executable that answers --plugin-info with a JSON
// PluginInfo and then either serves the go-plugin RPC protocol (see Serve) or
// reads one ThemeRequest from stdin and writes one ThemeResponse to stdout
// (see ServeStdio).
package plugin

import (
	"errors"

	"github.com/hashicorp/go-plugin"
)

const (
	// ProtocolVersion defines the current plugin API version.
	// Format: MAJOR.MINOR.PATCH.
	// - Increment MAJOR for breaking changes (incompatible API changes).
	// - Increment MINOR for backward-compatible additions.
	// - Increment PATCH for backward-compatible bug fixes.
	ProtocolVersion = "0.1.0"

	// MinCompatibleVersion is the oldest protocol version the host accepts.
	MinCompatibleVersion = "0.1.0"

	// InfoFlag makes a plugin print its PluginInfo as JSON and exit.
	InfoFlag = "--plugin-info"

	// PluginName is the key the theme plugin is dispensed under.
	PluginName = "theme"
)

// Handshake is the go-plugin handshake. Its ProtocolVersion is the major
// component of ProtocolVersion; the full semantic check happens on the
// --plugin-info answer.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  0,
	MagicCookieKey:   "THEMESTUDIO_PLUGIN",
	MagicCookieValue: "themestudio_theme",
}

// ErrIncompatibleProtocol is returned when a plugin speaks a protocol
// version the host cannot use.
var ErrIncompatibleProtocol = errors.New("incompatible plugin protocol")

// PluginType defines the type of plugin communication protocol.
type PluginType string

const (
	// PluginTypeGoPlugin indicates the plugin uses HashiCorp go-plugin RPC protocol.
	PluginTypeGoPlugin PluginType = "go-plugin"

	// PluginTypeJSON indicates the plugin uses simple JSON over stdin/stdout.
	PluginTypeJSON PluginType = "json-stdio"
)
